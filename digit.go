package fingertree

import (
	"fmt"
	"strings"
)

// digit is the buffer at either end of a deep tree. It holds 1…4 payloads:
// elements on the top level, nodes on deeper levels.
type digit[V any] struct {
	items   []any
	measure V
}

// newDigit creates a digit from items. items may not be modified by the
// caller afterwards.
func newDigit[V any](m *monoid[V], items ...any) digit[V] {
	assertThat(len(items) > 0 && len(items) <= 4, ErrInvariant,
		"digit must hold 1…4 items, has %d", len(items))
	return digit[V]{items: items, measure: m.fold(items)}
}

func (d digit[V]) len() int {
	return len(d.items)
}

func (d digit[V]) first() any {
	return d.items[0]
}

func (d digit[V]) last() any {
	return d.items[len(d.items)-1]
}

func (d digit[V]) prepend(m *monoid[V], x any) digit[V] {
	return newDigit(m, joined([]any{x}, d.items)...)
}

func (d digit[V]) append(m *monoid[V], x any) digit[V] {
	return newDigit(m, joined(d.items, []any{x})...)
}

func (d digit[V]) removeFirst(m *monoid[V]) digit[V] {
	return d.slice(m, 1, len(d.items))
}

func (d digit[V]) removeLast(m *monoid[V]) digit[V] {
	return d.slice(m, 0, len(d.items)-1)
}

// slice returns a digit holding items[start:end], which must not be empty.
func (d digit[V]) slice(m *monoid[V], start, end int) digit[V] {
	return newDigit(m, joined(d.items[start:end])...)
}

// split locates the item at which p first holds for the running measure,
// starting at acc. Clients have to make sure that the split point lies
// within d; a digit of one item is therefore split without consulting p.
// If p never holds, the last item is taken as the split point.
func (d digit[V]) split(m *monoid[V], p func(V) bool, acc V) ([]any, any, []any) {
	if len(d.items) == 1 {
		return nil, d.items[0], nil
	}
	for i, x := range d.items[:len(d.items)-1] {
		acc = m.add(acc, m.of(x))
		if p(acc) {
			return d.items[:i], x, d.items[i+1:]
		}
	}
	n := len(d.items) - 1
	return d.items[:n], d.items[n], nil
}

func (d digit[V]) String() string {
	return itemsString[V](d.items)
}

// --- Nodes -----------------------------------------------------------------

// node groups 2 or 3 payloads of one level into a single payload of the
// next deeper level.
type node[V any] struct {
	items   []any
	measure V
}

func newNode[V any](m *monoid[V], items ...any) *node[V] {
	assertThat(len(items) == 2 || len(items) == 3, ErrInvariant,
		"node must hold 2 or 3 items, has %d", len(items))
	return &node[V]{items: items, measure: m.fold(items)}
}

// toDigit re-uses the children of n as a digit of the shallower level.
func (n *node[V]) toDigit() digit[V] {
	return digit[V]{items: n.items, measure: n.measure}
}

func (n *node[V]) String() string {
	return "node" + itemsString[V](n.items)
}

// nodes groups payloads into nodes of size 2 or 3, preserving order. Groups
// of 3 come first, i.e. 7 items are grouped as [3,2,2] and 8 items as [3,3,2].
// Digits hold at most 4 items and app3 passes at most 4 nodes between them,
// so more than 12 items cannot occur.
func nodes[V any](m *monoid[V], xs []any) []any {
	assertThat(len(xs) >= 2 && len(xs) <= 12, ErrInvariant,
		"cannot group %d items into nodes", len(xs))
	ns := make([]any, 0, (len(xs)+2)/3)
	for len(xs) > 4 {
		ns = append(ns, newNode(m, xs[0], xs[1], xs[2]))
		xs = xs[3:]
	}
	switch len(xs) {
	case 2, 3:
		ns = append(ns, newNode(m, xs...))
	case 4:
		ns = append(ns, newNode(m, xs[0], xs[1]), newNode(m, xs[2], xs[3]))
	}
	return ns
}

// --- Helpers ---------------------------------------------------------------

// joined concatenates slices into a newly allocated slice. Slices of items
// are shared between tree incarnations and never appended to in place.
func joined(parts ...[]any) []any {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	r := make([]any, 0, n)
	for _, p := range parts {
		r = append(r, p...)
	}
	return r
}

func itemsString[V any](items []any) string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, x := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		if _, ok := x.(*node[V]); ok {
			b.WriteString("▪︎")
		} else {
			b.WriteString(fmt.Sprintf("%v", x))
		}
	}
	b.WriteByte(']')
	return b.String()
}
