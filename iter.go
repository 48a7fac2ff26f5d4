package fingertree

import "iter"

// All returns an iterator over the elements of t, front to back.
func (t Tree[E, V]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.IsEmpty() {
			return
		}
		walk(t.root, 0, false, func(x any) bool {
			return yield(x.(E))
		})
	}
}

// Backward returns an iterator over the elements of t, back to front.
func (t Tree[E, V]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if t.IsEmpty() {
			return
		}
		walk(t.root, 0, true, func(x any) bool {
			return yield(x.(E))
		})
	}
}

// ToSlice returns the elements of t in order.
func (t Tree[E, V]) ToSlice() []E {
	var items []E
	for x := range t.All() {
		items = append(items, x)
	}
	return items
}

// walk calls yield for every element of tree t, where depth is the node
// nesting of t's payloads. It stops and returns false as soon as yield
// returns false.
func walk[V any](t fingerTree[V], depth int, backwards bool, yield func(any) bool) bool {
	switch t := t.force().(type) {
	case *empty[V]:
		return true
	case *single[V]:
		return walkPayload[V](t.value, depth, backwards, yield)
	case *deep[V]:
		first, last := t.left, t.right
		if backwards {
			first, last = last, first
		}
		return walkItems[V](first.items, depth, backwards, yield) &&
			walk(t.mid, depth+1, backwards, yield) &&
			walkItems[V](last.items, depth, backwards, yield)
	}
	return true
}

func walkItems[V any](items []any, depth int, backwards bool, yield func(any) bool) bool {
	for i := range items {
		if backwards {
			i = len(items) - 1 - i
		}
		if !walkPayload[V](items[i], depth, backwards, yield) {
			return false
		}
	}
	return true
}

func walkPayload[V any](x any, depth int, backwards bool, yield func(any) bool) bool {
	if depth == 0 {
		return yield(x)
	}
	n, ok := x.(*node[V])
	assertThat(ok, ErrInvariant, "payload at depth %d is not a node: %T", depth, x)
	return walkItems[V](n.items, depth-1, backwards, yield)
}
