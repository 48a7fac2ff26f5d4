package fingertree

import "sync"

// fingerTree is the closed sum type of tree variants: *empty, *single,
// *deep and *lazy. Payloads are of type any: client elements on the top
// level, *node[V] on every deeper level. Each variant carries the monoid of
// its level.
type fingerTree[V any] interface {
	measure() V
	isEmpty() bool
	addFirst(any) fingerTree[V]
	addLast(any) fingerTree[V]
	removeFirst() fingerTree[V]
	removeLast() fingerTree[V]
	peekFirst() (any, bool)
	peekLast() (any, bool)
	force() fingerTree[V] // never returns a *lazy
	monoid() *monoid[V]
}

var (
	_ fingerTree[int] = &empty[int]{}
	_ fingerTree[int] = &single[int]{}
	_ fingerTree[int] = &deep[int]{}
	_ fingerTree[int] = &lazy[int]{}
)

// --- Empty -----------------------------------------------------------------

type empty[V any] struct {
	m *monoid[V]
}

func newEmpty[V any](m *monoid[V]) *empty[V] {
	return &empty[V]{m: m}
}

func (t *empty[V]) measure() V                   { return t.m.zero() }
func (t *empty[V]) isEmpty() bool                { return true }
func (t *empty[V]) addFirst(x any) fingerTree[V] { return newSingle(t.m, x) }
func (t *empty[V]) addLast(x any) fingerTree[V]  { return newSingle(t.m, x) }
func (t *empty[V]) peekFirst() (any, bool)       { return nil, false }
func (t *empty[V]) peekLast() (any, bool)        { return nil, false }
func (t *empty[V]) force() fingerTree[V]         { return t }
func (t *empty[V]) monoid() *monoid[V]           { return t.m }

func (t *empty[V]) removeFirst() fingerTree[V] {
	panic(ErrEmptyTree)
}

func (t *empty[V]) removeLast() fingerTree[V] {
	panic(ErrEmptyTree)
}

// --- Single ----------------------------------------------------------------

type single[V any] struct {
	m     *monoid[V]
	value any
	size  V
}

func newSingle[V any](m *monoid[V], x any) *single[V] {
	return &single[V]{m: m, value: x, size: m.of(x)}
}

func (t *single[V]) measure() V                 { return t.size }
func (t *single[V]) isEmpty() bool              { return false }
func (t *single[V]) removeFirst() fingerTree[V] { return newEmpty(t.m) }
func (t *single[V]) removeLast() fingerTree[V]  { return newEmpty(t.m) }
func (t *single[V]) peekFirst() (any, bool)     { return t.value, true }
func (t *single[V]) peekLast() (any, bool)      { return t.value, true }
func (t *single[V]) force() fingerTree[V]       { return t }
func (t *single[V]) monoid() *monoid[V]         { return t.m }

func (t *single[V]) addFirst(x any) fingerTree[V] {
	return newDeep(t.m, newDigit(t.m, x), newEmpty(t.m.inner), newDigit(t.m, t.value))
}

func (t *single[V]) addLast(x any) fingerTree[V] {
	return newDeep(t.m, newDigit(t.m, t.value), newEmpty(t.m.inner), newDigit(t.m, x))
}

// --- Deep ------------------------------------------------------------------

// deep is a tree of two digits and a middle tree of nodes, one level deeper.
// Its measure is computed on first access.
type deep[V any] struct {
	m     *monoid[V]
	left  digit[V]
	mid   fingerTree[V]
	right digit[V]
	once  sync.Once
	size  V
}

func newDeep[V any](m *monoid[V], left digit[V], mid fingerTree[V], right digit[V]) *deep[V] {
	return &deep[V]{m: m, left: left, mid: mid, right: right}
}

func (t *deep[V]) measure() V {
	t.once.Do(func() {
		t.size = t.m.add(t.m.add(t.left.measure, t.mid.measure()), t.right.measure)
	})
	return t.size
}

func (t *deep[V]) isEmpty() bool          { return false }
func (t *deep[V]) peekFirst() (any, bool) { return t.left.first(), true }
func (t *deep[V]) peekLast() (any, bool)  { return t.right.last(), true }
func (t *deep[V]) force() fingerTree[V]   { return t }
func (t *deep[V]) monoid() *monoid[V]     { return t.m }

func (t *deep[V]) addFirst(x any) fingerTree[V] {
	if t.left.len() == 4 {
		l := t.left.items
		n := newNode(t.m, l[1], l[2], l[3])
		return newDeep(t.m, newDigit(t.m, x, l[0]), t.mid.addFirst(n), t.right)
	}
	return newDeep(t.m, t.left.prepend(t.m, x), t.mid, t.right)
}

func (t *deep[V]) addLast(x any) fingerTree[V] {
	if t.right.len() == 4 {
		r := t.right.items
		n := newNode(t.m, r[0], r[1], r[2])
		return newDeep(t.m, t.left, t.mid.addLast(n), newDigit(t.m, r[3], x))
	}
	return newDeep(t.m, t.left, t.mid, t.right.append(t.m, x))
}

func (t *deep[V]) removeFirst() fingerTree[V] {
	if t.left.len() > 1 {
		return newDeep(t.m, t.left.removeFirst(t.m), t.mid, t.right)
	}
	if !t.mid.isEmpty() {
		return pullLeft(t.m, t.mid, t.right)
	}
	if t.right.len() == 1 {
		return newSingle(t.m, t.right.first())
	}
	return newDeep(t.m, newDigit(t.m, t.right.first()), t.mid, t.right.removeFirst(t.m))
}

func (t *deep[V]) removeLast() fingerTree[V] {
	if t.right.len() > 1 {
		return newDeep(t.m, t.left, t.mid, t.right.removeLast(t.m))
	}
	if !t.mid.isEmpty() {
		return pullRight(t.m, t.left, t.mid)
	}
	if t.left.len() == 1 {
		return newSingle(t.m, t.left.first())
	}
	return newDeep(t.m, t.left.removeLast(t.m), t.mid, newDigit(t.m, t.left.last()))
}

// pullLeft creates a deep tree from a non-empty middle tree and a right digit,
// using the first node of mid as the new left digit. Removal of that node
// from mid is deferred.
func pullLeft[V any](m *monoid[V], mid fingerTree[V], right digit[V]) *deep[V] {
	x, _ := mid.peekFirst()
	n, ok := x.(*node[V])
	assertThat(ok, ErrInvariant, "first item of middle tree is not a node: %T", x)
	tracer().Debugf("pulling %v from middle tree to the left", n)
	rest := suspend(mid.monoid(), func() fingerTree[V] {
		return mid.removeFirst()
	})
	return newDeep(m, n.toDigit(), rest, right)
}

// pullRight is the mirror of pullLeft.
func pullRight[V any](m *monoid[V], left digit[V], mid fingerTree[V]) *deep[V] {
	x, _ := mid.peekLast()
	n, ok := x.(*node[V])
	assertThat(ok, ErrInvariant, "last item of middle tree is not a node: %T", x)
	tracer().Debugf("pulling %v from middle tree to the right", n)
	rest := suspend(mid.monoid(), func() fingerTree[V] {
		return mid.removeLast()
	})
	return newDeep(m, left, rest, n.toDigit())
}

// --- Lazy ------------------------------------------------------------------

// lazy is a suspended computation of a tree. It is forced at most once,
// the first time any of its operations is called.
type lazy[V any] struct {
	m     *monoid[V]
	once  sync.Once
	thunk func() fingerTree[V]
	tree  fingerTree[V]
}

func suspend[V any](m *monoid[V], thunk func() fingerTree[V]) *lazy[V] {
	return &lazy[V]{m: m, thunk: thunk}
}

func (t *lazy[V]) force() fingerTree[V] {
	t.once.Do(func() {
		tracer().Debugf("forcing suspended tree")
		t.tree = t.thunk().force()
		t.thunk = nil
	})
	return t.tree
}

func (t *lazy[V]) measure() V                   { return t.force().measure() }
func (t *lazy[V]) isEmpty() bool                { return t.force().isEmpty() }
func (t *lazy[V]) addFirst(x any) fingerTree[V] { return t.force().addFirst(x) }
func (t *lazy[V]) addLast(x any) fingerTree[V]  { return t.force().addLast(x) }
func (t *lazy[V]) removeFirst() fingerTree[V]   { return t.force().removeFirst() }
func (t *lazy[V]) removeLast() fingerTree[V]    { return t.force().removeLast() }
func (t *lazy[V]) peekFirst() (any, bool)       { return t.force().peekFirst() }
func (t *lazy[V]) peekLast() (any, bool)        { return t.force().peekLast() }
func (t *lazy[V]) monoid() *monoid[V]           { return t.m }

// forced reports whether the suspended computation has been evaluated.
// For testing only: the result may be stale under concurrent access.
func (t *lazy[V]) forced() bool {
	return t.tree != nil
}
