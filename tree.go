package fingertree

import (
	"iter"

	"github.com/npillmayer/fingertree/maybe"
	"github.com/npillmayer/fingertree/result"
)

// Tree is a persistent finger tree holding elements of type E, annotated
// with measures of type V. Trees are values; every operation returning a
// tree leaves the receiver unchanged.
//
// The zero value is not usable, as it lacks a measurer. Create trees with
// New, Empty or one of the From… functions.
type Tree[E, V any] struct {
	m    *monoid[V]
	root fingerTree[V]
}

// New creates an empty tree annotated with measurer m.
func New[E, V any](m Measurer[E, V]) Tree[E, V] {
	assertThat(m != nil, ErrNoMeasurer, "New called with nil measurer")
	mon := newMonoid(m)
	return Tree[E, V]{m: mon, root: newEmpty(mon)}
}

// Empty creates an empty tree measured by the number of its elements.
func Empty[E any]() Tree[E, int] {
	return New(Count[E]())
}

// FromSlice creates a tree of items, measured by the number of its elements.
func FromSlice[E any](items []E) Tree[E, int] {
	return FromSliceMeasured(items, Count[E]())
}

// FromSliceMeasured creates a tree of items, annotated with measurer m.
func FromSliceMeasured[E, V any](items []E, m Measurer[E, V]) Tree[E, V] {
	t := New(m)
	for i := len(items) - 1; i >= 0; i-- {
		t.root = t.root.addFirst(items[i])
	}
	return t
}

// FromSeq creates a tree from the elements of seq, in order, annotated
// with measurer m.
func FromSeq[E, V any](seq iter.Seq[E], m Measurer[E, V]) Tree[E, V] {
	t := New(m)
	for x := range seq {
		t.root = t.root.addLast(x)
	}
	return t
}

func (t Tree[E, V]) with(root fingerTree[V]) Tree[E, V] {
	return Tree[E, V]{m: t.m, root: root}
}

func (t Tree[E, V]) check() {
	assertThat(t.m != nil, ErrNoMeasurer, "tree not initialized; create trees with fingertree.New")
}

// --- API -------------------------------------------------------------------

// Measure returns the sum of the measures of all elements, or the
// measurer's identity for an empty tree.
func (t Tree[E, V]) Measure() V {
	t.check()
	return t.root.measure()
}

// IsEmpty is true if t holds no elements.
func (t Tree[E, V]) IsEmpty() bool {
	return t.root == nil || t.root.isEmpty()
}

// AddFirst returns a tree with x prepended to t.
func (t Tree[E, V]) AddFirst(x E) Tree[E, V] {
	t.check()
	return t.with(t.root.addFirst(x))
}

// AddLast returns a tree with x appended to t.
func (t Tree[E, V]) AddLast(x E) Tree[E, V] {
	t.check()
	return t.with(t.root.addLast(x))
}

// RemoveFirst returns a tree without the first element of t.
// Calling RemoveFirst on an empty tree panics with an error wrapping
// ErrEmptyTree; see ViewFirst for a non-panicking alternative.
func (t Tree[E, V]) RemoveFirst() Tree[E, V] {
	t.check()
	assertThat(!t.root.isEmpty(), ErrEmptyTree, "cannot remove first element")
	return t.with(t.root.removeFirst().force())
}

// RemoveLast returns a tree without the last element of t.
// Calling RemoveLast on an empty tree panics with an error wrapping
// ErrEmptyTree; see ViewLast for a non-panicking alternative.
func (t Tree[E, V]) RemoveLast() Tree[E, V] {
	t.check()
	assertThat(!t.root.isEmpty(), ErrEmptyTree, "cannot remove last element")
	return t.with(t.root.removeLast().force())
}

// PeekFirst returns the first element of t, or Nothing for an empty tree.
func (t Tree[E, V]) PeekFirst() maybe.Maybe[E] {
	if t.IsEmpty() {
		return maybe.Nothing[E]()
	}
	x, _ := t.root.peekFirst()
	return maybe.Just(x.(E))
}

// PeekLast returns the last element of t, or Nothing for an empty tree.
func (t Tree[E, V]) PeekLast() maybe.Maybe[E] {
	if t.IsEmpty() {
		return maybe.Nothing[E]()
	}
	x, _ := t.root.peekLast()
	return maybe.Just(x.(E))
}

// View is a tree decomposed into one of its end elements and the rest.
type View[E, V any] struct {
	Elem E
	Rest Tree[E, V]
}

// ViewFirst decomposes t into its first element and the remaining tree.
// For an empty tree it returns an error result wrapping ErrEmptyTree.
func (t Tree[E, V]) ViewFirst() result.Result[View[E, V]] {
	if t.IsEmpty() {
		return result.Err[View[E, V]](ErrEmptyTree)
	}
	x, _ := t.root.peekFirst()
	return result.Ok(View[E, V]{Elem: x.(E), Rest: t.RemoveFirst()})
}

// ViewLast decomposes t into its last element and the preceding tree.
// For an empty tree it returns an error result wrapping ErrEmptyTree.
func (t Tree[E, V]) ViewLast() result.Result[View[E, V]] {
	if t.IsEmpty() {
		return result.Err[View[E, V]](ErrEmptyTree)
	}
	x, _ := t.root.peekLast()
	return result.Ok(View[E, V]{Elem: x.(E), Rest: t.RemoveLast()})
}

// Concat returns the concatenation of t and other. Both trees have to be
// created with the same measurer semantics; the measurer of t is used
// for the result.
func (t Tree[E, V]) Concat(other Tree[E, V]) Tree[E, V] {
	t.check()
	if other.IsEmpty() {
		return t
	}
	if t.root.isEmpty() {
		return other
	}
	return t.with(concat(t.root, other.root).force())
}

// Split divides t at the first element for which p holds, when applied to
// the accumulated measure of all elements up to and including it. That
// element starts the right tree. If p does not hold for the measure of t,
// the left tree is t and the right tree is empty.
//
// p has to be monotone. For non-monotone predicates, the split position is
// unspecified, but both trees are valid and together hold all elements of t.
func (t Tree[E, V]) Split(p func(V) bool) (Tree[E, V], Tree[E, V]) {
	t.check()
	if t.root.isEmpty() || !p(t.root.measure()) {
		return t, t.with(newEmpty(t.m))
	}
	l, x, r := splitTree(t.root, p, t.m.zero())
	tracer().Debugf("split at %v", x)
	return t.with(l.force()), t.with(r.addFirst(x).force())
}

// TakeUntil returns the left part of Split(p).
func (t Tree[E, V]) TakeUntil(p func(V) bool) Tree[E, V] {
	l, _ := t.Split(p)
	return l
}

// DropUntil returns the right part of Split(p).
func (t Tree[E, V]) DropUntil(p func(V) bool) Tree[E, V] {
	_, r := t.Split(p)
	return r
}

// Lookup returns the element at which a monotone predicate p first holds,
// i.e. the first element of DropUntil(p), without building any trees.
// If p does not hold for the measure of t, Lookup returns Nothing.
func (t Tree[E, V]) Lookup(p func(V) bool) maybe.Maybe[E] {
	if x, _, ok := t.Find(p); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[E]()
}

// Find is like Lookup, but additionally returns the accumulated measure of
// all elements preceding the one found.
func (t Tree[E, V]) Find(p func(V) bool) (E, V, bool) {
	t.check()
	if t.root.isEmpty() || !p(t.root.measure()) {
		var none E
		return none, t.m.zero(), false
	}
	x, acc := lookupTree(t.root, p, t.m.zero())
	return x.(E), acc, true
}

// Identity returns the identity of the measurer of t.
func (t Tree[E, V]) Identity() V {
	t.check()
	return t.m.zero()
}

// Sum combines two measures with the measurer of t.
func (t Tree[E, V]) Sum(a, b V) V {
	t.check()
	return t.m.add(a, b)
}
