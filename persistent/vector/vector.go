package vector

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/maybe"
	"github.com/npillmayer/fingertree/result"
)

// Vector is an immutable sequence of values of type T with positional access.
// The zero value is an empty vector, ready to use:
//
//	var v vector.Vector[string]
//	v = v.Push("Hello").Push("World")   // v.Get(1) returns "World"
type Vector[T any] struct {
	props
	tree fingertree.Tree[T, int]
}

type props struct {
	label string
}

// Immutable creates an empty vector with options, if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{tree: fingertree.Empty[T]()}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// From creates a vector holding a copy of items.
func From[T any](items []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	v.tree = fingertree.FromSlice(items)
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// Label is an option to name a vector. The label is used for tracing and
// for the string representation of the vector.
//
// Use it like this:
//
//	vec := vector.Immutable[int](Label("line-starts"))
func Label(name string) Option {
	conf := func(p props) props {
		p.label = name
		return p
	}
	return Option{config: conf}
}

func (v Vector[T]) with(tree fingertree.Tree[T, int]) Vector[T] {
	return Vector[T]{props: v.props, tree: tree}
}

// seq returns the underlying tree, replacing the zero tree of a zero vector.
func (v Vector[T]) seq() fingertree.Tree[T, int] {
	if v.tree.IsEmpty() {
		return fingertree.Empty[T]()
	}
	return v.tree
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	if v.tree.IsEmpty() {
		return 0
	}
	return v.tree.Measure()
}

// First returns the first element of v, if any.
func (v Vector[T]) First() maybe.Maybe[T] {
	return v.seq().PeekFirst()
}

// Last returns the last element of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	return v.seq().PeekLast()
}

// Get returns the element at position i. It panics with an error wrapping
// fingertree.ErrIndexOutOfBounds if i is not a valid index.
func (v Vector[T]) Get(i int) T {
	v.checkIndex(i, v.Len())
	x, _ := v.tree.Lookup(after(i)).Get()
	return x
}

// Set returns a copy of v with the element at position i replaced by value.
// It panics with an error wrapping fingertree.ErrIndexOutOfBounds if i is
// not a valid index.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	v.checkIndex(i, v.Len())
	l, r := v.tree.Split(after(i))
	tracer().Debugf("%s: set [%d] = %v", v, i, value)
	return v.with(l.AddLast(value).Concat(r.RemoveFirst()))
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	return v.with(v.seq().AddLast(value))
}

// Prepend returns a copy of v with value inserted at position 0.
func (v Vector[T]) Prepend(value T) Vector[T] {
	return v.with(v.seq().AddFirst(value))
}

// Pop returns a copy of v without its last element. Calling Pop on an empty
// vector panics.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.Len() > 0, fingertree.ErrEmptyTree, "attempt to remove item from empty vector")
	return v.with(v.tree.RemoveLast())
}

// InsertAt returns a copy of v with value inserted at position i, shifting
// subsequent elements to the right. i may equal v.Len(), which appends
// value.
func (v Vector[T]) InsertAt(i int, value T) Vector[T] {
	v.checkIndex(i, v.Len()+1)
	l, r := v.seq().Split(after(i))
	tracer().Debugf("%s: insert %v at %d", v, value, i)
	return v.with(l.AddLast(value).Concat(r))
}

// DeleteAt returns a copy of v with the element at position i removed.
// If i is not a valid index, an error result wrapping
// fingertree.ErrIndexOutOfBounds is returned.
func (v Vector[T]) DeleteAt(i int) result.Result[Vector[T]] {
	if i < 0 || i >= v.Len() {
		return result.Err[Vector[T]](fmt.Errorf("%w: cannot delete %d from vector of length %d",
			fingertree.ErrIndexOutOfBounds, i, v.Len()))
	}
	l, r := v.tree.Split(after(i))
	return result.Ok(v.with(l.Concat(r.RemoveFirst())))
}

// Concat returns a vector holding the elements of v, followed by those of w.
// The resulting vector carries the options of v.
func (v Vector[T]) Concat(w Vector[T]) Vector[T] {
	if w.Len() == 0 {
		return v
	}
	return v.with(v.seq().Concat(w.tree))
}

// Slice returns a vector of the elements v[from:to]. Like slicing, it panics
// if not 0 ≤ from ≤ to ≤ v.Len().
func (v Vector[T]) Slice(from, to int) Vector[T] {
	assertThat(from >= 0 && from <= to && to <= v.Len(), fingertree.ErrIndexOutOfBounds,
		"slice bounds [%d:%d] with length %d", from, to, v.Len())
	tree := v.seq().TakeUntil(after(to)).DropUntil(after(from))
	return v.with(tree)
}

// All returns an iterator over positions and elements of v.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := range v.seq().All() {
			if !yield(i, x) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements of v.
func (v Vector[T]) Values() iter.Seq[T] {
	return v.seq().All()
}

func (v Vector[T]) String() string {
	if v.label != "" {
		return fmt.Sprintf("Vector‹%s›(len=%d)", v.label, v.Len())
	}
	return fmt.Sprintf("Vector(len=%d)", v.Len())
}

// --- Helpers ---------------------------------------------------------------

// after is the split predicate for the element at position i: it holds for
// every prefix of more than i elements.
func after(i int) func(int) bool {
	return func(n int) bool {
		return n > i
	}
}

func (v Vector[T]) checkIndex(i, limit int) {
	assertThat(i >= 0 && i < limit, fingertree.ErrIndexOutOfBounds,
		"vector index out of bounds: %d with length %d", i, v.Len())
}

func assertThat(that bool, err error, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(msg, msgargs...)))
	}
}
