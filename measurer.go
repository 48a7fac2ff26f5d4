package fingertree

import "cmp"

// Measurer annotates a finger tree with values of a monoid. For all values
// a, b, c of V, Sum has to be associative and Identity has to be neutral:
//
//	Sum(Sum(a, b), c) == Sum(a, Sum(b, c))
//	Sum(Identity(), a) == a == Sum(a, Identity())
//
// This is not checked at runtime. Trees built with a measurer violating
// these laws will report measures which depend on the tree's shape.
type Measurer[E, V any] interface {
	Identity() V
	Measure(E) V
	Sum(V, V) V
}

// MeasureFuncs adapts three plain functions to the Measurer interface.
type MeasureFuncs[E, V any] struct {
	Zero func() V
	Of   func(E) V
	Plus func(V, V) V
}

func (m MeasureFuncs[E, V]) Identity() V   { return m.Zero() }
func (m MeasureFuncs[E, V]) Measure(e E) V { return m.Of(e) }
func (m MeasureFuncs[E, V]) Sum(a, b V) V  { return m.Plus(a, b) }

var _ Measurer[string, int] = MeasureFuncs[string, int]{}

// Count is the default measurer. It measures every element as 1, so the
// measure of a tree is the number of its elements.
func Count[E any]() Measurer[E, int] {
	return MeasureFuncs[E, int]{
		Zero: Const(0),
		Of:   Const1[E](1),
		Plus: plus[int],
	}
}

// Number is the set of types Sum can add up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum measures a numeric element by its value; a tree's measure is the
// sum of its elements.
func Sum[N Number]() Measurer[N, N] {
	return MeasureFuncs[N, N]{
		Zero: Const(N(0)),
		Of:   identity[N],
		Plus: plus[N],
	}
}

// Max measures a tree by its largest element. lowest must be a value not
// greater than any element, e.g. math.Inf(-1) for float64.
func Max[E cmp.Ordered](lowest E) Measurer[E, E] {
	return MeasureFuncs[E, E]{
		Zero: Const(lowest),
		Of:   identity[E],
		Plus: func(a, b E) E { return max(a, b) },
	}
}

// Min measures a tree by its smallest element. highest must be a value not
// less than any element.
func Min[E cmp.Ordered](highest E) Measurer[E, E] {
	return MeasureFuncs[E, E]{
		Zero: Const(highest),
		Of:   identity[E],
		Plus: func(a, b E) E { return min(a, b) },
	}
}

// MeasureBy projects elements to keys and measures the keys with m.
//
//	byLen := fingertree.MeasureBy(func(s string) int { return len(s) }, fingertree.Sum[int]())
//
// measures a tree of strings by their total length.
func MeasureBy[E, K, V any](key func(E) K, m Measurer[K, V]) Measurer[E, V] {
	return MeasureFuncs[E, V]{
		Zero: m.Identity,
		Of:   Compose(key, m.Measure),
		Plus: m.Sum,
	}
}

// --- Function helpers ------------------------------------------------------

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Const1 returns a function that ignores its argument and produces a.
func Const1[S, T any](a T) func(S) T {
	return func(S) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

func identity[T any](x T) T {
	return x
}

func plus[N Number](a, b N) N {
	return a + b
}

// --- Measurement per nesting level -----------------------------------------

// monoid is the measurer a finger tree uses internally at one level of
// nesting. Payloads at level 0 are the client's elements; payloads of deeper
// levels are nodes, measured by their cached value. All levels below the top
// share a single monoid.
type monoid[V any] struct {
	zero  func() V
	add   func(V, V) V
	of    func(any) V
	inner *monoid[V]
}

func newMonoid[E, V any](m Measurer[E, V]) *monoid[V] {
	top := &monoid[V]{
		zero: m.Identity,
		add:  m.Sum,
		of: func(x any) V {
			return m.Measure(x.(E))
		},
	}
	nodes := &monoid[V]{
		zero: m.Identity,
		add:  m.Sum,
	}
	nodes.of = func(x any) V {
		n, ok := x.(*node[V])
		assertThat(ok, ErrInvariant, "payload of a middle tree is not a node: %T", x)
		return n.measure
	}
	nodes.inner = nodes
	top.inner = nodes
	return top
}

// fold sums up the measures of items, seeded with the identity.
func (m *monoid[V]) fold(items []any) V {
	v := m.zero()
	for _, x := range items {
		v = m.add(v, m.of(x))
	}
	return v
}
