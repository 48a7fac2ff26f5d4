package omap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/fingertree/maybe"
)

// Entry is a key/value pair of a map.
type Entry[K cmp.Ordered, T any] struct {
	Key   K
	Value T
}

func (e Entry[K, T]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

// Map is an immutable map with ordered keys. An empty instance is usable as an
// empty map, i.e. this is legal:
//
//	m := omap.Map[int, string]{}.With(1, "one")
//
// returning a map containing a single entry ⟨1⟩ associated with value "one".
type Map[K cmp.Ordered, T any] struct {
	tree fingertree.Tree[Entry[K, T], keys[K]]
}

// keys summarizes a run of entries: the greatest key and the number of entries.
// The zero value is the summary of no entries.
type keys[K cmp.Ordered] struct {
	last  K
	count int
	some  bool
}

// keyMeasurer measures single keys. Entries are sorted, thus the greatest key
// of a run is its last one.
func keyMeasurer[K cmp.Ordered]() fingertree.Measurer[K, keys[K]] {
	return fingertree.MeasureFuncs[K, keys[K]]{
		Zero: fingertree.Const(keys[K]{}),
		Of: func(k K) keys[K] {
			return keys[K]{last: k, count: 1, some: true}
		},
		Plus: func(a, b keys[K]) keys[K] {
			if !b.some {
				return a
			}
			return keys[K]{last: b.last, count: a.count + b.count, some: true}
		},
	}
}

func entryKey[K cmp.Ordered, T any](e Entry[K, T]) K {
	return e.Key
}

// Immutable constructs an empty map.
// Use it like this:
//
//	m := omap.Immutable[int, string]()
//	m = m.With(42, "Galaxy")
//	value, found := m.Find(42)   // returns "Galaxy"
func Immutable[K cmp.Ordered, T any]() Map[K, T] {
	return Map[K, T]{tree: newTree[K, T]()}
}

func newTree[K cmp.Ordered, T any]() fingertree.Tree[Entry[K, T], keys[K]] {
	return fingertree.New(fingertree.MeasureBy(entryKey[K, T], keyMeasurer[K]()))
}

// seq returns the underlying tree, replacing the zero tree of a zero map.
func (m Map[K, T]) seq() fingertree.Tree[Entry[K, T], keys[K]] {
	if m.tree.IsEmpty() {
		return newTree[K, T]()
	}
	return m.tree
}

// atLeast holds for every run of entries reaching key or beyond.
func atLeast[K cmp.Ordered](key K) func(keys[K]) bool {
	return func(s keys[K]) bool {
		return s.some && s.last >= key
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries in m.
func (m Map[K, T]) Len() int {
	if m.tree.IsEmpty() {
		return 0
	}
	return m.tree.Measure().count
}

// Find locates a key in a map, if present, and returns the value associated with the key.
// If key is not found, the zero value for type T will be returned, together with found=false.
func (m Map[K, T]) Find(key K) (value T, found bool) {
	if m.tree.IsEmpty() {
		return
	}
	e, ok := m.tree.Lookup(atLeast(key)).Get()
	if !ok || e.Key != key {
		return
	}
	return e.Value, true
}

// With returns a copy of a map with a new key inserted, which is associated with value.
// If an entry for key is already present in m, the associated value will be replaced
// (in a new incarnation of the map, nevertheless).
func (m Map[K, T]) With(key K, value T) Map[K, T] {
	l, r := m.seq().Split(atLeast(key))
	if e, ok := r.PeekFirst().Get(); ok && e.Key == key {
		tracer().Debugf("replacing value of key %v", key)
		r = r.RemoveFirst()
	}
	return Map[K, T]{tree: l.AddLast(Entry[K, T]{Key: key, Value: value}).Concat(r)}
}

// WithDeleted returns a copy of a map with key deleted, if present, together with its
// associated value. If key is not found, m is returned unchanged.
func (m Map[K, T]) WithDeleted(key K) Map[K, T] {
	if m.tree.IsEmpty() {
		return m
	}
	l, r := m.tree.Split(atLeast(key))
	if e, ok := r.PeekFirst().Get(); !ok || e.Key != key {
		return m
	}
	tracer().Debugf("deleting key %v", key)
	return Map[K, T]{tree: l.Concat(r.RemoveFirst())}
}

// Min returns the entry with the smallest key, if m is not empty.
func (m Map[K, T]) Min() maybe.Maybe[Entry[K, T]] {
	return m.seq().PeekFirst()
}

// Max returns the entry with the greatest key, if m is not empty.
func (m Map[K, T]) Max() maybe.Maybe[Entry[K, T]] {
	return m.seq().PeekLast()
}

// Range returns a map of the entries of m with from ≤ key < to.
func (m Map[K, T]) Range(from, to K) Map[K, T] {
	if from >= to {
		return Map[K, T]{tree: newTree[K, T]()}
	}
	return Map[K, T]{tree: m.seq().DropUntil(atLeast(from)).TakeUntil(atLeast(to))}
}

// Split divides m into the entries with keys less than key and those with keys
// greater than or equal to key.
func (m Map[K, T]) Split(key K) (Map[K, T], Map[K, T]) {
	l, r := m.seq().Split(atLeast(key))
	return Map[K, T]{tree: l}, Map[K, T]{tree: r}
}

// All returns an iterator over the entries of m, in ascending order of keys.
func (m Map[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for e := range m.seq().All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of m, in ascending order.
func (m Map[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.seq().All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}
