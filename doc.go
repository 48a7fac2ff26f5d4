/*
Package fingertree implements persistent finger trees, annotated with
a client-supplied monoid.

A finger tree is a general-purpose sequence with amortized constant-time access
to both of its ends, concatenation in time logarithmic in the size of the
smaller operand, and splitting at the position where a predicate over the
accumulated measure of a prefix flips from false to true. Choosing the
monoid determines what a tree can be used for: counting elements gives
random-access sequences (see sub-package persistent/vector), tracking the
last key gives ordered sequences (see persistent/omap), tracking the maximum
gives priority queues.

The structure follows

	Ralf Hinze and Ross Paterson: “Finger trees: a simple general-purpose data structure”,
	Journal of Functional Programming 16:2 (2006) pp 197-217.

Trees are immutable. Every operation returning a tree leaves its receiver
unchanged; old and new incarnation share all sub-structures not touched
by the operation. Measures of inner nodes are computed on first access
and cached, and parts of a tree created by removals or concatenation are
evaluated lazily. Both caches are written at most once and are guarded,
making trees safe for concurrent readers.

Usage

	t := fingertree.FromSlice([]int{1, 2, 3})           // counts elements
	t = t.AddLast(4).Concat(fingertree.FromSlice([]int{5, 6}))
	n := t.Measure()                                     // 6
	l, r := t.Split(func(n int) bool { return n > 2 })  // [1 2] and [3 4 5 6]

Predicates handed to Split and its relatives have to be monotone: once
true for some prefix measure, they have to stay true for every longer prefix.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingertree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("fingertree")
}
