package fingertree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree signals an attempt to remove an element from an empty tree.
	ErrEmptyTree = errors.New("fingertree: tree is empty")
	// ErrNoMeasurer signals the use of a tree which has not been created
	// with a measurer, e.g. the zero value of Tree.
	ErrNoMeasurer = errors.New("fingertree: tree has no measurer")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("fingertree: index out of bounds")
	// ErrInvariant signals a violated structural invariant, i.e. an internal bug.
	ErrInvariant = errors.New("fingertree: structural invariant violated")
)

// assertThat panics with an error wrapping err if that is false.
func assertThat(that bool, err error, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(msg, msgargs...)))
	}
}
