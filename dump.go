package fingertree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Shape is a structural projection of a finger tree, for debugging and
// testing. Type is one of "empty", "single", "deep", "digit" or "node".
// Payloads in Value and Items are either elements of the tree or, below
// the top level, *Shape values of type "node".
type Shape[V any] struct {
	Type    string    `json:"type"`
	Value   any       `json:"value,omitempty"`
	Left    *Shape[V] `json:"left,omitempty"`
	Middle  *Shape[V] `json:"middle,omitempty"`
	Right   *Shape[V] `json:"right,omitempty"`
	Items   []any     `json:"items,omitempty"`
	Measure V         `json:"measure"`
}

// Dump returns the structural projection of t. Dump evaluates all
// suspended parts of the tree.
func (t Tree[E, V]) Dump() *Shape[V] {
	t.check()
	return dumpTree(t.root, 0)
}

func dumpTree[V any](t fingerTree[V], depth int) *Shape[V] {
	switch t := t.force().(type) {
	case *empty[V]:
		return &Shape[V]{Type: "empty", Measure: t.measure()}
	case *single[V]:
		return &Shape[V]{Type: "single", Value: dumpPayload[V](t.value, depth), Measure: t.measure()}
	case *deep[V]:
		return &Shape[V]{
			Type:    "deep",
			Left:    dumpItems("digit", t.left.items, t.left.measure, depth),
			Middle:  dumpTree(t.mid, depth+1),
			Right:   dumpItems("digit", t.right.items, t.right.measure, depth),
			Measure: t.measure(),
		}
	}
	panic(ErrInvariant)
}

func dumpItems[V any](typ string, items []any, measure V, depth int) *Shape[V] {
	s := &Shape[V]{Type: typ, Items: make([]any, len(items)), Measure: measure}
	for i, x := range items {
		s.Items[i] = dumpPayload[V](x, depth)
	}
	return s
}

func dumpPayload[V any](x any, depth int) any {
	if depth == 0 {
		return x
	}
	n, ok := x.(*node[V])
	assertThat(ok, ErrInvariant, "payload at depth %d is not a node: %T", depth, x)
	return dumpItems("node", n.items, n.measure, depth-1)
}

// Depth returns the number of nested deep trees along the spine of s.
func (s *Shape[V]) Depth() int {
	d := 0
	for s != nil && s.Type == "deep" {
		d++
		s = s.Middle
	}
	return d
}

// String renders s as an indented tree.
func (s *Shape[V]) String() string {
	printer := treeprint.New()
	s.print(printer)
	return printer.String()
}

func (s *Shape[V]) print(p treeprint.Tree) {
	label := fmt.Sprintf("%s ‹%v›", s.Type, s.Measure)
	switch s.Type {
	case "deep":
		branch := p.AddBranch(label)
		s.Left.print(branch)
		s.Middle.print(branch)
		s.Right.print(branch)
	case "single":
		if shape, ok := s.Value.(*Shape[V]); ok {
			shape.print(p.AddBranch(label))
		} else {
			p.AddNode(fmt.Sprintf("%s %v", label, s.Value))
		}
	case "digit", "node":
		branch := p.AddBranch(label)
		for _, x := range s.Items {
			if shape, ok := x.(*Shape[V]); ok {
				shape.print(branch)
			} else {
				branch.AddNode(fmt.Sprintf("%v", x))
			}
		}
	default:
		p.AddNode(label)
	}
}
