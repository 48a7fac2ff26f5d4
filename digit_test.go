package fingertree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestNodesGrouping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	m := newMonoid(Count[int]())
	expected := map[int][]int{
		2:  {2},
		3:  {3},
		4:  {2, 2},
		5:  {3, 2},
		6:  {3, 3},
		7:  {3, 2, 2},
		8:  {3, 3, 2},
		9:  {3, 3, 3},
		10: {3, 3, 2, 2},
		11: {3, 3, 3, 2},
		12: {3, 3, 3, 3},
	}
	for n, sizes := range expected {
		xs := make([]any, n)
		for i := range xs {
			xs[i] = i
		}
		ns := nodes(m, xs)
		require.Len(t, ns, len(sizes), "grouping %d items", n)
		k := 0
		for i, x := range ns {
			nd := x.(*node[int])
			require.Len(t, nd.items, sizes[i], "grouping %d items", n)
			require.Equal(t, sizes[i], nd.measure)
			for _, y := range nd.items {
				require.Equal(t, k, y, "order of items when grouping %d", n)
				k++
			}
		}
	}
}

func TestNodesRejectsInvalidCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	m := newMonoid(Count[int]())
	for _, n := range []int{0, 1, 13} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrInvariant) {
					t.Errorf("expected nodes(%d items) to panic with ErrInvariant, got %v", n, err)
				}
			}()
			nodes(m, make([]any, n))
		}()
	}
}

func TestDigitSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	m := newMonoid(Count[string]())
	d := newDigit(m, "a", "b", "c", "d")
	require.Equal(t, 4, d.measure)
	l, x, r := d.split(m, func(n int) bool { return n > 1 }, 0)
	require.Equal(t, []any{"a"}, l)
	require.Equal(t, "b", x)
	require.Equal(t, []any{"c", "d"}, r)
	// accumulated measure is taken into account
	l, x, r = d.split(m, func(n int) bool { return n > 11 }, 10)
	require.Equal(t, []any{"a"}, l)
	require.Equal(t, "b", x)
	require.Len(t, r, 2)
	// predicate never holds: last item is split point
	l, x, r = d.split(m, func(int) bool { return false }, 0)
	require.Len(t, l, 3)
	require.Equal(t, "d", x)
	require.Empty(t, r)
	// single item is split point without consulting the predicate
	one := newDigit(m, "z")
	l, x, r = one.split(m, func(int) bool {
		t.Error("predicate must not be called for a digit of one item")
		return false
	}, 0)
	require.Empty(t, l)
	require.Equal(t, "z", x)
	require.Empty(t, r)
}

func TestDigitIsNotModifiedInPlace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	m := newMonoid(Count[int]())
	d := newDigit(m, 1, 2, 3)
	a := d.append(m, 4)
	p := d.prepend(m, 0)
	s := d.removeFirst(m)
	require.Equal(t, []any{1, 2, 3}, d.items)
	require.Equal(t, []any{1, 2, 3, 4}, a.items)
	require.Equal(t, []any{0, 1, 2, 3}, p.items)
	require.Equal(t, []any{2, 3}, s.items)
	require.Equal(t, "[1,2,3]", d.String())
	n := newNode(m, 1, 2)
	require.Equal(t, "node[1,2]", n.String())
	require.Equal(t, "[▪︎,5]", itemsString[int]([]any{n, 5}))
}
