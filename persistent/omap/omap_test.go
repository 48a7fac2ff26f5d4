package omap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestFindInEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree.omap")
	defer teardown()
	//
	var m Map[string, int]
	if _, found := m.Find("7"); found {
		t.Error("expected not to find key '7' in empty map")
	}
	if m.Len() != 0 {
		t.Errorf("expected empty map to have length 0, has %d", m.Len())
	}
	require.True(t, m.Min().IsNothing())
	require.True(t, m.WithDeleted("7").Len() == 0)
}

func TestMapWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree.omap")
	defer teardown()
	//
	m := Immutable[int, string]().With(42, "Galaxy")
	value, found := m.Find(42)
	require.True(t, found)
	require.Equal(t, "Galaxy", value)
	//
	m = Map[int, string]{}
	for _, k := range []int{5, 3, 9, 1, 7, 2, 8, 4, 6} {
		m = m.With(k, string(rune('a'+k)))
	}
	require.Equal(t, 9, m.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(m.Keys()))
	require.Equal(t, 1, m.Min().WithDefault(Entry[int, string]{}).Key)
	require.Equal(t, 9, m.Max().WithDefault(Entry[int, string]{}).Key)
}

func TestMapReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree.omap")
	defer teardown()
	//
	m := Immutable[string, int]().With("a", 1).With("b", 2).With("c", 3)
	n := m.With("b", 22)
	require.Equal(t, 3, n.Len())
	v, _ := n.Find("b")
	require.Equal(t, 22, v)
	v, _ = m.Find("b")
	require.Equal(t, 2, v, "original map must be unchanged")
}

func TestMapDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree.omap")
	defer teardown()
	//
	m := Immutable[int, int]()
	for i := 0; i < 100; i += 2 {
		m = m.With(i, i*i)
	}
	n := m.WithDeleted(10).WithDeleted(11).WithDeleted(98).WithDeleted(0)
	require.Equal(t, 50, m.Len())
	require.Equal(t, 47, n.Len())
	_, found := n.Find(10)
	require.False(t, found)
	v, found := n.Find(12)
	require.True(t, found)
	require.Equal(t, 144, v)
	require.Equal(t, 2, n.Min().WithDefault(Entry[int, int]{}).Key)
	require.Equal(t, 96, n.Max().WithDefault(Entry[int, int]{}).Key)
}

func TestMapRangeAndSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree.omap")
	defer teardown()
	//
	m := Immutable[int, bool]()
	for i := 0; i < 50; i += 5 {
		m = m.With(i, true)
	}
	require.Equal(t, []int{10, 15, 20}, slices.Collect(m.Range(10, 25).Keys()))
	require.Equal(t, []int{10, 15, 20}, slices.Collect(m.Range(7, 21).Keys()))
	require.Equal(t, 0, m.Range(21, 21).Len())
	require.Equal(t, 0, m.Range(100, 200).Len())
	l, r := m.Split(23)
	require.Equal(t, []int{0, 5, 10, 15, 20}, slices.Collect(l.Keys()))
	require.Equal(t, []int{25, 30, 35, 40, 45}, slices.Collect(r.Keys()))
	l, r = m.Split(25)
	require.Equal(t, 5, l.Len())
	require.Equal(t, 25, r.Min().WithDefault(Entry[int, bool]{}).Key)
}

func TestMapAgainstBuiltinMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree.omap")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(1234))
	m, model := Immutable[int, int](), map[int]int{}
	for i := 0; i < 3000; i++ {
		k := rnd.Intn(500)
		if rnd.Intn(3) == 0 {
			m = m.WithDeleted(k)
			delete(model, k)
		} else {
			m = m.With(k, i)
			model[k] = i
		}
	}
	require.Equal(t, len(model), m.Len())
	prev := -1
	for k, v := range m.All() {
		require.Greater(t, k, prev)
		require.Equal(t, model[k], v)
		prev = k
	}
	for k, v := range model {
		w, found := m.Find(k)
		require.True(t, found)
		require.Equal(t, v, w)
	}
}
