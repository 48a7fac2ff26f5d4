package fingertree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestDumpShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	shape := FromSlice([]int{1, 2, 3}).Dump()
	require.Equal(t, "deep", shape.Type)
	require.Equal(t, 3, shape.Measure)
	require.Equal(t, []any{1, 2}, shape.Left.Items)
	require.Equal(t, 2, shape.Left.Measure)
	require.Equal(t, "empty", shape.Middle.Type)
	require.Equal(t, []any{3}, shape.Right.Items)
	require.Equal(t, 1, shape.Depth())
	//
	single := FromSlice([]string{"x"}).Dump()
	require.Equal(t, "single", single.Type)
	require.Equal(t, "x", single.Value)
	require.Equal(t, 0, single.Depth())
	require.Equal(t, "empty", Empty[int]().Dump().Type)
}

func TestDumpNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	tree := FromSlice(series(100)).RemoveFirst()
	shape := tree.Dump()
	require.Greater(t, shape.Depth(), 1)
	require.Equal(t, 99, shape.Measure)
	node, ok := shape.Middle.Left.Items[0].(*Shape[int])
	require.True(t, ok)
	require.Equal(t, "node", node.Type)
	s := shape.String()
	require.True(t, strings.Contains(s, "deep ‹99›"), "expected dump to show root measure")
	t.Logf("tree of 99 elements:\n%s", s)
}

func TestDumpJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fingertree")
	defer teardown()
	//
	data, err := json.Marshal(FromSlice([]int{1, 2, 3}).Dump())
	require.NoError(t, err)
	js := string(data)
	require.Contains(t, js, `"type":"deep"`)
	require.Contains(t, js, `"items":[1,2]`)
	require.Contains(t, js, `"middle":{"type":"empty","measure":0}`)
	require.Contains(t, js, `"measure":3`)
}
