package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/bfs"
	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/dfs"
)

func TestCycleBasis_Ring(t *testing.T) {
	g := builder.NewRing([]string{"A", "B", "C", "D"})
	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}}, cycles)
}

func TestCycleBasis_TreeHasNone(t *testing.T) {
	g := builder.NewTree(builder.NodeIDs("t", 10), 2)
	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestCycleBasis_SizeMatchesCyclomaticNumber(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
	}{
		{"mesh5", builder.NewFullMesh(builder.NodeIDs("m", 5))},
		{"spineleaf", builder.NewSpineLeaf(2, 3)},
		{"hybrid", builder.NewHybrid(builder.DefaultHybridGroups())},
	}
	for _, tc := range cases {
		cycles, err := dfs.CycleBasis(tc.g)
		require.NoError(t, err, tc.name)
		want := tc.g.EdgeCount() - tc.g.NodeCount() + len(bfs.Components(tc.g))
		assert.Len(t, cycles, want, tc.name)
	}
}

func TestCycleEdges_ExcludesBridges(t *testing.T) {
	// Triangle A-B-C with a tail C-D.
	g := linked(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}, [2]string{"C", "D"})
	set, err := dfs.CycleEdges(g)
	require.NoError(t, err)

	assert.Len(t, set, 3)
	assert.True(t, set.Has("B", "A"))
	assert.True(t, set.Has("A", "C"))
	assert.False(t, set.Has("C", "D"))

	bridges, _ := dfs.Bridges(g)
	assert.Equal(t, [][2]string{{"C", "D"}}, bridges)
}

func TestEdgeKey(t *testing.T) {
	assert.Equal(t, [2]string{"a", "b"}, dfs.EdgeKey("b", "a"))
	assert.Equal(t, dfs.EdgeKey("x", "y"), dfs.EdgeKey("y", "x"))
}
