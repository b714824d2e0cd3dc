package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/dfs"
)

// linked builds a graph from "A-B" pairs in order, adding nodes as needed.
func linked(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		for _, id := range p {
			require.NoError(t, g.AddNode(id, core.NodeAttrs{}))
		}
		require.NoError(t, g.AddEdge(p[0], p[1], core.DefaultLinkAttrs()))
	}
	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartMissing(t *testing.T) {
	_, err := dfs.DFS(core.NewGraph(), "A")
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_OrderDepthParent(t *testing.T) {
	// A-B, A-C, B-D
	g := linked(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 1}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "D": "B", "C": "A"}, res.Parent)
	assert.Equal(t, []string{"A"}, res.Roots)
}

func TestDFS_FullTraversalAndBackEdges(t *testing.T) {
	// triangle X-Y-Z plus a separate P-Q
	g := linked(t, [2]string{"X", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"}, [2]string{"P", "Q"})

	var back [][2]string
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal(), dfs.WithOnBackEdge(func(from, to string) {
		back = append(back, [2]string{from, to})
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "P"}, res.Roots)
	assert.Equal(t, [][2]string{{"Z", "X"}}, back, "one back edge per non-tree link")
}

func TestDFS_HooksAndCancel(t *testing.T) {
	g := linked(t, [2]string{"A", "B"})
	boom := errors.New("boom")

	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, "A", dfs.WithOnExit(func(string) error { return boom }))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArticulation_Star(t *testing.T) {
	g := builder.NewStar([]string{"hub", "a", "b", "c"})
	res, err := dfs.Articulation(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"hub"}, res.Points)
	assert.Len(t, res.Bridges, 3)
	assert.Equal(t, 1, res.Components)
}

func TestArticulation_RingHasNone(t *testing.T) {
	g := builder.NewRing(builder.NodeIDs("r", 6))
	pts, err := dfs.ArticulationPoints(g)
	require.NoError(t, err)
	assert.Empty(t, pts)
	br, err := dfs.Bridges(g)
	require.NoError(t, err)
	assert.Empty(t, br)
}

func TestArticulation_BusAndBowtie(t *testing.T) {
	bus := builder.NewBus([]string{"a", "b", "c", "d"})
	pts, _ := dfs.ArticulationPoints(bus)
	assert.Equal(t, []string{"b", "c"}, pts)
	br, _ := dfs.Bridges(bus)
	assert.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}, br)

	// Two triangles sharing node M: M is the only cut node and there are no bridges.
	bowtie := linked(t,
		[2]string{"A", "B"}, [2]string{"B", "M"}, [2]string{"M", "A"},
		[2]string{"M", "C"}, [2]string{"C", "D"}, [2]string{"D", "M"})
	res, _ := dfs.Articulation(bowtie)
	assert.Equal(t, []string{"M"}, res.Points)
	assert.Empty(t, res.Bridges)
}

func TestArticulation_Disconnected(t *testing.T) {
	g := linked(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"x", "y"})
	res, err := dfs.Articulation(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components)
	assert.Equal(t, []string{"b"}, res.Points)
}

func TestArticulation_DeepChainIsIterative(t *testing.T) {
	g := builder.NewBus(builder.NodeIDs("n", 50000))
	res, err := dfs.Articulation(g)
	require.NoError(t, err)
	assert.Len(t, res.Points, 49998)
}
