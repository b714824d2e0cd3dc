// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/topolab/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeR1 = "R1"
	NodeR2 = "R2"
	NodeR3 = "R3"
	NodeR4 = "R4"
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NRounds  = 100
)

// triangle builds R1–R2–R3–R1 with default link attributes.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{NodeR1, NodeR2, NodeR3} {
		require.NoError(t, g.AddNode(id, core.NodeAttrs{DeviceType: "router"}))
	}
	require.NoError(t, g.AddEdge(NodeR1, NodeR2, core.DefaultLinkAttrs()))
	require.NoError(t, g.AddEdge(NodeR2, NodeR3, core.DefaultLinkAttrs()))
	require.NoError(t, g.AddEdge(NodeR3, NodeR1, core.DefaultLinkAttrs()))

	return g
}

// requireConsistent asserts every adjacency entry is backed by an edge and vice versa.
func requireConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	entries := 0
	for id, nbrs := range adj {
		require.True(t, g.HasNode(id))
		for _, nbr := range nbrs {
			require.True(t, g.HasNode(nbr), "orphan neighbor %s of %s", nbr, id)
			require.True(t, g.HasEdge(nbr, id), "asymmetric adjacency %s-%s", id, nbr)
			entries++
		}
	}
	require.Equal(t, 2*g.EdgeCount(), entries)
}
