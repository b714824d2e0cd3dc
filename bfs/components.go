package bfs

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// Components partitions g into connected components.
//
// Components are ordered by their first member in g.Nodes() order, and the
// members of each component keep g.Nodes() order too, so the output is
// stable for a given construction sequence.
//
// Complexity: O(V + E log d).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	nodes := g.Nodes()
	compOf := make(map[string]int, len(nodes))
	count := 0
	for _, id := range nodes {
		if _, done := compOf[id]; done {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			// The node vanished under a concurrent writer; leave it unassigned.
			continue
		}
		for _, member := range res.Order {
			compOf[member] = count
		}
		count++
	}

	out := make([][]string, count)
	for _, id := range nodes {
		if c, ok := compOf[id]; ok {
			out[c] = append(out[c], id)
		}
	}

	return out
}

// IsConnected reports whether every node is reachable from the first one.
// An empty graph is not connected; a single node is.
//
// Complexity: O(V + E log d).
func IsConnected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return false
	}
	res, err := BFS(g, nodes[0])
	if err != nil {
		return false
	}

	return len(res.Order) == len(nodes)
}

// Eccentricity returns the largest hop distance from id to any node it can
// reach. It returns ErrStartNodeNotFound when id is absent.
func Eccentricity(g *core.Graph, id string) (int, error) {
	res, err := BFS(g, id)
	if err != nil {
		return 0, fmt.Errorf("Eccentricity: %w", err)
	}
	return res.MaxDepth(), nil
}
