// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() returns unique IDs sorted lex asc.
//   - AdjacencyList() keys are node IDs; values sorted lex asc and independent of graph storage.

package core

import "sort"

// Neighbors returns the IDs adjacent to id, sorted lexicographically ascending.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	// Same lock order as mutators so a node cannot vanish between the two checks.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a fresh map node ID → sorted neighbor IDs.
// Isolated nodes map to an empty, non-nil slice.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for id := range g.nodes {
		nbrs := make([]string, 0, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			nbrs = append(nbrs, nbr)
		}
		sort.Strings(nbrs)
		out[id] = nbrs
	}

	return out
}
