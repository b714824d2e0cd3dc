// Package dfs derives a cycle basis of an undirected core.Graph from the
// back edges of a DFS spanning forest: every non-tree link closes exactly
// one fundamental cycle with the tree path between its endpoints.
//
// Complexity:
//
//   - Time:   O(V + E·L) (L = longest fundamental cycle)
//   - Memory: O(V) for the path stack plus the cycles themselves
package dfs

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// CycleBasis returns the fundamental cycles of g. Each cycle lists its nodes
// from the ancestor end of the back edge down the tree path; the closing
// link joins the last node back to the first. The number of cycles is
// E - V + C (C = components). A forest yields nil.
func CycleBasis(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		path   []string
		pos    = make(map[string]int)
		cycles [][]string
	)
	_, err := DFS(g, "",
		WithFullTraversal(),
		WithOnVisit(func(id string) error {
			pos[id] = len(path)
			path = append(path, id)
			return nil
		}),
		WithOnExit(func(id string) error {
			path = path[:len(path)-1]
			delete(pos, id)
			return nil
		}),
		WithOnBackEdge(func(from, to string) {
			start := pos[to]
			cycle := make([]string, len(path)-start)
			copy(cycle, path[start:])
			cycles = append(cycles, cycle)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("dfs: CycleBasis: %w", err)
	}

	return cycles, nil
}

// EdgeSet is a set of undirected links keyed by their ordered endpoint pair.
type EdgeSet map[[2]string]struct{}

// EdgeKey returns the canonical key of the link a–b.
func EdgeKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Has reports whether the link a–b is in the set, in either orientation.
func (s EdgeSet) Has(a, b string) bool {
	_, ok := s[EdgeKey(a, b)]
	return ok
}

// CycleEdges returns every link that lies on some cycle of the basis, i.e.
// every link that is not a bridge.
func CycleEdges(g *core.Graph) (EdgeSet, error) {
	cycles, err := CycleBasis(g)
	if err != nil {
		return nil, err
	}

	set := make(EdgeSet)
	for _, c := range cycles {
		for i := range c {
			set[EdgeKey(c[i], c[(i+1)%len(c)])] = struct{}{}
		}
	}

	return set, nil
}
