// Package dfs finds articulation points and bridges with Tarjan's
// discovery/low-link algorithm. The walk is iterative, driven by an explicit
// frame stack, so deep buses and chains cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/topolab/core"
)

// Frame phases of the iterative walk.
const (
	phaseInit = iota
	phaseEdges
	phaseAfterChild
	phaseDone
)

// tarjanFrame is one stack frame of the iterative walk.
type tarjanFrame struct {
	id       string
	parent   string
	nbrs     []string
	next     int
	child    string
	children int
	phase    int
}

// ArticulationPoints returns the nodes of g whose removal increases the
// number of connected components, in g.Nodes() order.
func ArticulationPoints(g *core.Graph) ([]string, error) {
	res, err := Articulation(g)
	if err != nil {
		return nil, err
	}
	return res.Points, nil
}

// Bridges returns the links of g whose removal increases the number of
// connected components.
func Bridges(g *core.Graph) ([][2]string, error) {
	res, err := Articulation(g)
	if err != nil {
		return nil, err
	}
	return res.Bridges, nil
}

// Articulation runs Tarjan's algorithm over every component of g.
//
// Steps per DFS tree:
//  1. disc[u] = low[u] = timer on discovery.
//  2. For a visited neighbor v other than the tree parent: low[u] = min(low[u], disc[v]).
//  3. After a child c returns: low[u] = min(low[u], low[c]);
//     a non-root u is a cut node when low[c] ≥ disc[u];
//     u–c is a bridge when low[c] > disc[u].
//  4. A root is a cut node when it has two or more tree children.
func Articulation(g *core.Graph) (*ArticulationResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	var (
		disc  = make(map[string]int, len(nodes))
		low   = make(map[string]int, len(nodes))
		cut   = make(map[string]bool)
		timer = 1
		res   = &ArticulationResult{Points: []string{}, Bridges: [][2]string{}}
	)

	for _, root := range nodes {
		if disc[root] != 0 {
			continue
		}
		res.Components++

		stack := []tarjanFrame{{id: root, phase: phaseInit}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			switch f.phase {
			case phaseInit:
				disc[f.id], low[f.id] = timer, timer
				timer++
				nbrs, err := g.Neighbors(f.id)
				if err != nil {
					return nil, fmt.Errorf("dfs: Articulation: %w", err)
				}
				f.nbrs = nbrs
				f.phase = phaseEdges

			case phaseEdges:
				f.phase = phaseDone
				for f.next < len(f.nbrs) {
					v := f.nbrs[f.next]
					f.next++
					if v == f.parent {
						continue
					}
					if disc[v] == 0 {
						f.child = v
						f.children++
						f.phase = phaseAfterChild
						stack = append(stack, tarjanFrame{id: v, parent: f.id, phase: phaseInit})
						break
					}
					if disc[v] < low[f.id] {
						low[f.id] = disc[v]
					}
				}

			case phaseAfterChild:
				c := f.child
				if low[c] < low[f.id] {
					low[f.id] = low[c]
				}
				if f.parent != "" && low[c] >= disc[f.id] {
					cut[f.id] = true
				}
				if low[c] > disc[f.id] {
					res.Bridges = append(res.Bridges, [2]string{f.id, c})
				}
				f.phase = phaseEdges

			case phaseDone:
				if f.parent == "" && f.children >= 2 {
					cut[f.id] = true
				}
				stack = stack[:len(stack)-1]
			}
		}
	}

	// Bridges are found child-first; report them by the child's discovery time.
	sort.SliceStable(res.Bridges, func(i, j int) bool {
		return disc[res.Bridges[i][1]] < disc[res.Bridges[j][1]]
	})
	for _, id := range nodes {
		if cut[id] {
			res.Points = append(res.Points, id)
		}
	}

	return res, nil
}
