// SPDX-License-Identifier: MIT
//
// File: compute.go
// Role: Compute derives a Snapshot from a core.Graph.
//
// Determinism:
//   - Node iteration follows g.Nodes() (insertion order); ties in
//     MostConnected resolve to the earliest node.
// Complexity:
//   - O(V·(V + E)) for the all-pairs BFS behind the diameter and
//     average path length, O(Σ d²) for clustering.

package metrics

import (
	"github.com/katalvlaran/topolab/bfs"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/dfs"
)

// Compute derives the metrics snapshot of g. It never fails: a nil or empty
// model yields the zero snapshot with an Infinite diameter.
func Compute(g *core.Graph) Snapshot {
	s := Snapshot{Diameter: Infinite, ArticulationPoints: []string{}, Bridges: [][2]string{}}
	if g == nil {
		return s
	}

	nodes := g.Nodes()
	adj := g.AdjacencyList()
	s.NodeCount = len(nodes)
	s.EdgeCount = g.EdgeCount()
	s.Density = Density(s.NodeCount, s.EdgeCount)
	s.Components = len(bfs.Components(g))
	s.IsConnected = s.NodeCount > 0 && s.Components == 1

	degreeStats(&s, nodes, adj)
	s.AverageClustering = AverageClustering(nodes, adj)

	if !s.IsConnected {
		return s
	}

	s.Diameter, s.AveragePathLength = distances(g, nodes)
	if res, err := dfs.Articulation(g); err == nil {
		s.ArticulationPoints = res.Points
		s.Bridges = res.Bridges
	}

	return s
}

// Density returns 2e / (n(n-1)) for n ≥ 2, else 0.
func Density(n, e int) float64 {
	if n < 2 {
		return 0
	}
	return 2 * float64(e) / (float64(n) * float64(n-1))
}

// degreeStats fills the average/min/max degree and the most connected node.
func degreeStats(s *Snapshot, nodes []string, adj map[string][]string) {
	if len(nodes) == 0 {
		return
	}
	sum := 0
	s.MinDegree = len(adj[nodes[0]])
	s.MostConnected = Hub{ID: nodes[0], Degree: len(adj[nodes[0]])}
	for _, id := range nodes {
		d := len(adj[id])
		sum += d
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MostConnected.Degree {
			s.MostConnected = Hub{ID: id, Degree: d}
		}
	}
	s.MaxDegree = s.MostConnected.Degree
	s.AvgDegree = float64(sum) / float64(len(nodes))
}

// LocalClustering returns the fraction of id's neighbor pairs that are
// themselves linked; 0 when id has fewer than two neighbors.
func LocalClustering(id string, adj map[string][]string) float64 {
	nbrs := adj[id]
	k := len(nbrs)
	if k < 2 {
		return 0
	}

	set := make(map[string]struct{}, k)
	for _, n := range nbrs {
		set[n] = struct{}{}
	}
	links := 0
	for _, n := range nbrs {
		for _, m := range adj[n] {
			if _, ok := set[m]; ok {
				links++
			}
		}
	}
	// Each neighbor-neighbor link was counted from both ends.
	links /= 2

	return float64(links) / (float64(k) * float64(k-1) / 2)
}

// AverageClustering is the mean LocalClustering over nodes; 0 for none.
func AverageClustering(nodes []string, adj map[string][]string) float64 {
	if len(nodes) == 0 {
		return 0
	}
	total := 0.0
	for _, id := range nodes {
		total += LocalClustering(id, adj)
	}
	return total / float64(len(nodes))
}

// distances runs one BFS per node and returns the diameter and the mean
// hop distance over all ordered pairs of distinct nodes. The caller
// guarantees g is connected.
func distances(g *core.Graph, nodes []string) (Diameter, float64) {
	n := len(nodes)
	if n < 2 {
		return 0, 0
	}

	maxHop, sum := 0, 0
	for _, id := range nodes {
		res, err := bfs.BFS(g, id)
		if err != nil {
			return Infinite, 0
		}
		for _, d := range res.Depth {
			sum += d
			if d > maxHop {
				maxHop = d
			}
		}
	}

	return Diameter(maxHop), float64(sum) / float64(n*(n-1))
}
