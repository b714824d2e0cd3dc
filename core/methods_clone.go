// File: methods_clone.go
// Role: Value-semantics copies of a Graph.
// Determinism:
//   - Clones carry insertion sequences and counters, so Nodes()/Edges() order and
//     future edge IDs on the clone continue exactly where the source left off.
// Concurrency:
//   - Read locks on the source for the whole snapshot; the source is never mutated.

package core

// Clone returns a deep copy of the Graph: nodes, attributes, links and adjacency.
// The clone shares no mutable state with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.copyFiltered(func(*link) bool { return true })
}

// OperationalView returns a deep copy of g without the links marked Down.
// All nodes are kept, so a node whose every link is down appears isolated.
//
// Complexity: O(V + E).
func (g *Graph) OperationalView() *Graph {
	return g.copyFiltered(func(l *link) bool { return l.attrs.Up() })
}

// copyFiltered snapshots g under read locks, keeping only links accepted by keep.
func (g *Graph) copyFiltered(keep func(*link) bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.nextNodeSeq = g.nextNodeSeq
	clone.nextEdgeSeq = g.nextEdgeSeq

	var (
		id  string
		n   *node
		eid string
		l   *link
	)
	for id, n = range g.nodes {
		clone.nodes[id] = &node{id: n.id, seq: n.seq, attrs: n.attrs}
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for eid, l = range g.edges {
		if !keep(l) {
			continue
		}
		clone.edges[eid] = &link{id: l.id, seq: l.seq, from: l.from, to: l.to, attrs: l.attrs.clone()}
		clone.adjacency[l.from][l.to] = eid
		clone.adjacency[l.to][l.from] = eid
	}

	return clone
}
