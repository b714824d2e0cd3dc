// File: methods_edges.go
// Role: Link lifecycle & queries: AddEdge/RemoveEdge/SetLinkUp/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns links in insertion order.
//   - Edge IDs are monotonic and stable ("e" + decimal).
// Concurrency:
//   - Endpoint validation under muVert read lock, mutation under muEdgeAdj write lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = "e"

// AddEdge links a and b with the given attributes.
//
// Steps:
//  1. Reject empty IDs and self-loops.
//  2. Both endpoints must already exist (ErrUnknownNode otherwise, no mutation).
//  3. If the pair is already linked, overwrite the attributes in place.
//  4. Otherwise allocate an edge ID and index it in both adjacency buckets.
//
// Zero Bandwidth, MTU and LinkType are filled from DefaultLinkAttrs. Links are up unless Down is set.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, attrs LinkAttrs) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return fmt.Errorf("AddEdge(%s,%s): %w", a, b, ErrSelfLoop)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range [2]string{a, b} {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("AddEdge(%s,%s): %q: %w", a, b, id, ErrUnknownNode)
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	attrs = attrs.normalize().clone()
	if eid, ok := g.adjacency[a][b]; ok {
		g.edges[eid].attrs = attrs
		return nil
	}

	g.nextEdgeSeq++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeSeq, 10)
	g.edges[eid] = &link{id: eid, seq: g.nextEdgeSeq, from: a, to: b, attrs: attrs}
	g.adjacency[a][b] = eid
	g.adjacency[b][a] = eid

	return nil
}

// HasEdge reports whether a and b are linked (symmetric).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edge returns a copy of the attributes of the a–b link; lookup is symmetric.
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (LinkAttrs, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return LinkAttrs{}, false
	}

	return g.edges[eid].attrs.clone(), true
}

// SetLinkUp changes the operational state of the a–b link.
// Errors: ErrLinkNotFound when the pair is not linked.
// Complexity: O(1).
func (g *Graph) SetLinkUp(a, b string, up bool) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return fmt.Errorf("SetLinkUp(%s,%s): %w", a, b, ErrLinkNotFound)
	}
	g.edges[eid].attrs.Down = !up

	return nil
}

// RemoveEdge deletes the a–b link; both endpoints stay in the graph.
// Errors: ErrLinkNotFound when the pair is not linked.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return fmt.Errorf("RemoveEdge(%s,%s): %w", a, b, ErrLinkNotFound)
	}
	delete(g.edges, eid)
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)

	return nil
}

// Edges returns snapshots of all links in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	recs := make([]*link, 0, len(g.edges))
	for _, l := range g.edges {
		recs = append(recs, l)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]Edge, len(recs))
	for i, l := range recs {
		out[i] = Edge{ID: l.id, From: l.from, To: l.to, Attrs: l.attrs.clone()}
	}

	return out
}

// EdgeCount returns the number of links.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
