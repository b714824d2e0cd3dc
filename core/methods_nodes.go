// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order (stable across clones).
//
// Concurrency:
//   - Node catalog protected by muVert.
//   - Adjacency bootstrap and teardown under muEdgeAdj.

package core

import "sort"

// AddNode inserts a node, or merges attrs into an existing one (idempotent).
//
// Merge policy:
//   - Every non-empty string field of attrs overwrites the stored value.
//   - Level overwrites only when attrs.HasLevel is set.
//   - Re-adding never duplicates the node or disturbs its links.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, attrs NodeAttrs) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.attrs = n.attrs.merge(attrs)
		return nil
	}

	g.nextNodeSeq++
	g.nodes[id] = &node{id: id, seq: g.nextNodeSeq, attrs: NodeAttrs{}.merge(attrs)}

	// Bootstrap the adjacency bucket so edge code can rely on its presence.
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether the node exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node's attributes and whether the node exists.
// Complexity: O(1).
func (g *Graph) Node(id string) (NodeAttrs, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return NodeAttrs{}, false
	}

	return n.attrs, true
}

// RemoveNode deletes the node and every link incident to it.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist; nothing is mutated.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	g.muEdgeAdj.Lock()
	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	g.muEdgeAdj.Unlock()

	delete(g.nodes, id)

	return nil
}

// Nodes returns all node IDs in insertion order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	recs := make([]*node, 0, len(g.nodes))
	for _, n := range g.nodes {
		recs = append(recs, n)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]string, len(recs))
	for i, n := range recs {
		out[i] = n.id
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of links incident to id.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
