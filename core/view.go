// File: view.go
// Role: Merging one model into another (union).

package core

// Union merges every node and link of other into g.
//
// Behavior:
//   - Nodes present in both graphs have their attributes merged (AddNode policy).
//   - Links present in both graphs take the attributes from other.
//   - Insertion order of new nodes and links follows other's order.
//   - other is only read.
//
// Complexity: O(V' log V' + E' log E') where V', E' are other's sizes.
func (g *Graph) Union(other *Graph) error {
	if other == nil {
		return ErrNilGraph
	}

	for _, id := range other.Nodes() {
		attrs, _ := other.Node(id)
		if err := g.AddNode(id, attrs); err != nil {
			return err
		}
	}
	for _, e := range other.Edges() {
		if err := g.AddEdge(e.From, e.To, e.Attrs); err != nil {
			return err
		}
	}

	return nil
}
