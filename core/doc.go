// Package core provides the attributed, undirected topology graph that every
// other topolab package operates on.
//
// The Graph G = (V,E) models a network:
//
//   - Nodes are devices identified by a unique string ID and carry optional
//     NodeAttrs (device type, role, tier, tree level).
//   - Edges are links between two distinct, existing nodes and carry LinkAttrs
//     (bandwidth in Mbps, MTU in bytes, up/down state, link type, interfaces).
//   - At most one edge exists per unordered pair; adding an edge between an
//     already-connected pair overwrites its attributes.
//   - Self-loops are rejected.
//
// Storage follows a nested adjacency index:
//
//	adjacency[a][b] = edgeID   (mirrored: adjacency[b][a] = edgeID)
//
// so membership, insertion and removal of a link are O(1).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, attrs NodeAttrs) error  // O(1), merges attrs when present
//	HasNode(id string) bool                    // O(1)
//	Node(id string) (NodeAttrs, bool)          // O(1), copy
//	RemoveNode(id string) error                // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(a, b string, attrs LinkAttrs) error // O(1), ErrUnknownNode on missing endpoint
//	Edge(a, b string) (LinkAttrs, bool)         // O(1), symmetric, copy
//	SetLinkUp(a, b string, up bool) error       // O(1)
//	RemoveEdge(a, b string) error               // O(1)
//
//	// Query
//	Neighbors(id string) ([]string, error) // O(d·log d), sorted
//	Degree(id string) (int, error)         // O(1)
//	Nodes() []string                       // O(V·log V), insertion order
//	Edges() []Edge                         // O(E·log E), insertion order
//	NodeCount(), EdgeCount() int           // O(1)
//
//	// Copies
//	Clone() *Graph                // O(V+E) deep copy
//	OperationalView() *Graph      // O(V+E) clone without down links
//	Union(other *Graph) error     // O(V'+E') merge of another model
//
// Every attribute value handed out by the Graph is a copy; callers cannot reach
// internal state through a returned value.
//
// Concurrency: muVert guards the node catalog, muEdgeAdj guards edges and the
// adjacency index. Readers never block each other. Lock order is always
// muVert -> muEdgeAdj. Concurrent mutation of one Graph is safe but callers
// that need a consistent multi-step edit must serialize it themselves.
package core
