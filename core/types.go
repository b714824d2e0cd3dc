// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, attribute value types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates AddEdge referenced an endpoint that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates an operation referenced a pair of nodes with no link between them.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrSelfLoop indicates an attempt to link a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Placeholders used when an optional attribute is absent.
const (
	UnknownValue = "unknown"
	NotAvailable = "N/A"
)

// Default link attributes.
const (
	DefaultBandwidth = 1000 // Mbps
	DefaultMTU       = 1500 // bytes
	DefaultLinkType  = "ethernet"
)

// NodeAttrs are the optional, generator-assigned attributes of a node.
// The zero value is valid: every field is optional.
type NodeAttrs struct {
	// DeviceType is a free-form category such as switch, router, host or server.
	DeviceType string

	// Role describes the node's position in its topology (hub, endpoint, root, spine, ...).
	Role string

	// Tier is the fabric tier (spine, leaf, access).
	Tier string

	// Level is the depth of the node in a tree topology; meaningful only when HasLevel is set.
	Level int

	// HasLevel reports whether Level carries a value.
	HasLevel bool
}

// DeviceTypeOr returns DeviceType, or def when it is unset.
func (a NodeAttrs) DeviceTypeOr(def string) string {
	if a.DeviceType == "" {
		return def
	}
	return a.DeviceType
}

// RoleOr returns Role, or def when it is unset.
func (a NodeAttrs) RoleOr(def string) string {
	if a.Role == "" {
		return def
	}
	return a.Role
}

// TierOr returns Tier, or def when it is unset.
func (a NodeAttrs) TierOr(def string) string {
	if a.Tier == "" {
		return def
	}
	return a.Tier
}

// merge overlays every set field of in onto a.
func (a NodeAttrs) merge(in NodeAttrs) NodeAttrs {
	if in.DeviceType != "" {
		a.DeviceType = in.DeviceType
	}
	if in.Role != "" {
		a.Role = in.Role
	}
	if in.Tier != "" {
		a.Tier = in.Tier
	}
	if in.HasLevel {
		a.Level = in.Level
		a.HasLevel = true
	}
	return a
}

// LinkAttrs are the attributes of a link.
type LinkAttrs struct {
	// Bandwidth in Mbps; positive.
	Bandwidth int

	// MTU in bytes; positive.
	MTU int

	// Down marks the link out of service. The zero value is an up link.
	Down bool

	// LinkType is a free-form medium name (ethernet, serial, coax, fiber).
	LinkType string

	// Interfaces lists the interface names at each end, when known (e.g. "Gig0/0").
	Interfaces []string
}

// DefaultLinkAttrs returns {1000 Mbps, MTU 1500, up, ethernet}.
func DefaultLinkAttrs() LinkAttrs {
	return LinkAttrs{Bandwidth: DefaultBandwidth, MTU: DefaultMTU, LinkType: DefaultLinkType}
}

// Up reports whether the link is in service.
func (l LinkAttrs) Up() bool { return !l.Down }

// normalize fills zero bandwidth, MTU and link type with defaults.
func (l LinkAttrs) normalize() LinkAttrs {
	if l.Bandwidth <= 0 {
		l.Bandwidth = DefaultBandwidth
	}
	if l.MTU <= 0 {
		l.MTU = DefaultMTU
	}
	if l.LinkType == "" {
		l.LinkType = DefaultLinkType
	}
	return l
}

// clone returns a copy that shares no slice storage with l.
func (l LinkAttrs) clone() LinkAttrs {
	if l.Interfaces != nil {
		l.Interfaces = append([]string(nil), l.Interfaces...)
	}
	return l
}

// Edge is a read-only snapshot of a link as returned by Graph.Edges.
type Edge struct {
	// ID is the stable textual identifier ("e1", "e2", ...).
	ID string

	// From and To are the endpoints in the order the link was first added.
	From string
	To   string

	// Attrs is a private copy of the link attributes.
	Attrs LinkAttrs
}

// Other returns the endpoint opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// node is the internal node record.
type node struct {
	id    string
	seq   uint64 // insertion sequence, drives Nodes() order
	attrs NodeAttrs
}

// link is the internal edge record.
type link struct {
	id    string
	seq   uint64 // insertion sequence, drives Edges() order
	from  string
	to    string
	attrs LinkAttrs
}

// Graph is the in-memory undirected topology model.
//
// muVert protects nodes and nextNodeSeq; muEdgeAdj protects edges, adjacency
// and nextEdgeSeq.
type Graph struct {
	muVert    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextNodeSeq uint64
	nextEdgeSeq uint64

	nodes map[string]*node // node ID → record
	edges map[string]*link // edge ID → record

	// adjacency[a][b] = edge ID, mirrored for b→a.
	adjacency map[string]map[string]string
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*node),
		edges:     make(map[string]*link),
		adjacency: make(map[string]map[string]string),
	}
}
