// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, back-edge reporting and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Node visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit runs when a node is discovered (pre-order). An error aborts.
	OnVisit func(id string) error

	// OnExit runs after a node's descendants are explored (post-order). An error aborts.
	OnExit func(id string) error

	// OnBackEdge runs when the walk at from meets a Gray ancestor to that is
	// not from's tree parent. Every non-tree link of an undirected graph is
	// reported exactly once.
	OnBackEdge func(from, to string)

	// FullTraversal restarts the walk from every unvisited node in
	// g.Nodes() order, covering all components.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, single-source walk.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithOnBackEdge installs the back-edge hook.
func WithOnBackEdge(fn func(from, to string)) Option {
	return func(o *Options) {
		o.OnBackEdge = fn
	}
}

// WithFullTraversal walks every component instead of only the start's.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in finishing sequence (post-order).
	Order []string

	// Depth maps each node to its tree depth from its root.
	Depth map[string]int

	// Parent maps each non-root node to the node that discovered it.
	Parent map[string]string

	// Roots lists the root of every DFS tree, in walk order.
	Roots []string
}

// ArticulationResult groups the single points of failure of a topology.
type ArticulationResult struct {
	// Points are nodes whose removal increases the component count,
	// in g.Nodes() order.
	Points []string

	// Bridges are links whose removal increases the component count,
	// as [parent, child] pairs of the DFS tree in discovery order.
	Bridges [][2]string

	// Components is the number of connected components.
	Components int
}
