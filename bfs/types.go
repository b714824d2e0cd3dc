// Package bfs provides tunable options, the traversal result and error
// definitions for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a traversal. Invalid values are recorded and surfaced
// as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds the resolved traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// OnVisit runs for every visited node; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops exploring beyond that hop count; 0 means unlimited.
	MaxDepth int

	// SkipLink returns true for links that must not be followed (e.g. down links).
	SkipLink func(from, to string) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no skipped
// links and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) error { return nil },
		SkipLink: func(string, string) bool { return false },
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops. d < 0 is an option violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSkipLink ignores every link for which fn returns true. nil is ignored.
func WithSkipLink(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.SkipLink = fn
		}
	}
}

// Result is the outcome of one traversal.
//   - Order: nodes in visit sequence.
//   - Depth: hop count from the start for every reached node.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// MaxDepth returns the largest hop count recorded, i.e. the eccentricity of
// the start within its component.
func (r *Result) MaxDepth() int {
	max := 0
	for _, d := range r.Depth {
		if d > max {
			max = d
		}
	}
	return max
}

// PathTo reconstructs the hop-shortest path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
