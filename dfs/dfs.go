// Package dfs implements depth-first search (single-source and forest) on
// core.Graph with pre-/post-order hooks, back-edge reporting and
// cancellation.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	state map[string]int // White/Gray/Black per node
	res   *Result
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components in g.Nodes() order and startID is ignored; otherwise it starts
// at startID only. Neighbors are explored in ascending ID order.
//
// Complexity: O(V + E log d) time, O(V) memory (recursion stack and maps).
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	nodes := g.Nodes()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(nodes)),
		res: &Result{
			Order:  make([]string, 0, len(nodes)),
			Depth:  make(map[string]int, len(nodes)),
			Parent: make(map[string]string, len(nodes)),
		},
	}

	roots := []string{startID}
	if o.FullTraversal {
		roots = nodes
	}
	for _, r := range roots {
		if w.state[r] != White {
			continue
		}
		w.res.Roots = append(w.res.Roots, r)
		if err := w.traverse(r, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into White neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.state[id] = Gray
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	parent, hasParent := w.res.Parent[id]
	for _, nid := range nbs {
		switch w.state[nid] {
		case White:
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		case Gray:
			if hasParent && nid == parent {
				continue
			}
			if w.opts.OnBackEdge != nil {
				w.opts.OnBackEdge(id, nid)
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.state[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}
