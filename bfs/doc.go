// Package bfs provides breadth-first search over a core.Graph and the
// reachability queries built on it.
//
// What
//
//   - BFS(g, start, opts...) explores nodes in non-decreasing hop distance and
//     returns a Result with Order, Depth and Parent.
//   - Components(g) partitions the model into connected components.
//   - IsConnected(g) checks that one traversal covers every node.
//   - Eccentricity(g, id) is the deepest level reached from id.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs sorted ascending and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible. Components are
//	ordered by their first member in insertion order.
//
// Complexity (V = nodes, E = links)
//
//   - Time:   O(V + E log d) per traversal (neighbor sort).
//   - Memory: O(V) for the queue and the Depth/Parent maps.
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):   stop beyond d hops (d > 0); 0 is unlimited.
//   - WithSkipLink(fn):  do not follow links for which fn(from,to) is true.
//   - WithOnVisit(fn):   hook per visited node; an error aborts the walk.
//
// Errors
//
//   - ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
