// Package dfs implements depth-first search and the structural analyses built
// on it for undirected topology models.
//
// What:
//
//   - DFS(g, start, opts...): recursive walk with pre-order (OnVisit),
//     post-order (OnExit) and back-edge (OnBackEdge) hooks, cancellation and
//     forest mode (WithFullTraversal). Visitation uses White/Gray/Black states.
//   - Articulation(g): Tarjan discovery/low-link analysis returning cut
//     nodes, bridges and the component count. ArticulationPoints and Bridges
//     are thin accessors.
//   - CycleBasis(g): fundamental cycles from the DFS forest's back edges.
//   - CycleEdges(g): the set of links lying on any basis cycle, used to
//     highlight redundant paths when rendering.
//
// Why:
//
//   - Articulation points and bridges are the single points of failure of a
//     network; the failure simulator and metrics report them.
//   - A link on a cycle has an alternative path; a link off every cycle is a bridge.
//
// Determinism:
//
//	Roots are taken in g.Nodes() order and neighbors in ascending ID order,
//	so hooks fire, cycles appear and bridges are listed in a reproducible order.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrStartNodeNotFound  start node not in graph (single-source DFS)
//   - context.Canceled      DFS canceled via context
//   - hook errors           propagated from OnVisit or OnExit
package dfs
