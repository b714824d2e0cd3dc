// Package metrics computes structural metrics of a topology model.
//
// Compute(g) returns a Snapshot with node/link counts, density,
// connectivity, component count, diameter, average path length, average
// clustering coefficient, degree statistics, the most connected node, and
// the articulation points and bridges of a connected model.
//
// Everything is computed from first principles on core.Graph: hop distances
// by breadth-first search (package bfs), articulation points and bridges by
// Tarjan's discovery/low-link walk (package dfs), clustering by the local
// formula links-among-neighbors / possible-links.
//
// Compute never fails. A disconnected model reports Diameter == Infinite
// and no articulation points, by convention.
package metrics
