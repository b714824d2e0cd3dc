// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// id_fn.go - node ID schemes for count-based builds.
//
// An IDFn maps a zero-based index to a node ID. The default scheme is
// NodeIDFn("node"), which yields "node1","node2",...; SpineLeaf and the
// default hybrid groups use the same one-based convention with their own
// prefixes ("spine1", "leaf2", "dist3").

package builder

import "strconv"

// DefaultNodePrefix is the prefix used by Build and Quick for plain node IDs.
const DefaultNodePrefix = "node"

// IDFn maps an index i ≥ 0 to a node ID.
type IDFn func(i int) string

// NodeIDFn returns the one-based scheme prefix+"1", prefix+"2", ...
func NodeIDFn(prefix string) IDFn {
	return func(i int) string {
		return prefix + strconv.Itoa(i+1)
	}
}

// NodeIDs returns n IDs from the one-based scheme: prefix1..prefixN.
// n ≤ 0 yields an empty slice.
// Complexity: O(n).
func NodeIDs(prefix string, n int) []string {
	return idsFrom(NodeIDFn(prefix), n)
}

// idsFrom materialises n IDs from fn.
func idsFrom(fn IDFn, n int) []string {
	if n <= 0 {
		return []string{}
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fn(i)
	}
	return ids
}

// hostID names the k-th (one-based) host attached to a leaf: "leaf1-host2".
func hostID(leaf string, k int) string {
	return leaf + "-host" + strconv.Itoa(k)
}
