// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_tree.go - implementation of Tree(ids, branching) constructor.
//
// Contract:
//   - len(ids) ≥ 1 (else ErrTooFewNodes); branching ≥ 1 (else ErrTooFewNodes).
//   - ids[0] is the root: role=root, device_type=switch, level=0.
//   - Remaining IDs are taken in input order and assigned breadth-first: each
//     parent of the current frontier receives up to branching children at
//     level+1; those children form the next frontier.
//   - Stops when the ID pool or the frontier is exhausted.
//   - Every link is 1000 Mbps ethernet.
//
// Complexity:
//   - Time: O(n). Space: O(width of the widest level).

package builder

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// Tree returns a Constructor that grows a level-ordered tree.
func Tree(ids []string, branching int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireNodes(MethodTree, ids, MinTreeNodes); err != nil {
			return err
		}
		if branching < 1 {
			return fmt.Errorf("%s: branching=%d < 1: %w", MethodTree, branching, ErrTooFewNodes)
		}

		root := core.NodeAttrs{Role: RoleRoot, DeviceType: DeviceSwitch, Level: 0, HasLevel: true}
		if err := addNodes(g, MethodTree, ids[:1], root); err != nil {
			return err
		}

		attrs := linkAttrs(Bandwidth1G, MTUStandard, LinkEthernet)
		pool := ids[1:]
		frontier := []string{ids[0]}
		for level := 1; len(pool) > 0 && len(frontier) > 0; level++ {
			next := make([]string, 0, len(frontier)*branching)
			branch := core.NodeAttrs{Role: RoleBranch, DeviceType: DeviceSwitch, Level: level, HasLevel: true}
			for _, parent := range frontier {
				for c := 0; c < branching && len(pool) > 0; c++ {
					child := pool[0]
					pool = pool[1:]
					if err := addNodes(g, MethodTree, []string{child}, branch); err != nil {
						return err
					}
					if err := addLink(g, MethodTree, parent, child, attrs); err != nil {
						return err
					}
					next = append(next, child)
				}
			}
			frontier = next
		}

		return nil
	}
}
