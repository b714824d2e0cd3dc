// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_star.go - implementation of Star(ids) constructor.
//
// Contract:
//   - len(ids) ≥ 2 (else ErrTooFewNodes).
//   - ids[0] is the hub: role=hub, device_type=switch.
//   - ids[1:] are leaves: role=endpoint, device_type=host.
//   - Spokes hub→leaf in input order, 1000 Mbps ethernet, MTU 1500.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) links. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/topolab/core"
)

// Star returns a Constructor that builds a hub-and-spoke topology.
func Star(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireNodes(MethodStar, ids, MinStarNodes); err != nil {
			return err
		}

		hub := ids[0]
		if err := addNodes(g, MethodStar, ids[:1], core.NodeAttrs{Role: RoleHub, DeviceType: DeviceSwitch}); err != nil {
			return err
		}

		spoke := linkAttrs(Bandwidth1G, MTUStandard, LinkEthernet)
		leaf := core.NodeAttrs{Role: RoleEndpoint, DeviceType: DeviceHost}
		for _, id := range ids[1:] {
			if err := addNodes(g, MethodStar, []string{id}, leaf); err != nil {
				return err
			}
			if err := addLink(g, MethodStar, hub, id, spoke); err != nil {
				return err
			}
		}

		return nil
	}
}
