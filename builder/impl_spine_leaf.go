// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_spine_leaf.go - implementation of SpineLeaf(spines, leaves) constructor.
//
// Contract:
//   - spines ≥ 0 and leaves ≥ 0 (else ErrTooFewNodes).
//   - Spines "spine1".."spineS": role=spine, device_type=switch, tier=spine.
//   - Leaves "leaf1".."leafL": role=leaf, device_type=switch, tier=leaf.
//   - Every spine links to every leaf (complete bipartite fabric),
//     10000 Mbps, MTU 9000, ethernet. Emission order: spine asc, leaf asc.
//   - Each leaf gets HostsPerLeaf servers "<leaf>-host<k>": role=host,
//     device_type=server, tier=access, linked at 1000 Mbps, MTU 1500.
//   - Edge count S·L + HostsPerLeaf·L; spine degree L; leaf degree S+HostsPerLeaf.
//
// Complexity:
//   - Time: O(S·L + L). Space: O(S+L) for the generated ID lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// Spine and leaf ID prefixes.
const (
	SpinePrefix = "spine"
	LeafPrefix  = "leaf"
)

// SpineLeaf returns a Constructor that builds a Clos fabric with attached hosts.
func SpineLeaf(spines, leaves int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if spines < 0 || leaves < 0 {
			return fmt.Errorf("%s: spines=%d leaves=%d must be ≥ 0: %w", MethodSpineLeaf, spines, leaves, ErrTooFewNodes)
		}

		spineIDs := NodeIDs(SpinePrefix, spines)
		leafIDs := NodeIDs(LeafPrefix, leaves)

		if err := addNodes(g, MethodSpineLeaf, spineIDs,
			core.NodeAttrs{Role: RoleSpine, DeviceType: DeviceSwitch, Tier: TierSpine}); err != nil {
			return err
		}
		if err := addNodes(g, MethodSpineLeaf, leafIDs,
			core.NodeAttrs{Role: RoleLeaf, DeviceType: DeviceSwitch, Tier: TierLeaf}); err != nil {
			return err
		}

		fabric := linkAttrs(Bandwidth10G, MTUJumbo, LinkEthernet)
		for _, s := range spineIDs {
			for _, l := range leafIDs {
				if err := addLink(g, MethodSpineLeaf, s, l, fabric); err != nil {
					return err
				}
			}
		}

		host := core.NodeAttrs{Role: RoleHost, DeviceType: DeviceServer, Tier: TierAccess}
		access := linkAttrs(Bandwidth1G, MTUStandard, LinkEthernet)
		for _, l := range leafIDs {
			for k := 1; k <= HostsPerLeaf; k++ {
				h := hostID(l, k)
				if err := addNodes(g, MethodSpineLeaf, []string{h}, host); err != nil {
					return err
				}
				if err := addLink(g, MethodSpineLeaf, l, h, access); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
