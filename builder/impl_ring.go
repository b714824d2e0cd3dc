// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_ring.go - implementation of Ring(ids) constructor.
//
// Contract:
//   - len(ids) ≥ 3 (else ErrTooFewNodes).
//   - Every node gets device_type=router.
//   - Links ids[i]–ids[(i+1) mod n] for i = 0..n-1, 1000 Mbps serial.
//   - Exactly n links, every node has degree 2 (for distinct IDs).
//
// Complexity:
//   - Time: O(n) nodes + O(n) links. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/topolab/core"
)

// Ring returns a Constructor that closes ids into a single cycle.
func Ring(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireNodes(MethodRing, ids, MinRingNodes); err != nil {
			return err
		}
		if err := addNodes(g, MethodRing, ids, core.NodeAttrs{DeviceType: DeviceRouter}); err != nil {
			return err
		}

		attrs := linkAttrs(Bandwidth1G, MTUStandard, LinkSerial)
		n := len(ids)
		for i := 0; i < n; i++ {
			if err := addLink(g, MethodRing, ids[i], ids[(i+1)%n], attrs); err != nil {
				return err
			}
		}

		return nil
	}
}
