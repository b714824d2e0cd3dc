// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_bus.go - implementation of Bus(ids) constructor.
//
// Contract:
//   - len(ids) ≥ 2 (else ErrTooFewNodes).
//   - Every node gets device_type=workstation.
//   - Links ids[i]–ids[i+1] for i = 0..n-2, 100 Mbps coax.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) links. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/topolab/core"
)

// Bus returns a Constructor that chains ids in order.
func Bus(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireNodes(MethodBus, ids, MinBusNodes); err != nil {
			return err
		}
		if err := addNodes(g, MethodBus, ids, core.NodeAttrs{DeviceType: DeviceWorkstation}); err != nil {
			return err
		}

		attrs := linkAttrs(Bandwidth100M, MTUStandard, LinkCoax)
		for i := 0; i+1 < len(ids); i++ {
			if err := addLink(g, MethodBus, ids[i], ids[i+1], attrs); err != nil {
				return err
			}
		}

		return nil
	}
}
