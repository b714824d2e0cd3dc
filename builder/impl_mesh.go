// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_mesh.go - implementation of FullMesh(ids) and PartialMesh(ids).
//
// FullMesh contract:
//   - Any len(ids); every node gets device_type=router.
//   - Links every unordered pair {i<j}, 1000 Mbps ethernet: n(n-1)/2 links.
//
// PartialMesh contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - For each node in input order, sample k = min(3, n-1) distinct peers
//     without replacement and link to each peer not already linked.
//     Link speed is drawn uniformly from {100, 1000, 10000} Mbps.
//   - Deterministic for a fixed seed: the draw order is fixed.
//
// Complexity:
//   - FullMesh: O(n²) links.
//   - PartialMesh: O(n²) for candidate lists, O(n) links. Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/topolab/core"
)

// FullMesh returns a Constructor that links every pair of ids.
func FullMesh(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addNodes(g, MethodFullMesh, ids, core.NodeAttrs{DeviceType: DeviceRouter}); err != nil {
			return err
		}

		attrs := linkAttrs(Bandwidth1G, MTUStandard, LinkEthernet)
		var i, j int
		for i = 0; i < len(ids); i++ {
			for j = i + 1; j < len(ids); j++ {
				if err := addLink(g, MethodFullMesh, ids[i], ids[j], attrs); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// PartialMesh returns a Constructor that links each node to up to
// PartialMeshFanout randomly chosen peers.
func PartialMesh(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodPartialMesh, ErrNeedRandSource)
		}
		if err := addNodes(g, MethodPartialMesh, ids, core.NodeAttrs{DeviceType: DeviceRouter}); err != nil {
			return err
		}

		n := len(ids)
		k := PartialMeshFanout
		if n-1 < k {
			k = n - 1
		}
		if k <= 0 {
			return nil
		}

		rng := cfg.rng
		peers := make([]string, 0, n-1)
		for _, id := range ids {
			// Candidates in input order, then a partial Fisher-Yates over the first k slots.
			peers = peers[:0]
			for _, other := range ids {
				if other != id {
					peers = append(peers, other)
				}
			}
			for s := 0; s < k && s < len(peers); s++ {
				r := s + rng.Intn(len(peers)-s)
				peers[s], peers[r] = peers[r], peers[s]
			}

			for s := 0; s < k && s < len(peers); s++ {
				if g.HasEdge(id, peers[s]) {
					continue
				}
				bw := partialMeshBandwidths[rng.Intn(len(partialMeshBandwidths))]
				if err := addLink(g, MethodPartialMesh, id, peers[s], linkAttrs(bw, MTUStandard, LinkEthernet)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
