// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// impl_hybrid.go - implementation of Hybrid(groups) constructor.
//
// Contract:
//   - Each group becomes one sub-topology:
//     core → FullMesh, distribution → Ring, access → Star (first ID is the
//     access switch), any other name → Bus.
//   - A group too small for its shape contributes an empty sub-topology;
//     this is not an error.
//   - Groups are processed core, distribution, access, then the remaining
//     names in lexical order, and merged with core.Graph.Union.
//   - Interconnect, applied after the merge:
//     the first HybridInterconnectCap core IDs link to the first
//     HybridInterconnectCap distribution IDs (10000 Mbps fiber), and every
//     distribution ID links to the first access ID (1000 Mbps ethernet).
//     Endpoints missing from the merged model are added without attributes.
//
// Complexity:
//   - Dominated by the core full mesh: O(|core|²). Space O(total IDs).

package builder

import (
	"errors"
	"sort"

	"github.com/katalvlaran/topolab/core"
)

// Hybrid returns a Constructor that assembles a multi-tier topology from
// named node groups.
func Hybrid(groups map[string][]string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, name := range hybridOrder(groups) {
			sub := core.NewGraph()
			if err := groupConstructor(name, groups[name])(sub, cfg); err != nil {
				if !errors.Is(err, ErrTooFewNodes) {
					return err
				}
				cfg.log.WithField("group", name).Debug("hybrid group too small, skipped")
				continue
			}
			if err := g.Union(sub); err != nil {
				return err
			}
		}

		coreIDs, hasCore := groups[GroupCore]
		distIDs, hasDist := groups[GroupDistribution]
		accessIDs, hasAccess := groups[GroupAccess]

		if hasCore && hasDist {
			fiber := linkAttrs(Bandwidth10G, MTUStandard, LinkFiber)
			for _, c := range capped(coreIDs, HybridInterconnectCap) {
				for _, d := range capped(distIDs, HybridInterconnectCap) {
					if err := ensureLink(g, c, d, fiber); err != nil {
						return err
					}
				}
			}
		}

		if hasDist && hasAccess && len(accessIDs) > 0 {
			uplink := linkAttrs(Bandwidth1G, MTUStandard, LinkEthernet)
			for _, d := range distIDs {
				if err := ensureLink(g, d, accessIDs[0], uplink); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// DefaultHybridGroups returns the three-tier layout used when no groups are
// given: core{core1,core2}, distribution{dist1..dist3},
// access{access1,host1..host3}.
func DefaultHybridGroups() map[string][]string {
	return map[string][]string{
		GroupCore:         NodeIDs("core", 2),
		GroupDistribution: NodeIDs("dist", 3),
		GroupAccess:       append([]string{"access1"}, NodeIDs("host", 3)...),
	}
}

// hybridOrder lists group names: core, distribution, access, then the rest sorted.
func hybridOrder(groups map[string][]string) []string {
	order := make([]string, 0, len(groups))
	var rest []string
	for _, known := range []string{GroupCore, GroupDistribution, GroupAccess} {
		if _, ok := groups[known]; ok {
			order = append(order, known)
		}
	}
	for name := range groups {
		switch name {
		case GroupCore, GroupDistribution, GroupAccess:
		default:
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}

// groupConstructor picks the sub-topology for a group name.
func groupConstructor(name string, ids []string) Constructor {
	switch name {
	case GroupCore:
		return FullMesh(ids)
	case GroupDistribution:
		return Ring(ids)
	case GroupAccess:
		return Star(ids)
	default:
		return Bus(ids)
	}
}

// capped returns at most n leading elements of ids.
func capped(ids []string, n int) []string {
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

// ensureLink adds missing endpoints with empty attributes, then links them.
func ensureLink(g *core.Graph, a, b string, attrs core.LinkAttrs) error {
	for _, id := range []string{a, b} {
		if !g.HasNode(id) {
			if err := addNodes(g, MethodHybrid, []string{id}, core.NodeAttrs{}); err != nil {
				return err
			}
		}
	}
	return addLink(g, MethodHybrid, a, b, attrs)
}
