// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// profiles.go - shape dispatch (Build), size profiles and the Quick builder.
//
// Build is the single switch over Shape; adding a shape without a case here
// makes Build return the empty model with an ErrUnsupportedShape warning.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/topolab/core"
)

// Profile names.
const (
	ProfileSmall  = "small"
	ProfileMedium = "medium"
	ProfileLarge  = "large"
)

// SizeProfile is a named set of counts used by Quick and the comparison engine.
type SizeProfile struct {
	Name       string `yaml:"-"`
	NodeCount  int    `yaml:"node_count" validate:"gte=0"`
	SpineCount int    `yaml:"spine_count" validate:"gte=0"`
	LeafCount  int    `yaml:"leaf_count" validate:"gte=0"`
}

var builtinProfiles = map[string]SizeProfile{
	ProfileSmall:  {Name: ProfileSmall, NodeCount: 4, SpineCount: 2, LeafCount: 2},
	ProfileMedium: {Name: ProfileMedium, NodeCount: 6, SpineCount: 2, LeafCount: 4},
	ProfileLarge:  {Name: ProfileLarge, NodeCount: 10, SpineCount: 3, LeafCount: 6},
}

// Profiles returns the built-in profiles ordered small, medium, large.
func Profiles() []SizeProfile {
	return []SizeProfile{
		builtinProfiles[ProfileSmall],
		builtinProfiles[ProfileMedium],
		builtinProfiles[ProfileLarge],
	}
}

// ProfileByName looks name up (case-insensitive) among the built-in profiles.
// Unknown names fall back to medium.
func ProfileByName(name string) SizeProfile {
	if p, ok := builtinProfiles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return builtinProfiles[ProfileMedium]
}

// ProfileNames returns the built-in profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for n := range builtinProfiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Params carries the per-shape inputs of Build. Fields a shape does not use
// are ignored.
type Params struct {
	// IDs are explicit node IDs; when empty, NodeCount IDs are generated with
	// the configured IDFn.
	IDs []string
	// NodeCount is used when IDs is empty.
	NodeCount int
	// Spines and Leaves size a spine-leaf fabric.
	Spines int
	Leaves int
	// Branching overrides the configured Tree fan-out when > 0.
	Branching int
	// Groups feeds Hybrid; nil selects DefaultHybridGroups.
	Groups map[string][]string
}

// Build dispatches to the generator for shape and applies the empty-model
// policy. An unsupported shape also yields an empty model.
func Build(shape Shape, p Params, opts ...BuilderOption) *core.Graph {
	cfg := newBuilderConfig(opts...)

	ids := p.IDs
	if len(ids) == 0 {
		ids = idsFrom(cfg.idFn, p.NodeCount)
	}

	var con Constructor
	switch shape {
	case ShapeStar:
		con = Star(ids)
	case ShapeRing:
		con = Ring(ids)
	case ShapeMesh:
		con = FullMesh(ids)
	case ShapePartialMesh:
		cfg = withTimeSeed(cfg)
		con = PartialMesh(ids)
	case ShapeTree:
		k := cfg.branching
		if p.Branching > 0 {
			k = p.Branching
		}
		con = Tree(ids, k)
	case ShapeBus:
		con = Bus(ids)
	case ShapeSpineLeaf:
		con = SpineLeaf(p.Spines, p.Leaves)
	case ShapeHybrid:
		groups := p.Groups
		if groups == nil {
			groups = DefaultHybridGroups()
		}
		con = Hybrid(groups)
	default:
		con = func(*core.Graph, builderConfig) error {
			return fmt.Errorf("Build: %s: %w", shape, ErrUnsupportedShape)
		}
	}

	return buildOrEmpty(shape, cfg, con)
}

// Quick builds shape at the sizes of profile: plain shapes take
// profile.NodeCount generated IDs, spine-leaf takes the spine and leaf
// counts, hybrid uses DefaultHybridGroups. Mesh is built as a partial mesh.
func Quick(shape Shape, profile SizeProfile, opts ...BuilderOption) *core.Graph {
	if shape == ShapeMesh {
		shape = ShapePartialMesh
	}
	return Build(shape, Params{
		NodeCount: profile.NodeCount,
		Spines:    profile.SpineCount,
		Leaves:    profile.LeafCount,
	}, opts...)
}
