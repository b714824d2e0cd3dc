// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order and fails fast with the constructor's sentinel.
//   - Constructors live in impl_*.go, one shape per file.
//   - The New* functions wrap a single constructor with the empty-model
//     policy: too few IDs yields an empty graph and a warning, never an error.
//   - Determinism: same inputs, options and seed give identical graphs.

package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topolab/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters before touching g,
// return sentinel errors (never panic) and emit nodes and links in a stable
// order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts and applies all constructors in order. Any constructor error is
// wrapped as "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// NewStar builds a star over ids (first ID is the hub).
// Fewer than 2 IDs yields an empty model.
func NewStar(ids []string, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeStar, newBuilderConfig(opts...), Star(ids))
}

// NewRing builds a ring over ids. Fewer than 3 IDs yields an empty model.
func NewRing(ids []string, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeRing, newBuilderConfig(opts...), Ring(ids))
}

// NewFullMesh links every pair of ids.
func NewFullMesh(ids []string, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeMesh, newBuilderConfig(opts...), FullMesh(ids))
}

// NewPartialMesh builds a randomised partial mesh over ids. Without WithSeed
// or WithRand a time-seeded source is used, so the result is not reproducible.
func NewPartialMesh(ids []string, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapePartialMesh, withTimeSeed(newBuilderConfig(opts...)), PartialMesh(ids))
}

// NewTree builds a breadth-first tree over ids with the given fan-out.
// branching < 1 yields an empty model.
func NewTree(ids []string, branching int, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeTree, newBuilderConfig(opts...), Tree(ids, branching))
}

// NewBus chains ids in order. Fewer than 2 IDs yields an empty model.
func NewBus(ids []string, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeBus, newBuilderConfig(opts...), Bus(ids))
}

// NewSpineLeaf builds a two-tier fabric of spines × leaves with HostsPerLeaf
// servers per leaf. Negative counts yield an empty model.
func NewSpineLeaf(spines, leaves int, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeSpineLeaf, newBuilderConfig(opts...), SpineLeaf(spines, leaves))
}

// NewHybrid builds one sub-topology per group and interconnects them.
func NewHybrid(groups map[string][]string, opts ...BuilderOption) *core.Graph {
	return buildOrEmpty(ShapeHybrid, newBuilderConfig(opts...), Hybrid(groups))
}

// buildOrEmpty runs one constructor and applies the empty-model policy: any
// construction error is logged at Warn and an empty graph is returned.
func buildOrEmpty(shape Shape, cfg builderConfig, con Constructor) *core.Graph {
	g := core.NewGraph()
	if err := con(g, cfg); err != nil {
		cfg.log.WithFields(logrus.Fields{
			"shape": shape.String(),
			"error": err.Error(),
		}).Warn("topology not built, returning empty model")
		return core.NewGraph()
	}

	cfg.log.WithFields(logrus.Fields{
		"shape": shape.String(),
		"nodes": g.NodeCount(),
		"edges": g.EdgeCount(),
	}).Info("topology built")

	return g
}

// withTimeSeed installs a time-seeded RNG when none was configured.
func withTimeSeed(cfg builderConfig) builderConfig {
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}
