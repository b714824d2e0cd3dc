// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs
//     (nil RNG, nil logger, branching < 1). Generators never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// BuilderOption customizes a build by mutating a builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for PartialMesh.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock partial-mesh outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes build logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.log = l
	}
}

// WithBranchingFactor sets the Tree fan-out used by Build and Quick.
// Panics when k < 1.
func WithBranchingFactor(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithBranchingFactor(k < 1)")
	}
	return func(c *builderConfig) {
		c.branching = k
	}
}

// WithIDScheme sets the generator of node IDs for count-based builds.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}
