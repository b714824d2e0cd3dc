// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng       = nil               (PartialMesh needs WithSeed/WithRand)
//   - log       = discard logger    (no output unless WithLogger)
//   - branching = DefaultBranchingFactor
//   - idFn      = NodeIDFn("node")  ("node1","node2",...)
//
// Options are applied in order; later options override earlier ones.

package builder

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// log receives one line per finished topology and empty-model warnings.
	log logrus.FieldLogger
	// branching is the Tree fan-out used by Build and Quick.
	branching int
	// idFn generates node IDs for count-based builds (Build, Quick).
	idFn IDFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		log:       discardLogger(),
		branching: DefaultBranchingFactor,
		idFn:      NodeIDFn(DefaultNodePrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logrus logger that drops every entry.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
