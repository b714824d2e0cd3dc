// SPDX-License-Identifier: MIT
// Package: topolab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach method context with %w ("Ring: n=2 < min=3: ...").
//   - Option constructors panic on meaningless input; generators never panic.

package builder

import "errors"

// ErrTooFewNodes indicates that a constructor received fewer node IDs (or a
// smaller count) than its shape needs: star < 2, ring < 3, bus < 2, ...
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrUnsupportedShape indicates an unknown topology shape name or value.
var ErrUnsupportedShape = errors.New("builder: unsupported topology shape")

// ErrNeedRandSource indicates that a stochastic constructor (PartialMesh)
// was run without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error while composing
// constructors, such as a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
