// SPDX-License-Identifier: MIT
// Package: topolab/failure
//
// simulator.go - clone-then-mutate failure simulation.
//
// Contract:
//   - The caller's model is never mutated; every simulation works on
//     g.Clone() and returns that clone, so link IDs match the original.
//   - Lookup failures (ErrNodeNotFound, ErrLinkNotFound) abort before any
//     clone is made.
//   - Impact: Critical when a connected model becomes disconnected;
//     Degraded when it stays connected with a longer diameter or was
//     already disconnected; None otherwise.
//
// Complexity:
//   - O(V·(V+E)) per simulation, dominated by the before/after diameters.

package failure

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topolab/bfs"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/metrics"
	"github.com/katalvlaran/topolab/telemetry"
)

const (
	methodNode = "SimulateNodeFailure"
	methodLink = "SimulateLinkFailure"
)

// Simulator runs failure simulations. The zero value is not usable; call New.
type Simulator struct {
	log logrus.FieldLogger
	rec *telemetry.Recorder
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("failure: WithLogger(nil)")
	}
	return func(s *Simulator) { s.log = l }
}

// WithMetrics reports each simulation to rec. A nil rec disables reporting.
func WithMetrics(rec *telemetry.Recorder) Option {
	return func(s *Simulator) { s.rec = rec }
}

// New returns a Simulator with a discard logger and no metrics.
func New(opts ...Option) *Simulator {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := &Simulator{log: l}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SimulateNodeFailure removes id and its links from a clone of g.
func (s *Simulator) SimulateNodeFailure(g *core.Graph, id string) (*core.Graph, *Report, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodNode, ErrGraphNil)
	}
	if !g.HasNode(id) {
		return nil, nil, fmt.Errorf("%s(%q): %w", methodNode, id, ErrNodeNotFound)
	}

	neighbors, err := g.Neighbors(id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s(%q): %w", methodNode, id, err)
	}

	failed := g.Clone()
	if err = failed.RemoveNode(id); err != nil {
		return nil, nil, fmt.Errorf("%s(%q): %w", methodNode, id, err)
	}

	rep := &Report{
		ID:                uuid.New(),
		Target:            id,
		Kind:              KindNode,
		AffectedNeighbors: neighbors,
		RemovedLinks:      make([][2]string, 0, len(neighbors)),
	}
	for _, n := range neighbors {
		rep.RemovedLinks = append(rep.RemovedLinks, [2]string{id, n})
	}
	assess(rep, g, failed)
	s.record(rep)

	return failed, rep, nil
}

// SimulateLinkFailure takes the a–b link out of service in a clone of g,
// either removing it or marking it down depending on mode.
func (s *Simulator) SimulateLinkFailure(g *core.Graph, a, b string, mode LinkMode) (*core.Graph, *Report, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodLink, ErrGraphNil)
	}
	for _, id := range []string{a, b} {
		if !g.HasNode(id) {
			return nil, nil, fmt.Errorf("%s(%q,%q): endpoint %q: %w", methodLink, a, b, id, ErrNodeNotFound)
		}
	}
	if !g.HasEdge(a, b) {
		return nil, nil, fmt.Errorf("%s(%q,%q): %w", methodLink, a, b, ErrLinkNotFound)
	}

	failed := g.Clone()
	var err error
	if mode == LinkDown {
		err = failed.SetLinkUp(a, b, false)
	} else {
		err = failed.RemoveEdge(a, b)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s(%q,%q): %w", methodLink, a, b, err)
	}

	rep := &Report{
		ID:                uuid.New(),
		Target:            a + "-" + b,
		Kind:              KindLink,
		Mode:              mode,
		AffectedNeighbors: []string{a, b},
		RemovedLinks:      [][2]string{{a, b}},
	}

	before, after := g, failed
	if mode == LinkDown {
		before, after = g.OperationalView(), failed.OperationalView()
	}
	assess(rep, before, after)
	s.record(rep)

	return failed, rep, nil
}

// assess fills the connectivity and impact fields of rep.
func assess(rep *Report, before, after *core.Graph) {
	pre := metrics.Compute(before)
	post := metrics.Compute(after)

	rep.WasConnected = pre.IsConnected
	rep.StillConnected = post.IsConnected
	rep.DiameterBefore = pre.Diameter
	rep.DiameterAfter = post.Diameter

	rep.Components = bfs.Components(after)
	rep.PartitionSizes = make([]int, len(rep.Components))
	for i, c := range rep.Components {
		rep.PartitionSizes[i] = len(c)
	}

	switch {
	case pre.IsConnected && !post.IsConnected:
		rep.Impact = ImpactCritical
	case !pre.IsConnected:
		rep.Impact = ImpactDegraded
	default:
		rep.DiameterIncreased = post.Diameter > pre.Diameter
		if rep.DiameterIncreased {
			rep.Impact = ImpactDegraded
		} else {
			rep.Impact = ImpactNone
		}
	}
}

func (s *Simulator) record(rep *Report) {
	s.rec.FailureSimulated(rep.Kind.String(), rep.Impact.String())
	s.log.WithFields(logrus.Fields{
		"simulation": rep.ID.String(),
		"kind":       rep.Kind.String(),
		"target":     rep.Target,
		"impact":     rep.Impact.String(),
		"components": len(rep.Components),
	}).Info("failure simulated")
}

// ParseLinkSpec splits "NODE1-NODE2" at the first '-' and trims both sides.
func ParseLinkSpec(spec string) (string, string, error) {
	left, right, ok := strings.Cut(spec, "-")
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if !ok || left == "" || right == "" {
		return "", "", fmt.Errorf("%q: %w", spec, ErrInvalidLinkSpec)
	}
	return left, right, nil
}
