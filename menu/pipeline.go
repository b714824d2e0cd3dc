// SPDX-License-Identifier: MIT
// Package: topolab/menu
//
// pipeline.go - the end-to-end run: links + inventory -> model -> check,
// validation, analysis, auto-fix, PNG and summary.

package menu

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/export"
	"github.com/katalvlaran/topolab/linkfile"
	"github.com/katalvlaran/topolab/metrics"
	"github.com/katalvlaran/topolab/render"
)

// ErrNoTopology is returned by RunPipeline when the links yield no nodes.
var ErrNoTopology = errors.New("menu: no topology nodes found, check links and inventory files")

// RunPipeline builds a model from the link list at linksPath and the
// inventory at invPath, then validates, analyses, auto-fixes, renders and
// summarises it. A missing inventory only downgrades to defaults. The
// built model becomes the session's current model.
func (s *Session) RunPipeline(linksPath, invPath string) error {
	s.init()
	run := uuid.New()
	log := s.Log.WithField("run", run.String())
	s.println(s.st.title.Render("topolab: running full pipeline"))

	g, snap := s.fromLinks(linksPath, invPath)
	if g == nil {
		return ErrNoTopology
	}
	log.WithFields(snap.Fields()).Info("pipeline topology built")
	s.setModel(g, "linkfile")

	s.validate(g)
	s.lines(AnalysisLines(snap))
	s.autoFix(g)

	png := s.outPath("topology.png")
	if err := render.PNGFile(png, g); err != nil {
		return fmt.Errorf("pipeline %s: %w", run, err)
	}
	s.println(s.st.ok.Render("Topology saved to " + png))

	sum := s.outPath(export.SummaryFile)
	if err := export.WriteSummaryFile(sum, g); err != nil {
		return fmt.Errorf("pipeline %s: %w", run, err)
	}
	s.println(s.st.ok.Render("Summary exported to " + sum))
	log.Info("pipeline finished")

	return nil
}

// fromLinks reads links and inventory, prints the existence check and
// returns the model with its snapshot; nil when no node was built.
func (s *Session) fromLinks(linksPath, invPath string) (*core.Graph, metrics.Snapshot) {
	s.init()
	opts := []linkfile.Option{linkfile.WithLogger(s.Log), linkfile.WithMetrics(s.Recorder)}

	links, diags := linkfile.ReadFile(linksPath, opts...)
	for _, d := range diags {
		s.println(s.st.warn.Render(d.Error()))
	}

	inv, err := linkfile.LoadInventory(invPath)
	if err != nil {
		s.Log.WithFields(logrus.Fields{"inventory": invPath}).WithError(err).Warn("inventory unavailable, using defaults")
		s.println(s.st.warn.Render("Inventory unavailable: " + err.Error()))
		inv = nil
	} else {
		s.lines(linkfile.Check(inv, links, opts...).Lines())
	}

	g, diags := linkfile.BuildGraph(inv, links, opts...)
	for _, d := range diags {
		s.println(s.st.warn.Render(d.Error()))
	}
	if g.NodeCount() == 0 {
		s.println(s.st.err.Render("No topology nodes found. Check links and inventory files."))
		return nil, metrics.Snapshot{}
	}
	s.println(fmt.Sprintf("Built topology from links: nodes=%d, edges=%d", g.NodeCount(), g.EdgeCount()))

	return g, metrics.Compute(g)
}
