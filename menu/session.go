// SPDX-License-Identifier: MIT
// Package: topolab/menu
//
// session.go - the interactive, line-oriented menu.
//
// Contract:
//   - Input is read one line at a time from In; EOF ends the session
//     cleanly, as does choice "0".
//   - Operation errors are printed and the loop continues; the session
//     itself never fails on user input.
//   - Options needing a model print a hint while none is loaded.

package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topolab/config"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/metrics"
	"github.com/katalvlaran/topolab/telemetry"
)

// Validator applies a validation rule set to a model.
type Validator interface {
	Validate(g *core.Graph, snap metrics.Snapshot) []string
}

// AutoFixer proposes fixes for a model; the returned lines are shown as-is.
type AutoFixer interface {
	AutoFix(g *core.Graph) ([]string, error)
}

// Session holds the collaborators and state of one menu run.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Log      logrus.FieldLogger
	Config   *config.Config
	Recorder *telemetry.Recorder

	Validator Validator
	AutoFixer AutoFixer

	current *core.Graph
	scanner *bufio.Scanner
	st      styles
}

// mainItems are the main-menu entries in display order. Choice 10 is
// reserved for the Day-1 simulation, which topolab does not provide.
var mainItems = []string{
	"1) Create topology",
	"2) Analyze current topology",
	"3) Visualize current topology",
	"4) Export topology summary",
	"5) Simulate node failure",
	"6) Compare topologies",
	"7) Run full pipeline (links + inventory)",
	"8) Validate topology",
	"9) Generate auto-fixes",
	"11) Simulate link failure",
	"0) Exit",
}

// Current returns the loaded model, or nil.
func (s *Session) Current() *core.Graph { return s.current }

// SetCurrent replaces the loaded model.
func (s *Session) SetCurrent(g *core.Graph) { s.current = g }

func (s *Session) init() {
	if s.scanner != nil {
		return
	}
	if s.In == nil {
		s.In = strings.NewReader("")
	}
	if s.Out == nil {
		s.Out = io.Discard
	}
	if s.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.Log = l
	}
	if s.Config == nil {
		s.Config = config.Default()
	}
	s.scanner = bufio.NewScanner(s.In)
	s.st = newStyles(s.Out)
}

// Run shows the main menu until the user exits, input ends or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.init()
	s.println(s.st.title.Render("=== Network Topology Builder ==="))
	s.println("Create and analyze different network topologies")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println("")
		s.println(s.st.heading.Render("--- Main Menu ---"))
		for _, item := range mainItems {
			s.println(item)
		}
		choice, ok := s.prompt("Choice> ")
		if !ok || choice == "0" {
			s.println("Goodbye!")
			return nil
		}
		s.dispatch(choice)
	}
}

func (s *Session) dispatch(choice string) {
	switch choice {
	case "1":
		if g, label := s.createMenu(); g != nil {
			s.setModel(g, label)
		}
	case "2":
		s.withModel(s.analyze)
	case "3":
		s.withModel(s.visualize)
	case "4":
		s.withModel(s.exportSummary)
	case "5":
		s.withModel(s.nodeFailure)
	case "6":
		s.compare()
	case "7":
		links, _ := s.promptDefault("Links file", s.Config.LinksFile)
		inv, _ := s.promptDefault("Inventory file", s.Config.InventoryFile)
		if err := s.RunPipeline(links, inv); err != nil {
			s.fail(err)
		}
	case "8":
		s.withModel(s.validate)
	case "9":
		s.withModel(s.autoFix)
	case "11":
		s.withModel(s.linkFailure)
	default:
		s.println(s.st.warn.Render("Invalid choice. Please try again."))
	}
}

func (s *Session) withModel(fn func(g *core.Graph)) {
	if s.current == nil {
		s.println(s.st.warn.Render("No topology loaded. Please create one first."))
		return
	}
	fn(s.current)
}

// setModel loads g, reports it and feeds telemetry.
func (s *Session) setModel(g *core.Graph, label string) {
	s.current = g
	snap := metrics.Compute(g)
	s.Recorder.TopologyBuilt(label)
	s.Recorder.ObserveGraph(snap.NodeCount, snap.EdgeCount, snap.Density)
	s.Log.WithFields(snap.Fields()).WithField("shape", label).Info("topology loaded")
	s.println(s.st.ok.Render(fmt.Sprintf("Created topology with %d nodes and %d edges", g.NodeCount(), g.EdgeCount())))
}

// prompt prints label and reads one trimmed line; false on EOF.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.Out, s.st.prompt.Render(label))
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// promptDefault prompts "label [def]: " and returns def for an empty answer.
func (s *Session) promptDefault(label, def string) (string, bool) {
	v, ok := s.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if v == "" {
		return def, ok
	}
	return v, ok
}

func (s *Session) println(line string) { fmt.Fprintln(s.Out, line) }

func (s *Session) lines(ls []string) {
	for _, l := range ls {
		s.println(l)
	}
}

func (s *Session) fail(err error) {
	s.Log.WithError(err).Warn("menu operation failed")
	s.println(s.st.err.Render("Error: " + err.Error()))
}
