// SPDX-License-Identifier: MIT
// Package: topolab/menu
//
// actions.go - handlers behind the main-menu entries.

package menu

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/compare"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/export"
	"github.com/katalvlaran/topolab/failure"
	"github.com/katalvlaran/topolab/linkfile"
	"github.com/katalvlaran/topolab/metrics"
	"github.com/katalvlaran/topolab/render"
)

// createShapes maps create-submenu choices 1-7 to shapes.
var createShapes = map[string]builder.Shape{
	"1": builder.ShapeStar,
	"2": builder.ShapeRing,
	"3": builder.ShapeMesh,
	"4": builder.ShapeTree,
	"5": builder.ShapeBus,
	"6": builder.ShapeSpineLeaf,
	"7": builder.ShapeHybrid,
}

// createMenu returns the new model and its telemetry label, or nil.
func (s *Session) createMenu() (*core.Graph, string) {
	s.println(s.st.heading.Render("--- Create Topology ---"))
	s.lines([]string{
		"1) Star topology",
		"2) Ring topology",
		"3) Mesh topology (partial)",
		"4) Tree topology",
		"5) Bus topology",
		"6) Spine-Leaf topology",
		"7) Hybrid topology",
		"8) Custom topology",
		"9) From link file + inventory",
	})
	choice, _ := s.prompt("Topology type> ")

	switch choice {
	case "8":
		return s.customTopology(), "custom"
	case "9":
		links, _ := s.promptDefault("Links file", s.Config.LinksFile)
		inv, _ := s.promptDefault("Inventory file", s.Config.InventoryFile)
		g, _ := s.fromLinks(links, inv)
		if g == nil {
			return nil, ""
		}
		return g, "linkfile"
	}

	shape, ok := createShapes[choice]
	if !ok {
		s.println(s.st.warn.Render("Invalid choice"))
		return nil, ""
	}
	size, _ := s.promptDefault("Size (small/medium/large)", s.Config.DefaultSize)
	s.println(fmt.Sprintf("Creating %s topology (%s)...", shape, size))

	opts := append(s.Config.BuilderOptions(), builder.WithLogger(s.Log))
	return builder.Quick(shape, s.Config.Profile(size), opts...), shape.String()
}

// customTopology reads node names, device types and connections.
func (s *Session) customTopology() *core.Graph {
	s.println(s.st.heading.Render("--- Custom Topology ---"))
	raw, _ := s.prompt("Enter node names (comma-separated): ")
	if raw == "" {
		s.println(s.st.warn.Render("No nodes specified"))
		return nil
	}

	g := core.NewGraph()
	var nodes []string
	for _, n := range strings.Split(raw, ",") {
		n = strings.TrimSpace(n)
		if n == "" || g.HasNode(n) {
			continue
		}
		dt, _ := s.promptDefault("Device type for "+n, linkfile.DefaultDeviceType)
		if err := g.AddNode(n, core.NodeAttrs{DeviceType: dt}); err != nil {
			s.fail(err)
			continue
		}
		nodes = append(nodes, n)
	}
	s.println(fmt.Sprintf("Added %d nodes", len(nodes)))

	s.println("Enter connections (format: node1-node2, or 'done' to finish):")
	for {
		conn, ok := s.prompt("Connection> ")
		if !ok || strings.EqualFold(conn, "done") {
			break
		}
		a, b, err := failure.ParseLinkSpec(conn)
		if err != nil {
			s.println("Invalid format. Use: node1-node2")
			continue
		}
		if !g.HasNode(a) || !g.HasNode(b) {
			s.println("Unknown nodes. Available: " + strings.Join(nodes, ", "))
			continue
		}
		if g.HasEdge(a, b) {
			s.println(fmt.Sprintf("Connection %s-%s already exists", a, b))
			continue
		}
		bwRaw, _ := s.prompt(fmt.Sprintf("Bandwidth for %s-%s [%d]: ", a, b, core.DefaultBandwidth))
		attrs := core.DefaultLinkAttrs()
		if bw, err := strconv.Atoi(bwRaw); err == nil && bw > 0 {
			attrs.Bandwidth = bw
		}
		if err = g.AddEdge(a, b, attrs); err != nil {
			s.fail(err)
			continue
		}
		s.println(fmt.Sprintf("Added connection: %s <-> %s", a, b))
	}

	return g
}

// AnalysisLines renders the analysis report of a snapshot.
func AnalysisLines(snap metrics.Snapshot) []string {
	out := []string{
		fmt.Sprintf("Nodes: %d", snap.NodeCount),
		fmt.Sprintf("Edges: %d", snap.EdgeCount),
		fmt.Sprintf("Network Density: %.3f", snap.Density),
		"Connected: " + yesNo(snap.IsConnected),
	}
	if snap.IsConnected {
		out = append(out,
			"Network Diameter: "+snap.Diameter.String(),
			fmt.Sprintf("Average Path Length: %.2f", snap.AveragePathLength))
	}
	out = append(out,
		fmt.Sprintf("Average Clustering: %.3f", snap.AverageClustering),
		fmt.Sprintf("Average Degree: %.1f", snap.AvgDegree))
	if snap.NodeCount > 0 {
		out = append(out, fmt.Sprintf("Most Connected Node: %s (degree: %d)", snap.MostConnected.ID, snap.MostConnected.Degree))
	}
	if snap.IsConnected {
		if len(snap.ArticulationPoints) > 0 {
			out = append(out, "Critical Nodes (articulation points): "+strings.Join(snap.ArticulationPoints, ", "))
		} else {
			out = append(out, "No critical single points of failure found")
		}
	}
	return out
}

func (s *Session) analyze(g *core.Graph) {
	s.println(s.st.heading.Render("=== Topology Analysis ==="))
	s.lines(AnalysisLines(metrics.Compute(g)))
}

func (s *Session) visualize(g *core.Graph) {
	s.lines([]string{"1) Simple text visualization", "2) Graphical visualization"})
	choice, _ := s.prompt("Visualization type> ")
	switch choice {
	case "1":
		path, _ := s.promptDefault("Output file", s.outPath(export.TopologyFile))
		if err := export.WriteTopologyFile(path, g); err != nil {
			s.fail(err)
			return
		}
		s.println(s.st.ok.Render("Topology visualization saved to: " + path))
	case "2":
		path, _ := s.promptDefault("Output file", s.outPath("topology.png"))
		if err := render.PNGFile(path, g); err != nil {
			s.fail(err)
			return
		}
		s.println(s.st.ok.Render("Topology visualization saved to: " + path))
	default:
		s.println(s.st.warn.Render("Invalid choice"))
	}
}

func (s *Session) exportSummary(g *core.Graph) {
	path, _ := s.promptDefault("Summary file", s.outPath(export.SummaryFile))
	if err := export.WriteSummaryFile(path, g); err != nil {
		s.fail(err)
		return
	}
	s.println(s.st.ok.Render("Summary exported to " + path))
}

func (s *Session) simulator() *failure.Simulator {
	return failure.New(failure.WithLogger(s.Log), failure.WithMetrics(s.Recorder))
}

func (s *Session) nodeFailure(g *core.Graph) {
	s.println("Available nodes: " + strings.Join(g.Nodes(), ", "))
	id, _ := s.prompt("Node to fail: ")
	_, rep, err := s.simulator().SimulateNodeFailure(g, id)
	if err != nil {
		s.println(s.st.warn.Render(fmt.Sprintf("Node %s not found in topology", id)))
		return
	}
	s.println(s.st.heading.Render("=== Simulating failure of node: " + id + " ==="))
	s.report(rep)
}

func (s *Session) linkFailure(g *core.Graph) {
	spec, _ := s.prompt("Link to fail (NODE1-NODE2): ")
	a, b, err := failure.ParseLinkSpec(spec)
	if err != nil {
		s.fail(err)
		return
	}
	mode := failure.LinkRemove
	if m, _ := s.promptDefault("Mode (remove/down)", "remove"); strings.EqualFold(m, "down") {
		mode = failure.LinkDown
	}
	_, rep, err := s.simulator().SimulateLinkFailure(g, a, b, mode)
	if err != nil {
		s.fail(err)
		return
	}
	s.println(s.st.heading.Render("=== Simulating failure of link: " + rep.Target + " ==="))
	s.report(rep)
}

func (s *Session) report(rep *failure.Report) {
	style := s.st.ok
	if rep.Impact == failure.ImpactCritical {
		style = s.st.err
	}
	for _, l := range rep.Lines() {
		if strings.HasPrefix(l, "CRITICAL") || strings.HasPrefix(l, "Network remains") {
			l = style.Render(l)
		}
		s.println(l)
	}
	s.println(s.st.muted.Render("simulation " + rep.ID.String()))
}

func (s *Session) compare() {
	s.println(s.st.heading.Render("--- Topology Comparison ---"))
	size, _ := s.promptDefault("Size (small/medium/large)", builder.ProfileSmall)
	rows := compare.Compare(compare.DefaultShapes(), s.Config.Profile(size), s.Config.BuilderOptions()...)
	s.println(compare.Table(rows))
}

func (s *Session) validate(g *core.Graph) {
	if s.Validator == nil {
		s.println(s.st.muted.Render("No validation rule set configured."))
		return
	}
	issues := s.Validator.Validate(g, metrics.Compute(g))
	if len(issues) == 0 {
		s.println(s.st.ok.Render("No validation issues found"))
		return
	}
	s.println(s.st.warn.Render(fmt.Sprintf("Validation found %d issues", len(issues))))
	for _, it := range issues {
		s.println("- " + it)
	}
}

func (s *Session) autoFix(g *core.Graph) {
	if s.AutoFixer == nil {
		s.println(s.st.muted.Render("No auto-fix rule set configured."))
		return
	}
	fixes, err := s.AutoFixer.AutoFix(g)
	if err != nil {
		s.fail(err)
		return
	}
	for _, f := range fixes {
		s.println("- " + f)
	}
	s.println(s.st.ok.Render("Auto-fixes generated."))
}

func (s *Session) outPath(name string) string {
	return filepath.Join(s.Config.OutputDir, name)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
