// SPDX-License-Identifier: MIT
// Package: topolab/export
//
// export.go - plain-text sinks for a topology model.
//
// Formats:
//   - WriteTopology: "=== Network Topology Visualization ===" with NODES,
//     CONNECTIONS (N total) and ADJACENCY LIST sections.
//   - WriteSummary: "=== Network Topology Summary ===" metrics block, then
//     Node Details and Edge Details.
//   - ASCII: one "node -> [n1 n2]" line per node.
//
// Determinism: nodes and links in insertion order, neighbours sorted.

package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/metrics"
)

// Default file names.
const (
	TopologyFile = "topology.txt"
	SummaryFile  = "topology_summary.txt"
)

// WriteTopology writes the sectioned text view of g.
func WriteTopology(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "=== Network Topology Visualization ===\n\n")

	fmt.Fprintln(bw, "NODES:")
	for _, id := range g.Nodes() {
		a, _ := g.Node(id)
		fmt.Fprintf(bw, "  %s [%s] (role: %s)\n", id, a.DeviceTypeOr(core.UnknownValue), a.RoleOr(core.NotAvailable))
	}

	edges := g.Edges()
	fmt.Fprintf(bw, "\nCONNECTIONS (%d total):\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "  %s <---> %s [%d Mbps, %s, %s]\n",
			e.From, e.To, e.Attrs.Bandwidth, linkType(e.Attrs), status(e.Attrs.Up()))
	}

	fmt.Fprintln(bw, "\nADJACENCY LIST:")
	adj := g.AdjacencyList()
	for _, id := range g.Nodes() {
		nbrs := "isolated"
		if len(adj[id]) > 0 {
			nbrs = strings.Join(adj[id], ", ")
		}
		fmt.Fprintf(bw, "  %s: %s\n", id, nbrs)
	}

	return bw.Flush()
}

// WriteSummary writes the metrics block of snap followed by node and link
// details of g. The diameter line appears only for a connected model.
func WriteSummary(w io.Writer, g *core.Graph, snap metrics.Snapshot) error {
	if g == nil {
		return core.ErrNilGraph
	}
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "=== Network Topology Summary ===\n\n")
	fmt.Fprintf(bw, "Nodes: %d\n", snap.NodeCount)
	fmt.Fprintf(bw, "Edges: %d\n", snap.EdgeCount)
	fmt.Fprintf(bw, "Network Density: %.3f\n", snap.Density)
	fmt.Fprintf(bw, "Connected: %s\n", yesNo(snap.IsConnected))
	if snap.IsConnected {
		fmt.Fprintf(bw, "Network Diameter: %s\n", snap.Diameter)
	}
	fmt.Fprintf(bw, "Average Clustering: %.3f\n", snap.AverageClustering)
	fmt.Fprintf(bw, "Average Degree: %.1f\n", snap.AvgDegree)

	fmt.Fprintln(bw, "\n=== Node Details ===")
	for _, id := range g.Nodes() {
		a, _ := g.Node(id)
		fmt.Fprintf(bw, "%s: %s (role: %s)\n", id, a.DeviceTypeOr(core.UnknownValue), a.RoleOr(core.NotAvailable))
	}

	fmt.Fprintln(bw, "\n=== Edge Details ===")
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s -- %s: %d Mbps, %s\n", e.From, e.To, e.Attrs.Bandwidth, linkType(e.Attrs))
	}

	return bw.Flush()
}

// ASCII returns the compact adjacency rendering of g.
func ASCII(g *core.Graph) string {
	if g == nil {
		return ""
	}
	adj := g.AdjacencyList()
	lines := make([]string, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		lines = append(lines, fmt.Sprintf("%s -> [%s]", id, strings.Join(adj[id], " ")))
	}
	return strings.Join(lines, "\n")
}

// WriteTopologyFile writes WriteTopology output to path, creating parent
// directories as needed.
func WriteTopologyFile(path string, g *core.Graph) error {
	return writeFile(path, func(w io.Writer) error { return WriteTopology(w, g) })
}

// WriteSummaryFile writes WriteSummary output to path. It computes the
// snapshot itself.
func WriteSummaryFile(path string, g *core.Graph) error {
	snap := metrics.Compute(g)
	return writeFile(path, func(w io.Writer) error { return WriteSummary(w, g, snap) })
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	if err = fn(f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func linkType(a core.LinkAttrs) string {
	if a.LinkType == "" {
		return core.UnknownValue
	}
	return a.LinkType
}

func status(up bool) string {
	if up {
		return "UP"
	}
	return "DOWN"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
