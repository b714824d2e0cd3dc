// SPDX-License-Identifier: MIT
// Package: topolab/compare
//
// compare.go - batch build-and-measure across topology shapes.
//
// Contract:
//   - Rows come back in the order of the input shapes, never sorted.
//   - Every shape is built with the same profile and builder options, so a
//     seeded run (builder.WithSeed) is reproducible end to end.
//   - Single-threaded: a WithRand source is shared by every build.

package compare

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/metrics"
)

// Row pairs a shape with the metrics of its quick-built model.
type Row struct {
	Shape    builder.Shape
	Snapshot metrics.Snapshot
}

// Header is the comparison column set.
var Header = []string{"Topology", "Nodes", "Edges", "Density", "Connected", "Avg Degree"}

// DefaultShapes is the comparison line-up: star, ring, mesh (built partial),
// tree, spine-leaf and bus.
func DefaultShapes() []builder.Shape {
	return []builder.Shape{
		builder.ShapeStar,
		builder.ShapeRing,
		builder.ShapeMesh,
		builder.ShapeTree,
		builder.ShapeSpineLeaf,
		builder.ShapeBus,
	}
}

// Compare quick-builds every shape at profile and measures it.
func Compare(shapes []builder.Shape, profile builder.SizeProfile, opts ...builder.BuilderOption) []Row {
	rows := make([]Row, 0, len(shapes))
	for _, s := range shapes {
		g := builder.Quick(s, profile, opts...)
		rows = append(rows, Row{Shape: s, Snapshot: metrics.Compute(g)})
	}
	return rows
}

// Cells formats r in Header order.
func (r Row) Cells() []string {
	connected := "No"
	if r.Snapshot.IsConnected {
		connected = "Yes"
	}
	return []string{
		r.Shape.String(),
		strconv.Itoa(r.Snapshot.NodeCount),
		strconv.Itoa(r.Snapshot.EdgeCount),
		fmt.Sprintf("%.3f", r.Snapshot.Density),
		connected,
		fmt.Sprintf("%.1f", r.Snapshot.AvgDegree),
	}
}
