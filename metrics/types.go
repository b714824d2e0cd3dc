// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Snapshot value type, the Diameter sentinel and logging fields.

package metrics

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Diameter is a hop count, or Infinite when the model is disconnected.
type Diameter int

// Infinite marks the diameter of a disconnected (or empty) model.
const Infinite Diameter = -1

// IsInfinite reports whether d is the disconnected sentinel.
func (d Diameter) IsInfinite() bool { return d < 0 }

// String renders the hop count, or "inf".
func (d Diameter) String() string {
	if d.IsInfinite() {
		return "inf"
	}
	return strconv.Itoa(int(d))
}

// Hub is a node together with its degree.
type Hub struct {
	ID     string
	Degree int
}

// Snapshot is an immutable summary of one topology model.
//
// Connectivity-dependent fields (Diameter, AveragePathLength,
// ArticulationPoints, Bridges) are only evaluated on a connected model; on
// a disconnected one they hold Infinite, 0 and empty slices.
type Snapshot struct {
	NodeCount int
	EdgeCount int

	// Density is 2E / (N(N-1)) for N ≥ 2, else 0.
	Density float64

	IsConnected bool
	Components  int

	Diameter          Diameter
	AveragePathLength float64

	// AverageClustering is the mean local clustering coefficient over all nodes.
	AverageClustering float64

	AvgDegree float64
	MinDegree int
	MaxDegree int

	// MostConnected is the highest-degree node; ties go to the earliest inserted.
	MostConnected Hub

	ArticulationPoints []string
	Bridges            [][2]string
}

// Fields returns the headline figures as structured logging fields.
func (s Snapshot) Fields() logrus.Fields {
	return logrus.Fields{
		"nodes":         s.NodeCount,
		"edges":         s.EdgeCount,
		"density":       s.Density,
		"connected":     s.IsConnected,
		"components":    s.Components,
		"diameter":      s.Diameter.String(),
		"avg_degree":    s.AvgDegree,
		"avg_cluster":   s.AverageClustering,
		"articulations": len(s.ArticulationPoints),
	}
}
