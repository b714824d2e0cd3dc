// SPDX-License-Identifier: MIT
// Package: topolab/telemetry
//
// recorder.go - Prometheus counters and gauges for topology operations.
//
// Contract:
//   - Collectors are registered on the Registerer passed to NewRecorder;
//     nothing touches the global default registry.
//   - Every method is safe on a nil *Recorder (no-op), so callers never
//     branch on whether telemetry is enabled.
//
// Metrics:
//   - topolab_topologies_built_total{shape}
//   - topolab_failure_simulations_total{kind,impact}
//   - topolab_link_diagnostics_total{kind}
//   - topolab_graph_nodes, topolab_graph_edges, topolab_graph_density

package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "topolab"

// Recorder holds the topolab collectors.
type Recorder struct {
	TopologiesBuilt    *prometheus.CounterVec
	FailureSimulations *prometheus.CounterVec
	LinkDiagnostics    *prometheus.CounterVec

	GraphNodes   prometheus.Gauge
	GraphEdges   prometheus.Gauge
	GraphDensity prometheus.Gauge
}

// NewRecorder creates the collectors and registers them on reg.
// It panics if reg is nil or a collector is already registered there,
// the same as promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		panic("telemetry: NewRecorder(nil registerer)")
	}
	f := promauto.With(reg)

	return &Recorder{
		TopologiesBuilt: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topologies_built_total",
			Help:      "Topology models produced, by shape.",
		}, []string{"shape"}),
		FailureSimulations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failure_simulations_total",
			Help:      "Failure simulations run, by target kind and impact.",
		}, []string{"kind", "impact"}),
		LinkDiagnostics: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_diagnostics_total",
			Help:      "Link-list diagnostics emitted, by kind.",
		}, []string{"kind"}),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Node count of the most recently observed model.",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Link count of the most recently observed model.",
		}),
		GraphDensity: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_density",
			Help:      "Density of the most recently observed model.",
		}),
	}
}

// TopologyBuilt counts one model of the given shape.
func (r *Recorder) TopologyBuilt(shape string) {
	if r == nil {
		return
	}
	r.TopologiesBuilt.WithLabelValues(shape).Inc()
}

// FailureSimulated counts one simulation.
func (r *Recorder) FailureSimulated(kind, impact string) {
	if r == nil {
		return
	}
	r.FailureSimulations.WithLabelValues(kind, impact).Inc()
}

// LinkDiagnostic counts one parser or check diagnostic.
func (r *Recorder) LinkDiagnostic(kind string) {
	if r == nil {
		return
	}
	r.LinkDiagnostics.WithLabelValues(kind).Inc()
}

// ObserveGraph sets the graph gauges.
func (r *Recorder) ObserveGraph(nodes, edges int, density float64) {
	if r == nil {
		return
	}
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphDensity.Set(density)
}

// WriteTextfile dumps everything g gathers to path in the Prometheus text
// format, for pickup by a node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("telemetry: write textfile %q: %w", path, err)
	}
	return nil
}
