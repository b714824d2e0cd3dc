package telemetry_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/telemetry"
)

func newTestRecorder(t *testing.T) (*telemetry.Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return telemetry.NewRecorder(reg), reg
}

func TestRecorder_Counters(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.TopologyBuilt("star")
	r.TopologyBuilt("star")
	r.TopologyBuilt("ring")
	r.FailureSimulated("node", "critical")
	r.LinkDiagnostic("input_format")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.TopologiesBuilt.WithLabelValues("star")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TopologiesBuilt.WithLabelValues("ring")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.FailureSimulations.WithLabelValues("node", "critical")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.LinkDiagnostics.WithLabelValues("input_format")))
}

func TestRecorder_ObserveGraph(t *testing.T) {
	r, _ := newTestRecorder(t)
	r.ObserveGraph(3, 2, 0.667)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.GraphNodes))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.GraphEdges))
	assert.Equal(t, 0.667, testutil.ToFloat64(r.GraphDensity))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *telemetry.Recorder
	assert.NotPanics(t, func() {
		r.TopologyBuilt("star")
		r.FailureSimulated("link", "none")
		r.LinkDiagnostic("missing_resource")
		r.ObserveGraph(1, 0, 0)
	})
}

func TestNewRecorder_Panics(t *testing.T) {
	assert.Panics(t, func() { telemetry.NewRecorder(nil) })

	reg := prometheus.NewRegistry()
	telemetry.NewRecorder(reg)
	assert.Panics(t, func() { telemetry.NewRecorder(reg) }, "double registration")
}

func TestWriteTextfile(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.TopologyBuilt("bus")

	path := filepath.Join(t.TempDir(), "topolab.prom")
	require.NoError(t, telemetry.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `topolab_topologies_built_total{shape="bus"} 1`))
}

func TestWriteTextfile_BadDir(t *testing.T) {
	_, reg := newTestRecorder(t)
	err := telemetry.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg)
	assert.Error(t, err)
}
