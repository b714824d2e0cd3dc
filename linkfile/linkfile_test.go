package linkfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/linkfile"
	"github.com/katalvlaran/topolab/telemetry"
)

const sampleLinks = `# lab uplinks
R1:Gig0/0 - R2:Gig0/1

R1-R2
R2:Gig0/2 - SW1:Fa0/1
garbage line
R3:Gig0/0 - R1:Gig0/3
`

const sampleInventory = `devices:
  R1:
    device_type: router
    interfaces:
      Gig0/0: {bandwidth: 1000, mtu: 1500}
      Gig0/3: {bandwidth: 100}
  R2:
    device_type: router
    interfaces:
      GIG0/1: {bandwidth: 10000, mtu: 9000}
      Gig0/2: {shutdown: true}
  SW1:
    device_type: switch
    interfaces:
      Fa0/1: {bandwidth: 100, mtu: 1500}
`

func TestParseEndpoint(t *testing.T) {
	ep, err := linkfile.ParseEndpoint(" R1 : Gig0/0 ")
	require.NoError(t, err)
	assert.Equal(t, linkfile.Endpoint{Device: "R1", Interface: "Gig0/0"}, ep)
	assert.Equal(t, "R1:Gig0/0", ep.String())

	_, err = linkfile.ParseEndpoint("R1")
	assert.ErrorIs(t, err, linkfile.ErrInputFormat)
}

func TestParse(t *testing.T) {
	links, diags := linkfile.Parse(strings.NewReader(sampleLinks))

	require.Len(t, links, 4)
	assert.Equal(t, linkfile.Link{Line: 2, Left: "R1:Gig0/0", Right: "R2:Gig0/1"}, links[0])
	assert.Equal(t, linkfile.Link{Line: 4, Left: "R1", Right: "R2"}, links[1])

	a, b, err := links[0].Endpoints()
	require.NoError(t, err)
	assert.Equal(t, "R1:Gig0/0", a.String())
	assert.Equal(t, "R2:Gig0/1", b.String())

	require.Len(t, diags, 1)
	assert.Equal(t, 6, diags[0].Line)
	assert.Equal(t, linkfile.KindInputFormat, diags[0].Kind)
	assert.ErrorIs(t, diags[0], linkfile.ErrInputFormat)
}

func TestReadFile_Missing(t *testing.T) {
	links, diags := linkfile.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Empty(t, links)
	require.Len(t, diags, 1)
	assert.Equal(t, linkfile.KindMissingResource, diags[0].Kind)
	assert.ErrorIs(t, diags[0], linkfile.ErrMissingResource)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleLinks), 0o600))

	links, diags := linkfile.ReadFile(path)
	assert.Len(t, links, 4)
	assert.Len(t, diags, 1)
}

func TestParse_LogsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	rec := telemetry.NewRecorder(prometheus.NewRegistry())

	linkfile.Parse(strings.NewReader("bad\nworse\n"), linkfile.WithLogger(log), linkfile.WithMetrics(rec))

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.LinkDiagnostics.WithLabelValues("input_format")))
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "missing '-'")
}

func loadSample(t *testing.T) *linkfile.Inventory {
	t.Helper()
	inv, err := linkfile.DecodeInventory([]byte(sampleInventory))
	require.NoError(t, err)
	return inv
}

func TestInventory(t *testing.T) {
	inv := loadSample(t)
	assert.True(t, inv.HasDevice("R1"))
	assert.False(t, inv.HasDevice("r1"))

	a, ok := inv.Interface("R2", "gig0/1")
	require.True(t, ok)
	assert.Equal(t, 9000, a.MTU)

	var nilInv *linkfile.Inventory
	assert.False(t, nilInv.HasDevice("R1"))
	_, ok = nilInv.Interface("R1", "x")
	assert.False(t, ok)
}

func TestDecodeInventory_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "devices: [",
		"unknown field": "devices:\n  R1:\n    colour: red\n",
		"bad mtu":       "devices:\n  R1:\n    interfaces:\n      e0: {mtu: 10}\n",
		"neg bandwidth": "devices:\n  R1:\n    interfaces:\n      e0: {bandwidth: -1}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := linkfile.DecodeInventory([]byte(doc))
			assert.ErrorIs(t, err, linkfile.ErrInputFormat)
		})
	}

	inv, err := linkfile.DecodeInventory(nil)
	require.NoError(t, err)
	assert.Empty(t, inv.Devices)
}

func TestLoadInventory(t *testing.T) {
	dir := t.TempDir()
	_, err := linkfile.LoadInventory(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, linkfile.ErrMissingResource)

	path := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInventory), 0o600))
	inv, err := linkfile.LoadInventory(path)
	require.NoError(t, err)
	assert.Len(t, inv.Devices, 3)
}

func TestCheck(t *testing.T) {
	links, _ := linkfile.Parse(strings.NewReader(sampleLinks))
	rep := linkfile.Check(loadSample(t), links)

	assert.Equal(t, []string{"R3"}, rep.MissingDevices)
	assert.Empty(t, rep.MissingInterfaces)
	require.Len(t, rep.InvalidEndpoints, 2, "R1-R2 is invalid on both sides")
	assert.Equal(t, 4, rep.InvalidEndpoints[0].Line)
	assert.False(t, rep.OK())
}

func TestCheck_MissingInterfaces(t *testing.T) {
	links := []linkfile.Link{
		{Line: 1, Left: "R1:Gig9/9", Right: "R2:gig0/1"},
		{Line: 2, Left: "R1:GIG9/9", Right: "SW1:Fa0/2"},
	}
	rep := linkfile.Check(loadSample(t), links)

	assert.Equal(t, []string{"R1:gig9/9", "SW1:fa0/2"}, rep.MissingInterfaces)
	assert.Empty(t, rep.MissingDevices)
	assert.Equal(t, []string{
		"No missing devices found.",
		"Missing interfaces in inventory:",
		" - R1:gig9/9",
		" - SW1:fa0/2",
	}, rep.Lines())
}

func TestCheck_Clean(t *testing.T) {
	rep := linkfile.Check(loadSample(t), []linkfile.Link{{Line: 1, Left: "R1:Gig0/0", Right: "R2:Gig0/1"}})
	assert.True(t, rep.OK())
	assert.Equal(t, []string{"No missing devices found.", "No missing interfaces found."}, rep.Lines())
}

func TestBuildGraph(t *testing.T) {
	links, _ := linkfile.Parse(strings.NewReader(sampleLinks))
	g, diags := linkfile.BuildGraph(loadSample(t), links)

	require.Len(t, diags, 1, "R1-R2 lacks ':'")
	assert.ErrorIs(t, diags[0], linkfile.ErrInputFormat)

	assert.Equal(t, []string{"R1", "R2", "SW1", "R3"}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount())

	r1, _ := g.Node("R1")
	assert.Equal(t, "router", r1.DeviceType)
	sw, _ := g.Node("SW1")
	assert.Equal(t, "switch", sw.DeviceType)

	e, ok := g.Edge("R2", "R1")
	require.True(t, ok)
	assert.Equal(t, core.LinkAttrs{Bandwidth: 1000, MTU: 1500, LinkType: "ethernet",
		Interfaces: []string{"Gig0/0", "Gig0/1"}}, e)

	down, ok := g.Edge("R2", "SW1")
	require.True(t, ok)
	assert.True(t, down.Down, "Gig0/2 is shut down")
	assert.Equal(t, 100, down.Bandwidth)

	r3, ok := g.Edge("R3", "R1")
	require.True(t, ok)
	assert.Equal(t, 100, r3.Bandwidth)
	assert.Equal(t, 1500, r3.MTU)
}

func TestBuildGraph_NoInventorySelfLink(t *testing.T) {
	g, diags := linkfile.BuildGraph(nil, []linkfile.Link{
		{Line: 1, Left: "A:e0", Right: "A:e1"},
		{Line: 2, Left: "A:e0", Right: "B:e0"},
	})
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 2, g.NodeCount())

	attrs, _ := g.Edge("A", "B")
	assert.Equal(t, core.DefaultBandwidth, attrs.Bandwidth)
	assert.True(t, attrs.Up())
}
