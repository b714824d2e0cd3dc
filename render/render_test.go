package render_test

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolab/builder"
	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/render"
)

func TestCircularLayout(t *testing.T) {
	pos := render.CircularLayout([]string{"a", "b", "c", "d"}, 200, 200, 20)
	require.Len(t, pos, 4)

	assert.InDelta(t, 180, pos["a"].X, 1e-9)
	assert.InDelta(t, 100, pos["a"].Y, 1e-9)
	assert.InDelta(t, 100, pos["b"].X, 1e-9)
	assert.InDelta(t, 20, pos["b"].Y, 1e-9)
	for _, p := range pos {
		assert.InDelta(t, 80, math.Hypot(p.X-100, p.Y-100), 1e-9)
	}

	single := render.CircularLayout([]string{"x"}, 200, 100, 10)
	assert.Equal(t, render.Point{X: 100, Y: 50}, single["x"])
	assert.Empty(t, render.CircularLayout(nil, 10, 10, 0))
}

func TestBuildScene_ColoursAndCycles(t *testing.T) {
	// Triangle a-b-c with a pendant d on c.
	g := builder.NewRing([]string{"a", "b", "c"})
	require.NoError(t, g.AddNode("d", core.NodeAttrs{}))
	require.NoError(t, g.AddEdge("c", "d", core.LinkAttrs{Bandwidth: 100, Down: true, Interfaces: []string{"e0", "e1"}}))

	s, err := render.BuildScene(g, render.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, s.Nodes, 4)
	require.Len(t, s.Edges, 4)

	for _, n := range s.Nodes {
		if n.ID == "d" {
			assert.True(t, n.Leaf)
			assert.Equal(t, render.LeafColor, n.Color)
		} else {
			assert.False(t, n.Leaf)
			assert.Equal(t, render.NodeColor, n.Color)
		}
	}
	for _, e := range s.Edges {
		onCycle := e.From != "d" && e.To != "d"
		assert.Equal(t, onCycle, e.OnCycle, "%s-%s", e.From, e.To)
		if onCycle {
			assert.Equal(t, float64(render.CycleWidth), e.Width)
		} else {
			assert.Equal(t, render.LinkColor, e.Color)
			assert.Equal(t, "e0,e1\n100Mb/s (down)", e.Label)
		}
	}
}

func TestEdgeLabel(t *testing.T) {
	a := core.DefaultLinkAttrs()
	assert.Equal(t, "\n1000Mb/s", render.EdgeLabel(a))
	a.Interfaces = []string{"Gig0/0", "Gig0/1"}
	assert.Equal(t, "Gig0/0,Gig0/1\n1000Mb/s", render.EdgeLabel(a))
}

func TestBuildScene_Nil(t *testing.T) {
	_, err := render.BuildScene(nil, render.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestWritePNG(t *testing.T) {
	opts := render.Options{Width: 120, Height: 90, Padding: 10, NodeRadius: 5}
	s, err := render.BuildScene(builder.NewStar([]string{"h", "a", "b"}), opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, s))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	// corner stays background
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xf5f5), r)
	assert.Equal(t, uint32(0xf5f5), g)
	assert.Equal(t, uint32(0xf5f5), b)

	assert.Error(t, render.WritePNG(&buf, nil))
}

func TestPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "topology.png")
	require.NoError(t, render.PNGFile(path, builder.NewSpineLeaf(2, 2)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, render.DefaultOptions().Width, cfg.Width)
}
