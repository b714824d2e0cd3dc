// SPDX-License-Identifier: MIT
// Package: topolab/render
//
// scene.go - layout and styling of a model, independent of the raster.
//
// Contract:
//   - Nodes sit on a circle in insertion order, starting at angle 0 and
//     turning counter-clockwise (screen y grows downward).
//   - A node of degree 1 is a leaf and coloured LeafColor; every other
//     node is NodeColor.
//   - A link on any cycle of the cycle basis is highlighted (CycleColor,
//     CycleWidth); others use LinkColor and LinkWidth.
//   - Link labels read "<ifaces>\n<bw>Mb/s", suffixed " (down)" for down links.

package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/katalvlaran/topolab/core"
	"github.com/katalvlaran/topolab/dfs"
)

// Palette.
var (
	Background = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff} // whitesmoke
	LeafColor  = color.RGBA{R: 0xff, A: 0xff}
	NodeColor  = color.RGBA{G: 0x80, A: 0xff}
	CycleColor = color.RGBA{R: 0xff, A: 0xff}
	LinkColor  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	LabelColor = color.RGBA{B: 0xff, A: 0xff}
	TextColor  = color.RGBA{A: 0xff}
)

// Stroke widths in pixels.
const (
	LinkWidth  = 2
	CycleWidth = 4
)

// Options sizes the canvas.
type Options struct {
	Width      int
	Height     int
	Padding    int
	NodeRadius int
}

// DefaultOptions is a 1000x800 canvas.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 800, Padding: 80, NodeRadius: 16}
}

// Point is a canvas position in pixels.
type Point struct{ X, Y float64 }

// SceneNode is a positioned, coloured node.
type SceneNode struct {
	ID    string
	Pos   Point
	Leaf  bool
	Color color.RGBA
}

// SceneEdge is a positioned, styled link.
type SceneEdge struct {
	From, To string
	A, B     Point
	OnCycle  bool
	Color    color.RGBA
	Width    float64
	Label    string
}

// Scene is everything the raster needs, in drawing order.
type Scene struct {
	Opts  Options
	Nodes []SceneNode
	Edges []SceneEdge
}

// CircularLayout places ids evenly on the largest circle that fits the
// canvas inside padding. A single node goes to the centre.
func CircularLayout(ids []string, width, height, padding int) map[string]Point {
	pos := make(map[string]Point, len(ids))
	cx, cy := float64(width)/2, float64(height)/2
	r := math.Min(cx, cy) - float64(padding)
	if r < 0 {
		r = 0
	}
	if len(ids) == 1 {
		pos[ids[0]] = Point{cx, cy}
		return pos
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		theta := step * float64(i)
		pos[id] = Point{X: cx + r*math.Cos(theta), Y: cy - r*math.Sin(theta)}
	}
	return pos
}

// BuildScene lays g out and styles it.
func BuildScene(g *core.Graph, opts Options) (*Scene, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	cycles, err := dfs.CycleEdges(g)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	ids := g.Nodes()
	pos := CircularLayout(ids, opts.Width, opts.Height, opts.Padding)
	s := &Scene{Opts: opts, Nodes: make([]SceneNode, 0, len(ids))}

	for _, id := range ids {
		d, _ := g.Degree(id)
		n := SceneNode{ID: id, Pos: pos[id], Leaf: d == 1, Color: NodeColor}
		if n.Leaf {
			n.Color = LeafColor
		}
		s.Nodes = append(s.Nodes, n)
	}

	for _, e := range g.Edges() {
		se := SceneEdge{
			From: e.From, To: e.To,
			A: pos[e.From], B: pos[e.To],
			OnCycle: cycles.Has(e.From, e.To),
			Color:   LinkColor,
			Width:   LinkWidth,
			Label:   EdgeLabel(e.Attrs),
		}
		if se.OnCycle {
			se.Color, se.Width = CycleColor, CycleWidth
		}
		s.Edges = append(s.Edges, se)
	}

	return s, nil
}

// EdgeLabel formats the label text of a link.
func EdgeLabel(a core.LinkAttrs) string {
	label := fmt.Sprintf("%s\n%dMb/s", strings.Join(a.Interfaces, ","), a.Bandwidth)
	if a.Down {
		label += " (down)"
	}
	return label
}
