// SPDX-License-Identifier: MIT
// Package: topolab/render
//
// png.go - raster output of a Scene.
//
// Drawing order: background, links, nodes, node labels, link labels.
// Shapes are filled polygons on an anti-aliasing vector.Rasterizer; text
// uses the fixed 7x13 basicfont face.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/topolab/core"
)

// circleSegments is the polygon resolution of a node disc.
const circleSegments = 32

// WritePNG rasterises s and encodes it as PNG to w.
func WritePNG(w io.Writer, s *Scene) error {
	if s == nil {
		return fmt.Errorf("render: nil scene")
	}
	img := Rasterize(s)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// Rasterize draws s onto a new RGBA canvas.
func Rasterize(s *Scene) *image.RGBA {
	bounds := image.Rect(0, 0, s.Opts.Width, s.Opts.Height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(Background), image.Point{}, draw.Src)

	for _, e := range s.Edges {
		fillLine(img, e.A, e.B, e.Width, e.Color)
	}
	r := float64(s.Opts.NodeRadius)
	for _, n := range s.Nodes {
		fillCircle(img, n.Pos, r, n.Color)
	}
	for _, n := range s.Nodes {
		drawText(img, n.ID, n.Pos, TextColor)
	}
	for _, e := range s.Edges {
		mid := Point{X: (e.A.X + e.B.X) / 2, Y: (e.A.Y + e.B.Y) / 2}
		drawText(img, e.Label, mid, LabelColor)
	}

	return img
}

// PNGFile renders g with DefaultOptions to path, creating parent directories.
func PNGFile(path string, g *core.Graph) (err error) {
	s, err := BuildScene(g, DefaultOptions())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	return WritePNG(f, s)
}

func paint(dst *image.RGBA, z *vector.Rasterizer, c color.Color) {
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// fillLine strokes a–b as a rectangle of the given width.
func fillLine(dst *image.RGBA, a, b Point, width float64, c color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// unit normal scaled to half the width
	nx, ny := -dy/length*width/2, dx/length*width/2

	size := dst.Bounds().Size()
	z := vector.NewRasterizer(size.X, size.Y)
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
	paint(dst, z, c)
}

func fillCircle(dst *image.RGBA, p Point, r float64, c color.Color) {
	size := dst.Bounds().Size()
	z := vector.NewRasterizer(size.X, size.Y)
	for i := 0; i < circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		x, y := float32(p.X+r*math.Cos(theta)), float32(p.Y+r*math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	paint(dst, z, c)
}

// drawText centres each line of text on p.
func drawText(dst *image.RGBA, text string, p Point, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}

	lines := strings.Split(text, "\n")
	lineH := face.Metrics().Height.Round()
	top := int(p.Y) - lineH*len(lines)/2 + face.Metrics().Ascent.Round()
	for i, l := range lines {
		w := d.MeasureString(l).Round()
		d.Dot = fixed.P(int(p.X)-w/2, top+i*lineH)
		d.DrawString(l)
	}
}
