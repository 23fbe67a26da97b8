// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a CPU emf.Surface that renders onto an RGBA
// image.
//
// Fills and strokes are scan-converted with golang.org/x/image/vector;
// text is drawn with golang.org/x/image/font using the Go fonts.
//
// # Example
//
//	// Import to register the surface
//	import _ "github.com/gogpu/emf/raster"
//
//	// Create via registry
//	s, _ := emf.NewSurface("raster", 800, 600)
//
//	// Or create directly
//	s := raster.New(800, 600)
//	e := emf.NewEngine(s, emf.Rect{W: 800, H: 600})
//	...
//	s.SavePNG("output.png")
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/emf"
)

func init() {
	emf.Register("raster", func(width, height int) emf.Surface {
		return New(width, height)
	})
}

// Surface renders onto an *image.RGBA.
type Surface struct {
	img       *image.RGBA
	transform emf.Matrix
	z         *vector.Rasterizer
}

var _ emf.Surface = (*Surface)(nil)

// New creates a surface of the given size with a white background.
func New(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Surface{
		img:       img,
		transform: emf.Identity(),
		z:         vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Transform implements emf.Surface.
func (s *Surface) Transform() emf.Matrix {
	return s.transform
}

// SetTransform implements emf.Surface.
func (s *Surface) SetTransform(m emf.Matrix) {
	s.transform = m
}

// Translate implements emf.Surface.
func (s *Surface) Translate(x, y float64) {
	s.transform = s.transform.Multiply(emf.Translate(x, y))
}

// Scale implements emf.Surface.
func (s *Surface) Scale(sx, sy float64) {
	s.transform = s.transform.Multiply(emf.Scale(sx, sy))
}

// FillPath implements emf.Surface.
func (s *Surface) FillPath(path *emf.Path, brush emf.Brush) {
	if path == nil || brush.Style == emf.BrushNull {
		return
	}
	s.reset()
	addPath(s.z, path.Transform(s.transform))
	s.paint(brush.Color.RGBA())
}

// StrokePath implements emf.Surface.
func (s *Surface) StrokePath(path *emf.Path, pen emf.Pen) {
	if path == nil || pen.Style.IsNull() {
		return
	}
	width := pen.Width
	if !pen.Style.IsCosmetic() {
		width *= s.transform.ScaleFactor()
	}
	width = max(width, 1)

	s.reset()
	for _, line := range flatten(path.Transform(s.transform)) {
		for _, dash := range dashes(line, pen.Style.DashPattern(), width) {
			strokePolyline(s.z, dash, width)
		}
	}
	s.paint(pen.Color.RGBA())
}

func (s *Surface) reset() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *Surface) paint(c color.RGBA) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}
