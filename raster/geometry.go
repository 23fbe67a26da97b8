// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/emf"
)

// curveSteps is the number of line segments per flattened curve.
const curveSteps = 16

// addPath feeds a device-space path to the rasterizer. Every subpath is
// closed, as filling requires.
func addPath(z *vector.Rasterizer, p *emf.Path) {
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case emf.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(e.Point.X), f32(e.Point.Y))
			open = true
		case emf.LineTo:
			z.LineTo(f32(e.Point.X), f32(e.Point.Y))
			open = true
		case emf.QuadTo:
			z.QuadTo(f32(e.Control.X), f32(e.Control.Y), f32(e.Point.X), f32(e.Point.Y))
			open = true
		case emf.CubicTo:
			z.CubeTo(f32(e.Control1.X), f32(e.Control1.Y), f32(e.Control2.X), f32(e.Control2.Y), f32(e.Point.X), f32(e.Point.Y))
			open = true
		case emf.Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

// flatten converts a path into polylines, one per subpath. A closed
// subpath ends at its start point.
func flatten(p *emf.Path) [][]emf.Point {
	var (
		lines       [][]emf.Point
		line        []emf.Point
		start, curr emf.Point
	)
	flush := func() {
		if len(line) > 1 {
			lines = append(lines, line)
		}
		line = nil
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case emf.MoveTo:
			flush()
			start, curr = e.Point, e.Point
			line = []emf.Point{curr}
		case emf.LineTo:
			if line == nil {
				line = []emf.Point{curr}
			}
			curr = e.Point
			line = append(line, curr)
		case emf.QuadTo:
			if line == nil {
				line = []emf.Point{curr}
			}
			p0 := curr
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				line = append(line, emf.Point{
					X: u*u*p0.X + 2*u*t*e.Control.X + t*t*e.Point.X,
					Y: u*u*p0.Y + 2*u*t*e.Control.Y + t*t*e.Point.Y,
				})
			}
			curr = e.Point
		case emf.CubicTo:
			if line == nil {
				line = []emf.Point{curr}
			}
			p0 := curr
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				u := 1 - t
				a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
				line = append(line, emf.Point{
					X: a*p0.X + b*e.Control1.X + c*e.Control2.X + d*e.Point.X,
					Y: a*p0.Y + b*e.Control1.Y + c*e.Control2.Y + d*e.Point.Y,
				})
			}
			curr = e.Point
		case emf.Close:
			if line != nil {
				line = append(line, start)
			}
			flush()
			curr = start
		}
	}
	flush()
	return lines
}

// dashes splits a polyline into the "on" pieces of a dash pattern whose
// lengths are multiples of width. A nil pattern returns the line whole.
func dashes(line []emf.Point, pattern []float64, width float64) [][]emf.Point {
	if len(pattern) == 0 {
		return [][]emf.Point{line}
	}
	var (
		out  [][]emf.Point
		cur  = []emf.Point{line[0]}
		idx  int
		left = pattern[0] * width
		on   = true
	)
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for seg-pos > left {
			pos += left
			t := pos / seg
			p := emf.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []emf.Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx] * width
		}
		left -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// strokePolyline adds the outline of a polyline of the given width. Each
// segment becomes a quad and wide lines get rounded vertices; all pieces
// share one orientation so the non-zero rule paints their union.
func strokePolyline(z *vector.Rasterizer, pts []emf.Point, width float64) {
	h := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*h, dx/l*h
		z.MoveTo(f32(a.X+nx), f32(a.Y+ny))
		z.LineTo(f32(b.X+nx), f32(b.Y+ny))
		z.LineTo(f32(b.X-nx), f32(b.Y-ny))
		z.LineTo(f32(a.X-nx), f32(a.Y-ny))
		z.ClosePath()
	}
	if width <= 2 {
		return
	}
	for _, p := range pts {
		const sides = 8
		z.MoveTo(f32(p.X+h), f32(p.Y))
		for k := 1; k < sides; k++ {
			a := -float64(k) * 2 * math.Pi / sides
			z.LineTo(f32(p.X+h*math.Cos(a)), f32(p.Y+h*math.Sin(a)))
		}
		z.ClosePath()
	}
}

func f32(v float64) float32 {
	return float32(v)
}
