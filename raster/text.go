// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/emf"
	"github.com/gogpu/emf/internal/shape"
)

// DrawText implements emf.Surface. The run origin and the font size follow
// the current transform.
//
// TODO: rotate runs by Font.Escapement once font.Drawer output can be
// composited through a rotated mask.
func (s *Surface) DrawText(run emf.TextRun) {
	if run.Text == "" {
		return
	}
	otf, err := shape.Outline(run.Font)
	if err != nil {
		emf.Logger().Warn("raster: no outline font", "error", err)
		return
	}
	size := shape.Size(run.Font) * s.transform.ScaleFactor()
	if size <= 0 {
		return
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		emf.Logger().Warn("raster: cannot create face", "error", err)
		return
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(run.Color.RGBA()),
		Face: face,
	}
	origin := s.transform.TransformPoint(run.Origin)
	if len(run.Dx) == 0 {
		d.Dot = toFixed(origin)
		d.DrawString(run.Text)
		return
	}

	// Explicit advances: place each character at the accumulated offset.
	offset := emf.Point{}
	i := 0
	for _, r := range run.Text {
		d.Dot = toFixed(origin.Add(s.transform.TransformVector(offset)))
		d.DrawString(string(r))
		if i < len(run.Dx) {
			offset.X += run.Dx[i]
		} else {
			offset.X += float64(d.MeasureString(string(r))) / 64 / s.transform.ScaleFactor()
		}
		i++
	}
}

func toFixed(p emf.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}
