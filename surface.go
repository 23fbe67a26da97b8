package emf

// Surface is the 2D canvas an Engine plays records onto.
//
// The engine never touches pixels. It composes coordinate transforms,
// submits paths with the current pen or brush, and draws text runs.
// Paths are given in the coordinate space of the current transform.
//
// Surfaces are NOT thread-safe. A playback session owns its surface.
type Surface interface {
	// Transform returns the current transformation matrix.
	Transform() Matrix

	// SetTransform replaces the current transformation matrix.
	SetTransform(m Matrix)

	// Translate composes a translation onto the current transform.
	Translate(x, y float64)

	// Scale composes a scale onto the current transform.
	Scale(sx, sy float64)

	// StrokePath strokes path with pen.
	StrokePath(path *Path, pen Pen)

	// FillPath fills path with brush using the non-zero winding rule.
	FillPath(path *Path, brush Brush)

	// DrawText draws a run of text.
	DrawText(run TextRun)
}

// TextRun is a run of glyphs in a single font.
type TextRun struct {
	Text   string
	Origin Point // baseline origin of the first glyph
	Font   Font
	Color  ColorRef
	// Dx holds optional per-character advances. When shorter than the
	// text, the remaining characters use the font's natural advance.
	Dx []float64
}
