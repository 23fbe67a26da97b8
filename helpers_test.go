package emf

// nopSurface discards all drawing.
type nopSurface struct{}

func (nopSurface) Transform() Matrix          { return Identity() }
func (nopSurface) SetTransform(Matrix)        {}
func (nopSurface) Translate(float64, float64) {}
func (nopSurface) Scale(float64, float64)     {}
func (nopSurface) StrokePath(*Path, Pen)      {}
func (nopSurface) FillPath(*Path, Brush)      {}
func (nopSurface) DrawText(TextRun)           {}
