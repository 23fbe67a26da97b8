package record

import "github.com/gogpu/emf"

// Header opens a metafile. Bounds is the device-space frame of the
// picture and Frame its size in 0.01 mm units.
type Header struct {
	Bounds  emf.Rect
	Frame   emf.Rect
	Records uint32
	Handles uint16
}

// Type returns TypeHeader.
func (Header) Type() Type { return TypeHeader }

func (r Header) String() string { return r.Type().String() }

// Draw implements emf.Record. The engine is created with the frame
// already known, so there is nothing to do.
func (Header) Draw(*emf.Engine) error { return nil }

// EOF ends a metafile.
type EOF struct{}

// Type returns TypeEOF.
func (EOF) Type() Type { return TypeEOF }

func (r EOF) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (EOF) Draw(*emf.Engine) error { return nil }

// MoveToEx sets the current point. Inside a path bracket it also starts a
// new subpath.
type MoveToEx struct {
	Point emf.Point
}

// Type returns TypeMoveToEx.
func (MoveToEx) Type() Type { return TypeMoveToEx }

func (r MoveToEx) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r MoveToEx) Draw(e *emf.Engine) error {
	prop := e.Properties()
	prop.Location = r.Point
	if prop.PathBracket && prop.Path != nil {
		prop.Path.MoveTo(r.Point.X, r.Point.Y)
	}
	return nil
}

// SaveDC saves the graphics state.
type SaveDC struct{}

// Type returns TypeSaveDC.
func (SaveDC) Type() Type { return TypeSaveDC }

func (r SaveDC) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (SaveDC) Draw(e *emf.Engine) error {
	e.SaveProperties()
	return nil
}

// RestoreDC restores a saved graphics state. SavedDC is negative and
// relative to the most recent save: -1 restores the last one.
type RestoreDC struct {
	SavedDC int32
}

// Type returns TypeRestoreDC.
func (RestoreDC) Type() Type { return TypeRestoreDC }

func (r RestoreDC) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r RestoreDC) Draw(e *emf.Engine) error {
	return e.RestorePropertiesTo(int(r.SavedDC))
}

// SetTextColor sets the color used by text records.
type SetTextColor struct {
	Color emf.ColorRef
}

// Type returns TypeSetTextColor.
func (SetTextColor) Type() Type { return TypeSetTextColor }

func (r SetTextColor) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r SetTextColor) Draw(e *emf.Engine) error {
	e.Properties().TextColor = r.Color
	return nil
}

// Text alignment flags.
const (
	AlignUpdateCP = 0x0001
	AlignRight    = 0x0002
	AlignCenter   = 0x0006
	AlignBottom   = 0x0008
	AlignBaseline = 0x0018
)

// SetTextAlign sets the text alignment mode.
type SetTextAlign struct {
	Mode uint32
}

// Type returns TypeSetTextAlign.
func (SetTextAlign) Type() Type { return TypeSetTextAlign }

func (r SetTextAlign) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r SetTextAlign) Draw(e *emf.Engine) error {
	e.Properties().TextAlign = r.Mode
	return nil
}

// BeginPath opens a path bracket.
type BeginPath struct{}

// Type returns TypeBeginPath.
func (BeginPath) Type() Type { return TypeBeginPath }

func (r BeginPath) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (BeginPath) Draw(e *emf.Engine) error {
	e.BeginPath()
	return nil
}

// EndPath closes the path bracket.
type EndPath struct{}

// Type returns TypeEndPath.
func (EndPath) Type() Type { return TypeEndPath }

func (r EndPath) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (EndPath) Draw(e *emf.Engine) error {
	return e.EndPath()
}

// AbortPath discards the path bracket and its path.
type AbortPath struct{}

// Type returns TypeAbortPath.
func (AbortPath) Type() Type { return TypeAbortPath }

func (r AbortPath) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (AbortPath) Draw(e *emf.Engine) error {
	e.AbortPath()
	return nil
}

// CloseFigure closes the current subpath of the bracket path.
type CloseFigure struct{}

// Type returns TypeCloseFigure.
func (CloseFigure) Type() Type { return TypeCloseFigure }

func (r CloseFigure) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (CloseFigure) Draw(e *emf.Engine) error {
	return e.CloseFigure()
}

// FillPath fills the path built by the last bracket.
type FillPath struct {
	Bounds emf.Rect
}

// Type returns TypeFillPath.
func (FillPath) Type() Type { return TypeFillPath }

func (r FillPath) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (FillPath) Draw(e *emf.Engine) error {
	return e.SubmitPath(true, false)
}

// StrokePath strokes the path built by the last bracket.
type StrokePath struct {
	Bounds emf.Rect
}

// Type returns TypeStrokePath.
func (StrokePath) Type() Type { return TypeStrokePath }

func (r StrokePath) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (StrokePath) Draw(e *emf.Engine) error {
	return e.SubmitPath(false, true)
}

// StrokeAndFillPath fills and then strokes the path built by the last
// bracket.
type StrokeAndFillPath struct {
	Bounds emf.Rect
}

// Type returns TypeStrokeAndFillPath.
func (StrokeAndFillPath) Type() Type { return TypeStrokeAndFillPath }

func (r StrokeAndFillPath) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (StrokeAndFillPath) Draw(e *emf.Engine) error {
	return e.SubmitPath(true, true)
}
