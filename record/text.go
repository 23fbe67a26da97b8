package record

import (
	"unicode/utf8"

	"github.com/gogpu/emf"
	"github.com/gogpu/emf/internal/shape"
)

// ExtTextOutW draws a UTF-16 text string, already decoded to Text.
type ExtTextOutW struct {
	Bounds    emf.Rect
	Reference emf.Point
	Options   uint32
	Text      string
	Dx        []float64
}

// Type returns TypeExtTextOutW.
func (ExtTextOutW) Type() Type { return TypeExtTextOutW }

func (r ExtTextOutW) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r ExtTextOutW) Draw(e *emf.Engine) error {
	return drawText(e, r.Text, r.Reference, r.Dx)
}

// ExtTextOutA draws an 8-bit text string. Raw is decoded with the code
// page of the current font's character set.
type ExtTextOutA struct {
	Bounds    emf.Rect
	Reference emf.Point
	Options   uint32
	Raw       []byte
	Dx        []float64
}

// Type returns TypeExtTextOutA.
func (ExtTextOutA) Type() Type { return TypeExtTextOutA }

func (r ExtTextOutA) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r ExtTextOutA) Draw(e *emf.Engine) error {
	text, err := DecodeANSI(r.Raw, e.Properties().Font.Charset)
	if err != nil {
		return err
	}
	return drawText(e, text, r.Reference, r.Dx)
}

// drawText positions a run according to the text alignment mode and draws
// it. With AlignUpdateCP the run starts at the current point, and a
// left-aligned run moves the current point to its end.
func drawText(e *emf.Engine, text string, ref emf.Point, dx []float64) error {
	prop := e.Properties()
	align := prop.TextAlign

	origin := ref
	if align&AlignUpdateCP != 0 {
		origin = prop.Location
	}

	m, err := shape.Measure(text, prop.Font)
	if err != nil {
		return err
	}
	width := m.Advance
	if len(dx) > 0 && len(dx) == utf8.RuneCountInString(text) {
		width = 0
		for _, d := range dx {
			width += d
		}
	}

	horizontal := align & AlignCenter
	switch horizontal {
	case AlignCenter:
		origin.X -= width / 2
	case AlignRight:
		origin.X -= width
	}
	switch align & AlignBaseline {
	case AlignBaseline:
	case AlignBottom:
		origin.Y -= m.Descent
	default:
		origin.Y += m.Ascent
	}

	e.DrawText(text, origin, dx)

	if align&AlignUpdateCP != 0 && horizontal != AlignCenter && horizontal != AlignRight {
		prop.Location.X = origin.X + width
	}
	return nil
}
