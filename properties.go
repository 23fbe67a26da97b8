package emf

// PenStyle is an EMF pen style: a line dash in the low nibble combined with
// end-cap, join and type flags.
type PenStyle uint32

// Line dash values (low nibble of PenStyle).
const (
	PenSolid       PenStyle = 0x0
	PenDash        PenStyle = 0x1
	PenDot         PenStyle = 0x2
	PenDashDot     PenStyle = 0x3
	PenDashDotDot  PenStyle = 0x4
	PenNull        PenStyle = 0x5
	PenInsideFrame PenStyle = 0x6
	PenUserStyle   PenStyle = 0x7
	PenAlternate   PenStyle = 0x8
)

// Pen flags.
const (
	PenEndCapSquare PenStyle = 0x0100
	PenEndCapFlat   PenStyle = 0x0200
	PenJoinBevel    PenStyle = 0x1000
	PenJoinMiter    PenStyle = 0x2000
	PenGeometric    PenStyle = 0x10000
)

// Dash returns the line dash part of the style.
func (s PenStyle) Dash() PenStyle { return s & 0x0F }

// IsNull reports whether the pen draws nothing.
func (s PenStyle) IsNull() bool { return s.Dash() == PenNull }

// IsCosmetic reports whether the pen width is in device units
// regardless of the world transform.
func (s PenStyle) IsCosmetic() bool { return s&PenGeometric == 0 }

// DashPattern returns the dash pattern in multiples of the pen width, or
// nil for a solid line.
func (s PenStyle) DashPattern() []float64 {
	switch s.Dash() {
	case PenDash:
		return []float64{10, 8}
	case PenDot, PenAlternate:
		return []float64{2, 4}
	case PenDashDot:
		return []float64{10, 8, 2, 8}
	case PenDashDotDot:
		return []float64{10, 4, 2, 4, 2, 4}
	}
	return nil
}

// BrushStyle is an EMF brush style.
type BrushStyle uint32

// Brush styles.
const (
	BrushSolid   BrushStyle = 0
	BrushNull    BrushStyle = 1
	BrushHatched BrushStyle = 2
	BrushPattern BrushStyle = 3
)

// Charset is a LOGFONT character set.
type Charset uint8

// Character sets used by text records.
const (
	CharsetANSI        Charset = 0
	CharsetDefault     Charset = 1
	CharsetSymbol      Charset = 2
	CharsetShiftJIS    Charset = 128
	CharsetHangul      Charset = 129
	CharsetGB2312      Charset = 134
	CharsetChineseBig5 Charset = 136
	CharsetGreek       Charset = 161
	CharsetTurkish     Charset = 162
	CharsetVietnamese  Charset = 163
	CharsetHebrew      Charset = 177
	CharsetArabic      Charset = 178
	CharsetBaltic      Charset = 186
	CharsetRussian     Charset = 204
	CharsetThai        Charset = 222
	CharsetEastEurope  Charset = 238
	CharsetOEM         Charset = 255
)

// Pen is a stroke definition.
type Pen struct {
	Style PenStyle
	Width float64
	Color ColorRef
}

// Brush is a fill definition.
type Brush struct {
	Style BrushStyle
	Color ColorRef
	Hatch uint32
}

// Font is a logical font as selected by a font record. The engine treats
// it as opaque; surfaces map it to a concrete face.
type Font struct {
	FaceName       string
	Height         float64
	Weight         int
	Italic         bool
	Underline      bool
	StrikeOut      bool
	Escapement     float64 // tenths of degrees
	Charset        Charset
	PitchAndFamily uint8
}

// FixedPitch reports whether the font requests a fixed-width face.
func (f Font) FixedPitch() bool {
	return f.PitchAndFamily&0x03 == 1
}

// Properties holds the mutable graphics state of a playback session.
//
// Path is non-nil only while a path is being built: for the lifetime of a
// bracket (PathBracket is true) or until a bracket path is submitted.
type Properties struct {
	Pen         Pen
	Brush       Brush
	Font        Font
	Location    Point
	Path        *Path
	PathBracket bool
	TextColor   ColorRef
	TextAlign   uint32
}

// DefaultProperties returns the state of a freshly created device
// context: a black cosmetic pen, a white solid brush and black text.
func DefaultProperties() *Properties {
	return &Properties{
		Pen:       Pen{Style: PenSolid, Width: 1, Color: Black},
		Brush:     Brush{Style: BrushSolid, Color: White},
		Font:      Font{Height: 12, Weight: 400, Charset: CharsetANSI},
		TextColor: Black,
	}
}

// Clone returns a deep copy. The path under construction is copied so
// that changes after a save never leak into the saved snapshot.
func (p *Properties) Clone() *Properties {
	c := *p
	if p.Path != nil {
		c.Path = p.Path.Clone()
	}
	return &c
}
