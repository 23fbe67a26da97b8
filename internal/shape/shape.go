// Package shape measures text runs for layout decisions such as text
// alignment. Logical fonts are matched to the Go fonts: fixed-pitch
// requests get Go Mono, everything else Go Regular.
package shape

import (
	"bytes"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/emf"
	"github.com/gogpu/emf/internal/cache"
)

// DefaultSize is used for fonts with a zero height.
const DefaultSize = 12

// Metrics describes a measured run in the units of the font height.
type Metrics struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// face pairs the shaping font with the outline font of the same data.
type face struct {
	shaping *gotext.Font
	outline *opentype.Font
}

var (
	loadOnce sync.Once
	regular  face
	mono     face
	loadErr  error

	// HarfbuzzShaper keeps internal buffers and is not safe for
	// concurrent use; pool one per caller.
	shaperPool = sync.Pool{
		New: func() any { return &shaping.HarfbuzzShaper{} },
	}

	// measured holds Measure results by string, face and size.
	measured = cache.New[measureKey, Metrics](1024)
)

type measureKey struct {
	text string
	mono bool
	size float64
}

func load() {
	if regular, loadErr = parse(goregular.TTF); loadErr != nil {
		return
	}
	mono, loadErr = parse(gomono.TTF)
}

func parse(data []byte) (face, error) {
	f, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return face{}, err
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return face{}, err
	}
	return face{shaping: f.Font, outline: otf}, nil
}

func match(f emf.Font) (face, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return face{}, loadErr
	}
	if f.FixedPitch() {
		return mono, nil
	}
	return regular, nil
}

// Size returns the em size of a logical font. EMF stores negative heights
// for character height and positive ones for cell height; both are
// treated as the em size here.
func Size(f emf.Font) float64 {
	if size := math.Abs(f.Height); size > 0 {
		return size
	}
	return DefaultSize
}

// Outline returns the outline font matched to f, for surfaces that draw
// glyphs.
func Outline(f emf.Font) (*opentype.Font, error) {
	fc, err := match(f)
	if err != nil {
		return nil, err
	}
	return fc.outline, nil
}

// Measure shapes text in the face matched to f and returns its advance
// and vertical metrics.
func Measure(text string, f emf.Font) (Metrics, error) {
	fc, err := match(f)
	if err != nil {
		return Metrics{}, err
	}
	size := Size(f)
	key := measureKey{text: text, mono: f.FixedPitch(), size: size}
	if m, ok := measured.Get(key); ok {
		return m, nil
	}

	var buf sfnt.Buffer
	vm, err := fc.outline.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}, err
	}
	m := Metrics{
		Ascent:  fixedToFloat(vm.Ascent),
		Descent: fixedToFloat(vm.Descent),
	}
	if text == "" {
		return m, nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(fc.shaping),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	m.Advance = fixedToFloat(out.Advance)
	measured.Set(key, m)
	return m, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
