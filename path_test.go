package emf

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathElements(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.Close()

	want := []PathElement{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(3, 4)},
		QuadTo{Control: Pt(5, 6), Point: Pt(7, 8)},
		CubicTo{Control1: Pt(9, 10), Control2: Pt(11, 12), Point: Pt(13, 14)},
		Close{},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}
	if cp := p.CurrentPoint(); cp != Pt(1, 2) {
		t.Errorf("CurrentPoint() after Close = %+v, want subpath start", cp)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if !p.Bounds().IsEmpty() {
		t.Errorf("empty path Bounds() = %+v", p.Bounds())
	}
	p.MoveTo(10, 20)
	p.LineTo(-5, 30)
	p.CubicTo(0, 50, 40, 0, 20, 25)
	want := Rect{X: -5, Y: 0, W: 45, H: 50}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 2, 1)
	got := p.Transform(Translate(10, 10).Multiply(Scale(2, 3)))
	want := Rect{X: 10, Y: 10, W: 4, H: 3}
	if b := got.Bounds(); b != want {
		t.Errorf("transformed Bounds() = %+v, want %+v", b, want)
	}
	if p.Bounds() != (Rect{W: 2, H: 1}) {
		t.Error("Transform modified the receiver")
	}

	r := NewPath()
	r.MoveTo(1, 0)
	r = r.Transform(Rotate(math.Pi / 2))
	pt := r.CurrentPoint()
	if math.Abs(pt.X) > 1e-12 || math.Abs(pt.Y-1) > 1e-12 {
		t.Errorf("rotated point = %+v, want (0, 1)", pt)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	c := p.Clone()
	c.LineTo(2, 2)
	if p.Len() != 2 || c.Len() != 3 {
		t.Errorf("Len() original = %d, clone = %d, want 2 and 3", p.Len(), c.Len())
	}
	if p.CurrentPoint() != Pt(1, 1) {
		t.Errorf("original CurrentPoint() = %+v", p.CurrentPoint())
	}
}

func TestRect(t *testing.T) {
	r := RectFromLTRB(10, 20, 30, 60)
	if r != (Rect{X: 10, Y: 20, W: 20, H: 40}) {
		t.Errorf("RectFromLTRB = %+v", r)
	}
	if c := r.Center(); c != Pt(20, 40) {
		t.Errorf("Center() = %+v", c)
	}
	u := r.Union(Rect{X: 0, Y: 0, W: 5, H: 5})
	if u != (Rect{X: 0, Y: 0, W: 30, H: 60}) {
		t.Errorf("Union() = %+v", u)
	}
	if got := r.Union(Rect{}); got != r {
		t.Errorf("Union(empty) = %+v, want %+v", got, r)
	}

	empty := []Rect{{}, {W: 1}, {H: 1}, {W: -1, H: 1}, {W: math.NaN(), H: 1}, {W: 1, H: math.NaN()}}
	for _, e := range empty {
		if !e.IsEmpty() {
			t.Errorf("%+v.IsEmpty() = false", e)
		}
	}
	if r.IsEmpty() {
		t.Errorf("%+v.IsEmpty() = true", r)
	}
}
