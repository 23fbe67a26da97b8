package emf

import (
	"math"
	"testing"
)

func matrixNear(a, b Matrix) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps && math.Abs(a.C-b.C) < eps &&
		math.Abs(a.D-b.D) < eps && math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if got != Pt(12, 2) {
		t.Errorf("TransformPoint = %+v, want (12, 2)", got)
	}

	m = Scale(2, 2).Multiply(Translate(10, 0))
	got = m.TransformPoint(Pt(1, 1))
	if got != Pt(22, 2) {
		t.Errorf("TransformPoint = %+v, want (22, 2)", got)
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 200).Multiply(Scale(3, 4))
	if got := m.TransformVector(Pt(1, 1)); got != Pt(3, 4) {
		t.Errorf("TransformVector = %+v, want (3, 4)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(5, -3)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(math.Pi / 6)},
		{"composite", Translate(4, 5).Multiply(Rotate(1)).Multiply(Scale(3, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.m.Invert())
			if !matrixNear(got, Identity()) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
		})
	}

	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform", Scale(3, 3), 3},
		{"anisotropic", Scale(2, 8), 4},
		{"mirrored", Scale(-2, 2), 2},
		{"rotation", Rotate(0.7), 1},
		{"translation", Translate(50, 50), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
	if (Matrix{}).IsIdentity() {
		t.Error("zero matrix reported as identity")
	}
}
