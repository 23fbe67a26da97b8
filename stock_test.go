package emf

import (
	"errors"
	"testing"
)

func TestEMFStockObjects(t *testing.T) {
	base := func() *Properties {
		p := DefaultProperties()
		p.Pen = Pen{Style: PenDash | PenGeometric, Width: 7, Color: RGB(10, 20, 30)}
		p.Brush = Brush{Style: BrushHatched, Color: RGB(40, 50, 60), Hatch: 4}
		return p
	}

	tests := []struct {
		obj       StockObject
		wantPen   Pen
		wantBrush Brush
	}{
		{WhiteBrush, base().Pen, Brush{Style: BrushSolid, Color: White, Hatch: 4}},
		{LtGrayBrush, base().Pen, Brush{Style: BrushSolid, Color: LtGray, Hatch: 4}},
		{GrayBrush, base().Pen, Brush{Style: BrushSolid, Color: Gray, Hatch: 4}},
		{DkGrayBrush, base().Pen, Brush{Style: BrushSolid, Color: DkGray, Hatch: 4}},
		{BlackBrush, base().Pen, Brush{Style: BrushSolid, Color: Black, Hatch: 4}},
		{NullBrush, base().Pen, Brush{Style: BrushNull, Color: RGB(40, 50, 60), Hatch: 4}},
		{WhitePen, Pen{Style: PenSolid, Width: 1, Color: White}, base().Brush},
		{BlackPen, Pen{Style: PenSolid, Width: 1, Color: Black}, base().Brush},
		{NullPen, Pen{Style: PenNull, Width: 7, Color: RGB(10, 20, 30)}, base().Brush},
		{SystemFont, base().Pen, base().Brush},
		{DefaultPalette, base().Pen, base().Brush},
		{DCBrush, base().Pen, base().Brush},
		{DCPen, base().Pen, base().Brush},
	}
	for _, tt := range tests {
		t.Run(tt.obj.String(), func(t *testing.T) {
			p := base()
			if err := EMFStockObjects.SelectStock(tt.obj, p); err != nil {
				t.Fatalf("SelectStock() error = %v", err)
			}
			if p.Pen != tt.wantPen {
				t.Errorf("pen = %+v, want %+v", p.Pen, tt.wantPen)
			}
			if p.Brush != tt.wantBrush {
				t.Errorf("brush = %+v, want %+v", p.Brush, tt.wantBrush)
			}
		})
	}
}

func TestEMFStockObjectsUnknown(t *testing.T) {
	for _, idx := range []uint32{0x80000009, 0x80000014, 0xFFFFFFFF} {
		err := EMFStockObjects.SelectStock(StockObject(idx), DefaultProperties())
		if !errors.Is(err, ErrUnresolvedStockObject) {
			t.Errorf("SelectStock(%#x) error = %v, want ErrUnresolvedStockObject", idx, err)
		}
	}
}

func TestIsStockIndex(t *testing.T) {
	tests := []struct {
		index uint32
		want  bool
	}{
		{0, false},
		{1, false},
		{0x7FFFFFFF, false},
		{0x80000000, true},
		{0x80000013, true},
		{0x80000009, true},
	}
	for _, tt := range tests {
		if got := IsStockIndex(tt.index); got != tt.want {
			t.Errorf("IsStockIndex(%#x) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestStockObjectString(t *testing.T) {
	if s := NullBrush.String(); s != "NULL_BRUSH" {
		t.Errorf("NullBrush.String() = %q", s)
	}
	if s := StockObject(0x80000009).String(); s != "UNKNOWN_STOCK_OBJECT" {
		t.Errorf("String() of gap index = %q", s)
	}
}

func TestHasModeledEffect(t *testing.T) {
	for obj := WhiteBrush; obj <= NullPen; obj++ {
		if !obj.HasModeledEffect() {
			t.Errorf("%v.HasModeledEffect() = false", obj)
		}
	}
	for obj := OEMFixedFont; obj <= DCPen; obj++ {
		if obj.HasModeledEffect() {
			t.Errorf("%v.HasModeledEffect() = true", obj)
		}
	}
}
