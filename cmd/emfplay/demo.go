package main

import (
	"github.com/gogpu/emf"
	"github.com/gogpu/emf/record"
)

// demoRecords builds a stream that exercises the object table, stock
// objects, save/restore, path brackets, bounded records and text.
func demoRecords(frame emf.Rect) []emf.Record {
	w, h := frame.W, frame.H
	return []emf.Record{
		record.Header{Bounds: frame, Frame: frame},

		// Background and frame.
		record.SelectObject{Index: uint32(emf.LtGrayBrush)},
		record.SelectObject{Index: uint32(emf.NullPen)},
		record.Rectangle{Box: emf.Rect{W: w, H: h}},

		record.CreatePen{Index: 1, Pen: emf.Pen{Style: emf.PenSolid | emf.PenGeometric, Width: 4, Color: emf.RGB(0x20, 0x40, 0xA0)}},
		record.CreateBrushIndirect{Index: 2, Brush: emf.Brush{Style: emf.BrushSolid, Color: emf.RGB(0xF0, 0xC0, 0x30)}},
		record.ExtCreateFontIndirectW{Index: 3, Font: emf.Font{FaceName: "Arial", Height: -24, Weight: 700}},

		// Save, draw with the created objects, restore the stock state.
		record.SaveDC{},
		record.SelectObject{Index: 1},
		record.SelectObject{Index: 2},
		record.Polygon16{
			Bounds: emf.Rect{X: w * 0.1, Y: h * 0.1, W: w * 0.3, H: h * 0.3},
			Points: []emf.Point{{X: 0, Y: 10}, {X: 5, Y: 0}, {X: 10, Y: 10}},
		},
		record.MoveToEx{Point: emf.Pt(w*0.5, h*0.1)},
		record.PolyBezierTo16{Points: []emf.Point{
			{X: w * 0.6, Y: h * 0.4}, {X: w * 0.8, Y: h * 0.0}, {X: w * 0.9, Y: h * 0.3},
		}},
		record.RestoreDC{SavedDC: -1},

		// A dashed outline built inside a path bracket.
		record.CreatePen{Index: 4, Pen: emf.Pen{Style: emf.PenDash, Width: 1, Color: emf.RGB(0xC0, 0x20, 0x20)}},
		record.SelectObject{Index: 4},
		record.SelectObject{Index: uint32(emf.WhiteBrush)},
		record.BeginPath{},
		record.MoveToEx{Point: emf.Pt(w*0.1, h*0.55)},
		record.LineTo{Point: emf.Pt(w*0.45, h*0.55)},
		record.LineTo{Point: emf.Pt(w*0.45, h*0.9)},
		record.LineTo{Point: emf.Pt(w*0.1, h*0.9)},
		record.CloseFigure{},
		record.EndPath{},
		record.StrokeAndFillPath{},

		// Text in the created font, centered.
		record.SelectObject{Index: 3},
		record.SetTextColor{Color: emf.RGB(0x10, 0x10, 0x10)},
		record.SetTextAlign{Mode: record.AlignCenter | record.AlignBaseline},
		record.ExtTextOutW{Reference: emf.Pt(w*0.72, h*0.72), Text: "Enhanced Metafile"},
		record.ExtTextOutA{Reference: emf.Pt(w*0.72, h*0.82), Raw: []byte("caf\xe9 cr\xe8me")},

		record.DeleteObject{Index: 4},
		record.EOF{},
	}
}
