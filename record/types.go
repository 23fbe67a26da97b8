package record

import "fmt"

// Type is the EMR record type number.
type Type uint32

// Record types implemented by this package.
const (
	TypeHeader                 Type = 1
	TypePolyBezierTo16         Type = 88
	TypePolyline16             Type = 87
	TypePolygon16              Type = 86
	TypePolylineTo16           Type = 89
	TypeEOF                    Type = 14
	TypeSetTextAlign           Type = 22
	TypeSetTextColor           Type = 24
	TypeMoveToEx               Type = 27
	TypeSaveDC                 Type = 33
	TypeRestoreDC              Type = 34
	TypeSelectObject           Type = 37
	TypeCreatePen              Type = 38
	TypeCreateBrushIndirect    Type = 39
	TypeDeleteObject           Type = 40
	TypeRectangle              Type = 43
	TypeLineTo                 Type = 54
	TypeBeginPath              Type = 59
	TypeEndPath                Type = 60
	TypeCloseFigure            Type = 61
	TypeFillPath               Type = 62
	TypeStrokeAndFillPath      Type = 63
	TypeStrokePath             Type = 64
	TypeAbortPath              Type = 68
	TypeExtCreateFontIndirectW Type = 82
	TypeExtTextOutA            Type = 83
	TypeExtTextOutW            Type = 84
)

var typeNames = map[Type]string{
	TypeHeader:                 "Header",
	TypePolyBezierTo16:         "PolyBezierTo16",
	TypePolyline16:             "Polyline16",
	TypePolygon16:              "Polygon16",
	TypePolylineTo16:           "PolylineTo16",
	TypeEOF:                    "EOF",
	TypeSetTextAlign:           "SetTextAlign",
	TypeSetTextColor:           "SetTextColor",
	TypeMoveToEx:               "MoveToEx",
	TypeSaveDC:                 "SaveDC",
	TypeRestoreDC:              "RestoreDC",
	TypeSelectObject:           "SelectObject",
	TypeCreatePen:              "CreatePen",
	TypeCreateBrushIndirect:    "CreateBrushIndirect",
	TypeDeleteObject:           "DeleteObject",
	TypeRectangle:              "Rectangle",
	TypeLineTo:                 "LineTo",
	TypeBeginPath:              "BeginPath",
	TypeEndPath:                "EndPath",
	TypeCloseFigure:            "CloseFigure",
	TypeFillPath:               "FillPath",
	TypeStrokeAndFillPath:      "StrokeAndFillPath",
	TypeStrokePath:             "StrokePath",
	TypeAbortPath:              "AbortPath",
	TypeExtCreateFontIndirectW: "ExtCreateFontIndirectW",
	TypeExtTextOutA:            "ExtTextOutA",
	TypeExtTextOutW:            "ExtTextOutW",
}

// String returns the record type name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint32(t))
}
