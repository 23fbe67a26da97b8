package record

import "github.com/gogpu/emf"

// CreatePen creates a pen at Index in the object table.
type CreatePen struct {
	Index uint32
	Pen   emf.Pen
}

// Type returns TypeCreatePen.
func (CreatePen) Type() Type { return TypeCreatePen }

func (r CreatePen) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r CreatePen) Draw(e *emf.Engine) error {
	return e.SetObject(emf.PenObject{Pen: r.Pen}, int(r.Index))
}

// CreateBrushIndirect creates a brush at Index in the object table.
type CreateBrushIndirect struct {
	Index uint32
	Brush emf.Brush
}

// Type returns TypeCreateBrushIndirect.
func (CreateBrushIndirect) Type() Type { return TypeCreateBrushIndirect }

func (r CreateBrushIndirect) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r CreateBrushIndirect) Draw(e *emf.Engine) error {
	return e.SetObject(emf.BrushObject{Brush: r.Brush}, int(r.Index))
}

// ExtCreateFontIndirectW creates a logical font at Index in the object
// table.
type ExtCreateFontIndirectW struct {
	Index uint32
	Font  emf.Font
}

// Type returns TypeExtCreateFontIndirectW.
func (ExtCreateFontIndirectW) Type() Type { return TypeExtCreateFontIndirectW }

func (r ExtCreateFontIndirectW) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r ExtCreateFontIndirectW) Draw(e *emf.Engine) error {
	return e.SetObject(emf.FontObject{Font: r.Font}, int(r.Index))
}

// SelectObject makes a table object or stock object current.
type SelectObject struct {
	Index uint32
}

// Type returns TypeSelectObject.
func (SelectObject) Type() Type { return TypeSelectObject }

func (r SelectObject) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r SelectObject) Draw(e *emf.Engine) error {
	return e.ApplyObject(r.Index)
}

// DeleteObject frees a table slot for reuse.
type DeleteObject struct {
	Index uint32
}

// Type returns TypeDeleteObject.
func (DeleteObject) Type() Type { return TypeDeleteObject }

func (r DeleteObject) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r DeleteObject) Draw(e *emf.Engine) error {
	return e.DeleteObject(r.Index)
}
