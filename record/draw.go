package record

import "github.com/gogpu/emf"

// pointsBounds returns the bounding box of pts.
func pointsBounds(pts []emf.Point) emf.Rect {
	if len(pts) == 0 {
		return emf.Rect{}
	}
	x0, y0, x1, y1 := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		x0, y0 = min(x0, p.X), min(y0, p.Y)
		x1, y1 = max(x1, p.X), max(y1, p.Y)
	}
	return emf.RectFromLTRB(x0, y0, x1, y1)
}

// LineTo draws a line from the current point to Point.
type LineTo struct {
	Point emf.Point
}

// Type returns TypeLineTo.
func (LineTo) Type() Type { return TypeLineTo }

func (r LineTo) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r LineTo) Draw(e *emf.Engine) error {
	e.BuildPath(func(p *emf.Path) {
		p.LineTo(r.Point.X, r.Point.Y)
	})
	return nil
}

// PolylineTo16 draws connected lines starting at the current point.
type PolylineTo16 struct {
	Bounds emf.Rect
	Points []emf.Point
}

// Type returns TypePolylineTo16.
func (PolylineTo16) Type() Type { return TypePolylineTo16 }

func (r PolylineTo16) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r PolylineTo16) Draw(e *emf.Engine) error {
	e.BuildPath(func(p *emf.Path) {
		for _, pt := range r.Points {
			p.LineTo(pt.X, pt.Y)
		}
	})
	return nil
}

// PolyBezierTo16 draws cubic Bezier curves starting at the current point.
// Points holds three points per curve: two control points and an end point.
type PolyBezierTo16 struct {
	Bounds emf.Rect
	Points []emf.Point
}

// Type returns TypePolyBezierTo16.
func (PolyBezierTo16) Type() Type { return TypePolyBezierTo16 }

func (r PolyBezierTo16) String() string { return r.Type().String() }

// Draw implements emf.Record. Trailing points that do not form a full
// curve are ignored.
func (r PolyBezierTo16) Draw(e *emf.Engine) error {
	e.BuildPath(func(p *emf.Path) {
		pts := r.Points
		for len(pts) >= 3 {
			p.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			pts = pts[3:]
		}
	})
	return nil
}

// Polyline16 draws connected lines through Points. It is a bounded
// record: its points are remapped into Bounds.
type Polyline16 struct {
	Bounds emf.Rect
	Points []emf.Point
}

// Type returns TypePolyline16.
func (Polyline16) Type() Type { return TypePolyline16 }

func (r Polyline16) String() string { return r.Type().String() }

// RecordBounds implements emf.Bounded.
func (r Polyline16) RecordBounds() emf.Rect { return r.Bounds }

// ShapeBounds implements emf.Bounded.
func (r Polyline16) ShapeBounds(*emf.Engine) (emf.Rect, error) {
	return pointsBounds(r.Points), nil
}

// Draw implements emf.Record.
func (r Polyline16) Draw(e *emf.Engine) error {
	if len(r.Points) == 0 {
		return nil
	}
	e.BuildPath(func(p *emf.Path) {
		p.MoveTo(r.Points[0].X, r.Points[0].Y)
		for _, pt := range r.Points[1:] {
			p.LineTo(pt.X, pt.Y)
		}
	})
	return nil
}

// Polygon16 draws a closed polygon, filled with the current brush and
// outlined with the current pen. It is a bounded record.
type Polygon16 struct {
	Bounds emf.Rect
	Points []emf.Point
}

// Type returns TypePolygon16.
func (Polygon16) Type() Type { return TypePolygon16 }

func (r Polygon16) String() string { return r.Type().String() }

// RecordBounds implements emf.Bounded.
func (r Polygon16) RecordBounds() emf.Rect { return r.Bounds }

// ShapeBounds implements emf.Bounded.
func (r Polygon16) ShapeBounds(*emf.Engine) (emf.Rect, error) {
	return pointsBounds(r.Points), nil
}

// Draw implements emf.Record.
func (r Polygon16) Draw(e *emf.Engine) error {
	if len(r.Points) == 0 {
		return nil
	}
	return drawClosed(e, func(p *emf.Path) {
		p.MoveTo(r.Points[0].X, r.Points[0].Y)
		for _, pt := range r.Points[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	})
}

// Rectangle draws a rectangle, filled and outlined.
type Rectangle struct {
	Box emf.Rect
}

// Type returns TypeRectangle.
func (Rectangle) Type() Type { return TypeRectangle }

func (r Rectangle) String() string { return r.Type().String() }

// Draw implements emf.Record.
func (r Rectangle) Draw(e *emf.Engine) error {
	return drawClosed(e, func(p *emf.Path) {
		p.Rectangle(r.Box.X, r.Box.Y, r.Box.W, r.Box.H)
	})
}

// drawClosed adds a closed shape. Inside a path bracket the shape joins
// the bracket path; otherwise it is filled and stroked at once. Closed
// shapes leave the current point unchanged.
func drawClosed(e *emf.Engine, build func(p *emf.Path)) error {
	prop := e.Properties()
	if prop.PathBracket {
		loc := prop.Location
		e.BuildPath(build)
		prop.Location = loc
		return nil
	}
	path := emf.NewPath()
	build(path)
	e.FillPath(path)
	e.StrokePath(path)
	return nil
}
