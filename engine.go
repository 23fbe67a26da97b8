package emf

import (
	"fmt"
	"log/slog"
)

// BoundsMapper composes onto s the transform that maps a bounded record's
// shape rectangle into its target rectangle. Both rectangles are non-empty
// when it is called.
type BoundsMapper func(s Surface, target, shape Rect)

// FitShapeToTarget scales shape about its center, independently per axis,
// so that it fills target, then moves its center onto target's center.
func FitShapeToTarget(s Surface, target, shape Rect) {
	tc, sc := target.Center(), shape.Center()
	s.Translate(tc.X-sc.X, tc.Y-sc.Y)
	s.Translate(sc.X, sc.Y)
	s.Scale(target.W/shape.W, target.H/shape.H)
	s.Translate(-sc.X, -sc.Y)
}

// Engine replays decoded metafile records onto a Surface.
//
// It owns the current graphics state, the stack of saved states, the
// stack of saved surface transforms and the object table. Records are
// processed strictly in order; every record sees the state left by all
// earlier ones.
//
// An Engine is NOT safe for concurrent use and serves one playback
// session. Create a new Engine for each independent playback.
type Engine struct {
	surface Surface
	bounds  Rect

	prop       *Properties
	propStack  stack[*Properties]
	transforms stack[Matrix]
	objects    *ObjectTable

	stock     StockCatalog
	mapBounds BoundsMapper
	log       *slog.Logger
}

// NewEngine creates an engine drawing onto s. Bounds is the device-space
// frame of the metafile being played.
func NewEngine(s Surface, bounds Rect, opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return &Engine{
		surface:   s,
		bounds:    bounds,
		prop:      DefaultProperties(),
		objects:   NewObjectTable(),
		stock:     o.stock,
		mapBounds: o.boundsMapper,
		log:       o.logger,
	}
}

// Surface returns the surface the engine draws onto.
func (e *Engine) Surface() Surface { return e.surface }

// Bounds returns the frame the engine was created with.
func (e *Engine) Bounds() Rect { return e.bounds }

// Properties returns the current graphics state. The pointer stays valid
// until the next SaveProperties or RestoreProperties.
func (e *Engine) Properties() *Properties { return e.prop }

// Objects returns the object table.
func (e *Engine) Objects() *ObjectTable { return e.objects }

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger { return e.log }

// Replay plays one record.
//
// For a Bounded record the surface transform is saved, the shape is
// remapped into the record bounds, the record draws, and the transform is
// restored. The restore happens on every exit path, including a failing
// or panicking record, so the transform stack depth is the same before
// and after the call. Errors from the record are returned unchanged.
func (e *Engine) Replay(rec Record) (err error) {
	e.log.Debug("emf: replay", "record", recordName(rec))

	b, ok := rec.(Bounded)
	if !ok {
		return rec.Draw(e)
	}

	e.saveTransform()
	defer func() {
		if rerr := e.restoreTransform(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := e.remap(b); err != nil {
		return err
	}
	return rec.Draw(e)
}

// PlayAll replays records in order and stops at the first failure.
// Effects of records played before the failure remain on the surface.
func (e *Engine) PlayAll(records []Record) error {
	for i, rec := range records {
		if err := e.Replay(rec); err != nil {
			return fmt.Errorf("emf: record %d (%s): %w", i, recordName(rec), err)
		}
	}
	return nil
}

// remap composes the bounds transform of b onto the surface. Missing or
// empty bounds on either side leave the transform untouched.
func (e *Engine) remap(b Bounded) error {
	target := b.RecordBounds()
	if target.IsEmpty() {
		e.log.Debug("emf: remap skipped", "reason", "empty record bounds")
		return nil
	}
	shape, err := b.ShapeBounds(e)
	if err != nil {
		return err
	}
	if shape.IsEmpty() {
		e.log.Debug("emf: remap skipped", "reason", "empty shape bounds")
		return nil
	}
	e.mapBounds(e.surface, target, shape)
	return nil
}

func (e *Engine) saveTransform() {
	e.transforms.push(e.surface.Transform())
}

func (e *Engine) restoreTransform() error {
	m, err := e.transforms.pop()
	if err != nil {
		return err
	}
	e.surface.SetTransform(m)
	return nil
}

// TransformDepth returns the number of saved surface transforms.
func (e *Engine) TransformDepth() int { return e.transforms.len() }

// SaveProperties pushes the current graphics state. Later changes apply
// to a copy until the matching RestoreProperties.
func (e *Engine) SaveProperties() {
	e.propStack.push(e.prop)
	e.prop = e.prop.Clone()
}

// RestoreProperties discards the current graphics state and makes the
// most recently saved one current again. It fails with ErrStackUnderflow
// when nothing was saved.
func (e *Engine) RestoreProperties() error {
	p, err := e.propStack.pop()
	if err != nil {
		return err
	}
	e.prop = p
	return nil
}

// RestorePropertiesTo restores a state relative to the top of the stack:
// -1 is the most recent save, -2 the one before, and so on. The states
// in between are discarded.
func (e *Engine) RestorePropertiesTo(n int) error {
	if n >= 0 || -n > e.propStack.len() {
		return fmt.Errorf("%w: restore %d with %d saved states", ErrStackUnderflow, n, e.propStack.len())
	}
	for ; n < -1; n++ {
		if _, err := e.propStack.pop(); err != nil {
			return err
		}
	}
	return e.RestoreProperties()
}

// PropertyDepth returns the number of saved graphics states.
func (e *Engine) PropertyDepth() int { return e.propStack.len() }

// BuildPath lets build append geometry to a path and updates the current
// point to where the path ends.
//
// Inside a path bracket, build extends the bracket's path and nothing is
// drawn; the record that ends the bracket submits it. Outside a bracket,
// build receives a new path starting at the current point, which is
// stroked with the current pen and then discarded.
func (e *Engine) BuildPath(build func(p *Path)) {
	prop := e.prop
	bracket := prop.PathBracket

	var path *Path
	if bracket {
		if prop.Path == nil {
			prop.Path = NewPath()
		}
		path = prop.Path
		if path.Len() == 0 {
			path.MoveTo(prop.Location.X, prop.Location.Y)
		}
	} else {
		path = NewPath()
		path.MoveTo(prop.Location.X, prop.Location.Y)
	}

	build(path)

	prop.Location = path.CurrentPoint()
	if !bracket {
		e.StrokePath(path)
	}
}

// BeginPath opens a path bracket with a new, empty path. A path left
// over from an earlier bracket is discarded.
func (e *Engine) BeginPath() {
	e.prop.Path = NewPath()
	e.prop.PathBracket = true
}

// EndPath closes the path bracket. The path is kept for a later stroke,
// fill or clip record.
func (e *Engine) EndPath() error {
	if !e.prop.PathBracket {
		return fmt.Errorf("%w: end path outside bracket", ErrNoPath)
	}
	e.prop.PathBracket = false
	return nil
}

// AbortPath closes any open bracket and discards the path.
func (e *Engine) AbortPath() {
	e.prop.Path = nil
	e.prop.PathBracket = false
}

// CloseFigure closes the current subpath of the bracket path.
func (e *Engine) CloseFigure() error {
	if !e.prop.PathBracket || e.prop.Path == nil {
		return fmt.Errorf("%w: close figure outside bracket", ErrNoPath)
	}
	e.prop.Path.Close()
	e.prop.Location = e.prop.Path.CurrentPoint()
	return nil
}

// SubmitPath fills and/or strokes the path built by the last bracket and
// then discards it. It fails if no closed bracket path exists.
func (e *Engine) SubmitPath(fill, stroke bool) error {
	path := e.prop.Path
	if path == nil || e.prop.PathBracket {
		return ErrNoPath
	}
	if fill {
		e.FillPath(path)
	}
	if stroke {
		e.StrokePath(path)
	}
	e.prop.Path = nil
	return nil
}

// StrokePath strokes path with the current pen. A null pen draws nothing.
func (e *Engine) StrokePath(path *Path) {
	if e.prop.Pen.Style.IsNull() {
		return
	}
	e.surface.StrokePath(path, e.prop.Pen)
}

// FillPath fills path with the current brush. A null brush draws nothing.
func (e *Engine) FillPath(path *Path) {
	if e.prop.Brush.Style == BrushNull {
		return
	}
	e.surface.FillPath(path, e.prop.Brush)
}

// DrawText draws a text run with the current font and text color.
func (e *Engine) DrawText(text string, origin Point, dx []float64) {
	e.surface.DrawText(TextRun{
		Text:   text,
		Origin: origin,
		Font:   e.prop.Font,
		Color:  e.prop.TextColor,
		Dx:     dx,
	})
}

// AddObject appends entry to the object table and returns its index.
func (e *Engine) AddObject(entry ObjectEntry) int {
	return e.objects.Add(entry)
}

// SetObject stores entry at index. See ObjectTable.Set.
func (e *Engine) SetObject(entry ObjectEntry, index int) error {
	return e.objects.Set(entry, index)
}

// ApplyObject selects an object into the graphics state. Stock indices
// are resolved through the stock catalog without touching the table.
func (e *Engine) ApplyObject(index uint32) error {
	if IsStockIndex(index) {
		obj := StockObject(index)
		if !obj.HasModeledEffect() {
			e.log.Debug("emf: stock object without modeled effect", "object", obj.String())
		}
		return e.stock.SelectStock(obj, e.prop)
	}
	return e.objects.Apply(int(index), e.prop)
}

// DeleteObject clears a table slot. Deleting a stock object is a no-op.
func (e *Engine) DeleteObject(index uint32) error {
	if IsStockIndex(index) {
		return nil
	}
	return e.objects.Delete(int(index))
}

// Finish ends the playback session. Unbalanced saves are reported as a
// warning; they do not make the session fail.
func (e *Engine) Finish() {
	if d := e.propStack.len(); d != 0 {
		e.log.Warn("emf: unbalanced save/restore at end of playback", "depth", d)
	}
	if d := e.transforms.len(); d != 0 {
		e.log.Warn("emf: unbalanced transform stack at end of playback", "depth", d)
	}
}
