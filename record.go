package emf

import "fmt"

// Record is one decoded metafile instruction. Records are immutable once
// decoded; Draw reads and mutates the engine's state, never the record.
type Record interface {
	Draw(e *Engine) error
}

// Bounded is implemented by records that declare a device-space rectangle
// their shape must be remapped into.
//
// RecordBounds returns the target rectangle; an empty Rect means none.
// ShapeBounds returns the logical rectangle the record's own coordinates
// span; an empty Rect means none. The engine only asks for ShapeBounds
// when RecordBounds is non-empty.
type Bounded interface {
	Record
	RecordBounds() Rect
	ShapeBounds(e *Engine) (Rect, error)
}

// RecordFunc adapts a function to Record.
type RecordFunc func(e *Engine) error

// Draw calls f.
func (f RecordFunc) Draw(e *Engine) error { return f(e) }

// recordName returns a short name for log output.
func recordName(r Record) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", r)
}
