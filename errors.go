package emf

import (
	"errors"
	"fmt"
)

var (
	// ErrAddressing is returned when an object-table index lies outside the
	// grown range or refers to a cleared slot, and when a stack is popped
	// past its bottom.
	ErrAddressing = errors.New("emf: addressing error")

	// ErrUnresolvedStockObject is returned when an index carries the stock
	// flag but names no known stock object.
	ErrUnresolvedStockObject = errors.New("emf: unresolved stock object")

	// ErrStackUnderflow is returned when restoring with no matching save.
	// It matches ErrAddressing under errors.Is.
	ErrStackUnderflow = fmt.Errorf("%w: stack underflow", ErrAddressing)

	// ErrNoPath is returned by path-bracket operations when no path is
	// under construction.
	ErrNoPath = errors.New("emf: no path under construction")
)

// AddressingError describes an object-table access outside the table.
type AddressingError struct {
	Op    string // operation that failed, e.g. "set" or "apply"
	Index int    // index requested by the record
	Size  int    // table size at the time of the call
}

func (e *AddressingError) Error() string {
	return fmt.Sprintf("emf: object table %s: index %d outside table of size %d", e.Op, e.Index, e.Size)
}

// Unwrap returns ErrAddressing.
func (e *AddressingError) Unwrap() error {
	return ErrAddressing
}
