package recording

import "github.com/gogpu/emf"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetTransform CommandType = iota // Set transformation matrix
	CmdStrokePath                      // Stroke a path
	CmdFillPath                        // Fill a path
	CmdDrawText                        // Draw a text run
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetTransform: "SetTransform",
	CmdStrokePath:   "StrokePath",
	CmdFillPath:     "FillPath",
	CmdDrawText:     "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// SetTransformCommand records the transform after SetTransform,
// Translate or Scale.
type SetTransformCommand struct {
	Matrix emf.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// StrokePathCommand strokes a path with a pen.
type StrokePathCommand struct {
	Path      PathRef
	Pen       emf.Pen
	Transform emf.Matrix // transform in effect when drawn
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillPathCommand fills a path with a brush.
type FillPathCommand struct {
	Path      PathRef
	Brush     emf.Brush
	Transform emf.Matrix
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// DrawTextCommand draws a text run.
type DrawTextCommand struct {
	Run       emf.TextRun
	Transform emf.Matrix
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
