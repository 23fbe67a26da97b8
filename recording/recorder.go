package recording

import (
	"github.com/gogpu/emf"
)

func init() {
	emf.Register("recording", func(width, height int) emf.Surface {
		return NewRecorder(width, height)
	})
}

// Recorder is an emf.Surface that captures every call as a Command.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	transform     emf.Matrix
}

// NewRecorder creates a new Recorder for the given dimensions, starting
// with the identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		transform: emf.Identity(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many recorded commands have type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Path returns the pooled path behind ref.
func (r *Recorder) Path(ref PathRef) *emf.Path {
	return r.resources.GetPath(ref)
}

// Transform implements emf.Surface.
func (r *Recorder) Transform() emf.Matrix {
	return r.transform
}

// SetTransform implements emf.Surface.
func (r *Recorder) SetTransform(m emf.Matrix) {
	r.transform = m
	r.commands = append(r.commands, SetTransformCommand{Matrix: m})
}

// Translate implements emf.Surface.
func (r *Recorder) Translate(x, y float64) {
	r.SetTransform(r.transform.Multiply(emf.Translate(x, y)))
}

// Scale implements emf.Surface.
func (r *Recorder) Scale(sx, sy float64) {
	r.SetTransform(r.transform.Multiply(emf.Scale(sx, sy)))
}

// StrokePath implements emf.Surface.
func (r *Recorder) StrokePath(path *emf.Path, pen emf.Pen) {
	r.commands = append(r.commands, StrokePathCommand{
		Path:      r.resources.AddPath(path),
		Pen:       pen,
		Transform: r.transform,
	})
}

// FillPath implements emf.Surface.
func (r *Recorder) FillPath(path *emf.Path, brush emf.Brush) {
	r.commands = append(r.commands, FillPathCommand{
		Path:      r.resources.AddPath(path),
		Brush:     brush,
		Transform: r.transform,
	})
}

// DrawText implements emf.Surface.
func (r *Recorder) DrawText(run emf.TextRun) {
	if run.Dx != nil {
		run.Dx = append([]float64(nil), run.Dx...)
	}
	r.commands = append(r.commands, DrawTextCommand{
		Run:       run,
		Transform: r.transform,
	})
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any emf.Surface.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording onto s. Draw commands first restore
// the transform they were recorded under.
func (r *Recording) Playback(s emf.Surface) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetTransformCommand:
			s.SetTransform(c.Matrix)
		case StrokePathCommand:
			s.SetTransform(c.Transform)
			s.StrokePath(r.resources.GetPath(c.Path), c.Pen)
		case FillPathCommand:
			s.SetTransform(c.Transform)
			s.FillPath(r.resources.GetPath(c.Path), c.Brush)
		case DrawTextCommand:
			s.SetTransform(c.Transform)
			s.DrawText(c.Run)
		}
	}
	return nil
}
