package recording

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/emf"
)

func TestRecorderTransform(t *testing.T) {
	r := NewRecorder(100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
	if !r.Transform().IsIdentity() {
		t.Fatal("new recorder transform is not identity")
	}

	r.Translate(10, 20)
	r.Scale(2, 3)
	if got := r.Transform().TransformPoint(emf.Pt(1, 1)); got != emf.Pt(12, 23) {
		t.Errorf("TransformPoint = %+v, want (12, 23)", got)
	}
	if n := r.Count(CmdSetTransform); n != 2 {
		t.Errorf("SetTransform commands = %d, want 2", n)
	}
}

func TestRecorderDrawCommands(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Translate(5, 5)

	p := emf.NewPath()
	p.Rectangle(0, 0, 2, 2)
	pen := emf.Pen{Width: 3, Color: emf.RGB(1, 2, 3)}
	brush := emf.Brush{Color: emf.Gray}
	r.FillPath(p, brush)
	r.StrokePath(p, pen)
	r.DrawText(emf.TextRun{Text: "hi", Origin: emf.Pt(1, 1)})

	cmds := r.Commands()
	if len(cmds) != 4 {
		t.Fatalf("commands = %d, want 4", len(cmds))
	}
	fill := cmds[1].(FillPathCommand)
	stroke := cmds[2].(StrokePathCommand)
	text := cmds[3].(DrawTextCommand)

	if fill.Brush != brush || stroke.Pen != pen {
		t.Errorf("fill brush = %+v, stroke pen = %+v", fill.Brush, stroke.Pen)
	}
	if fill.Path == stroke.Path {
		t.Error("each draw should pool its own path copy")
	}
	for _, m := range []emf.Matrix{fill.Transform, stroke.Transform, text.Transform} {
		if m != emf.Translate(5, 5) {
			t.Errorf("command transform = %+v, want translate(5, 5)", m)
		}
	}
	if r.Path(fill.Path).Bounds() != (emf.Rect{W: 2, H: 2}) {
		t.Errorf("pooled path bounds = %+v", r.Path(fill.Path).Bounds())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdSetTransform, "SetTransform"},
		{CmdStrokePath, "StrokePath"},
		{CmdFillPath, "FillPath"},
		{CmdDrawText, "DrawText"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestRecordingPlayback(t *testing.T) {
	src := NewRecorder(20, 20)
	src.Translate(3, 4)
	p := emf.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	src.StrokePath(p, emf.Pen{Width: 1})
	src.SetTransform(emf.Identity())
	src.FillPath(p, emf.Brush{Color: emf.Black})
	src.DrawText(emf.TextRun{Text: "x", Dx: []float64{4}})

	rec := src.FinishRecording()
	if rec.Width() != 20 || rec.Height() != 20 {
		t.Errorf("size = %dx%d", rec.Width(), rec.Height())
	}
	if rec.Resources().PathCount() != 2 {
		t.Errorf("PathCount() = %d, want 2", rec.Resources().PathCount())
	}

	dst := NewRecorder(20, 20)
	if err := rec.Playback(dst); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}

	draws := func(r *Recorder) []Command {
		var out []Command
		for _, c := range r.Commands() {
			if c.Type() != CmdSetTransform {
				out = append(out, c)
			}
		}
		return out
	}
	if diff := cmp.Diff(draws(src), draws(dst), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("replayed draws differ (-src +dst):\n%s", diff)
	}
}

func TestRecorderRegistered(t *testing.T) {
	s, err := emf.NewSurface("recording", 8, 4)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	r, ok := s.(*Recorder)
	if !ok {
		t.Fatalf("NewSurface() = %T, want *Recorder", s)
	}
	if r.Width() != 8 || r.Height() != 4 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
}
