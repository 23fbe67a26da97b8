// Package recording provides an emf.Surface that records drawing calls.
//
// Every call the engine makes on the surface is captured as a typed
// command, together with the transform in effect. A Recording can be
// inspected or played back onto another surface, which makes the
// Recorder useful both as a test double and for dumping what a metafile
// draws.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	e := emf.NewEngine(rec, emf.Rect{W: 800, H: 600})
//	_ = e.PlayAll(records)
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Replay onto a raster surface
//	_ = r.Playback(raster.New(800, 600))
//
// The "recording" surface is registered with emf.Register, so
// emf.NewSurface("recording", w, h) works after importing this package.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are
// immutable after FinishRecording and can be played back from multiple
// goroutines.
package recording
