// Command emfplay replays a demonstration EMF record stream onto a
// registered surface.
//
// With -surface raster (the default) the result is written as a PNG; with
// -surface recording the recorded drawing commands are listed on stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/emf"
	"github.com/gogpu/emf/raster"
	"github.com/gogpu/emf/recording"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		output  = flag.String("output", "emfplay.png", "output file for raster surfaces")
		surface = flag.String("surface", "raster", "surface: "+strings.Join(emf.Surfaces(), ", "))
		verbose = flag.Bool("v", false, "log every replayed record")
	)
	flag.Parse()

	if *verbose {
		emf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := emf.NewSurface(*surface, *width, *height)
	if err != nil {
		log.Fatal(err)
	}

	bounds := emf.Rect{W: float64(*width), H: float64(*height)}
	e := emf.NewEngine(s, bounds)
	if err := e.PlayAll(demoRecords(bounds)); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}
	e.Finish()

	switch out := s.(type) {
	case *raster.Surface:
		if err := out.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Playback saved to %s (%dx%d)\n", *output, *width, *height)
	case *recording.Recorder:
		for i, cmd := range out.Commands() {
			fmt.Printf("%4d %s\n", i, describe(out, cmd))
		}
	}
}

func describe(rec *recording.Recorder, cmd recording.Command) string {
	switch c := cmd.(type) {
	case recording.SetTransformCommand:
		return fmt.Sprintf("%-12s %+v", c.Type(), c.Matrix)
	case recording.StrokePathCommand:
		return fmt.Sprintf("%-12s %d elements, pen %s width %g", c.Type(), rec.Path(c.Path).Len(), c.Pen.Color, c.Pen.Width)
	case recording.FillPathCommand:
		return fmt.Sprintf("%-12s %d elements, brush %s", c.Type(), rec.Path(c.Path).Len(), c.Brush.Color)
	case recording.DrawTextCommand:
		return fmt.Sprintf("%-12s %q at (%g, %g)", c.Type(), c.Run.Text, c.Run.Origin.X, c.Run.Origin.Y)
	}
	return cmd.Type().String()
}
