package main

import (
	"asciigfx/canvas"
	"asciigfx/export"
	"asciigfx/render"
	"asciigfx/scene"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("asciigfx", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		format     = flags.String("format", "ascii", "Export format: ascii, json")
		outputFile = flags.String("o", "", "Output file (default: stdout)")
		example    = flags.Bool("example", false, "Render the built-in example instead of a scene file")
		show       = flags.Bool("show", false, "Show the canvas in the terminal until a key is pressed")
		demo       = flags.Bool("demo", false, "Animate a sweeping line in the terminal")
		fps        = flags.Int("fps", 12, "Frames per second (demo mode)")
		frames     = flags.Uint64("frames", 0, "Stop after this many frames, 0 for no limit (demo mode)")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: asciigfx [options] [scene.json]\n\n")
		fmt.Fprintf(stderr, "Draws lines, borders and text onto a character grid.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  asciigfx scene.json                 # Render scene to stdout\n")
		fmt.Fprintf(stderr, "  asciigfx -format json -o out.json scene.json\n")
		fmt.Fprintf(stderr, "  asciigfx -example -show             # Display the example in the terminal\n")
		fmt.Fprintf(stderr, "  asciigfx -demo -fps 24\n")
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *demo {
		if err := runDemo(*fps, *frames); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var (
		c   *canvas.Canvas
		err error
	)
	switch {
	case *example:
		c, err = exampleCanvas()
	case flags.NArg() == 1:
		c, err = buildScene(flags.Arg(0))
	default:
		flags.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *show {
		if err := showCanvas(c); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	exportFormat, err := export.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	output, err := exporter.Export(c)
	if err != nil {
		fmt.Fprintf(stderr, "Error exporting canvas: %v\n", err)
		return 1
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output file: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "Exported %s to %s\n", exporter.GetFormatName(), *outputFile)
		return 0
	}
	fmt.Fprint(stdout, output)
	return 0
}

func buildScene(filename string) (*canvas.Canvas, error) {
	s, err := scene.Load(filename)
	if err != nil {
		return nil, err
	}
	return s.Build()
}

// exampleCanvas draws a framed diagonal with a greeting underneath.
func exampleCanvas() (*canvas.Canvas, error) {
	c, err := canvas.New(10, 10)
	if err != nil {
		return nil, err
	}
	c.Background(' ').
		Border(canvas.NewBorderStyle('+', '-', '|')).
		Stroke('0').
		Line(2, 6, 6, 2).
		Text("hello", 2, 8)
	return c, c.Err()
}

func showCanvas(c *canvas.Canvas) error {
	d, err := render.OpenDisplay()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Show(c); err != nil {
		return err
	}
	return d.WaitKey(context.Background())
}

func runDemo(fps int, frames uint64) error {
	c, err := canvas.New(31, 15)
	if err != nil {
		return err
	}

	d, err := render.OpenDisplay()
	if err != nil {
		return err
	}
	defer d.Close()

	a := &render.Animator{
		Display:   d,
		Canvas:    c,
		Update:    sweep,
		FPS:       fps,
		MaxFrames: frames,
	}
	_, err = a.Run(context.Background())
	return err
}

// sweepSteps is the number of frames in one revolution.
const sweepSteps = 24

// sweep draws a line from the centre of the canvas rotated by frame steps.
// Terminal cells are roughly twice as tall as wide, so the vertical reach is halved.
func sweep(c *canvas.Canvas, frame uint64) bool {
	width, height := c.Size()
	cx, cy := width/2, height/2
	radius := float64(cy - 1)

	angle := 2 * math.Pi * float64(frame%sweepSteps) / sweepSteps
	x := cx + int(math.Round(2*radius*math.Cos(angle)))
	y := cy + int(math.Round(radius*math.Sin(angle)))

	c.Background(' ').
		Border(canvas.SimpleBorderStyle).
		Stroke('*').
		Line(cx, cy, x, y).
		Text(fmt.Sprintf(" frame %d ", frame), 2, height-1)
	return c.Err() == nil
}
