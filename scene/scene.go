// Package scene loads canvas descriptions from JSON and replays them.
//
// A scene names the canvas size and an ordered list of drawing operations:
//
//	{
//	  "width": 10, "height": 10,
//	  "ops": [
//	    {"op": "background", "char": " "},
//	    {"op": "border", "corner": "+", "horizontal": "-", "vertical": "|"},
//	    {"op": "stroke", "char": "0"},
//	    {"op": "line", "x0": 2, "y0": 6, "x1": 6, "y1": 2},
//	    {"op": "text", "text": "hello", "x": 2, "y": 8}
//	  ]
//	}
package scene

import (
	"asciigfx/canvas"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Scene is a canvas size plus the drawing operations applied to it in order.
type Scene struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Ops    []Op `json:"ops"`
}

// Op is a single drawing call. Only the fields used by Kind are read.
type Op struct {
	Kind string `json:"op"`

	Char string `json:"char,omitempty"`
	Text string `json:"text,omitempty"`

	// Border characters. Top/Bottom/Left/Right override Horizontal/Vertical.
	Corner     string `json:"corner,omitempty"`
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
	Top        string `json:"top,omitempty"`
	Bottom     string `json:"bottom,omitempty"`
	Left       string `json:"left,omitempty"`
	Right      string `json:"right,omitempty"`

	X0 int `json:"x0,omitempty"`
	Y0 int `json:"y0,omitempty"`
	X1 int `json:"x1,omitempty"`
	Y1 int `json:"y1,omitempty"`

	X      int `json:"x,omitempty"`
	Y      int `json:"y,omitempty"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	Radius int `json:"radius,omitempty"`
	N      int `json:"n,omitempty"`
}

// Load reads a scene from a JSON file.
func Load(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Decode reads a scene from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &s, nil
}

// Build creates the canvas and applies every operation in order.
func (s *Scene) Build() (*canvas.Canvas, error) {
	c, err := canvas.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	for i, op := range s.Ops {
		if err := op.apply(c); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
		if err := c.Err(); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return c, nil
}

func (op Op) apply(c *canvas.Canvas) error {
	switch op.Kind {
	case "background":
		r, err := char("char", op.Char)
		if err != nil {
			return err
		}
		c.Background(r)
	case "border":
		style, err := op.borderStyle()
		if err != nil {
			return err
		}
		c.Border(style)
	case "solid_border":
		r, err := char("char", op.Char)
		if err != nil {
			return err
		}
		c.SolidBorder(r)
	case "stroke":
		r, err := char("char", op.Char)
		if err != nil {
			return err
		}
		c.Stroke(r)
	case "no_stroke":
		c.NoStroke()
	case "fill":
		r, err := char("char", op.Char)
		if err != nil {
			return err
		}
		c.Fill(r)
	case "no_fill":
		c.NoFill()
	case "line":
		c.Line(op.X0, op.Y0, op.X1, op.Y1)
	case "text":
		c.Text(op.Text, op.X, op.Y)
	case "rect":
		c.Rect(op.X, op.Y, op.Width, op.Height)
	case "circle":
		c.Circle(op.X, op.Y, op.Radius)
	case "shift_left":
		c.ShiftLeft(op.N)
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
	return nil
}

func (op Op) borderStyle() (canvas.BorderStyle, error) {
	corner, err := char("corner", op.Corner)
	if err != nil {
		return canvas.BorderStyle{}, err
	}

	edges := []struct {
		name, value, fallback string
	}{
		{"top", op.Top, op.Horizontal},
		{"bottom", op.Bottom, op.Horizontal},
		{"left", op.Left, op.Vertical},
		{"right", op.Right, op.Vertical},
	}
	var runes [4]rune
	for i, e := range edges {
		value := e.value
		if value == "" {
			value = e.fallback
		}
		r, err := char(e.name, value)
		if err != nil {
			return canvas.BorderStyle{}, err
		}
		runes[i] = r
	}
	return canvas.FullBorderStyle(corner, runes[0], runes[1], runes[2], runes[3]), nil
}

// char converts a one-character field to a rune.
func char(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be exactly one character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
