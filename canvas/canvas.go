// Package canvas provides a fixed-size character grid with chainable drawing
// primitives for ASCII diagrams.
package canvas

import (
	"asciigfx/core"
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrInvalidDimension = errors.New("invalid canvas dimension")
	ErrCanvasTooSmall   = errors.New("canvas too small")
	ErrOutOfBounds      = errors.New("position out of bounds")
)

// Canvas is a width × height grid of runes plus the drawing state that the
// next operation uses (stroke, fill, background).
//
// Every mutator returns the same *Canvas so calls can be chained:
//
//	c.Background(' ').
//		Border(SimpleBorderStyle).
//		Stroke('0').
//		Line(2, 6, 6, 2).
//		Text("hello", 2, 8)
//
// Later operations overwrite earlier ones cell by cell. Background repaints
// every cell, so it belongs at the start of a chain.
//
// Coordinates outside the grid are clipped per cell: Line, Text, Rect and
// Circle skip the cells that fall outside and draw the rest.
//
// A Border on a canvas smaller than 2×2 records ErrCanvasTooSmall. The error
// is sticky: later mutators do nothing and Err reports it.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	matrix [][]rune
	width  int
	height int

	background rune
	stroke     rune
	hasStroke  bool
	fill       rune
	hasFill    bool

	err error
}

// New creates a canvas of the given size with every cell set to a space.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	matrix := make([][]rune, height)
	for y := range matrix {
		matrix[y] = make([]rune, width)
		for x := range matrix[y] {
			matrix[y][x] = ' '
		}
	}

	return &Canvas{
		matrix:     matrix,
		width:      width,
		height:     height,
		background: ' ',
	}, nil
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Bounds returns the rectangle covered by the canvas.
func (c *Canvas) Bounds() core.Bounds {
	return core.Bounds{Max: core.Point{X: c.width, Y: c.height}}
}

// Err returns the first error recorded by a chained operation.
func (c *Canvas) Err() error {
	return c.err
}

// Matrix returns direct access to the underlying rune matrix, indexed [row][col].
func (c *Canvas) Matrix() [][]rune {
	return c.matrix
}

// Get returns the character at the given position.
// Out of bounds positions report the background character.
func (c *Canvas) Get(p core.Point) rune {
	if !c.inBounds(p.X, p.Y) {
		return c.background
	}
	return c.matrix[p.Y][p.X]
}

// Set places a character at the given position.
func (c *Canvas) Set(p core.Point, char rune) error {
	if !c.inBounds(p.X, p.Y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	c.matrix[p.Y][p.X] = char
	return nil
}

// Row returns row y as a string of exactly width characters.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return string(c.matrix[y])
}

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		sb.WriteString(string(c.matrix[y]))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Stroke sets the character used by subsequent Line, Rect and Circle calls.
func (c *Canvas) Stroke(char rune) *Canvas {
	if c.err != nil {
		return c
	}
	c.stroke = char
	c.hasStroke = true
	return c
}

// NoStroke disables outlines for subsequent draws.
func (c *Canvas) NoStroke() *Canvas {
	if c.err != nil {
		return c
	}
	c.hasStroke = false
	return c
}

// Fill sets the character used for the interior of subsequent Rect and Circle calls.
func (c *Canvas) Fill(char rune) *Canvas {
	if c.err != nil {
		return c
	}
	c.fill = char
	c.hasFill = true
	return c
}

// NoFill disables interiors for subsequent draws.
func (c *Canvas) NoFill() *Canvas {
	if c.err != nil {
		return c
	}
	c.hasFill = false
	return c
}

func (c *Canvas) inBounds(x, y int) bool {
	return c.Bounds().Contains(core.Point{X: x, Y: y})
}

// setClipped sets a character with bounds checking (no error).
func (c *Canvas) setClipped(x, y int, char rune) {
	if c.inBounds(x, y) {
		c.matrix[y][x] = char
	}
}
