package canvas

import (
	"asciigfx/geometry"
	"fmt"
)

// Background sets every cell to char and makes char the default reported for
// cells outside the grid. Anything drawn before is erased.
func (c *Canvas) Background(char rune) *Canvas {
	if c.err != nil {
		return c
	}
	for y := range c.matrix {
		for x := range c.matrix[y] {
			c.matrix[y][x] = char
		}
	}
	c.background = char
	return c
}

// Border outlines the canvas using style: the edges along rows 0 and height-1
// and columns 0 and width-1, with style.Corner at the four corners.
// Requires at least a 2×2 canvas; otherwise ErrCanvasTooSmall is recorded.
func (c *Canvas) Border(style BorderStyle) *Canvas {
	if c.err != nil {
		return c
	}
	if c.width < 2 || c.height < 2 {
		c.err = fmt.Errorf("%w: border needs 2x2, have %dx%d", ErrCanvasTooSmall, c.width, c.height)
		return c
	}

	right, bottom := c.width-1, c.height-1
	for x := 1; x < right; x++ {
		c.matrix[0][x] = style.Top
		c.matrix[bottom][x] = style.Bottom
	}
	for y := 1; y < bottom; y++ {
		c.matrix[y][0] = style.Left
		c.matrix[y][right] = style.Right
	}

	c.matrix[0][0] = style.Corner
	c.matrix[0][right] = style.Corner
	c.matrix[bottom][0] = style.Corner
	c.matrix[bottom][right] = style.Corner
	return c
}

// SolidBorder outlines the canvas with a single character.
func (c *Canvas) SolidBorder(char rune) *Canvas {
	if c.err != nil {
		return c
	}
	for x := 0; x < c.width; x++ {
		c.matrix[0][x] = char
		c.matrix[c.height-1][x] = char
	}
	for y := 0; y < c.height; y++ {
		c.matrix[y][0] = char
		c.matrix[y][c.width-1] = char
	}
	return c
}

// Rect draws a rectangle centred at (x, y). The covered cells run from
// x-width/2 to x+width/2 and y-height/2 to y+height/2 inclusive. The interior
// uses the fill character and the outline the stroke character, each only
// when enabled.
func (c *Canvas) Rect(x, y, width, height int) *Canvas {
	if c.err != nil {
		return c
	}
	halfW, halfH := width/2, height/2
	left, right := x-halfW, x+halfW
	top, bottom := y-halfH, y+halfH

	if c.hasFill {
		for j := geometry.Max(top, 0); j <= geometry.Min(bottom, c.height-1); j++ {
			for i := geometry.Max(left, 0); i <= geometry.Min(right, c.width-1); i++ {
				c.matrix[j][i] = c.fill
			}
		}
	}

	if c.hasStroke {
		for i := left; i <= right; i++ {
			c.setClipped(i, top, c.stroke)
			c.setClipped(i, bottom, c.stroke)
		}
		for j := top; j <= bottom; j++ {
			c.setClipped(left, j, c.stroke)
			c.setClipped(right, j, c.stroke)
		}
	}
	return c
}

// Circle draws a rough circle centred at (x, y). Cells closer than radius get
// the fill character; cells at distance radius get the stroke character.
func (c *Canvas) Circle(x, y, radius int) *Canvas {
	if c.err != nil || radius < 0 {
		return c
	}
	r2 := radius * radius

	for j := geometry.Max(y-radius, 0); j <= geometry.Min(y+radius, c.height-1); j++ {
		for i := geometry.Max(x-radius, 0); i <= geometry.Min(x+radius, c.width-1); i++ {
			d := geometry.DistanceSquared(x, y, i, j)
			switch {
			case d < r2 && c.hasFill:
				c.matrix[j][i] = c.fill
			case (d == r2 || d == r2+1) && c.hasStroke:
				c.matrix[j][i] = c.stroke
			}
		}
	}
	return c
}

// ShiftLeft sweeps the grid left to right, swapping each column with the
// column n places to its right. n outside [1, width) does nothing.
func (c *Canvas) ShiftLeft(n int) *Canvas {
	if c.err != nil || n <= 0 || n >= c.width {
		return c
	}
	for x := 0; x < c.width-n; x++ {
		for y := 0; y < c.height; y++ {
			row := c.matrix[y]
			row[x], row[x+n] = row[x+n], row[x]
		}
	}
	return c
}
