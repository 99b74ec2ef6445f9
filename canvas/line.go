package canvas

import "asciigfx/geometry"

// Line draws a line from (x0, y0) to (x1, y1) with the stroke character using
// Bresenham's algorithm. Both endpoints are plotted and consecutive cells are
// 8-connected. Cells outside the canvas are skipped while stepping continues.
// Nothing is drawn until a stroke has been set.
func (c *Canvas) Line(x0, y0, x1, y1 int) *Canvas {
	if c.err != nil || !c.hasStroke {
		return c
	}
	rasterize(x0, y0, x1, y1, func(x, y int) {
		c.setClipped(x, y, c.stroke)
	})
	return c
}

// rasterize calls plot for every cell of the line in order from start to end.
func rasterize(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := geometry.Abs(x1 - x0)
	dy := geometry.Abs(y1 - y0)
	sx := geometry.Sign(x1 - x0)
	sy := geometry.Sign(y1 - y0)

	err := dx - dy
	x, y := x0, y0
	for {
		plot(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
