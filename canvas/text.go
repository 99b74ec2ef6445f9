package canvas

import "github.com/mattn/go-runewidth"

// Text writes s left to right starting at column x of row y, one character
// per cell. Characters landing outside the canvas are dropped; there is no
// wrapping. Zero-width runes such as control characters and combining marks
// take no cell.
func (c *Canvas) Text(s string, x, y int) *Canvas {
	if c.err != nil || y < 0 || y >= c.height {
		return c
	}

	col := x
	for _, r := range s {
		if runewidth.RuneWidth(r) == 0 {
			continue
		}
		if col >= c.width {
			break
		}
		if col >= 0 {
			c.matrix[y][col] = r
		}
		col++
	}
	return c
}
