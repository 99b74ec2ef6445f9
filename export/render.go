package export

import (
	"asciigfx/canvas"
	"fmt"
	"io"
)

// Render returns the canvas rows in order, each exactly as wide as the canvas.
// It only reads the canvas.
func Render(c *canvas.Canvas) []string {
	_, height := c.Size()
	rows := make([]string, height)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return rows
}

// Print writes every row of the canvas followed by a newline to w.
func Print(w io.Writer, c *canvas.Canvas) error {
	if err := checkCanvas(c); err != nil {
		return err
	}
	for _, row := range Render(c) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
