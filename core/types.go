// Package core contains the fundamental types shared by the asciigfx packages.
package core

// Point represents a 2D coordinate in the canvas.
// X is the column and Y is the row; the origin is the top-left cell.
type Point struct {
	X, Y int
}

// Bounds represents a rectangular area. Min is inclusive, Max is exclusive.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}
