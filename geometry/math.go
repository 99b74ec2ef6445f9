// Package geometry holds the integer helpers used by the rasterizers.
package geometry

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// DistanceSquared returns the squared euclidean distance between two cells.
func DistanceSquared(x1, y1, x2, y2 int) int {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}
