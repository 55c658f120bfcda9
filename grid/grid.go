package grid

// Point is a single pixel coordinate on the image grid.
// Origin is top-left; X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Index maps (x, y) to a row-major index: y*width + x.
// Complexity: O(1).
func Index(x, y, width int) int {
	return y*width + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func Coordinate(idx, width int) (x, y int) {
	return idx % width, idx / width
}

// Clamp limits v to the inclusive range [lo, hi].
// Callers must ensure lo <= hi.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
