package grid

// Window is an axis-aligned sub-rectangle of the image grid.
// MinX/MinY are the top-left corner in global coordinates; Width and Height
// are the side lengths in pixels. A Window owns a local, row-major index
// space 0..Width*Height-1 used by the solver's distance and parent buffers.
//
// Window is a value type: the solver replaces it wholesale on recentering
// and compares old and new with ==, so bounds changes are always observable.
type Window struct {
	MinX, MinY    int
	Width, Height int
}

// MaxX returns the largest global X still inside the window.
func (w Window) MaxX() int { return w.MinX + w.Width - 1 }

// MaxY returns the largest global Y still inside the window.
func (w Window) MaxY() int { return w.MinY + w.Height - 1 }

// Area returns the number of cells (local nodes) in the window.
func (w Window) Area() int { return w.Width * w.Height }

// Contains reports whether global coordinate (x, y) lies inside the window.
// Complexity: O(1).
func (w Window) Contains(x, y int) bool {
	return x >= w.MinX && x <= w.MaxX() && y >= w.MinY && y <= w.MaxY()
}

// ClampPoint projects global coordinate (x, y) onto the window: points
// already inside are returned unchanged, points outside land on the nearest
// window edge. This is how a far-away cursor target becomes an "effective"
// in-window target.
func (w Window) ClampPoint(x, y int) Point {
	return Point{
		X: Clamp(x, w.MinX, w.MaxX()),
		Y: Clamp(y, w.MinY, w.MaxY()),
	}
}

// LocalIndex maps a global coordinate to the window-local row-major index.
// The caller must ensure Contains(x, y); out-of-window input yields an index
// that does not correspond to (x, y).
func (w Window) LocalIndex(x, y int) int {
	return (y-w.MinY)*w.Width + (x - w.MinX)
}

// GlobalAt converts a window-local index back to a global coordinate.
func (w Window) GlobalAt(local int) Point {
	return Point{
		X: w.MinX + local%w.Width,
		Y: w.MinY + local/w.Width,
	}
}
