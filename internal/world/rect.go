package world

// Rect is a room footprint. The border row and column stay wall; only the
// interior (X1, X2) x (Y1, Y2) is carved.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle with top-left corner (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether the closed intervals of both rectangles overlap on
// both axes. Rectangles that only share a border also intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies in the carved interior.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}
