package annotate

import "math"

// Point is a position in surface pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle with a non-negative size.
type Rect struct {
	X, Y float64
	W, H float64
}

// Normalize returns the rectangle spanned by two corner points.
// The origin is the component-wise minimum and the size the component-wise
// absolute difference, so the corner order does not matter.
func Normalize(p1, p2 Point) Rect {
	return Rect{
		X: math.Min(p1.X, p2.X),
		Y: math.Min(p1.Y, p2.Y),
		W: math.Abs(p1.X - p2.X),
		H: math.Abs(p1.Y - p2.Y),
	}
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }
