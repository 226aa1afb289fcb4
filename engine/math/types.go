package math

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int32
}

func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned integer rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y int32
	W, H int32
}

func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter builds a w by h rectangle whose center is c.
func RectFromCenter(c Point, w, h int32) Rect {
	return Rect{
		X: c.X - Half(w),
		Y: c.Y - Half(h),
		W: w,
		H: h,
	}
}

// Center returns the point at the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + Half(r.W), Y: r.Y + Half(r.H)}
}

// Translate moves the rectangle by d without changing its size.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
