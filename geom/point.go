// Package geom provides the point and rectangle arithmetic used by overlay
// positioning. All values are in CSS pixels.
package geom

// Point is a 2D position or offset.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsZero reports whether either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}
