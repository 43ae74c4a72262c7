package geom

// Rect is an axis-aligned rectangle. Negative extents are tolerated: the
// edge accessors normalize them, so a Rect built from a raw drag delta still
// answers geometric queries correctly.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectOf creates a Rect from an origin and size.
func RectOf(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Right returns the right edge (x + width for positive width, x for negative).
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge (y + height for positive height, y for negative).
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (x for positive width, x + width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Origin returns the rectangle's top-left corner as written (not normalized).
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's extent as written (not normalized).
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies inside or on the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether s lies entirely inside or on the boundary of r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.Left() >= r.Left() && s.Right() <= r.Right() &&
		s.Top() >= r.Top() && s.Bottom() <= r.Bottom()
}

// Inset returns the rectangle shrunk by d on all four sides. A negative d
// grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  r.Width - 2*d,
		Height: r.Height - 2*d,
	}
}

// Clamp returns v limited to [lo, hi]. When the interval is inverted
// (lo > hi), lo wins: for placement this pins the near edge on-screen, which
// is the preferred failure mode when a box is larger than the space it must
// fit in.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
