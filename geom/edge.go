package geom

// Edge names one of the four directions an anchored box can face relative
// to its anchor. Leading and trailing are the horizontal pair (left and
// right in left-to-right layouts).
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing
)

// Opposite returns the edge across the anchor. The mapping is a total
// involution: top pairs with bottom, leading pairs with trailing.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeading:
		return EdgeTrailing
	case EdgeTrailing:
		return EdgeLeading
	}
	return e
}

// Vertical reports whether the edge lies on the vertical axis (above or
// below the anchor).
func (e Edge) Vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// String returns the lowercase edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	}
	return "unknown"
}
