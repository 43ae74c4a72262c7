package overlay

import (
	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/geom"
)

// anchorKind discriminates the anchor variants.
type anchorKind int

const (
	anchorSource anchorKind = iota
	anchorRect
	anchorPoint
)

// Anchor tells a popover what to attach to: the element that triggered the
// presentation, a literal rectangle, or a single point. The zero Anchor is
// the source variant.
type Anchor struct {
	kind  anchorKind
	rect  geom.Rect
	point geom.Point
}

// SourceAnchor anchors to the presenting element's measured bounds.
func SourceAnchor() Anchor {
	return Anchor{kind: anchorSource}
}

// RectAnchor anchors to a literal rectangle in viewport coordinates.
func RectAnchor(r geom.Rect) Anchor {
	return Anchor{kind: anchorRect, rect: r}
}

// PointAnchor anchors to a single point in viewport coordinates.
func PointAnchor(p geom.Point) Anchor {
	return Anchor{kind: anchorPoint, point: p}
}

// Resolve produces the anchor's bounding rectangle at positioning time.
// Source anchors re-resolve from the given element on every call, so a
// moved source yields fresh bounds. The second result is false when no
// bounds exist: a source anchor without a measured source element.
func (a Anchor) Resolve(source *dom.Element) (geom.Rect, bool) {
	switch a.kind {
	case anchorRect:
		return a.rect, true
	case anchorPoint:
		return geom.Rect{X: a.point.X, Y: a.point.Y}, true
	default:
		if source == nil {
			return geom.Rect{}, false
		}
		r, ok := source.Measured()
		if !ok {
			return geom.Rect{}, false
		}
		return r, true
	}
}
