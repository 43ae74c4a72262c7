package overlay

import (
	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/geom"
)

// Placement tuning. All values are in CSS pixels.
const (
	viewportMargin = 8.0
	arrowSize      = 12.0
	anchorOffset   = 8.0

	defaultPopoverWidth  = 280.0
	defaultPopoverHeight = 200.0
)

// Placement is the result of the popover positioning pass.
type Placement struct {
	Origin geom.Point
	Edge   geom.Edge

	// ArrowOffset is the arrow's distance from the popover's near edge
	// along the anchored axis. It is not clamped, so a heavily shifted
	// popover can push it outside the panel.
	ArrowOffset float64

	// Centered is set when no anchor could be resolved and the popover
	// was centered in the viewport instead.
	Centered bool
}

// computePlacement picks where a popover of the given size goes relative
// to its anchor: try the preferred edge, flip to the opposite edge if the
// preferred position leaves the safe area, then clamp whichever candidate
// won back into the viewport.
func computePlacement(anchor geom.Rect, hasAnchor bool, size geom.Size, viewport geom.Size, preferred geom.Edge) Placement {
	if !hasAnchor {
		return Placement{
			Origin: geom.Pt(
				(viewport.Width-size.Width)/2,
				(viewport.Height-size.Height)/2,
			),
			Edge:     preferred,
			Centered: true,
		}
	}

	edge := preferred
	origin := candidateOrigin(anchor, size, edge)
	if !fitsViewport(origin, size, viewport) {
		flipped := candidateOrigin(anchor, size, edge.Opposite())
		if fitsViewport(flipped, size, viewport) {
			origin = flipped
			edge = edge.Opposite()
		}
	}

	origin.X = geom.Clamp(origin.X, viewportMargin, viewport.Width-size.Width-viewportMargin)
	origin.Y = geom.Clamp(origin.Y, viewportMargin, viewport.Height-size.Height-viewportMargin)

	center := anchor.Center()
	var arrowOffset float64
	if edge.Vertical() {
		arrowOffset = center.X - origin.X - arrowSize/2
	} else {
		arrowOffset = center.Y - origin.Y - arrowSize/2
	}

	return Placement{Origin: origin, Edge: edge, ArrowOffset: arrowOffset}
}

// candidateOrigin is the ideal origin on one edge of the anchor: centered
// along the anchor, separated by the offset gap plus half the arrow.
func candidateOrigin(anchor geom.Rect, size geom.Size, edge geom.Edge) geom.Point {
	gap := anchorOffset + arrowSize/2
	center := anchor.Center()
	switch edge {
	case geom.EdgeTop:
		return geom.Pt(center.X-size.Width/2, anchor.Top()-gap-size.Height)
	case geom.EdgeBottom:
		return geom.Pt(center.X-size.Width/2, anchor.Bottom()+gap)
	case geom.EdgeLeading:
		return geom.Pt(anchor.Left()-gap-size.Width, center.Y-size.Height/2)
	default:
		return geom.Pt(anchor.Right()+gap, center.Y-size.Height/2)
	}
}

func fitsViewport(origin geom.Point, size geom.Size, viewport geom.Size) bool {
	safe := geom.Rect{Width: viewport.Width, Height: viewport.Height}.Inset(viewportMargin)
	return safe.ContainsRect(geom.RectOf(origin, size))
}

// renderPopover builds the panel for a popover: the arrow and the content
// region. Position comes later, from PositionPopover, once the panel has
// a measured size.
func (c *Coordinator) renderPopover(e *Entry, p Popover) *dom.Element {
	panel := c.doc.CreateElement("div")
	panel.Classes().Add(classPanel)

	arrow := c.doc.CreateElement("div")
	arrow.Classes().Add(classArrow)
	panel.AppendElement(arrow)

	content := c.doc.CreateElement("div")
	content.Classes().Add(classContent)
	c.appendContent(content, e.content)
	panel.AppendElement(content)

	return panel
}

// PositionPopover runs the placement pass for a live popover and applies
// the result to its panel. Call it after the fragment is attached and
// measured, and again whenever the anchor moves or the content resizes.
func (c *Coordinator) PositionPopover(id ID) {
	c.mu.Lock()
	e := c.findLocked(id)
	var pop Popover
	ok := false
	if e != nil && e.panel != nil {
		pop, ok = e.presentation.(Popover)
	}
	if !ok {
		c.mu.Unlock()
		return
	}
	panel := e.panel
	source := e.source
	c.mu.Unlock()

	size := geom.Sz(defaultPopoverWidth, defaultPopoverHeight)
	if m, ok := panel.Measured(); ok && !m.Size().IsZero() {
		size = m.Size()
	}

	anchorRect, hasAnchor := pop.Anchor.Resolve(source)
	placement := computePlacement(anchorRect, hasAnchor, size, c.doc.Viewport(), pop.PreferredEdge)
	applyPlacement(panel, placement)
	panel.SetMeasured(geom.RectOf(placement.Origin, size))
}

// applyPlacement writes a placement onto the panel and its arrow.
func applyPlacement(panel *dom.Element, pl Placement) {
	panel.Style().SetProperty("position", "fixed")
	panel.Style().SetProperty("left", formatPx(pl.Origin.X))
	panel.Style().SetProperty("top", formatPx(pl.Origin.Y))
	panel.SetAttribute(attrEdge, pl.Edge.String())

	arrow := childWithClass(panel, classArrow)
	if arrow == nil {
		return
	}
	if pl.Centered {
		arrow.Style().SetProperty("display", "none")
		return
	}
	arrow.Style().RemoveProperty("display")
	if pl.Edge.Vertical() {
		arrow.Style().SetProperty("left", formatPx(pl.ArrowOffset))
		arrow.Style().RemoveProperty("top")
	} else {
		arrow.Style().SetProperty("top", formatPx(pl.ArrowOffset))
		arrow.Style().RemoveProperty("left")
	}
}

func childWithClass(parent *dom.Element, class string) *dom.Element {
	for _, child := range parent.Children() {
		if child.Classes().Contains(class) {
			return child
		}
	}
	return nil
}
