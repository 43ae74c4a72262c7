package overlay

import (
	"testing"

	"github.com/scrimui/scrim/geom"
)

func TestPlacementPreferredEdgeWhenItFits(t *testing.T) {
	anchor := geom.Rect{X: 100, Y: 300, Width: 40, Height: 20}
	pl := computePlacement(anchor, true, geom.Sz(200, 100), geom.Sz(800, 600), geom.EdgeTop)

	if pl.Edge != geom.EdgeTop {
		t.Errorf("Expected top edge, got %s", pl.Edge)
	}
	// Centered on the anchor, separated by the offset plus half the arrow.
	if pl.Origin.X != 20 || pl.Origin.Y != 186 {
		t.Errorf("Expected origin (20, 186), got (%v, %v)", pl.Origin.X, pl.Origin.Y)
	}
	if pl.ArrowOffset != 94 {
		t.Errorf("Expected arrow offset 94, got %v", pl.ArrowOffset)
	}
	if pl.Centered {
		t.Error("Expected an anchored placement")
	}
}

func TestPlacementFlipsWhenPreferredEdgeOverflows(t *testing.T) {
	// An anchor near the top leaves no room above, so the popover flips
	// below it.
	anchor := geom.Rect{X: 380, Y: 10, Width: 40, Height: 20}
	pl := computePlacement(anchor, true, geom.Sz(300, 200), geom.Sz(800, 600), geom.EdgeTop)

	if pl.Edge != geom.EdgeBottom {
		t.Errorf("Expected flip to bottom, got %s", pl.Edge)
	}
	if pl.Origin.X != 250 || pl.Origin.Y != 44 {
		t.Errorf("Expected origin (250, 44), got (%v, %v)", pl.Origin.X, pl.Origin.Y)
	}
	if pl.ArrowOffset != 144 {
		t.Errorf("Expected arrow offset 144, got %v", pl.ArrowOffset)
	}
}

func TestPlacementKeepsPreferredEdgeWhenNeitherFits(t *testing.T) {
	// Too tall for either side of the anchor: stay on the preferred edge
	// and clamp into the safe area.
	anchor := geom.Rect{X: 0, Y: 290, Width: 20, Height: 20}
	pl := computePlacement(anchor, true, geom.Sz(300, 590), geom.Sz(800, 600), geom.EdgeTop)

	if pl.Edge != geom.EdgeTop {
		t.Errorf("Expected the preferred edge to survive, got %s", pl.Edge)
	}
	if pl.Origin.X != 8 || pl.Origin.Y != 8 {
		t.Errorf("Expected clamped origin (8, 8), got (%v, %v)", pl.Origin.X, pl.Origin.Y)
	}
}

func TestPlacementHorizontalEdges(t *testing.T) {
	viewport := geom.Sz(800, 600)
	size := geom.Sz(200, 100)

	// Room on the left: leading placement holds.
	anchor := geom.Rect{X: 700, Y: 300, Width: 40, Height: 20}
	pl := computePlacement(anchor, true, size, viewport, geom.EdgeLeading)
	if pl.Edge != geom.EdgeLeading {
		t.Errorf("Expected leading edge, got %s", pl.Edge)
	}
	if pl.Origin.X != 486 || pl.Origin.Y != 260 {
		t.Errorf("Expected origin (486, 260), got (%v, %v)", pl.Origin.X, pl.Origin.Y)
	}
	// Arrow rides the vertical axis for horizontal edges.
	if pl.ArrowOffset != 310-260-arrowSize/2 {
		t.Errorf("Expected arrow offset %v, got %v", 310-260-arrowSize/2, pl.ArrowOffset)
	}

	// No room on the left: flip to trailing.
	anchor = geom.Rect{X: 10, Y: 300, Width: 40, Height: 20}
	pl = computePlacement(anchor, true, size, viewport, geom.EdgeLeading)
	if pl.Edge != geom.EdgeTrailing {
		t.Errorf("Expected flip to trailing, got %s", pl.Edge)
	}
	if pl.Origin.X != 64 {
		t.Errorf("Expected origin x 64, got %v", pl.Origin.X)
	}
}

func TestPlacementClampShiftsArrow(t *testing.T) {
	// Clamping slides the popover but the arrow keeps pointing at the
	// anchor, even if that pushes it toward the panel's edge.
	anchor := geom.Rect{X: 8, Y: 100, Width: 30, Height: 20}
	pl := computePlacement(anchor, true, geom.Sz(200, 100), geom.Sz(800, 600), geom.EdgeBottom)

	if pl.Edge != geom.EdgeBottom {
		t.Errorf("Expected bottom edge, got %s", pl.Edge)
	}
	if pl.Origin.X != 8 {
		t.Errorf("Expected clamped origin x 8, got %v", pl.Origin.X)
	}
	if pl.ArrowOffset != 23-8-arrowSize/2 {
		t.Errorf("Expected arrow offset %v, got %v", 23-8-arrowSize/2, pl.ArrowOffset)
	}
}

func TestPlacementCentersWithoutAnchor(t *testing.T) {
	pl := computePlacement(geom.Rect{}, false, geom.Sz(300, 200), geom.Sz(800, 600), geom.EdgeTop)

	if !pl.Centered {
		t.Error("Expected the anchorless placement to center")
	}
	if pl.Origin.X != 250 || pl.Origin.Y != 200 {
		t.Errorf("Expected centered origin (250, 200), got (%v, %v)", pl.Origin.X, pl.Origin.Y)
	}
}

func TestPositionPopoverAppliesPlacement(t *testing.T) {
	c, _ := newTestCoordinator()

	id := c.Present(Popover{
		Anchor:        RectAnchor(geom.Rect{X: 380, Y: 10, Width: 40, Height: 20}),
		PreferredEdge: geom.EdgeTop,
	}, nil)
	panel := c.Lookup(id).Panel()
	panel.SetMeasured(geom.Rect{Width: 300, Height: 200})

	c.PositionPopover(id)

	if got := panel.Style().GetPropertyValue("left"); got != "250px" {
		t.Errorf("Expected left 250px, got %q", got)
	}
	if got := panel.Style().GetPropertyValue("top"); got != "44px" {
		t.Errorf("Expected top 44px, got %q", got)
	}
	if got := panel.GetAttribute("data-edge"); got != "bottom" {
		t.Errorf("Expected data-edge bottom, got %q", got)
	}

	arrow := childWithClass(panel, classArrow)
	if arrow == nil {
		t.Fatal("Expected an arrow element")
	}
	if got := arrow.Style().GetPropertyValue("left"); got != "144px" {
		t.Errorf("Expected arrow left 144px, got %q", got)
	}

	// The panel's recorded geometry follows the placement so hit tests
	// agree with what is drawn.
	rect, ok := panel.Measured()
	if !ok || rect.X != 250 || rect.Y != 44 {
		t.Errorf("Expected measured origin (250, 44), got (%v, %v)", rect.X, rect.Y)
	}
}

func TestPositionPopoverUsesDefaultSizeUnmeasured(t *testing.T) {
	c, _ := newTestCoordinator()

	id := c.Present(Popover{
		Anchor:        RectAnchor(geom.Rect{X: 380, Y: 300, Width: 40, Height: 20}),
		PreferredEdge: geom.EdgeBottom,
	}, nil)

	c.PositionPopover(id)

	panel := c.Lookup(id).Panel()
	// Anchored below: y = anchor bottom + gap, x centered with the
	// default width.
	if got := panel.Style().GetPropertyValue("top"); got != "334px" {
		t.Errorf("Expected top 334px, got %q", got)
	}
	if got := panel.Style().GetPropertyValue("left"); got != "260px" {
		t.Errorf("Expected left 260px, got %q", got)
	}
}

func TestPositionPopoverResolvesSourceAnchor(t *testing.T) {
	c, _ := newTestCoordinator()

	button := c.Doc().CreateElement("button")
	c.Doc().Root().AppendChild(button.AsNode())
	button.SetMeasured(geom.Rect{X: 380, Y: 10, Width: 40, Height: 20})

	id := c.Present(Popover{PreferredEdge: geom.EdgeTop}, nil, WithSource(button))
	panel := c.Lookup(id).Panel()
	panel.SetMeasured(geom.Rect{Width: 300, Height: 200})

	c.PositionPopover(id)

	if got := panel.GetAttribute("data-edge"); got != "bottom" {
		t.Errorf("Expected source-anchored popover to flip below, got %q", got)
	}
	if got := panel.Style().GetPropertyValue("left"); got != "250px" {
		t.Errorf("Expected left 250px, got %q", got)
	}
}

func TestPositionPopoverCentersWithoutAnyAnchor(t *testing.T) {
	c, _ := newTestCoordinator()

	id := c.Present(Popover{}, nil)
	panel := c.Lookup(id).Panel()
	panel.SetMeasured(geom.Rect{Width: 300, Height: 200})

	c.PositionPopover(id)

	if got := panel.Style().GetPropertyValue("left"); got != "250px" {
		t.Errorf("Expected centered left 250px, got %q", got)
	}
	if got := panel.Style().GetPropertyValue("top"); got != "200px" {
		t.Errorf("Expected centered top 200px, got %q", got)
	}
	arrow := childWithClass(panel, classArrow)
	if got := arrow.Style().GetPropertyValue("display"); got != "none" {
		t.Errorf("Expected the arrow hidden without an anchor, got %q", got)
	}
}

func TestPositionPopoverIgnoresOtherKinds(t *testing.T) {
	c, _ := newTestCoordinator()

	id := c.Present(Sheet{}, nil)
	c.PositionPopover(id)

	panel := c.Lookup(id).Panel()
	if got := panel.Style().GetPropertyValue("left"); got != "" {
		t.Errorf("Expected no positioning on a sheet, got %q", got)
	}
}
