package tui

import (
	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/overlay"
)

// cellRect is a rectangle in terminal cell coordinates. Width and height are
// exclusive: a 1x1 rect contains exactly one cell.
type cellRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) lies inside the rect.
func (r cellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// regionKind says what a painted region stands for, which decides how a
// press on it is routed.
type regionKind int

const (
	regionBackdrop regionKind = iota
	regionPanel
	regionGrabber
	regionButton
)

// region is one interactive area recorded during painting. El is the dom
// element a hit should be delivered to.
type region struct {
	Kind  regionKind
	Entry overlay.ID
	El    *dom.Element
	Rect  cellRect
}

// hitMap collects the regions of one frame. Regions added later overlay
// earlier ones, so Test prefers the most recently added match.
type hitMap struct {
	regions []region
}

func newHitMap() *hitMap {
	return &hitMap{}
}

// Add records a region.
func (hm *hitMap) Add(r region) {
	hm.regions = append(hm.regions, r)
}

// Test returns the topmost region containing the cell, or nil.
func (hm *hitMap) Test(x, y int) *region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Clear drops all regions. Called at the start of every paint.
func (hm *hitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the recorded regions in paint order.
func (hm *hitMap) Regions() []region {
	return hm.regions
}
