package overlay

import (
	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/gesture"
)

// renderSheet builds the panel for a sheet: a grabber affordance, the
// scrollable content region, and a max-height derived from the active
// detent.
func (c *Coordinator) renderSheet(e *Entry, p Sheet) *dom.Element {
	panel := c.doc.CreateElement("div")
	panel.Classes().Add(classPanel)

	grabber := c.doc.CreateElement("div")
	grabber.Classes().Add(classGrabber)
	panel.AppendElement(grabber)

	content := c.doc.CreateElement("div")
	content.Classes().Add(classContent)
	content.Style().SetProperty("overflow-y", "auto")
	c.appendContent(content, e.content)
	panel.AppendElement(content)

	fraction := activeDetent(p.Detents).Fraction(c.doc.Viewport().Height)
	panel.Style().SetProperty("max-height", formatPercent(fraction))

	return panel
}

// AttachSwipe wires the swipe-dismiss gesture to a live sheet. Call it
// after the entry's fragment is attached and measured. It is a no-op for
// non-sheets, sheets with interactive dismissal disabled, dismissing
// entries, and entries already wired.
func (c *Coordinator) AttachSwipe(id ID) {
	c.mu.Lock()
	e := c.findLocked(id)
	if e == nil || e.state != statePresented || e.detachSwipe != nil {
		c.mu.Unlock()
		return
	}
	sheet, ok := e.presentation.(Sheet)
	if !ok || sheet.InteractiveDismissDisabled || e.panel == nil {
		c.mu.Unlock()
		return
	}
	panel, root := e.panel, e.root
	c.mu.Unlock()

	h := gesture.NewSwipeDismiss(panel, c.sched, func() {
		c.Dismiss(id)
	}, gesture.WithMarkTarget(root))
	h.Attach()

	c.mu.Lock()
	if e.state == statePresented && e.detachSwipe == nil {
		e.detachSwipe = h.Detach
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	// The entry began dismissing while we were wiring. Undo.
	h.Detach()
}
