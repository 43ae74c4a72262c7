package overlay

import (
	"strconv"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/gesture"
)

// Fragment vocabulary shared by every renderer and by the attachment
// layers' styling.
const (
	classModal             = "scrim-modal"
	classPanel             = "scrim-panel"
	classBackdrop          = "scrim-backdrop"
	classOpen              = "scrim-open"
	classGrabber           = "scrim-grabber"
	classContent           = "scrim-content"
	classTitle             = "scrim-title"
	classMessage           = "scrim-message"
	classActions           = "scrim-actions"
	classActionsHorizontal = "scrim-actions-horizontal"
	classActionsVertical   = "scrim-actions-vertical"
	classButton            = "scrim-button"
	classArrow             = "scrim-arrow"

	attrDismissing = gesture.DismissingAttr
	attrEdge       = "data-edge"
)

// renderEntry builds the fragment for an entry: the dialog shell every kind
// shares, the backdrop, and the kind-specific panel. It only constructs;
// attachment is the caller's job.
func (c *Coordinator) renderEntry(e *Entry) *dom.Element {
	root := c.doc.CreateElement("dialog")
	root.SetID(string(e.id))
	root.SetAttribute("open", "")

	role := "dialog"
	if e.Kind() == KindAlert {
		role = "alertdialog"
	}
	root.SetAttribute("role", role)
	root.SetAttribute("aria-modal", "true")
	root.SetAttribute("tabindex", "-1")
	root.Classes().Add(classModal, classModal+"-"+e.Kind().String())
	root.Style().SetProperty("z-index", strconv.Itoa(e.zIndex))

	// Covers fill the viewport themselves; everything else dims what is
	// behind it. The click-to-dismiss wiring is separate from the dimming:
	// alerts keep the backdrop but not the handler.
	if e.Kind() != KindFullScreenCover {
		backdrop := c.doc.CreateElement("div")
		backdrop.Classes().Add(classBackdrop)
		if indirectlyDismissible(e.presentation) {
			backdrop.AddEventListener("click", createBackdropClickHandler(c, e.id))
		}
		root.AppendElement(backdrop)
		e.backdrop = backdrop
	}

	var panel *dom.Element
	switch p := e.presentation.(type) {
	case Sheet:
		panel = c.renderSheet(e, p)
	case Alert:
		panel = c.renderAlert(e, p)
	case Popover:
		panel = c.renderPopover(e, p)
	case FullScreenCover:
		panel = c.renderCover(e)
	case ConfirmationDialog:
		panel = c.renderConfirmation(e, p)
	}
	root.AppendElement(panel)

	e.root = root
	e.panel = panel
	return root
}

// createBackdropClickHandler builds the handler that dismisses an entry
// when its backdrop is clicked.
func createBackdropClickHandler(c *Coordinator, id ID) func(*dom.Event) {
	return func(*dom.Event) { c.Dismiss(id) }
}

// appendContent renders the opaque payload into parent through the
// injected content renderer.
func (c *Coordinator) appendContent(parent *dom.Element, content Content) {
	if content == nil {
		return
	}
	if node := c.render(c.doc, content); node != nil {
		parent.AppendChild(node)
	}
}

// renderCover builds the panel for a full-screen cover.
func (c *Coordinator) renderCover(e *Entry) *dom.Element {
	panel := c.doc.CreateElement("div")
	panel.Classes().Add(classPanel)
	panel.Style().SetProperty("position", "fixed")
	panel.Style().SetProperty("inset", "0")
	c.appendContent(panel, e.content)
	return panel
}

// renderConfirmation builds the panel for a confirmation dialog: an
// optional title, the content, and a vertical stack of actions with cancel
// pinned last.
func (c *Coordinator) renderConfirmation(e *Entry, p ConfirmationDialog) *dom.Element {
	panel := c.doc.CreateElement("div")
	panel.Classes().Add(classPanel)

	if p.Title != "" && p.TitleVisible {
		title := c.doc.CreateElement("h2")
		title.Classes().Add(classTitle)
		title.SetTextContent(p.Title)
		panel.AppendElement(title)
	}

	c.appendContent(panel, e.content)

	actions := c.doc.CreateElement("div")
	actions.Classes().Add(classActions, classActionsVertical)
	buttons := cancelLast(resolveButtons(p.Buttons))
	els := make([]*dom.Element, len(buttons))
	for i, b := range buttons {
		els[i] = c.appendActionButton(actions, e, b)
	}
	applyAutofocus(els, buttons)
	panel.AppendElement(actions)

	return panel
}

// resolveButtons falls back to a single synthesized acknowledgement button
// when none were supplied.
func resolveButtons(buttons []Button) []Button {
	if len(buttons) == 0 {
		return []Button{{Label: DefaultAcknowledgementLabel, Role: RoleCancel}}
	}
	return buttons
}

// cancelLast reorders buttons so cancel-role buttons come after the rest,
// preserving relative order within each group.
func cancelLast(buttons []Button) []Button {
	ordered := make([]Button, 0, len(buttons))
	for _, b := range buttons {
		if b.Role != RoleCancel {
			ordered = append(ordered, b)
		}
	}
	for _, b := range buttons {
		if b.Role == RoleCancel {
			ordered = append(ordered, b)
		}
	}
	return ordered
}

// appendActionButton builds one action button. The custom action always
// runs before the dismiss it triggers.
func (c *Coordinator) appendActionButton(actions *dom.Element, e *Entry, b Button) *dom.Element {
	btn := c.doc.CreateElement("button")
	btn.Classes().Add(classButton)
	if s := b.Role.String(); s != "" {
		btn.Classes().Add(classButton + "-" + s)
	}
	btn.SetAttribute("type", "button")
	btn.SetTextContent(b.Label)

	action := b.Action
	id := e.id
	btn.AddEventListener("click", func(*dom.Event) {
		if action != nil {
			action()
		}
		c.Dismiss(id)
	})

	actions.AppendElement(btn)
	return btn
}

// applyAutofocus marks the initial focus target: the cancel button when
// one exists, the first button otherwise.
func applyAutofocus(els []*dom.Element, buttons []Button) {
	if len(els) == 0 {
		return
	}
	target := 0
	for i, b := range buttons {
		if b.Role == RoleCancel {
			target = i
			break
		}
	}
	els[target].SetAttribute("autofocus", "")
}

// formatPx renders a pixel length for inline styles.
func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// formatPercent renders a fraction as a percentage for inline styles.
func formatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', -1, 64) + "%"
}
