package overlay

import "github.com/scrimui/scrim/dom"

// renderAlert builds the panel for an alert: title, message, content, and
// an action row. One or two buttons sit side by side, more stack
// vertically.
func (c *Coordinator) renderAlert(e *Entry, p Alert) *dom.Element {
	panel := c.doc.CreateElement("div")
	panel.Classes().Add(classPanel)

	if p.Title != "" {
		title := c.doc.CreateElement("h2")
		title.Classes().Add(classTitle)
		title.SetTextContent(p.Title)
		panel.AppendElement(title)
	}
	if p.Message != "" {
		message := c.doc.CreateElement("p")
		message.Classes().Add(classMessage)
		message.SetTextContent(p.Message)
		panel.AppendElement(message)
	}

	c.appendContent(panel, e.content)

	buttons := resolveButtons(p.Buttons)
	actions := c.doc.CreateElement("div")
	orientation := classActionsHorizontal
	if len(buttons) > 2 {
		orientation = classActionsVertical
	}
	actions.Classes().Add(classActions, orientation)

	els := make([]*dom.Element, len(buttons))
	for i, b := range buttons {
		els[i] = c.appendActionButton(actions, e, b)
	}
	applyAutofocus(els, buttons)
	panel.AppendElement(actions)

	return panel
}
