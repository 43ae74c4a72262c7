package preview

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/overlay"
)

// Panel metrics in window pixels.
const (
	alertWidth        float32 = 320
	confirmationWidth float32 = 440
	popoverWidth      float32 = 280
	popoverHeight     float32 = 200
	panelMargin       float32 = 16
	panelChrome       float32 = 24
	grabberWidth      float32 = 36
	grabberHeight     float32 = 5
	arrowSpan         float32 = 12
	arrowDepth        float32 = 6
)

// pxRect is a box in window pixels, which are also document pixels.
type pxRect struct {
	X, Y, W, H float32
}

// projectEntries turns the active presentation stack into positioned canvas
// objects, bottom to top. It also writes measured geometry back onto the
// fragments so dom hit testing and the swipe gesture see what is on screen.
func projectEntries(c *overlay.Coordinator, size fyne.Size) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	for _, e := range c.Active() {
		objects = append(objects, projectEntry(c, e, size)...)
	}
	return objects
}

func projectEntry(c *overlay.Coordinator, e *overlay.Entry, size fyne.Size) []fyne.CanvasObject {
	panel := e.Panel()
	if panel == nil {
		return nil
	}

	var objects []fyne.CanvasObject
	if bd := e.Backdrop(); bd != nil {
		bd.SetMeasured(c.Doc().ViewportRect())
		region := newTapRegion(backdropColor, func() { bd.Click() })
		region.Resize(size)
		objects = append(objects, region)
	}

	content := panelContent(e)
	if e.Kind() == overlay.KindFullScreenCover {
		content = container.NewCenter(content)
	}

	box := panelRect(e, content.MinSize(), size)
	measurePanel(e, box)

	draw := box
	if e.Kind() == overlay.KindSheet {
		draw.Y += float32(parseTranslateY(panel.Style().GetPropertyValue("transform")))
	}

	var pointer func(string, float32, float32)
	if e.Kind() == overlay.KindSheet {
		pointer = func(eventType string, x, y float32) {
			panel.DispatchEvent(dom.NewPointerEvent(eventType, float64(x), float64(y)))
		}
	}

	pb := newPanelBox(content, pointer)
	pb.Resize(fyne.NewSize(draw.W, draw.H))
	pb.Move(fyne.NewPos(draw.X, draw.Y))
	objects = append(objects, pb)

	if e.Kind() == overlay.KindPopover {
		if arrow := popoverArrow(panel, draw); arrow != nil {
			objects = append(objects, arrow)
		}
	}
	return objects
}

// panelRect returns the resting box for an entry in window pixels.
func panelRect(e *overlay.Entry, contentMin fyne.Size, size fyne.Size) pxRect {
	vw, vh := size.Width, size.Height
	switch e.Kind() {
	case overlay.KindSheet:
		f := parsePercent(e.Panel().Style().GetPropertyValue("max-height"))
		if f == 0 {
			f = 0.5
		}
		h := float32(f) * vh
		return pxRect{X: 0, Y: vh - h, W: vw, H: h}

	case overlay.KindFullScreenCover:
		return pxRect{W: vw, H: vh}

	case overlay.KindConfirmationDialog:
		w := min(confirmationWidth, vw-2*panelMargin)
		h := min(contentMin.Height+panelChrome, vh-2*panelMargin)
		return pxRect{X: (vw - w) / 2, Y: vh - h - panelMargin, W: w, H: h}

	case overlay.KindPopover:
		if r, ok := e.Panel().Measured(); ok && !r.Size().IsZero() {
			return pxRect{X: float32(r.X), Y: float32(r.Y), W: float32(r.Width), H: float32(r.Height)}
		}
		return pxRect{X: (vw - popoverWidth) / 2, Y: (vh - popoverHeight) / 2, W: popoverWidth, H: popoverHeight}

	default: // alert
		w := min(alertWidth, vw-4*panelMargin)
		h := min(contentMin.Height+panelChrome, vh-4*panelMargin)
		return pxRect{X: (vw - w) / 2, Y: (vh - h) / 2, W: w, H: h}
	}
}

// measurePanel writes the resting box back onto the panel. A popover placed
// by PositionPopover keeps its rect.
func measurePanel(e *overlay.Entry, box pxRect) {
	if e.Kind() == overlay.KindPopover {
		if r, ok := e.Panel().Measured(); ok && !r.Size().IsZero() {
			return
		}
	}
	e.Panel().SetMeasured(geom.Rect{
		X:      float64(box.X),
		Y:      float64(box.Y),
		Width:  float64(box.W),
		Height: float64(box.H),
	})
}

// panelContent projects the panel's dom fragment into widgets.
func panelContent(e *overlay.Entry) fyne.CanvasObject {
	box := container.NewVBox()
	for _, n := range e.Panel().AsNode().ChildNodes() {
		el := n.AsElement()
		if el == nil {
			if t := strings.TrimSpace(n.Text()); t != "" {
				box.Add(bodyLabel(t, fyne.TextAlignLeading))
			}
			continue
		}

		cl := el.Classes()
		switch {
		case cl.Contains("scrim-grabber"):
			grab := canvas.NewRectangle(grabberColor)
			grab.CornerRadius = grabberHeight / 2
			box.Add(container.NewCenter(container.NewGridWrap(fyne.NewSize(grabberWidth, grabberHeight), grab)))

		case cl.Contains("scrim-title"):
			title := widget.NewLabel(el.TextContent())
			title.TextStyle = fyne.TextStyle{Bold: true}
			title.Alignment = fyne.TextAlignCenter
			title.Wrapping = fyne.TextWrapWord
			box.Add(title)

		case cl.Contains("scrim-message"):
			box.Add(bodyLabel(el.TextContent(), fyne.TextAlignCenter))

		case cl.Contains("scrim-content"):
			if t := strings.TrimSpace(el.TextContent()); t != "" {
				box.Add(bodyLabel(t, fyne.TextAlignLeading))
			}

		case cl.Contains("scrim-actions"):
			box.Add(actionButtons(el, cl.Contains("scrim-actions-horizontal")))

		case cl.Contains("scrim-arrow"):
			// placed beside the panel, not inside it

		default:
			if t := strings.TrimSpace(el.TextContent()); t != "" {
				box.Add(bodyLabel(t, fyne.TextAlignLeading))
			}
		}
	}
	return box
}

func bodyLabel(text string, align fyne.TextAlign) *widget.Label {
	l := widget.NewLabel(text)
	l.Alignment = align
	l.Wrapping = fyne.TextWrapWord
	return l
}

// actionButtons projects a scrim-actions group. Clicks flow through the dom
// button, so the renderer's action-then-dismiss order holds.
func actionButtons(actions *dom.Element, horizontal bool) fyne.CanvasObject {
	var objs []fyne.CanvasObject
	for _, btnEl := range actions.Children() {
		b := widget.NewButton(btnEl.TextContent(), func() { btnEl.Click() })
		switch {
		case btnEl.Classes().Contains("scrim-button-destructive"):
			b.Importance = widget.DangerImportance
		case btnEl.HasAttribute("autofocus"):
			b.Importance = widget.HighImportance
		}
		objs = append(objs, b)
	}
	if horizontal {
		return container.NewCenter(container.NewHBox(objs...))
	}
	return container.NewVBox(objs...)
}

// popoverArrow projects the arrow as a nub on the panel's anchor-facing
// side, at the offset the placement pass wrote onto the arrow element. The
// data-edge attribute names the anchor edge the panel sits on, so the nub
// goes on the panel's opposite side.
func popoverArrow(panel *dom.Element, box pxRect) fyne.CanvasObject {
	var arrowEl *dom.Element
	for _, child := range panel.Children() {
		if child.Classes().Contains("scrim-arrow") {
			arrowEl = child
			break
		}
	}
	if arrowEl == nil || arrowEl.Style().GetPropertyValue("display") == "none" {
		return nil
	}

	nub := canvas.NewRectangle(panelColor)
	switch panel.GetAttribute("data-edge") {
	case "bottom":
		nub.Resize(fyne.NewSize(arrowSpan, arrowDepth))
		nub.Move(fyne.NewPos(box.X+styleOffset(arrowEl, "left"), box.Y-arrowDepth))
	case "top":
		nub.Resize(fyne.NewSize(arrowSpan, arrowDepth))
		nub.Move(fyne.NewPos(box.X+styleOffset(arrowEl, "left"), box.Y+box.H))
	case "leading":
		nub.Resize(fyne.NewSize(arrowDepth, arrowSpan))
		nub.Move(fyne.NewPos(box.X+box.W, box.Y+styleOffset(arrowEl, "top")))
	case "trailing":
		nub.Resize(fyne.NewSize(arrowDepth, arrowSpan))
		nub.Move(fyne.NewPos(box.X-arrowDepth, box.Y+styleOffset(arrowEl, "top")))
	default:
		return nil
	}
	return nub
}

func styleOffset(el *dom.Element, prop string) float32 {
	return float32(parsePx(el.Style().GetPropertyValue(prop)))
}

// parsePx reads a "NNpx" style value, 0 when absent or malformed.
func parsePx(s string) float64 {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "px") {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0
	}
	return f
}

// parsePercent reads a "NN%" style value as a fraction, 0 when absent.
func parsePercent(s string) float64 {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || f <= 0 {
		return 0
	}
	return f / 100
}

// parseTranslateY reads the vertical offset of a translateY transform in
// pixels, 0 for anything else.
func parseTranslateY(s string) float64 {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translateY(") || !strings.HasSuffix(s, "px)") {
		return 0
	}
	f, err := strconv.ParseFloat(s[len("translateY("):len(s)-len("px)")], 64)
	if err != nil {
		return 0
	}
	return f
}
