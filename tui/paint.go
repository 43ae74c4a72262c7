package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/gesture"
	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/overlay"
)

// Logical pixels per terminal cell. All overlay geometry is in pixels; the
// terminal projection divides by these to get cell coordinates.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// pendingRegion is a button-sized region expressed relative to a panel's
// inner content area, before the panel's final position is known.
type pendingRegion struct {
	el *dom.Element
	dx int
	dy int
	w  int
}

// paint renders one full frame and rebuilds the hit map as it goes.
func (m *Model) paint() string {
	lines := blankLines(m.cols, m.rows)
	if m.background != "" {
		splice(lines, m.background, 0, 0, m.cols)
	}
	m.hits.Clear()

	active := m.coord.Active()
	for i, e := range active {
		m.paintEntry(lines, e, i == len(active)-1)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) paintEntry(lines []string, e *overlay.Entry, topmost bool) {
	panel := e.Panel()
	if panel == nil {
		return
	}

	if bd := e.Backdrop(); bd != nil {
		m.paintVeil(lines)
		bd.SetMeasured(m.coord.Doc().ViewportRect())
		m.hits.Add(region{
			Kind:  regionBackdrop,
			Entry: e.ID(),
			El:    bd,
			Rect:  cellRect{X: 0, Y: 0, W: m.cols, H: m.rows},
		})
	}

	w := m.entryWidth(e)
	content, pends := m.panelLines(e, w-2)
	box := m.entryBox(e, w, len(content)+2)
	m.measurePanel(e, box)

	draw := box
	if e.Kind() == overlay.KindSheet {
		ty := parseTranslateY(panel.Style().GetPropertyValue("transform"))
		draw.Y += int(math.Round(ty / cellHeight))
	}

	innerW, innerH := draw.W-2, draw.H-2
	if len(content) > innerH {
		content = content[:innerH]
	}
	shift := 0
	if e.Kind() == overlay.KindFullScreenCover && len(content) < innerH {
		shift = (innerH - len(content)) / 2
		pad := make([]string, shift)
		for i := range pad {
			pad[i] = padTo("", innerW)
		}
		content = append(pad, content...)
	}
	for len(content) < innerH {
		content = append(content, padTo("", innerW))
	}

	rendered := m.borderStyle(e, topmost).Render(strings.Join(content, "\n"))
	splice(lines, rendered, draw.X, draw.Y, m.cols)

	m.hits.Add(region{Kind: regionPanel, Entry: e.ID(), El: panel, Rect: draw})
	if e.Kind() == overlay.KindSheet {
		m.hits.Add(region{
			Kind:  regionGrabber,
			Entry: e.ID(),
			El:    panel,
			Rect:  cellRect{X: draw.X + 1, Y: draw.Y + 1, W: innerW, H: 1},
		})
	}
	for _, p := range pends {
		dy := p.dy + shift
		if dy >= innerH {
			continue
		}
		m.hits.Add(region{
			Kind:  regionButton,
			Entry: e.ID(),
			El:    p.el,
			Rect:  cellRect{X: draw.X + 1 + p.dx, Y: draw.Y + 1 + dy, W: p.w, H: 1},
		})
	}
}

// paintVeil shades the whole canvas. Stacked entries each repaint it, so a
// veil always sits directly under the topmost panel.
func (m *Model) paintVeil(lines []string) {
	row := Veil.Render(strings.Repeat("░", m.cols))
	for i := range lines {
		lines[i] = row
	}
}

// entryWidth returns the panel's outer width in cells for each kind.
func (m *Model) entryWidth(e *overlay.Entry) int {
	switch e.Kind() {
	case overlay.KindSheet, overlay.KindFullScreenCover:
		return m.cols
	case overlay.KindConfirmationDialog:
		return max(min(48, m.cols-4), 12)
	case overlay.KindPopover:
		if r, ok := e.Panel().Measured(); ok && !r.Size().IsZero() {
			return min(max(int(math.Round(r.Width/cellWidth)), 12), m.cols)
		}
		return max(min(35, m.cols-4), 12)
	default:
		return max(min(44, m.cols-4), 12)
	}
}

// entryBox returns the resting box (no drag offset) in cell coordinates.
// contentH is the outer height a content-sized panel would need.
func (m *Model) entryBox(e *overlay.Entry, w, contentH int) cellRect {
	switch e.Kind() {
	case overlay.KindSheet:
		f := parsePercent(e.Panel().Style().GetPropertyValue("max-height"))
		if f == 0 {
			f = 0.5
		}
		h := int(math.Round(f * float64(m.rows)))
		h = max(min(h, m.rows-1), 3)
		return cellRect{X: 0, Y: m.rows - h, W: w, H: h}

	case overlay.KindFullScreenCover:
		return cellRect{X: 0, Y: 0, W: m.cols, H: m.rows}

	case overlay.KindConfirmationDialog:
		h := min(contentH, m.rows)
		y := m.rows - h - 1
		return cellRect{X: (m.cols - w) / 2, Y: max(y, 0), W: w, H: h}

	case overlay.KindPopover:
		if r, ok := e.Panel().Measured(); ok && !r.Size().IsZero() {
			h := min(max(int(math.Round(r.Height/cellHeight)), 3), m.rows)
			x := int(math.Round(r.X / cellWidth))
			y := int(math.Round(r.Y / cellHeight))
			x = max(min(x, m.cols-w), 0)
			y = max(min(y, m.rows-h), 0)
			return cellRect{X: x, Y: y, W: w, H: h}
		}
		h := min(contentH, m.rows)
		return cellRect{X: (m.cols - w) / 2, Y: max((m.rows-h)/2, 0), W: w, H: h}

	default: // alert
		h := min(contentH, m.rows)
		return cellRect{X: (m.cols - w) / 2, Y: max((m.rows-h)/2, 0), W: w, H: h}
	}
}

// measurePanel writes the resting box back onto the panel in pixels so dom
// hit testing and the swipe gesture agree with what is on screen. A popover
// measured by PositionPopover keeps its placed rect.
func (m *Model) measurePanel(e *overlay.Entry, box cellRect) {
	if e.Kind() == overlay.KindPopover {
		if r, ok := e.Panel().Measured(); ok && !r.Size().IsZero() {
			return
		}
	}
	e.Panel().SetMeasured(geom.Rect{
		X:      float64(box.X) * cellWidth,
		Y:      float64(box.Y) * cellHeight,
		Width:  float64(box.W) * cellWidth,
		Height: float64(box.H) * cellHeight,
	})
}

func (m *Model) borderStyle(e *overlay.Entry, topmost bool) lipgloss.Style {
	if e.Dismissing() || e.Root().HasAttribute(gesture.DismissingAttr) {
		return PanelBorderExit
	}
	if topmost {
		return PanelBorderTop
	}
	return PanelBorder
}

// panelLines projects the panel's dom fragment into styled content lines.
// It returns the lines plus the button regions found along the way,
// positioned relative to the content area.
func (m *Model) panelLines(e *overlay.Entry, innerW int) ([]string, []pendingRegion) {
	var lines []string
	var pends []pendingRegion

	for _, n := range e.Panel().AsNode().ChildNodes() {
		el := n.AsElement()
		if el == nil {
			if t := strings.TrimSpace(n.Text()); t != "" {
				for _, l := range wrapTo(t, innerW) {
					lines = append(lines, padTo(BodyText.Render(l), innerW))
				}
			}
			continue
		}

		cl := el.Classes()
		switch {
		case cl.Contains("scrim-grabber"):
			lines = append(lines, centerTo(GrabberText.Render("────"), innerW))

		case cl.Contains("scrim-title"):
			for _, l := range wrapTo(el.TextContent(), innerW) {
				lines = append(lines, centerTo(TitleText.Render(l), innerW))
			}

		case cl.Contains("scrim-message"):
			for _, l := range wrapTo(el.TextContent(), innerW) {
				lines = append(lines, centerTo(BodyText.Render(l), innerW))
			}

		case cl.Contains("scrim-content"):
			if t := strings.TrimSpace(el.TextContent()); t != "" {
				for _, l := range wrapTo(t, innerW) {
					lines = append(lines, padTo(BodyText.Render(l), innerW))
				}
			}

		case cl.Contains("scrim-actions"):
			lines = append(lines, padTo("", innerW))
			if cl.Contains("scrim-actions-horizontal") {
				row, rowPends := buttonRow(el.Children(), innerW, len(lines))
				lines = append(lines, row)
				pends = append(pends, rowPends...)
			} else {
				for _, btn := range el.Children() {
					s := buttonStyle(btn).Render(btn.TextContent())
					bw := lipgloss.Width(s)
					lead := max((innerW-bw)/2, 0)
					pends = append(pends, pendingRegion{el: btn, dx: lead, dy: len(lines), w: min(bw, innerW)})
					lines = append(lines, padTo(strings.Repeat(" ", lead)+s, innerW))
				}
			}

		case cl.Contains("scrim-arrow"):
			// no terminal projection for the pointer arrow

		default:
			if t := strings.TrimSpace(el.TextContent()); t != "" {
				for _, l := range wrapTo(t, innerW) {
					lines = append(lines, padTo(BodyText.Render(l), innerW))
				}
			}
		}
	}
	return lines, pends
}

// buttonRow lays out buttons on one centered row with a two-cell gap.
func buttonRow(btns []*dom.Element, innerW, dy int) (string, []pendingRegion) {
	rendered := make([]string, len(btns))
	total := 0
	for i, btn := range btns {
		rendered[i] = buttonStyle(btn).Render(btn.TextContent())
		total += lipgloss.Width(rendered[i])
	}
	if len(btns) > 1 {
		total += 2 * (len(btns) - 1)
	}

	lead := max((innerW-total)/2, 0)
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", lead))

	var pends []pendingRegion
	dx := lead
	for i, s := range rendered {
		if i > 0 {
			sb.WriteString("  ")
			dx += 2
		}
		sb.WriteString(s)
		bw := lipgloss.Width(s)
		pends = append(pends, pendingRegion{el: btns[i], dx: dx, dy: dy, w: bw})
		dx += bw
	}
	return padTo(sb.String(), innerW), pends
}

func buttonStyle(el *dom.Element) lipgloss.Style {
	cl := el.Classes()
	switch {
	case cl.Contains("scrim-button-destructive"):
		return ButtonDanger
	case el.HasAttribute("autofocus"):
		return ButtonFocused
	default:
		return Button
	}
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
