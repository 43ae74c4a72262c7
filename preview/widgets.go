package preview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Palette for the projected fragments. The dom carries classes, not colors;
// these are the preview's rendering of them.
var (
	backdropColor = color.NRGBA{A: 102}
	panelColor    = color.NRGBA{R: 30, G: 30, B: 33, A: 255}
	grabberColor  = color.NRGBA{R: 124, G: 124, B: 132, A: 255}
)

// tapRegion is a filled rectangle that forwards taps. Backdrops are one of
// these; whether the tap dismisses anything is decided by the dom handler,
// not here.
type tapRegion struct {
	widget.BaseWidget
	fill  color.Color
	onTap func()
}

func newTapRegion(fill color.Color, onTap func()) *tapRegion {
	t := &tapRegion{fill: fill, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapRegion) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(t.fill))
}

func (t *tapRegion) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

// panelBox is the body of one presentation: a rounded background behind the
// projected content. Sheets carry a pointer callback; their drags feed the
// swipe handler as pointer events in window coordinates.
type panelBox struct {
	widget.BaseWidget
	content fyne.CanvasObject
	pointer func(eventType string, x, y float32)

	dragging     bool
	lastX, lastY float32
}

func newPanelBox(content fyne.CanvasObject, pointer func(string, float32, float32)) *panelBox {
	p := &panelBox{content: content, pointer: pointer}
	p.ExtendBaseWidget(p)
	return p
}

func (p *panelBox) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(panelColor)
	bg.CornerRadius = 12
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(p.content)))
}

// Tapped swallows taps so a press on the panel never reaches the backdrop
// behind it.
func (p *panelBox) Tapped(*fyne.PointEvent) {}

// Dragged synthesizes the pointer sequence the swipe handler listens for.
// The first event of a drag reconstructs the press point from the delta.
func (p *panelBox) Dragged(ev *fyne.DragEvent) {
	if p.pointer == nil {
		return
	}
	if !p.dragging {
		p.dragging = true
		p.pointer("pointerdown", ev.AbsolutePosition.X-ev.Dragged.DX, ev.AbsolutePosition.Y-ev.Dragged.DY)
	}
	p.lastX, p.lastY = ev.AbsolutePosition.X, ev.AbsolutePosition.Y
	p.pointer("pointermove", p.lastX, p.lastY)
}

func (p *panelBox) DragEnd() {
	if p.pointer == nil || !p.dragging {
		return
	}
	p.dragging = false
	p.pointer("pointerup", p.lastX, p.lastY)
}
