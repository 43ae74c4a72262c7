// Package preview is the desktop attachment layer. It projects the active
// presentation stack into a Fyne window and feeds taps, drags and the
// escape key back through the overlay's dom fragments.
package preview

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/overlay"
)

// frameInterval is the pump rate for the scheduler and reprojection.
const frameInterval = time.Second / 30

// App is a window attached to one coordinator. The window's canvas is the
// document's viewport; the pump keeps the two in sync.
type App struct {
	app    fyne.App
	window fyne.Window
	coord  *overlay.Coordinator

	background fyne.CanvasObject
	layer      *fyne.Container

	lastSnapshot string
	lastSize     fyne.Size
}

// Option configures an App.
type Option func(*App)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(a *App) { a.window.SetTitle(title) }
}

// WithSize sets the initial window size.
func WithSize(width, height float32) Option {
	return func(a *App) { a.window.Resize(fyne.NewSize(width, height)) }
}

// WithBackground places an object under the presentation stack.
func WithBackground(obj fyne.CanvasObject) Option {
	return func(a *App) { a.background = obj }
}

// New builds a window for the coordinator's document.
func New(c *overlay.Coordinator, opts ...Option) *App {
	fa := app.New()
	w := fa.NewWindow("scrim")
	w.Resize(fyne.NewSize(1280, 800))

	a := &App{
		app:    fa,
		window: w,
		coord:  c,
		layer:  container.NewWithoutLayout(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.background == nil {
		hint := widget.NewLabel("No active presentations. Escape dismisses the topmost one.")
		hint.Alignment = fyne.TextAlignCenter
		a.background = container.NewCenter(hint)
	}
	w.SetContent(container.NewStack(a.background, a.layer))

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.coord.DismissTopmost()
		}
	})

	return a
}

// Run shows the window and blocks until it closes. A ticker goroutine hands
// the pump to the Fyne thread at the frame rate.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fyne.Do(a.pump)
			}
		}
	}()
	a.window.SetOnClosed(func() {
		ticker.Stop()
		close(done)
	})
	a.window.ShowAndRun()
}

// pump advances timers, tracks resizes, and reprojects when the fragments
// changed. Every visible mutation lands in the serialized tree, so
// comparing snapshots is the change check.
func (a *App) pump() {
	a.coord.Scheduler().Process()

	if size := a.window.Canvas().Size(); size != a.lastSize && size.Width > 0 {
		a.lastSize = size
		a.coord.Doc().SetViewport(geom.Sz(float64(size.Width), float64(size.Height)))
		for _, e := range a.coord.Active() {
			if e.Kind() == overlay.KindPopover {
				a.coord.PositionPopover(e.ID())
			}
		}
	}

	snapshot := a.coord.Doc().Root().OuterHTML()
	if snapshot == a.lastSnapshot {
		return
	}
	a.lastSnapshot = snapshot

	a.layer.Objects = projectEntries(a.coord, a.lastSize)
	a.layer.Refresh()
}
