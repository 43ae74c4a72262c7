// Package tui is the terminal attachment layer. It paints the coordinator's
// active presentations as layered boxes in z order, pumps the shared
// scheduler from the frame tick, and maps terminal keys and mouse input back
// onto the same dom elements the engine wired: backdrop presses click
// through to dismiss handlers, presses on a sheet feed the swipe gesture as
// pointer events, and escape dismisses the topmost presentation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/overlay"
)

// frameInterval is the scheduler pump rate.
const frameInterval = time.Second / 30

// tickMsg is one frame of the scheduler pump.
type tickMsg time.Time

// Model drives a Coordinator from a bubbletea program.
type Model struct {
	coord *overlay.Coordinator
	hits  *hitMap

	cols  int
	rows  int
	ready bool

	background   string
	quitWhenIdle bool

	// dragPanel receives pointer events between a press on a sheet and
	// the matching release, wherever the cursor moves meanwhile.
	dragPanel *dom.Element
}

// Option configures a Model.
type Option func(*Model)

// WithBackground layers static content under the overlays.
func WithBackground(s string) Option {
	return func(m *Model) { m.background = s }
}

// WithQuitWhenIdle exits the program once no presentations remain active.
func WithQuitWhenIdle() Option {
	return func(m *Model) { m.quitWhenIdle = true }
}

// New creates a model driving the given coordinator.
func New(c *overlay.Coordinator, opts ...Option) *Model {
	m := &Model{coord: c, hits: newHitMap()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run presents the coordinator's overlays in the terminal until quit.
func Run(c *overlay.Coordinator, opts ...Option) error {
	p := tea.NewProgram(New(c, opts...), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.coord.Scheduler().Process()
		if m.quitWhenIdle && m.coord.ActiveCount() == 0 && !m.coord.Scheduler().HasPending() {
			return m, tea.Quit
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.ready = true
		m.coord.Doc().SetViewport(geom.Size{
			Width:  float64(m.cols) * cellWidth,
			Height: float64(m.rows) * cellHeight,
		})
		for _, e := range m.coord.Active() {
			if e.Kind() == overlay.KindPopover {
				m.coord.PositionPopover(e.ID())
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.coord.DismissTopmost()
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.handlePress(msg.X, msg.Y)
			}
		case tea.MouseActionMotion:
			m.handleMotion(msg.X, msg.Y)
		case tea.MouseActionRelease:
			m.handleRelease(msg.X, msg.Y)
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.paint()
}

// cellPoint maps a cell to the pixel at its center.
func cellPoint(x, y int) geom.Point {
	return geom.Point{
		X: (float64(x) + 0.5) * cellWidth,
		Y: (float64(y) + 0.5) * cellHeight,
	}
}

// handlePress routes a left press through the current frame's hit map.
func (m *Model) handlePress(x, y int) {
	r := m.hits.Test(x, y)
	if r == nil {
		return
	}
	switch r.Kind {
	case regionButton, regionBackdrop:
		r.El.Click()
	case regionPanel, regionGrabber:
		if e := m.coord.Lookup(r.Entry); e != nil && e.Kind() == overlay.KindSheet {
			p := cellPoint(x, y)
			m.dragPanel = r.El
			r.El.DispatchEvent(dom.NewPointerEvent("pointerdown", p.X, p.Y))
		}
	}
}

func (m *Model) handleMotion(x, y int) {
	if m.dragPanel == nil {
		return
	}
	p := cellPoint(x, y)
	m.dragPanel.DispatchEvent(dom.NewPointerEvent("pointermove", p.X, p.Y))
}

func (m *Model) handleRelease(x, y int) {
	if m.dragPanel == nil {
		return
	}
	p := cellPoint(x, y)
	m.dragPanel.DispatchEvent(dom.NewPointerEvent("pointerup", p.X, p.Y))
	m.dragPanel = nil
}
