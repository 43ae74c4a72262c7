package tui

import "github.com/charmbracelet/lipgloss"

// Colors for the terminal frontend.
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
	BorderExit   = lipgloss.Color("238")
	VeilColor    = lipgloss.Color("236")
)

// Panel and backdrop styles.
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal)

	PanelBorderTop = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)

	PanelBorderExit = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderExit)

	Veil = lipgloss.NewStyle().Foreground(VeilColor)
)

// Text styles.
var (
	TitleText   = lipgloss.NewStyle().Bold(true)
	BodyText    = lipgloss.NewStyle()
	MutedText   = lipgloss.NewStyle().Foreground(Muted)
	GrabberText = lipgloss.NewStyle().Foreground(Muted)
)

// Button styles keyed by role and autofocus.
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Error).
			Padding(0, 2)
)
