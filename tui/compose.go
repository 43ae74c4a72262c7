package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// blankLines returns a rows-long canvas of space-filled lines, each cols
// cells wide.
func blankLines(cols, rows int) []string {
	blank := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

// splice draws the (possibly multi-line, possibly styled) fragment onto the
// canvas with its top-left corner at cell (x, y). Fragment cells replace
// canvas cells; rows and columns outside the canvas are clipped.
func splice(lines []string, fragment string, x, y, cols int) {
	for i, fl := range strings.Split(fragment, "\n") {
		ty := y + i
		if ty < 0 || ty >= len(lines) {
			continue
		}
		fx := x
		if fx < 0 {
			fl = ansi.TruncateLeft(fl, -fx, "")
			fx = 0
		}
		if fx >= cols {
			continue
		}
		w := ansi.StringWidth(fl)
		if fx+w > cols {
			fl = ansi.Truncate(fl, cols-fx, "")
			w = cols - fx
		}
		left := ansi.Truncate(lines[ty], fx, "")
		right := ansi.TruncateLeft(lines[ty], fx+w, "")
		lines[ty] = left + fl + right
	}
}

// padTo pads a styled line with trailing spaces up to width cells,
// truncating first if it is too wide.
func padTo(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "")
		w = width
	}
	return s + strings.Repeat(" ", width-w)
}

// centerTo centers a styled line within width cells.
func centerTo(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return padTo(s, width)
	}
	lead := (width - w) / 2
	return padTo(strings.Repeat(" ", lead)+s, width)
}

// wrapTo word-wraps text to the given width and returns the lines.
func wrapTo(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(ansi.Wordwrap(s, width, ""), "\n")
}
