package tui

import "testing"

func TestSpliceReplacesCells(t *testing.T) {
	lines := blankLines(6, 3)
	splice(lines, "AB\nCD", 2, 1, 6)

	if lines[0] != "      " {
		t.Errorf("Expected row 0 untouched, got %q", lines[0])
	}
	if lines[1] != "  AB  " {
		t.Errorf("Expected fragment spliced into row 1, got %q", lines[1])
	}
	if lines[2] != "  CD  " {
		t.Errorf("Expected fragment spliced into row 2, got %q", lines[2])
	}
}

func TestSpliceClipsAtCanvasEdge(t *testing.T) {
	lines := blankLines(6, 2)
	splice(lines, "WXYZ", 4, 0, 6)
	if lines[0] != "    WX" {
		t.Errorf("Expected right-clipped fragment, got %q", lines[0])
	}

	splice(lines, "AB", -1, 1, 6)
	if lines[1] != "B     " {
		t.Errorf("Expected left-clipped fragment, got %q", lines[1])
	}

	// Rows outside the canvas are dropped without panicking.
	splice(lines, "QQ", 0, 5, 6)
	splice(lines, "QQ", 0, -2, 6)
}

func TestPadAndCenter(t *testing.T) {
	if got := padTo("ab", 5); got != "ab   " {
		t.Errorf("Expected padded line, got %q", got)
	}
	if got := padTo("abcdef", 4); got != "abcd" {
		t.Errorf("Expected truncated line, got %q", got)
	}
	if got := centerTo("ab", 6); got != "  ab  " {
		t.Errorf("Expected centered line, got %q", got)
	}
	if got := centerTo("abc", 6); got != " abc  " {
		t.Errorf("Expected left-biased centering, got %q", got)
	}
}

func TestWrapTo(t *testing.T) {
	lines := wrapTo("one two three", 7)
	if len(lines) != 2 || lines[0] != "one two" || lines[1] != "three" {
		t.Errorf("Expected word wrap at width 7, got %q", lines)
	}
}
