package geom

import (
	"testing"
)

func TestPointAddSub(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	sum := p.Add(q)
	if sum.X != 4 || sum.Y != 2 {
		t.Errorf("Expected Add=(4,2), got (%v,%v)", sum.X, sum.Y)
	}

	diff := p.Sub(q)
	if diff.X != 2 || diff.Y != 6 {
		t.Errorf("Expected Sub=(2,6), got (%v,%v)", diff.X, diff.Y)
	}
}

func TestSizeIsZero(t *testing.T) {
	if Sz(100, 50).IsZero() {
		t.Error("Expected 100x50 to be non-zero")
	}
	if !Sz(0, 50).IsZero() {
		t.Error("Expected zero width to report IsZero")
	}
	if !Sz(100, -1).IsZero() {
		t.Error("Expected negative height to report IsZero")
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Top() != 20 {
		t.Errorf("Expected Top=20, got %v", r.Top())
	}
	if r.Left() != 10 {
		t.Errorf("Expected Left=10, got %v", r.Left())
	}
	if r.Right() != 110 {
		t.Errorf("Expected Right=110, got %v", r.Right())
	}
	if r.Bottom() != 70 {
		t.Errorf("Expected Bottom=70, got %v", r.Bottom())
	}
}

func TestRectNegativeExtents(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: -50, Height: -30}
	if r.Left() != 50 {
		t.Errorf("Expected Left=50 (x + negative width), got %v", r.Left())
	}
	if r.Right() != 100 {
		t.Errorf("Expected Right=100 (x for negative width), got %v", r.Right())
	}
	if r.Top() != 70 {
		t.Errorf("Expected Top=70 (y + negative height), got %v", r.Top())
	}
	if r.Bottom() != 100 {
		t.Errorf("Expected Bottom=100 (y for negative height), got %v", r.Bottom())
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 380, Y: 10, Width: 40, Height: 20}
	c := r.Center()
	if c.X != 400 || c.Y != 20 {
		t.Errorf("Expected Center=(400,20), got (%v,%v)", c.X, c.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	if !r.Contains(Pt(400, 300)) {
		t.Error("Expected interior point to be contained")
	}
	if !r.Contains(Pt(0, 0)) {
		t.Error("Expected boundary point to be contained")
	}
	if r.Contains(Pt(801, 300)) {
		t.Error("Expected point past the right edge to be outside")
	}
	if r.Contains(Pt(400, -1)) {
		t.Error("Expected point above the top edge to be outside")
	}
}

func TestRectContainsRect(t *testing.T) {
	viewport := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	inner := Rect{X: 8, Y: 8, Width: 300, Height: 200}
	if !viewport.ContainsRect(inner) {
		t.Error("Expected inner rect to be contained")
	}

	overflowing := Rect{X: 700, Y: 8, Width: 300, Height: 200}
	if viewport.ContainsRect(overflowing) {
		t.Error("Expected rect past the right edge to not be contained")
	}

	if !viewport.ContainsRect(viewport) {
		t.Error("Expected a rect to contain itself")
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	in := r.Inset(8)
	if in.X != 8 || in.Y != 8 {
		t.Errorf("Expected inset origin=(8,8), got (%v,%v)", in.X, in.Y)
	}
	if in.Width != 784 || in.Height != 584 {
		t.Errorf("Expected inset size=784x584, got %vx%v", in.Width, in.Height)
	}

	out := r.Inset(-10)
	if out.X != -10 || out.Width != 820 {
		t.Errorf("Expected negative inset to grow the rect, got X=%v Width=%v", out.X, out.Width)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Expected in-range value unchanged, got %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Expected clamp to lower bound, got %v", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Expected clamp to upper bound, got %v", got)
	}
	// Inverted interval: lower bound wins so the near edge stays visible.
	if got := Clamp(5, 20, 10); got != 20 {
		t.Errorf("Expected inverted interval to return lo, got %v", got)
	}
}

func TestEdgeOppositeInvolution(t *testing.T) {
	edges := []Edge{EdgeTop, EdgeBottom, EdgeLeading, EdgeTrailing}
	for _, e := range edges {
		if e.Opposite().Opposite() != e {
			t.Errorf("Expected Opposite(Opposite(%v))=%v, got %v", e, e, e.Opposite().Opposite())
		}
		if e.Opposite() == e {
			t.Errorf("Expected Opposite(%v) to differ from %v", e, e)
		}
	}

	if EdgeTop.Opposite() != EdgeBottom {
		t.Errorf("Expected top to pair with bottom, got %v", EdgeTop.Opposite())
	}
	if EdgeLeading.Opposite() != EdgeTrailing {
		t.Errorf("Expected leading to pair with trailing, got %v", EdgeLeading.Opposite())
	}
}

func TestEdgeVertical(t *testing.T) {
	if !EdgeTop.Vertical() || !EdgeBottom.Vertical() {
		t.Error("Expected top and bottom to be vertical")
	}
	if EdgeLeading.Vertical() || EdgeTrailing.Vertical() {
		t.Error("Expected leading and trailing to be horizontal")
	}
}

func TestEdgeString(t *testing.T) {
	cases := []struct {
		edge Edge
		want string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeading, "leading"},
		{EdgeTrailing, "trailing"},
		{Edge(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.edge.String(); got != c.want {
			t.Errorf("Expected String()=%q, got %q", c.want, got)
		}
	}
}
