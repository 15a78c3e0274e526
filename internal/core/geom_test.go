package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if !r.Contains(10, 10) || !r.Contains(29, 24) || r.Contains(30, 24) || r.Contains(10, 25) {
		t.Error("Contains must include the top-left and exclude right/bottom edges")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(2.5, 0.4, 2.0) != 2.0 || ClampF(0.1, 0.4, 2.0) != 0.4 {
		t.Error("ClampF out of range")
	}
}

func TestFitViewport(t *testing.T) {
	v := FitViewport(0, 0, 1000, 1400, 100, 35, 2)

	if v.Scale != 20 {
		t.Fatalf("scale = %v, want 20", v.Scale)
	}
	if x, y := v.Point(0, 0); x != 25 || y != 0 {
		t.Errorf("Point(0,0) = %d,%d; want 25,0 (centered)", x, y)
	}
	if got := v.Rect(0, 0, 1000, 1400); got != NewRect(25, 0, 50, 35) {
		t.Errorf("world rect = %+v", got)
	}
	if got := v.Rect(500, 700, 501, 701); got.W != 1 || got.H != 1 {
		t.Errorf("tiny rect = %+v, want one cell", got)
	}
}

func TestFitViewportDegenerate(t *testing.T) {
	v := FitViewport(0, 0, 0, 0, 0, 0, 0)
	if v.Scale != 1 || v.Aspect != 2 {
		t.Errorf("degenerate viewport = %+v", v)
	}
}
