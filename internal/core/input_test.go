package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionTiltLeft)
	f.Set(ActionTiltLeft)
	f.Set(ActionPause)

	if !f.Has(ActionTiltLeft) || f.Count(ActionTiltLeft) != 2 {
		t.Errorf("TiltLeft count = %d, want 2", f.Count(ActionTiltLeft))
	}
	if f.Has(ActionQuit) {
		t.Error("unexpected Quit")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame not empty after Clear")
	}

	var zero InputFrame
	zero.Set(ActionLevel)
	if !zero.Has(ActionLevel) {
		t.Error("zero-value frame should accept Set")
	}
}

func TestActionString(t *testing.T) {
	if ActionTiltDown.String() != "TiltDown" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
	if !ActionTiltUp.IsTilt() || ActionLevel.IsTilt() || ActionNone.IsTilt() {
		t.Error("IsTilt misclassifies actions")
	}
}
