package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFlip) {
		t.Error("empty frame should not report any action")
	}

	f.Set(ActionFlip)
	f.Set(ActionUp)

	if !f.Has(ActionFlip) || !f.Has(ActionUp) {
		t.Error("frame should report actions that were set")
	}
	if f.Has(ActionRestart) {
		t.Error("frame should not report actions that were not set")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()

	if f.Click != nil {
		t.Error("new frame should carry no click")
	}

	f.SetClick(3, 7)
	if f.Click == nil || f.Click.X != 3 || f.Click.Y != 7 {
		t.Errorf("SetClick(3, 7) stored %+v", f.Click)
	}

	// A later click within the same frame replaces the earlier one.
	f.SetClick(1, 2)
	if f.Click.X != 1 || f.Click.Y != 2 {
		t.Errorf("second SetClick should replace the first, got %+v", f.Click)
	}

	f.Clear()
	if f.Click != nil {
		t.Error("Clear should drop the click")
	}
	if f.Has(ActionFlip) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.SetClick(4, 4)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRestart) {
		t.Error("clone should keep actions after the original is cleared")
	}
	if clone.Click == nil || clone.Click.X != 4 {
		t.Error("clone should keep an independent click copy")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionFlip, "Flip"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
