package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("Zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Tap(3, 4)
	if !f.Has(ActionUp) || f.Has(ActionDown) {
		t.Errorf("Has mismatch: %v", f.Actions)
	}
	if len(f.Taps) != 1 || f.Taps[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("Taps = %v, expected [{3 4}]", f.Taps)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionUp) || len(clone.Taps) != 1 {
		t.Error("Clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionConfirm, "Confirm"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"cyan", ColorCyan, true},
		{"Bright_Cyan", ColorBrightCyan, true},
		{" orange ", ColorOrange, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}
	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.expected, tc.ok)
		}
	}
}
