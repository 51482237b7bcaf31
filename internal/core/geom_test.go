package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
		fits     bool
	}{
		{"easy board in 80x24", NewRect(0, 0, 80, 24), 19, 11, NewRect(30, 6, 19, 11), true},
		{"exact fit", NewRect(0, 0, 10, 5), 10, 5, NewRect(0, 0, 10, 5), true},
		{"offset outer", NewRect(2, 3, 10, 10), 4, 4, NewRect(5, 6, 4, 4), true},
		{"too wide", NewRect(0, 0, 40, 24), 61, 18, NewRect(-10, 3, 61, 18), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Centered(tc.w, tc.h); got != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
			if got := tc.outer.Fits(tc.w, tc.h); got != tc.fits {
				t.Errorf("Fits(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.fits)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionReveal, ActionLeft)

	if !f.Has(ActionReveal) || !f.Has(ActionLeft) {
		t.Errorf("FrameOf should set all actions, got %v", f.Actions)
	}
	if f.Has(ActionFlag) {
		t.Error("Has(ActionFlag) = true, expected false")
	}
	if f.Empty() {
		t.Error("Empty() = true for a frame with actions")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Empty() = false after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) || !zero.Empty() {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlag.String() != "Flag" {
		t.Errorf("ActionFlag.String() = %q, expected Flag", ActionFlag.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
