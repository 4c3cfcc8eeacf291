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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{7, 3, 1},
		{5, 0, 0},
	}

	for _, tc := range tests {
		if result := Wrap(tc.val, tc.n); result != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"RGB(255, 0, 0)", ColorRed, true},
		{" Blue ", ColorBlue, true},
		{"purple", ColorMagenta, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		c, ok := ParseColor(tc.name)
		if c != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, c, ok, tc.expected, tc.ok)
		}
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionConfirm)

	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) || f.Has(ActionRight) {
		t.Errorf("Has() reports wrong actions: %v", f.Actions)
	}
	if len(f.Order) != 3 {
		t.Errorf("Order should keep repeats, got %v", f.Order)
	}

	f.Clear()
	if f.Has(ActionLeft) || len(f.Order) != 0 {
		t.Error("Clear should drop every action")
	}
	if ActionFreeze.String() != "Freeze" {
		t.Errorf("ActionFreeze.String() = %q", ActionFreeze.String())
	}
}
