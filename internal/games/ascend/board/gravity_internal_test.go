package board

import "testing"

func TestSettleConvergesInTwoPasses(t *testing.T) {
	b := Default()
	pieces := []Piece{
		{ID: "upper", Row: b.Rows - 4, Col: 0, Width: 2},
		{ID: "lower", Row: b.Rows - 3, Col: 0, Width: 2},
	}

	passes := b.settle(pieces)
	if passes != 2 {
		t.Errorf("settle() passes = %d, expected 2", passes)
	}
}
