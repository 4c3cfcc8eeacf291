package board

// ClearEvent describes one cleared row.
type ClearEvent struct {
	Row     int
	Boss    bool     // The row contained at least one boss piece
	Removed []string // IDs of deleted pieces
	Shrunk  []string // IDs of boss pieces that lost one column and survived
}

// IsRowFull returns true if the pieces on row cover every column.
// The staging row and rows outside the board are never full.
func (b Board) IsRowFull(row int, pieces []Piece) bool {
	if row < 0 || row > b.FloorRow() {
		return false
	}

	covered := make([]bool, b.Cols)
	for _, p := range pieces {
		if p.Row != row {
			continue
		}
		for col := p.Col; col < p.End(); col++ {
			if col >= 0 && col < b.Cols {
				covered[col] = true
			}
		}
	}

	for _, c := range covered {
		if !c {
			return false
		}
	}
	return true
}

// ClearRow clears a single row.
//
// If any boss piece sits on the row, every boss there loses one column of
// width (and is deleted at zero) while ordinary pieces on the row stay.
// Otherwise every piece on the row is deleted. Rows above are not shifted;
// callers re-apply gravity.
func (b Board) ClearRow(row int, pieces []Piece) ([]Piece, ClearEvent) {
	return b.clearRow(row, Clone(pieces))
}

// clearRow is the in-place form of ClearRow. The returned slice shares
// storage with pieces.
func (b Board) clearRow(row int, pieces []Piece) ([]Piece, ClearEvent) {
	ev := ClearEvent{Row: row}
	for _, p := range pieces {
		if p.Row == row && b.IsBoss(p) {
			ev.Boss = true
			break
		}
	}

	kept := pieces[:0]
	for _, p := range pieces {
		switch {
		case p.Row != row:
			kept = append(kept, p)
		case ev.Boss && !b.IsBoss(p):
			kept = append(kept, p)
		case ev.Boss:
			p.Width--
			if p.Width <= 0 {
				ev.Removed = append(ev.Removed, p.ID)
				continue
			}
			ev.Shrunk = append(ev.Shrunk, p.ID)
			kept = append(kept, p)
		default:
			ev.Removed = append(ev.Removed, p.ID)
		}
	}
	return kept, ev
}

// ScanAndClear performs one scan over rows 0..FloorRow in increasing order.
// Each full row is cleared and gravity is re-applied before the scan
// continues, so a single scan can cascade.
func (b Board) ScanAndClear(pieces []Piece) ([]Piece, []ClearEvent) {
	return b.scanAndClear(Clone(pieces))
}

func (b Board) scanAndClear(pieces []Piece) ([]Piece, []ClearEvent) {
	var events []ClearEvent
	for row := 0; row <= b.FloorRow(); row++ {
		if !b.IsRowFull(row, pieces) {
			continue
		}
		var ev ClearEvent
		pieces, ev = b.clearRow(row, pieces)
		events = append(events, ev)
		b.settle(pieces)
	}
	return pieces, events
}
