package board

// GameOverRow is the row that ends the game when a piece reaches it
// during an ascend tick.
const GameOverRow = 1

// TickResult is returned by AdvanceAscendTick.
type TickResult struct {
	Pieces   []Piece
	GameOver bool
	Cleared  []ClearEvent
}

// RowsCleared returns the number of clear events in the tick.
func (r TickResult) RowsCleared() int {
	return len(r.Cleared)
}

// AdvanceAscendTick performs one ascend step:
//  1. every piece below the top row moves up one row
//  2. if any piece is now on GameOverRow the tick stops with GameOver set;
//     the returned pieces keep their moved-up positions
//  3. gravity settles the board
//  4. rows are scanned top to bottom; each full row is cleared and gravity
//     re-applied before the scan continues
//
// An invalid snapshot returns a ValidationError and no result.
func (b Board) AdvanceAscendTick(pieces []Piece) (TickResult, error) {
	if err := b.Validate(pieces); err != nil {
		return TickResult{}, err
	}

	out := Clone(pieces)
	for i := range out {
		if out[i].Row > 0 {
			out[i].Row--
		}
	}

	for _, p := range out {
		if p.Row == GameOverRow {
			return TickResult{Pieces: out, GameOver: true}, nil
		}
	}

	b.settle(out)
	out, events := b.scanAndClear(out)

	return TickResult{Pieces: out, Cleared: events}, nil
}

// GravityTick is the frozen-mode tick: gravity only, no ascend and no
// clearing.
func (b Board) GravityTick(pieces []Piece) ([]Piece, error) {
	if err := b.Validate(pieces); err != nil {
		return nil, err
	}
	return b.ApplyGravity(pieces), nil
}

// FreezeBosses forces every boss piece wider than one column down to width 1.
// The change is permanent; unfreezing does not restore widths.
func (b Board) FreezeBosses(pieces []Piece) []Piece {
	out := Clone(pieces)
	for i := range out {
		if b.IsBoss(out[i]) && out[i].Width > 1 {
			out[i].Width = 1
		}
	}
	return out
}
