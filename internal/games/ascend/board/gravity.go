package board

import "sort"

// CanMoveDown returns true if the piece can fall one row.
// Pieces on the floor row (or the staging row below it) never fall.
func (b Board) CanMoveDown(p Piece, pieces []Piece) bool {
	if p.Row >= b.FloorRow() {
		return false
	}

	below := p.Row + 1
	for col := p.Col; col < p.End(); col++ {
		if occupied(pieces, below, col, p.ID) {
			return false
		}
	}
	return true
}

// ApplyGravity lets every piece fall until nothing moves.
// Each pass visits pieces bottom row first so that a piece never overtakes
// the one below it within a pass; the returned snapshot keeps that order.
func (b Board) ApplyGravity(pieces []Piece) []Piece {
	out := Clone(pieces)
	b.settle(out)
	return out
}

// settle runs gravity in place until a full pass moves nothing.
// Returns the number of passes run, including the final quiet one.
func (b Board) settle(pieces []Piece) int {
	passes := 0
	for {
		sort.SliceStable(pieces, func(i, j int) bool {
			return pieces[i].Row > pieces[j].Row
		})

		moved := false
		for i := range pieces {
			if b.CanMoveDown(pieces[i], pieces) {
				pieces[i].Row++
				moved = true
			}
		}
		passes++
		if !moved {
			return passes
		}
	}
}
