// Package board provides the Ascend board simulation engine: gravity,
// row clearing with the boss rule, the ascend tick and freeze transforms.
// This package is UI-agnostic and deterministic. Every exported operation
// takes a snapshot and returns a new one; callers' slices are never mutated.
package board

// Piece is a horizontal 1xN block occupying columns [Col, Col+Width) of Row.
type Piece struct {
	ID    string `yaml:"id"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Width int    `yaml:"width"`
	Color string `yaml:"color"`
}

// End returns the first column past the piece's span.
func (p Piece) End() int {
	return p.Col + p.Width
}

// Covers returns true if the piece occupies column col on its row.
func (p Piece) Covers(col int) bool {
	return col >= p.Col && col < p.End()
}

// Overlaps returns true if a span [col, col+width) on the same row would
// share at least one column with this piece.
func (p Piece) Overlaps(col, width int) bool {
	return col+width > p.Col && col < p.End()
}

// Clone returns a deep copy of a snapshot.
func Clone(pieces []Piece) []Piece {
	if pieces == nil {
		return nil
	}
	out := make([]Piece, len(pieces))
	copy(out, pieces)
	return out
}

// Index returns the position of the piece with the given ID, or -1.
func Index(pieces []Piece, id string) int {
	for i := range pieces {
		if pieces[i].ID == id {
			return i
		}
	}
	return -1
}

// OnRow returns the pieces whose row equals row, in snapshot order.
func OnRow(pieces []Piece, row int) []Piece {
	var out []Piece
	for _, p := range pieces {
		if p.Row == row {
			out = append(out, p)
		}
	}
	return out
}

// occupied reports whether any piece other than exclude covers (row, col).
func occupied(pieces []Piece, row, col int, exclude string) bool {
	for i := range pieces {
		p := &pieces[i]
		if p.ID != exclude && p.Row == row && p.Covers(col) {
			return true
		}
	}
	return false
}
