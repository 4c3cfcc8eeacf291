// Package advisor recommends horizontal moves for Ascend. It simulates every
// legal slide of every movable piece on a private copy of the board and
// picks the one whose settle-and-clear cascade scores highest.
package advisor

import "fmt"

// Direction is the horizontal direction of a recommended move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Move is a recommended slide of one piece along its row.
type Move struct {
	PieceID string
	Row     int
	FromCol int
	ToCol   int
	Score   float64
}

// Direction returns which way the piece slides.
func (m Move) Direction() Direction {
	if m.ToCol < m.FromCol {
		return DirLeft
	}
	return DirRight
}

// Distance returns how many columns the piece slides.
func (m Move) Distance() int {
	if m.ToCol < m.FromCol {
		return m.FromCol - m.ToCol
	}
	return m.ToCol - m.FromCol
}

// String formats the move as a short hint.
func (m Move) String() string {
	return fmt.Sprintf("move %s %s %d (score %.2f)", shortID(m.PieceID), m.Direction(), m.Distance(), m.Score)
}

// shortID trims long generated IDs for display.
func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}

// Outcome is the tally of one simulated cascade.
type Outcome struct {
	RowsCleared     int     // Individual row-clear events
	ChainReactions  int     // Cascade rounds after the first that still cleared
	BossRowsCleared int     // Cleared rows that contained a boss
	DepthBonus      float64 // Sum of per-row depth bonuses
}

// Candidate pairs a possible move with its simulated outcome.
type Candidate struct {
	Move    Move
	Outcome Outcome
}
