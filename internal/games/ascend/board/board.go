package board

import "strings"

// Default board geometry.
const (
	DefaultRows = 11
	DefaultCols = 9
)

// DefaultBossColors are the color tags that mark a boss piece.
// Both spellings occur in layouts exported from styled front ends.
var DefaultBossColors = []string{"red", "rgb(255, 0, 0)"}

// Board holds the geometry and rules of a game board. It carries no pieces;
// the piece list is always passed in as a snapshot.
type Board struct {
	Rows       int
	Cols       int
	BossColors []string
}

// New creates a board with the given geometry and boss colors.
// With no boss colors the defaults are used.
func New(rows, cols int, bossColors ...string) Board {
	if len(bossColors) == 0 {
		bossColors = DefaultBossColors
	}
	return Board{
		Rows:       rows,
		Cols:       cols,
		BossColors: append([]string(nil), bossColors...),
	}
}

// Default returns the standard 11x9 board.
func Default() Board {
	return New(DefaultRows, DefaultCols)
}

// StagingRow is the bottom row where new pieces are placed.
// It is exempt from gravity and from row clearing.
func (b Board) StagingRow() int {
	return b.Rows - 1
}

// FloorRow is the deepest row a piece can settle on.
func (b Board) FloorRow() int {
	return b.Rows - 2
}

// IsBoss returns true if the piece's color is one of the boss colors.
func (b Board) IsBoss(p Piece) bool {
	for _, c := range b.BossColors {
		if strings.EqualFold(strings.TrimSpace(p.Color), c) {
			return true
		}
	}
	return false
}
