package ascend

import (
	"github.com/vovakirdan/ascend/internal/games/ascend/board"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64 // Frames since reset
	AscendTicks int
	Mode        string
	Score       int // Rows cleared
	BossRows    int
	GameOver    bool
	Selected    string
	Hint        string
	Pieces      []board.Piece
}

// StateSnapshot returns the current game snapshot for determinism verification.
func (g *Game) StateSnapshot() Snapshot {
	mode := "stopped"
	if g.ctrl != nil {
		mode = g.ctrl.Mode().String()
	}

	hint := ""
	if g.hint != nil {
		hint = g.hint.String()
	}

	return Snapshot{
		Tick:        g.tick,
		AscendTicks: g.ascendTicks,
		Mode:        mode,
		Score:       g.rowsCleared,
		BossRows:    g.bossRows,
		GameOver:    g.gameOver,
		Selected:    g.selected,
		Hint:        hint,
		Pieces:      board.Clone(g.pieces),
	}
}
