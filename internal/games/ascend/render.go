package ascend

import (
	"fmt"

	"github.com/vovakirdan/ascend/internal/core"
	"github.com/vovakirdan/ascend/internal/games/ascend/board"
	"github.com/vovakirdan/ascend/internal/games/ascend/session"
)

// Visual characters for rendering
const (
	BlockChar   = '█'
	BossChar    = '▓'
	StagingChar = '▒'
	GhostChar   = '░'
	FlashChar   = '═'
	EmptyChar   = '·'
)

const (
	cellW    = 3 // Screen columns per board column
	boardTop = 3 // First screen row of the board frame
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	frame := core.NewRect(0, boardTop, g.board.Cols*cellW+2, g.board.Rows+2)
	frame.X = (dst.Width() - frame.W) / 2
	if frame.X < 0 || frame.Bottom()+2 > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.drawHeader(dst)
	dst.DrawBox(frame, core.ColorGray)
	g.drawGrid(dst, frame)
	g.drawHint(dst, frame)
	g.drawPieces(dst, frame)
	g.drawFooter(dst, frame)

	if g.gameOver {
		g.drawGameOver(dst, frame)
	}
}

// cellX returns the screen x of a board column inside frame.
func cellX(frame core.Rect, col int) int {
	return frame.X + 1 + col*cellW
}

// cellY returns the screen y of a board row inside frame.
func cellY(frame core.Rect, row int) int {
	return frame.Y + 1 + row
}

func (g *Game) drawHeader(dst *core.Screen) {
	title := "A S C E N D"
	if g.layoutName != "" {
		title += "  -  " + g.layoutName
	}
	dst.DrawTextCentered(0, title)

	mode := "running"
	if g.ctrl != nil {
		mode = g.ctrl.Mode().String()
	}
	if g.gameOver {
		mode = "game over"
	}
	status := fmt.Sprintf("Rows: %d   Bosses: %d   Mode: %s", g.rowsCleared, g.bossRows, mode)
	dst.DrawTextCentered(1, status)
}

func (g *Game) drawGrid(dst *core.Screen, frame core.Rect) {
	for row := 0; row < g.board.Rows; row++ {
		y := cellY(frame, row)
		for col := 0; col < g.board.Cols; col++ {
			dst.SetColored(cellX(frame, col)+1, y, EmptyChar, core.ColorGray)
		}
	}

	// Danger marker on the game over row
	dst.SetColored(frame.X-2, cellY(frame, 1), '!', core.ColorBrightRed)
	// Staging row marker
	dst.SetColored(frame.X-2, cellY(frame, g.board.StagingRow()), '>', core.ColorGray)

	if g.flashTicks > 0 {
		for _, row := range g.flashRows {
			dst.DrawHLine(cellX(frame, 0), cellY(frame, row), g.board.Cols*cellW, FlashChar, core.ColorBrightWhite)
		}
	}
}

func (g *Game) drawHint(dst *core.Screen, frame core.Rect) {
	if g.hint == nil {
		return
	}
	i := board.Index(g.pieces, g.hint.PieceID)
	if i < 0 {
		return
	}
	width := g.pieces[i].Width
	y := cellY(frame, g.hint.Row)
	for x := cellX(frame, g.hint.ToCol); x < cellX(frame, g.hint.ToCol+width); x++ {
		dst.SetColored(x, y, GhostChar, core.ColorBrightGreen)
	}
}

func (g *Game) drawPieces(dst *core.Screen, frame core.Rect) {
	for _, p := range g.pieces {
		color, ok := core.ParseColor(p.Color)
		if !ok {
			color = core.ColorWhite
		}

		ch := BlockChar
		switch {
		case g.board.IsBoss(p):
			ch = BossChar
			color = core.ColorBrightRed
		case p.Row == g.board.StagingRow():
			ch = StagingChar
		}

		y := cellY(frame, p.Row)
		x0, x1 := cellX(frame, p.Col), cellX(frame, p.End())-1
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, ch, color)
		}

		if p.ID == g.selected {
			dst.SetColored(x0, y, '[', core.ColorBrightWhite)
			dst.SetColored(x1, y, ']', core.ColorBrightWhite)
		}
	}
}

func (g *Game) drawFooter(dst *core.Screen, frame core.Rect) {
	y := frame.Bottom()
	if g.hints {
		text := "Hint: no move"
		if g.hint != nil {
			text = "Hint: " + g.hint.String()
		}
		dst.DrawTextColored(max(0, (dst.Width()-len(text))/2), y, text, core.ColorBrightGreen)
	}

	if g.ctrl != nil && g.ctrl.Mode() == session.Frozen {
		dst.DrawTextCentered(y+1, "FROZEN - the board will not rise")
	} else if g.State().Paused {
		dst.DrawTextCentered(y+1, "PAUSED - P to resume")
	}
}

func (g *Game) drawGameOver(dst *core.Screen, frame core.Rect) {
	box := core.NewRect(frame.X-2, frame.Y+frame.H/2-2, frame.W+4, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+1, "GAME OVER")
	dst.DrawTextCentered(box.Y+2, fmt.Sprintf("Rows cleared: %d", g.rowsCleared))
	dst.DrawTextCentered(box.Y+3, "R restart  B menu")
}
