package ascend

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/ascend/internal/config"
	"github.com/vovakirdan/ascend/internal/games/ascend/board"
)

// palette holds the colors used for ordinary spawned pieces.
var palette = []string{"blue", "green", "yellow", "cyan", "magenta", "orange"}

// Spawner fills the staging row with random pieces.
// The same seed always produces the same pieces, IDs included.
type Spawner struct {
	rng       *rand.Rand
	board     board.Board
	cfg       config.SpawnConfig
	bossColor string
	spawned   int
}

// NewSpawner creates a spawner for the given board.
func NewSpawner(b board.Board, cfg config.SpawnConfig, seed int64) *Spawner {
	s := &Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		board: b,
		cfg:   cfg,
	}
	if len(b.BossColors) > 0 {
		s.bossColor = b.BossColors[0]
	}
	if s.cfg.MinWidth < 1 {
		s.cfg.MinWidth = 1
	}
	if s.cfg.MaxWidth < s.cfg.MinWidth {
		s.cfg.MaxWidth = s.cfg.MinWidth
	}
	return s
}

// Spawned returns the number of pieces created so far.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Fill returns pieces with a new staging row appended when the staging row
// is empty. An occupied staging row is left alone. The new row never covers
// every column.
func (s *Spawner) Fill(pieces []board.Piece) []board.Piece {
	staging := s.board.StagingRow()
	if len(board.OnRow(pieces, staging)) > 0 {
		return pieces
	}

	var row []board.Piece
	covered := 0
	col := s.rng.Intn(2)
	for col < s.board.Cols {
		width := s.cfg.MinWidth + s.rng.Intn(s.cfg.MaxWidth-s.cfg.MinWidth+1)
		width = min(width, s.board.Cols-col)

		row = append(row, board.Piece{
			ID:    s.nextID(),
			Row:   staging,
			Col:   col,
			Width: width,
			Color: s.nextColor(),
		})
		s.spawned++
		covered += width
		col += width + s.rng.Intn(2)
	}

	// Leave at least one hole so the row cannot clear on arrival.
	if covered == s.board.Cols && len(row) > 0 {
		last := &row[len(row)-1]
		last.Width--
		if last.Width == 0 {
			row = row[:len(row)-1]
			s.spawned--
		}
	}

	return append(pieces, row...)
}

func (s *Spawner) nextColor() string {
	if s.bossColor != "" && s.rng.Float64() < s.cfg.BossChance {
		return s.bossColor
	}
	return palette[s.rng.Intn(len(palette))]
}

func (s *Spawner) nextID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return fmt.Sprintf("spawn-%d", s.spawned+1)
	}
	return id.String()
}
