package advisor

import (
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/ascend/internal/games/ascend/board"
)

// noScore is the starting best score; any evaluated candidate beats it.
const noScore = -1.0

// Advisor scores candidate moves against a board's rules.
// It is safe for concurrent use; it keeps no per-call state.
type Advisor struct {
	board   board.Board
	weights Weights
	workers int
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithWeights overrides the scoring weights.
func WithWeights(w Weights) Option {
	return func(a *Advisor) {
		a.weights = w
	}
}

// WithWorkers sets how many candidates are simulated concurrently.
// Values below 2 keep evaluation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(a *Advisor) {
		a.workers = n
	}
}

// New creates an advisor for the given board.
func New(b board.Board, opts ...Option) *Advisor {
	a := &Advisor{
		board:   b,
		weights: DefaultWeights(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Board returns the board the advisor simulates on.
func (a *Advisor) Board() board.Board {
	return a.board
}

// Weights returns the scoring weights in use.
func (a *Advisor) Weights() Weights {
	return a.weights
}

// FindBestMove returns the highest scoring move, or nil when no piece can
// move. Candidates are visited piece by piece in snapshot order, left
// targets before right targets, columns ascending; the first candidate
// reaching the best score wins ties. The snapshot is not modified.
func (a *Advisor) FindBestMove(pieces []board.Piece) (*Move, error) {
	candidates, err := a.Candidates(pieces)
	if err != nil {
		return nil, err
	}

	bestScore := noScore
	var best *Move
	for i := range candidates {
		if candidates[i].Move.Score > bestScore {
			bestScore = candidates[i].Move.Score
			m := candidates[i].Move
			best = &m
		}
	}
	return best, nil
}

// target is one (piece, column) pair awaiting evaluation.
type target struct {
	piece board.Piece
	toCol int
}

// Candidates simulates every legal move and returns them in enumeration
// order with their scores.
func (a *Advisor) Candidates(pieces []board.Piece) ([]Candidate, error) {
	if err := a.board.Validate(pieces); err != nil {
		return nil, err
	}

	targets := a.targets(pieces)
	results := make([]Candidate, len(targets))

	evaluate := func(i int) {
		t := targets[i]
		outcome := a.Simulate(t.piece, t.toCol, pieces)
		results[i] = Candidate{
			Move: Move{
				PieceID: t.piece.ID,
				Row:     t.piece.Row,
				FromCol: t.piece.Col,
				ToCol:   t.toCol,
				Score:   a.weights.Score(outcome),
			},
			Outcome: outcome,
		}
	}

	if a.workers < 2 || len(targets) < 2 {
		for i := range targets {
			evaluate(i)
		}
		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i := range targets {
		g.Go(func() error {
			evaluate(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// targets enumerates the candidate moves in tie-break order.
func (a *Advisor) targets(pieces []board.Piece) []target {
	var out []target
	for _, p := range pieces {
		if p.Row >= a.board.StagingRow() {
			continue
		}
		left, right := a.Reach(p, pieces)
		if left == p.Col && right == p.Col {
			continue
		}
		for col := left; col < p.Col; col++ {
			out = append(out, target{piece: p, toCol: col})
		}
		for col := p.Col + 1; col <= right; col++ {
			out = append(out, target{piece: p, toCol: col})
		}
	}
	return out
}

// Reach returns the leftmost and rightmost columns the piece can slide to
// along its row without passing through another piece.
func (a *Advisor) Reach(p board.Piece, pieces []board.Piece) (left, right int) {
	left = p.Col
	for left > 0 && !a.blocked(p, left-1, pieces) {
		left--
	}

	maxCol := a.board.Cols - p.Width
	right = p.Col
	for right < maxCol && !a.blocked(p, right+1, pieces) {
		right++
	}
	return left, right
}

// blocked reports whether p placed at col would overlap another piece on its row.
func (a *Advisor) blocked(p board.Piece, col int, pieces []board.Piece) bool {
	for _, other := range pieces {
		if other.ID == p.ID || other.Row != p.Row {
			continue
		}
		if other.Overlaps(col, p.Width) {
			return true
		}
	}
	return false
}

// EvaluateMove returns the score of sliding p to toCol.
func (a *Advisor) EvaluateMove(p board.Piece, toCol int, pieces []board.Piece) float64 {
	return a.weights.Score(a.Simulate(p, toCol, pieces))
}

// Simulate relocates p to toCol on a copy of the snapshot and runs the full
// settle-and-clear cascade: gravity, then repeated top-to-bottom scans
// (clear and re-settle per full row) until a scan clears nothing.
func (a *Advisor) Simulate(p board.Piece, toCol int, pieces []board.Piece) Outcome {
	state := board.Clone(pieces)
	if i := board.Index(state, p.ID); i >= 0 {
		state[i].Col = toCol
	}

	state = a.board.ApplyGravity(state)

	var outcome Outcome
	rounds := 0
	for {
		var events []board.ClearEvent
		state, events = a.board.ScanAndClear(state)
		if len(events) == 0 {
			break
		}
		rounds++
		for _, ev := range events {
			outcome.RowsCleared++
			if ev.Boss {
				outcome.BossRowsCleared++
			}
			outcome.DepthBonus += a.weights.depthBonus(ev.Row, a.board.FloorRow())
		}
	}
	if rounds > 1 {
		outcome.ChainReactions = rounds - 1
	}
	return outcome
}
