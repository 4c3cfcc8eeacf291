package session

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ascend/internal/games/ascend/advisor"
	"github.com/vovakirdan/ascend/internal/games/ascend/board"
)

// ErrGameOver is returned when an operation needs a live game after a piece
// reached the top.
var ErrGameOver = errors.New("session: game over")

// Default timer intervals.
const (
	DefaultAscendInterval   = time.Second
	DefaultAdvisoryInterval = 500 * time.Millisecond
)

// Presenter holds the authoritative piece list and shows the results of
// each tick. The controller never keeps pieces of its own.
type Presenter interface {
	// Snapshot returns the current pieces. The controller does not modify it.
	Snapshot() []board.Piece
	// Apply replaces the current pieces with the result of a tick.
	Apply(pieces []board.Piece)
	// GameOver is called once when a piece reaches the top.
	GameOver()
	// Recommend shows the latest advisory result; nil clears it.
	Recommend(move *advisor.Move)
}

// ClearObserver is implemented by presenters that want the row clears of
// each ascend tick.
type ClearObserver interface {
	Cleared(events []board.ClearEvent)
}

// Controller runs the session state machine. All timers share one clock
// advanced through Advance, and every tick runs under a single lock.
type Controller struct {
	mu sync.Mutex

	board     board.Board
	advisor   *advisor.Advisor
	presenter Presenter
	logger    *log.Logger

	mode     Mode
	gameOver bool
	ticks    int

	ascendEvery   time.Duration
	advisoryEvery time.Duration
	ascendAcc     time.Duration
	advisoryAcc   time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAdvisor enables the advisory scan. Without an advisor Recommend is never called.
func WithAdvisor(a *advisor.Advisor) Option {
	return func(c *Controller) {
		c.advisor = a
	}
}

// WithAscendInterval sets the ascend (and frozen gravity) interval.
func WithAscendInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.ascendEvery = d
		}
	}
}

// WithAdvisoryInterval sets how often the advisor scans the board.
func WithAdvisoryInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.advisoryEvery = d
		}
	}
}

// New creates a stopped controller for the given presenter.
func New(b board.Board, p Presenter, opts ...Option) *Controller {
	c := &Controller{
		board:         b,
		presenter:     p,
		logger:        log.New(io.Discard),
		mode:          Stopped,
		ascendEvery:   DefaultAscendInterval,
		advisoryEvery: DefaultAdvisoryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// IsGameOver reports whether the last ascend tick ended the game.
func (c *Controller) IsGameOver() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gameOver
}

// Ticks returns the number of ascend ticks since the last reset.
func (c *Controller) Ticks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// AscendInterval returns the current ascend interval.
func (c *Controller) AscendInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ascendEvery
}

// SetAscendInterval changes the ascend cadence. Non-positive values are ignored.
func (c *Controller) SetAscendInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if d != c.ascendEvery {
		c.logger.Debug("ascend interval changed", "from", c.ascendEvery, "to", d)
	}
	c.ascendEvery = d
}

// Start resumes the ascend force.
func (c *Controller) Start() error { return c.Dispatch(EventStart) }

// Pause stops both board timers.
func (c *Controller) Pause() error { return c.Dispatch(EventPause) }

// Freeze suspends the ascend force and shrinks every boss to width 1.
func (c *Controller) Freeze() error { return c.Dispatch(EventFreeze) }

// Unfreeze resumes the ascend force after a freeze.
func (c *Controller) Unfreeze() error { return c.Dispatch(EventUnfreeze) }

// Dispatch applies an event to the state machine. Events that do not apply
// in the current mode are ignored. After game over only Pause and Unfreeze
// are accepted (both no-ops) until Reset.
func (c *Controller) Dispatch(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gameOver && (e == EventStart || e == EventFreeze) {
		return ErrGameOver
	}

	to, ok := Next(c.mode, e)
	if !ok {
		return nil
	}

	from := c.mode
	c.mode = to
	c.logger.Debug("mode changed", "event", e, "from", from, "to", to)

	switch to {
	case Frozen:
		c.presenter.Apply(c.board.FreezeBosses(c.presenter.Snapshot()))
	case Stopped:
		c.ascendAcc = 0
	}
	return nil
}

// Reset returns the controller to a fresh stopped state. The presenter is
// expected to restore its own pieces.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = Stopped
	c.gameOver = false
	c.ticks = 0
	c.ascendAcc = 0
	c.advisoryAcc = 0
	c.logger.Debug("session reset")
}

// Advance moves the session clock forward by dt and fires every tick that
// came due. Ascend or gravity ticks fire once per elapsed interval; the
// advisory scan fires at most once per call.
func (c *Controller) Advance(dt time.Duration) error {
	if dt <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != Stopped {
		c.ascendAcc += dt
		for c.ascendAcc >= c.ascendEvery && c.mode != Stopped {
			c.ascendAcc -= c.ascendEvery

			var err error
			if c.mode == Running {
				err = c.ascendTick()
			} else {
				err = c.gravityTick()
			}
			if err != nil {
				return err
			}
		}
	}

	if c.advisor != nil {
		c.advisoryAcc += dt
		if c.advisoryAcc >= c.advisoryEvery {
			c.advisoryAcc %= c.advisoryEvery
			return c.scan()
		}
	}
	return nil
}

// Scan runs the advisor immediately, outside the advisory timer.
func (c *Controller) Scan() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.advisor == nil {
		return nil
	}
	return c.scan()
}

func (c *Controller) ascendTick() error {
	res, err := c.board.AdvanceAscendTick(c.presenter.Snapshot())
	if err != nil {
		c.logger.Error("ascend tick rejected", "error", err)
		return fmt.Errorf("session: ascend tick: %w", err)
	}

	c.ticks++
	c.presenter.Apply(res.Pieces)

	if obs, ok := c.presenter.(ClearObserver); ok && len(res.Cleared) > 0 {
		obs.Cleared(res.Cleared)
	}

	if res.GameOver {
		c.gameOver = true
		c.mode = Stopped
		c.ascendAcc = 0
		c.logger.Info("game over", "tick", c.ticks)
		c.presenter.GameOver()
	}
	return nil
}

func (c *Controller) gravityTick() error {
	pieces, err := c.board.GravityTick(c.presenter.Snapshot())
	if err != nil {
		c.logger.Error("gravity tick rejected", "error", err)
		return fmt.Errorf("session: gravity tick: %w", err)
	}
	c.presenter.Apply(pieces)
	return nil
}

func (c *Controller) scan() error {
	move, err := c.advisor.FindBestMove(c.presenter.Snapshot())
	if err != nil {
		c.logger.Error("advisory scan rejected", "error", err)
		return fmt.Errorf("session: advisory scan: %w", err)
	}
	c.presenter.Recommend(move)
	return nil
}
