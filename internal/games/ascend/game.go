// Package ascend implements the Ascend puzzle for the terminal.
// Horizontal blocks are pushed up one row per ascend tick, fall under
// gravity and clear when a row is full. The player slides blocks left and
// right, optionally following the move advisor's hint.
package ascend

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ascend/internal/config"
	"github.com/vovakirdan/ascend/internal/core"
	"github.com/vovakirdan/ascend/internal/games/ascend/advisor"
	"github.com/vovakirdan/ascend/internal/games/ascend/board"
	"github.com/vovakirdan/ascend/internal/games/ascend/layouts"
	"github.com/vovakirdan/ascend/internal/games/ascend/session"
	"github.com/vovakirdan/ascend/internal/registry"
)

// Registered game IDs.
const (
	IDHints = "ascend"
	IDBlind = "ascend_blind"
)

// flashFrames is how long cleared rows stay highlighted.
const flashFrames = 8

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutRef        string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. The empty string keeps
// the configured difficulty.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLayout selects the starting layout: a built-in layout ID or a path to
// a YAML layout file. Empty starts from a blank board.
func SetLayout(ref string) {
	layoutRef = ref
}

// SetLogger sets the logger used by games and their sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(IDHints, func() registry.Game {
		return New(true)
	})
	registry.Register(IDBlind, func() registry.Game {
		return New(false)
	})
}

// Game is the playable Ascend board. It owns the authoritative piece list
// and acts as the session presenter.
type Game struct {
	hints bool

	cfg        config.AscendConfig
	board      board.Board
	ctrl       *session.Controller
	difficulty *config.DifficultyManager
	spawner    *Spawner
	runtime    core.RuntimeConfig
	frameDur   time.Duration

	pieces      []board.Piece
	selected    string
	hint        *advisor.Move
	rowsCleared int
	bossRows    int
	gameOver    bool
	tick        uint64
	ascendTicks int
	flashRows   []int
	flashTicks  int
	layoutName  string
	lastErr     error

	// layout overrides the package-level layout for this instance.
	layout    string
	layoutSet bool
}

// New creates a game. With hints the move advisor runs and its
// recommendation is shown on the board.
func New(hints bool) *Game {
	return &Game{hints: hints}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.hints {
		return IDHints
	}
	return IDBlind
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.hints {
		return "Ascend"
	}
	return "Ascend (no hints)"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAscend(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultAscendConfig()
	}
	config.ApplyAscendPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.selected = ""
	g.hint = nil
	g.rowsCleared = 0
	g.bossRows = 0
	g.gameOver = false
	g.tick = 0
	g.ascendTicks = 0
	g.flashRows = nil
	g.flashTicks = 0
	g.lastErr = nil

	g.board = board.New(cfg.Board.Rows, cfg.Board.Cols, cfg.Board.BossColors...)
	g.pieces = nil
	g.layoutName = ""
	g.loadLayout()

	g.spawner = NewSpawner(g.board, cfg.Spawn, runtime.Seed)
	g.pieces = g.spawner.Fill(g.pieces)

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithAscendInterval(cfg.Timing.AscendInterval()),
		session.WithAdvisoryInterval(cfg.Timing.AdvisoryInterval()),
	}
	if g.hints && cfg.Advisor.Enabled {
		adv := advisor.New(g.board,
			advisor.WithWeights(advisor.Weights{
				ChainFactor: cfg.Advisor.Weights.ChainFactor,
				DepthMax:    cfg.Advisor.Weights.DepthMax,
				BossBonus:   cfg.Advisor.Weights.BossBonus,
			}),
			advisor.WithWorkers(cfg.Advisor.Workers),
		)
		opts = append(opts, session.WithAdvisor(adv))
	}
	g.ctrl = session.New(g.board, g, opts...)
	g.ctrl.SetAscendInterval(g.ascendInterval())

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)

	g.ensureSelection()

	if err := g.ctrl.Start(); err != nil {
		logger.Error("cannot start session", "error", err)
	}
}

// UseLayout selects the starting layout for this game only. Empty starts
// from a blank board regardless of SetLayout and the config file.
func (g *Game) UseLayout(ref string) {
	g.layout = ref
	g.layoutSet = true
}

// loadLayout replaces the board and pieces with the configured layout.
func (g *Game) loadLayout() {
	ref := layoutRef
	if g.layoutSet {
		ref = g.layout
		if ref == "" {
			return
		}
	}
	if ref == "" {
		ref = g.cfg.Board.Layout
	}
	if ref == "" {
		return
	}

	var (
		layout layouts.Layout
		err    error
	)
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml":
		layout, err = layouts.Open(ref)
	default:
		layout, err = layouts.Embedded().LoadByID(ref)
	}
	if err != nil {
		logger.Warn("cannot load layout, starting blank", "layout", ref, "error", err)
		return
	}

	g.board = layout.Board(g.cfg.Board.BossColors...)
	g.pieces = layout.Snapshot()
	g.layoutName = layout.Name
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Order {
		g.handle(a)
	}

	if err := g.ctrl.Advance(g.frameDur); err != nil {
		g.lastErr = err
		logger.Error("tick failed", "error", err)
	}

	if ticks := g.ctrl.Ticks(); ticks != g.ascendTicks {
		g.ascendTicks = ticks
		g.afterAscend()
	}

	g.ensureSelection()
	return core.StepResult{State: g.State()}
}

// handle applies a single player action.
func (g *Game) handle(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.slide(-1)
	case core.ActionRight:
		g.slide(1)
	case core.ActionUp:
		g.cycleSelection(-1)
	case core.ActionDown:
		g.cycleSelection(1)
	case core.ActionConfirm:
		g.applyHint()
	case core.ActionFreeze:
		g.toggleFreeze()
	case core.ActionPause:
		g.togglePause()
	}
}

// afterAscend runs once per ascend tick: difficulty and spawning.
func (g *Game) afterAscend() {
	if g.gameOver {
		return
	}
	g.ctrl.SetAscendInterval(g.ascendInterval())
	if g.ascendTicks%g.cfg.Spawn.EveryTicks == 0 {
		g.pieces = g.spawner.Fill(g.pieces)
	}
}

func (g *Game) ascendInterval() time.Duration {
	return g.difficulty.AscendInterval(g.cfg.Timing.AscendInterval(), g.rowsCleared, g.ascendTicks)
}

// slide moves the selected piece one column when the target span is free.
func (g *Game) slide(dir int) {
	i := board.Index(g.pieces, g.selected)
	if i < 0 {
		return
	}
	p := g.pieces[i]
	if p.Row >= g.board.StagingRow() || !g.fits(p, p.Col+dir) {
		return
	}
	g.pieces[i].Col += dir
	g.hint = nil
}

// fits reports whether p can sit at col without leaving the board or
// overlapping another piece on its row.
func (g *Game) fits(p board.Piece, col int) bool {
	if col < 0 || col+p.Width > g.board.Cols {
		return false
	}
	for _, o := range board.OnRow(g.pieces, p.Row) {
		if o.ID != p.ID && o.Overlaps(col, p.Width) {
			return false
		}
	}
	return true
}

// applyHint performs the recommended move if it still fits the board.
func (g *Game) applyHint() {
	if g.hint == nil {
		return
	}
	m := *g.hint
	g.hint = nil

	i := board.Index(g.pieces, m.PieceID)
	if i < 0 {
		return
	}
	p := g.pieces[i]
	if p.Row != m.Row || p.Col != m.FromCol {
		return
	}

	step := 1
	if m.ToCol < p.Col {
		step = -1
	}
	for col := p.Col + step; ; col += step {
		if !g.fits(p, col) {
			return
		}
		if col == m.ToCol {
			break
		}
	}

	g.pieces[i].Col = m.ToCol
	g.selected = m.PieceID
	logger.Debug("hint applied", "move", m.String())
}

func (g *Game) toggleFreeze() {
	var err error
	if g.ctrl.Mode() == session.Frozen {
		err = g.ctrl.Unfreeze()
	} else {
		err = g.ctrl.Freeze()
	}
	if err != nil {
		logger.Debug("freeze ignored", "error", err)
	}
}

func (g *Game) togglePause() {
	var err error
	switch g.ctrl.Mode() {
	case session.Running:
		err = g.ctrl.Pause()
	case session.Stopped:
		err = g.ctrl.Start()
	}
	if err != nil {
		logger.Debug("pause ignored", "error", err)
	}
}

// selectable returns the IDs of pieces the player can move, top to bottom
// and left to right.
func (g *Game) selectable() []string {
	var ps []board.Piece
	for _, p := range g.pieces {
		if p.Row < g.board.StagingRow() {
			ps = append(ps, p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})

	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func (g *Game) cycleSelection(delta int) {
	ids := g.selectable()
	if len(ids) == 0 {
		g.selected = ""
		return
	}
	cur := 0
	for i, id := range ids {
		if id == g.selected {
			cur = i
			break
		}
	}
	g.selected = ids[core.Wrap(cur+delta, len(ids))]
}

// ensureSelection keeps the cursor on a movable piece.
func (g *Game) ensureSelection() {
	ids := g.selectable()
	for _, id := range ids {
		if id == g.selected {
			return
		}
	}
	g.selected = ""
	if len(ids) > 0 {
		g.selected = ids[0]
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mode := session.Stopped
	if g.ctrl != nil {
		mode = g.ctrl.Mode()
	}
	return core.GameState{
		Score:    g.rowsCleared,
		GameOver: g.gameOver,
		Paused:   !g.gameOver && mode == session.Stopped,
		Frozen:   mode == session.Frozen,
	}
}

// Err returns the last tick error, if any.
func (g *Game) Err() error {
	return g.lastErr
}

// Snapshot returns a copy of the pieces for the session controller.
func (g *Game) Snapshot() []board.Piece {
	return board.Clone(g.pieces)
}

// Apply replaces the pieces with the result of a tick.
func (g *Game) Apply(pieces []board.Piece) {
	g.pieces = pieces
}

// GameOver marks the end of the game. Presenter callbacks run under the
// controller lock and must not call back into it.
func (g *Game) GameOver() {
	g.gameOver = true
	g.hint = nil
	logger.Info("game over", "rows", g.rowsCleared, "boss_rows", g.bossRows)
}

// Recommend stores the advisor's latest move.
func (g *Game) Recommend(move *advisor.Move) {
	g.hint = move
}

// Cleared records the rows cleared by an ascend tick.
func (g *Game) Cleared(events []board.ClearEvent) {
	g.flashRows = g.flashRows[:0]
	for _, ev := range events {
		g.rowsCleared++
		if ev.Boss {
			g.bossRows++
		}
		g.flashRows = append(g.flashRows, ev.Row)
	}
	g.flashTicks = flashFrames
}
