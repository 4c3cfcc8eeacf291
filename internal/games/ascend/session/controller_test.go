package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ascend/internal/games/ascend/advisor"
	"github.com/vovakirdan/ascend/internal/games/ascend/board"
	"github.com/vovakirdan/ascend/internal/games/ascend/session"
)

type fakePresenter struct {
	mu         sync.Mutex
	pieces     []board.Piece
	applied    int
	gameOvers  int
	recommends []*advisor.Move
	cleared    []board.ClearEvent
}

func (f *fakePresenter) Snapshot() []board.Piece {
	f.mu.Lock()
	defer f.mu.Unlock()
	return board.Clone(f.pieces)
}

func (f *fakePresenter) Apply(pieces []board.Piece) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pieces = pieces
	f.applied++
}

func (f *fakePresenter) GameOver() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gameOvers++
}

func (f *fakePresenter) Recommend(move *advisor.Move) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recommends = append(f.recommends, move)
}

func (f *fakePresenter) Cleared(events []board.ClearEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, events...)
}

func piece(id string, row, col, width int) board.Piece {
	return board.Piece{ID: id, Row: row, Col: col, Width: width, Color: "blue"}
}

func newController(p session.Presenter, opts ...session.Option) *session.Controller {
	return session.New(board.Default(), p, opts...)
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from    session.Mode
		event   session.Event
		to      session.Mode
		applies bool
	}{
		{session.Stopped, session.EventStart, session.Running, true},
		{session.Stopped, session.EventPause, session.Stopped, false},
		{session.Stopped, session.EventFreeze, session.Frozen, true},
		{session.Stopped, session.EventUnfreeze, session.Stopped, false},
		{session.Running, session.EventStart, session.Running, false},
		{session.Running, session.EventPause, session.Stopped, true},
		{session.Running, session.EventFreeze, session.Frozen, true},
		{session.Running, session.EventUnfreeze, session.Running, false},
		{session.Frozen, session.EventStart, session.Frozen, false},
		{session.Frozen, session.EventPause, session.Frozen, false},
		{session.Frozen, session.EventFreeze, session.Frozen, false},
		{session.Frozen, session.EventUnfreeze, session.Running, true},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			to, ok := session.Next(tc.from, tc.event)
			assert.Equal(t, tc.to, to)
			assert.Equal(t, tc.applies, ok)
		})
	}
}

func TestStoppedSessionDoesNotAscend(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{piece("a", 9, 0, 3)}}
	c := newController(p)

	require.NoError(t, c.Advance(5*time.Second))
	assert.Zero(t, p.applied)
	assert.Zero(t, c.Ticks())
}

func TestRunningSessionAscends(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{
		piece("a", 9, 0, 3),
		piece("s", 10, 5, 2),
	}}
	c := newController(p)
	require.NoError(t, c.Start())
	assert.Equal(t, session.Running, c.Mode())

	require.NoError(t, c.Advance(999*time.Millisecond))
	assert.Zero(t, c.Ticks())

	require.NoError(t, c.Advance(time.Millisecond))
	assert.Equal(t, 1, c.Ticks())
	assert.ElementsMatch(t, []board.Piece{
		piece("a", 9, 0, 3),
		piece("s", 9, 5, 2),
	}, p.pieces)
}

func TestAdvanceFiresEveryDueTick(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{piece("a", 9, 0, 3)}}
	c := newController(p)
	require.NoError(t, c.Start())

	require.NoError(t, c.Advance(3*time.Second))
	assert.Equal(t, 3, c.Ticks())

	c.SetAscendInterval(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, c.AscendInterval())
	require.NoError(t, c.Advance(time.Second))
	assert.Equal(t, 7, c.Ticks())
}

func TestGameOverStopsSession(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{piece("a", 2, 0, 1)}}
	c := newController(p)
	require.NoError(t, c.Start())

	require.NoError(t, c.Advance(5*time.Second))
	assert.True(t, c.IsGameOver())
	assert.Equal(t, session.Stopped, c.Mode())
	assert.Equal(t, 1, c.Ticks())
	assert.Equal(t, 1, p.gameOvers)
	assert.Equal(t, []board.Piece{piece("a", 1, 0, 1)}, p.pieces)

	assert.ErrorIs(t, c.Start(), session.ErrGameOver)
	assert.ErrorIs(t, c.Freeze(), session.ErrGameOver)
	assert.NoError(t, c.Pause())

	c.Reset()
	p.pieces = []board.Piece{piece("a", 9, 0, 1)}
	assert.False(t, c.IsGameOver())
	require.NoError(t, c.Start())
	assert.Equal(t, session.Running, c.Mode())
}

func TestFreezeShrinksBossesAndSuspendsAscend(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{
		{ID: "boss", Row: 9, Col: 0, Width: 3, Color: "red"},
		piece("high", 2, 5, 2),
	}}
	c := newController(p)

	require.NoError(t, c.Freeze())
	assert.Equal(t, session.Frozen, c.Mode())
	assert.Equal(t, 1, p.pieces[0].Width)

	require.NoError(t, c.Advance(time.Second))
	assert.False(t, c.IsGameOver())
	assert.Zero(t, c.Ticks())
	assert.ElementsMatch(t, []board.Piece{
		{ID: "boss", Row: 9, Col: 0, Width: 1, Color: "red"},
		piece("high", 9, 5, 2),
	}, p.pieces)

	require.NoError(t, c.Unfreeze())
	assert.Equal(t, session.Running, c.Mode())
}

func TestAdvisoryScanRecommends(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{
		piece("a", 9, 0, 4),
		piece("b", 9, 5, 4),
		piece("c", 8, 3, 1),
	}}
	c := newController(p, session.WithAdvisor(advisor.New(board.Default())))

	require.NoError(t, c.Advance(499*time.Millisecond))
	assert.Empty(t, p.recommends)

	require.NoError(t, c.Advance(time.Millisecond))
	require.Len(t, p.recommends, 1)
	require.NotNil(t, p.recommends[0])
	assert.Equal(t, "c", p.recommends[0].PieceID)
	assert.Equal(t, 4, p.recommends[0].ToCol)

	require.NoError(t, c.Scan())
	assert.Len(t, p.recommends, 2)
}

func TestClearObserverReceivesEvents(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{
		piece("a", 9, 0, 4),
		piece("b", 9, 5, 4),
		piece("s", 10, 4, 1),
	}}
	c := newController(p)
	require.NoError(t, c.Start())
	require.NoError(t, c.Advance(time.Second))

	require.Len(t, p.cleared, 1)
	assert.Equal(t, 9, p.cleared[0].Row)
	assert.ElementsMatch(t, []string{"a", "b", "s"}, p.cleared[0].Removed)
	assert.Empty(t, p.pieces)
}

func TestInvalidSnapshotFailsTick(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{piece("a", 9, 0, 5), piece("b", 9, 3, 2)}}
	c := newController(p)
	require.NoError(t, c.Start())

	err := c.Advance(time.Second)
	require.Error(t, err)

	var verr board.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, board.CodeOverlap, verr.Code)
}

func TestRunStopsAtGameOver(t *testing.T) {
	p := &fakePresenter{pieces: []board.Piece{piece("a", 2, 0, 1)}}
	c := newController(p, session.WithAscendInterval(5*time.Millisecond))
	require.NoError(t, c.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := c.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, session.ErrGameOver)
	assert.Equal(t, 1, p.gameOvers)
}

func TestRunHonoursContext(t *testing.T) {
	c := newController(&fakePresenter{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Run(ctx, time.Millisecond), context.Canceled)
}
