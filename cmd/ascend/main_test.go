package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ascend/internal/config"
	"github.com/vovakirdan/ascend/internal/games/ascend/advisor"
	"github.com/vovakirdan/ascend/internal/games/ascend/layouts"
)

func TestRenderHintIntro(t *testing.T) {
	layout, err := openLayout("intro")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderHint(&buf, layout, config.DefaultAscendConfig(), 3))

	out := buf.String()
	assert.Contains(t, out, "First Steps (intro)")
	assert.Contains(t, out, "Best: move d right 2 (score 3.00)")
	assert.Contains(t, out, "3.00")
}

func TestRenderHintNoMove(t *testing.T) {
	layout := layouts.Layout{ID: "empty", Name: "Empty", Rows: 11, Cols: 9}

	var buf bytes.Buffer
	require.NoError(t, renderHint(&buf, layout, config.DefaultAscendConfig(), 0))
	assert.Contains(t, buf.String(), "No legal move.")
}

func TestOpenLayoutUnknown(t *testing.T) {
	_, err := openLayout("does-not-exist")
	assert.Error(t, err)
}

func TestRankCandidatesKeepsTies(t *testing.T) {
	cs := []advisor.Candidate{
		{Move: advisor.Move{PieceID: "a", Score: 1}},
		{Move: advisor.Move{PieceID: "b", Score: 3}},
		{Move: advisor.Move{PieceID: "c", Score: 1}},
		{Move: advisor.Move{PieceID: "d", Score: 3}},
	}

	ranked := rankCandidates(cs)
	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.Move.PieceID
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
	assert.Equal(t, "a", cs[0].Move.PieceID, "input must not be reordered")
}

func TestRenderLayouts(t *testing.T) {
	all, err := layouts.Embedded().LoadAll()
	require.NoError(t, err)

	var buf bytes.Buffer
	renderLayouts(&buf, all)

	out := buf.String()
	for _, l := range all {
		assert.Contains(t, out, l.ID)
	}
	assert.Contains(t, out, "11x9")
}
