package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ascend/internal/core"
	_ "github.com/vovakirdan/ascend/internal/games/ascend"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 1}
}

func send(t *testing.T, m tea.Model, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(testConfig())
	if !strings.Contains(m.View(), "Ascend") {
		t.Errorf("menu should list the game:\n%s", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageLayout || m.gameID != "ascend" {
		t.Fatalf("expected layout picker for ascend, got stage %d id %q", m.stage, m.gameID)
	}
	if !strings.Contains(m.View(), "Blank board") {
		t.Error("layout picker should offer a blank board")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.stage != stageGame || m.game == nil {
		t.Fatalf("expected a running game, got stage %d", m.stage)
	}

	m = send(t, m, TickMsg(time.Now()))
	if !strings.Contains(m.View(), "A S C E N D") {
		t.Error("game view should show the board header")
	}

	// Back is ignored while the game runs.
	m = send(t, m, runeKey('b'))
	if m.stage != stageGame {
		t.Fatal("back should be ignored while running")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg(time.Now()))
	m = send(t, m, runeKey('b'))
	if m.stage != stageMenu {
		t.Errorf("back while paused should return to the menu, got stage %d", m.stage)
	}
}

func TestSessionLayoutBack(t *testing.T) {
	m := NewSessionModel(testConfig())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageMenu {
		t.Errorf("esc in the layout picker should return to the menu, got stage %d", m.stage)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testConfig())
	m = send(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should quit the session")
	}
}

func TestLayoutChoices(t *testing.T) {
	choices := LayoutChoices()
	if len(choices) < 2 {
		t.Fatalf("expected the blank board plus built-in layouts, got %d", len(choices))
	}
	if choices[0].ID != "" {
		t.Errorf("first choice should be the blank board, got %q", choices[0].ID)
	}
	ids := map[string]bool{}
	for _, c := range choices[1:] {
		ids[c.ID] = true
	}
	if !ids["intro"] {
		t.Error("built-in intro layout missing")
	}
}

func TestModelHelpFooter(t *testing.T) {
	cfg := testConfig()
	m := NewSessionModel(cfg)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if h := m.game.screen.Height(); h >= cfg.ScreenH {
		t.Errorf("screen height %d should leave room for the help footer", h)
	}
	if !strings.Contains(m.View(), "quit") {
		t.Error("help footer should list the quit key")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
