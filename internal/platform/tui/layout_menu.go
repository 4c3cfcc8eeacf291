package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ascend/internal/core"
	"github.com/vovakirdan/ascend/internal/games/ascend/layouts"
)

// LayoutChoice is one entry of the layout picker.
type LayoutChoice struct {
	ID          string // Empty for the blank board
	Name        string
	Description string
}

// LayoutSelection holds the user's selection from the layout picker.
type LayoutSelection struct {
	LayoutID string // Empty = blank board
}

// LayoutMenuModel is the starting-layout picker.
type LayoutMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	choices      []LayoutChoice
	selection    LayoutSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
}

// LayoutChoices lists the blank board followed by the built-in layouts.
func LayoutChoices() []LayoutChoice {
	choices := []LayoutChoice{{Name: "Blank board", Description: "random rows from the start"}}

	all, err := layouts.Embedded().LoadAll()
	if err != nil {
		return choices
	}
	for _, l := range all {
		desc := l.Metadata["hint"]
		if desc == "" {
			desc = fmt.Sprintf("%d pieces", len(l.Pieces))
		}
		choices = append(choices, LayoutChoice{ID: l.ID, Name: l.Name, Description: desc})
	}
	return choices
}

// NewLayoutMenuModel creates a new layout selection model.
func NewLayoutMenuModel(width, height int) LayoutMenuModel {
	return LayoutMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choices:   LayoutChoices(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LayoutMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LayoutMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LayoutMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = LayoutSelection{LayoutID: m.choices[m.cursor].ID}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LayoutMenuModel) visibleItems() int {
	return max(3, m.height-10) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LayoutMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the layout selection.
func (m LayoutMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("A S C E N D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuDescription.Render("Select a starting layout:"), m.width))
	b.WriteString("\n\n")

	end := min(len(m.choices), m.scrollOffset+m.visibleItems())
	if m.scrollOffset > 0 {
		b.WriteString(centerText(theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		c := m.choices[i]
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		line := style.Render(cursor+c.Name) + "  " + theme.MenuDescription.Render(c.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if end < len(m.choices) {
		b.WriteString(centerText(theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := theme.MenuControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LayoutMenuModel) Selected() *LayoutSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LayoutMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LayoutMenuModel) WantsBack() bool {
	return m.back
}

// RunLayoutSelector runs the layout picker and returns the selection,
// or nil when the user backed out.
func RunLayoutSelector(cfg core.RuntimeConfig) (*LayoutSelection, error) {
	p := tea.NewProgram(
		NewLayoutMenuModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LayoutMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
