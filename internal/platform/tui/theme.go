package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles for menus and the help footer.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // Bright cyan
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	return theme
}

// ThemeByName returns a named theme. Unknown names get the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
