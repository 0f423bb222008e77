// Package render provides TUI theme definitions and markdown rendering for
// the terminal interface.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the TUI interface
type TUITheme struct {
	Name        string
	Description string

	// Glyph shown on the theme toggle: while this theme is active, the
	// glyph advertises the mode a toggle would switch to.
	ToggleGlyph string

	// MarkdownStyle is the glamour style matching this theme.
	MarkdownStyle string

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in TUI themes
var (
	// LightTheme is the default theme.
	LightTheme = TUITheme{
		Name:        "light",
		Description: "Light - bright background with blue accents",

		ToggleGlyph:   "☾", // switch to dark
		MarkdownStyle: "light",

		Background: lipgloss.Color("#fafafa"),
		Surface:    lipgloss.Color("#ebebeb"),
		Border:     lipgloss.Color("#c8c8d0"),

		Primary:   lipgloss.Color("#2563eb"),
		Secondary: lipgloss.Color("#047857"),
		Accent:    lipgloss.Color("#7c3aed"),
		Warning:   lipgloss.Color("#b45309"),
		Error:     lipgloss.Color("#dc2626"),

		Text:     lipgloss.Color("#1f2937"),
		TextDim:  lipgloss.Color("#6b7280"),
		TextMute: lipgloss.Color("#9ca3af"),
	}

	// DarkTheme is the alternate dark mode.
	DarkTheme = TUITheme{
		Name:        "dark",
		Description: "Dark - Tokyo Night inspired palette",

		ToggleGlyph:   "☀", // switch to light
		MarkdownStyle: "dark",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}
)

// currentTUITheme holds the currently active TUI theme
var currentTUITheme = LightTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
		return true
	}
	return false
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	switch name {
	case "light":
		return LightTheme, true
	case "dark":
		return DarkTheme, true
	default:
		return TUITheme{}, false
	}
}

// ToggleTUITheme flips between light and dark and returns the new theme.
func ToggleTUITheme() TUITheme {
	if currentTUITheme.Name == DarkTheme.Name {
		currentTUITheme = LightTheme
	} else {
		currentTUITheme = DarkTheme
	}
	return currentTUITheme
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{LightTheme, DarkTheme}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
