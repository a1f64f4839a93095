// Package theme holds the color schemes the reader can be drawn with.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the application
type Theme struct {
	Name  string
	Light bool // drawn for light terminal backgrounds

	Foreground  lipgloss.Color
	Primary     lipgloss.Color // titles, current book
	Secondary   lipgloss.Color // subtitles, references
	Accent      lipgloss.Color // cursor, selection
	Muted       lipgloss.Color // help and status text
	Border      lipgloss.Color
	Highlight   lipgloss.Color // selected row background
	VerseNumber lipgloss.Color
	Bookmark    lipgloss.Color
}

// Available themes
var (
	Default = Theme{
		Name:        "default",
		Foreground:  lipgloss.Color("#f1faee"),
		Primary:     lipgloss.Color("#4ecdc4"),
		Secondary:   lipgloss.Color("#a8dadc"),
		Accent:      lipgloss.Color("#ffe66d"),
		Muted:       lipgloss.Color("#666666"),
		Border:      lipgloss.Color("#3d5a80"),
		Highlight:   lipgloss.Color("#2d3436"),
		VerseNumber: lipgloss.Color("#888888"),
		Bookmark:    lipgloss.Color("#FF6B6B"),
	}

	Dark = Theme{
		Name:        "dark",
		Foreground:  lipgloss.Color("#e0e0e0"),
		Primary:     lipgloss.Color("#00bcd4"),
		Secondary:   lipgloss.Color("#5c6bc0"),
		Accent:      lipgloss.Color("#e040fb"),
		Muted:       lipgloss.Color("#5f5f5f"),
		Border:      lipgloss.Color("#444444"),
		Highlight:   lipgloss.Color("#1c1c1c"),
		VerseNumber: lipgloss.Color("#6c6c6c"),
		Bookmark:    lipgloss.Color("#ffd54f"),
	}

	Nord = Theme{
		Name:        "nord",
		Foreground:  lipgloss.Color("#eceff4"),
		Primary:     lipgloss.Color("#88c0d0"),
		Secondary:   lipgloss.Color("#81a1c1"),
		Accent:      lipgloss.Color("#a3be8c"),
		Muted:       lipgloss.Color("#4c566a"),
		Border:      lipgloss.Color("#4c566a"),
		Highlight:   lipgloss.Color("#3b4252"),
		VerseNumber: lipgloss.Color("#616e88"),
		Bookmark:    lipgloss.Color("#ebcb8b"),
	}

	Gruvbox = Theme{
		Name:        "gruvbox",
		Foreground:  lipgloss.Color("#ebdbb2"),
		Primary:     lipgloss.Color("#83a598"),
		Secondary:   lipgloss.Color("#458588"),
		Accent:      lipgloss.Color("#fabd2f"),
		Muted:       lipgloss.Color("#928374"),
		Border:      lipgloss.Color("#504945"),
		Highlight:   lipgloss.Color("#3c3836"),
		VerseNumber: lipgloss.Color("#7c6f64"),
		Bookmark:    lipgloss.Color("#fe8019"),
	}

	SolarizedDark = Theme{
		Name:        "solarized-dark",
		Foreground:  lipgloss.Color("#839496"),
		Primary:     lipgloss.Color("#268bd2"),
		Secondary:   lipgloss.Color("#2aa198"),
		Accent:      lipgloss.Color("#b58900"),
		Muted:       lipgloss.Color("#586e75"),
		Border:      lipgloss.Color("#073642"),
		Highlight:   lipgloss.Color("#073642"),
		VerseNumber: lipgloss.Color("#586e75"),
		Bookmark:    lipgloss.Color("#cb4b16"),
	}

	Monokai = Theme{
		Name:        "monokai",
		Foreground:  lipgloss.Color("#f8f8f2"),
		Primary:     lipgloss.Color("#66d9ef"),
		Secondary:   lipgloss.Color("#a6e22e"),
		Accent:      lipgloss.Color("#f92672"),
		Muted:       lipgloss.Color("#75715e"),
		Border:      lipgloss.Color("#49483e"),
		Highlight:   lipgloss.Color("#3e3d32"),
		VerseNumber: lipgloss.Color("#75715e"),
		Bookmark:    lipgloss.Color("#e6db74"),
	}

	SolarizedLight = Theme{
		Name:        "solarized-light",
		Light:       true,
		Foreground:  lipgloss.Color("#657b83"),
		Primary:     lipgloss.Color("#268bd2"),
		Secondary:   lipgloss.Color("#2aa198"),
		Accent:      lipgloss.Color("#d33682"),
		Muted:       lipgloss.Color("#93a1a1"),
		Border:      lipgloss.Color("#eee8d5"),
		Highlight:   lipgloss.Color("#eee8d5"),
		VerseNumber: lipgloss.Color("#93a1a1"),
		Bookmark:    lipgloss.Color("#cb4b16"),
	}
)

// MarkdownStyle returns the glamour standard style matching the theme.
func (t Theme) MarkdownStyle() string {
	if t.Light {
		return "light"
	}
	return "dark"
}

// All returns every theme in picker order.
func All() []Theme {
	return []Theme{Default, Dark, Nord, Gruvbox, SolarizedDark, SolarizedLight, Monokai}
}

// Names returns the names of all themes in picker order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return names
}

// Get returns the theme called name, falling back to Default. "solarized"
// is accepted for solarized-dark.
func Get(name string) Theme {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "solarized" {
		n = SolarizedDark.Name
	}
	for _, t := range All() {
		if t.Name == n {
			return t
		}
	}
	return Default
}
