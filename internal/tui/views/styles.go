package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/biblios/internal/theme"
)

// Styles holds every lipgloss style the renderers use, derived from one theme.
type Styles struct {
	Theme theme.Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Reader
	Verse       lipgloss.Style
	VerseActive lipgloss.Style
	VerseNumber lipgloss.Style
	Cursor      lipgloss.Style
	Bookmark    lipgloss.Style

	// Lists and overlays
	Item       lipgloss.Style
	ItemActive lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Box        lipgloss.Style
	Input      lipgloss.Style
	Cell       lipgloss.Style
	CellActive lipgloss.Style

	// Status
	Muted   lipgloss.Style
	Status  lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Theme: t,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.Secondary),

		Verse: lipgloss.NewStyle().
			Foreground(t.Foreground),
		VerseActive: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Bold(true),
		VerseNumber: lipgloss.NewStyle().
			Foreground(t.VerseNumber),
		Cursor: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Bookmark: lipgloss.NewStyle().
			Foreground(t.Bookmark),

		Item: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),
		ItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Background(t.Highlight).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true).
			Width(16),
		Value: lipgloss.NewStyle().
			Foreground(t.Foreground),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(5).
			Align(lipgloss.Right),
		CellActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Background(t.Highlight).
			Width(5).
			Align(lipgloss.Right),

		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),
		Status: lipgloss.NewStyle().
			Foreground(t.Accent).
			Italic(true),
		Divider: lipgloss.NewStyle().
			Foreground(t.Border),
	}
}
