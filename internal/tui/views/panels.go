package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/biblios/internal/config"
	"github.com/f3rmion/biblios/internal/nav"
	"github.com/f3rmion/biblios/internal/theme"
)

// Search renders the search surface.
func Search(m *nav.Machine, st Styles, width, height int) string {
	s := m.Search()

	var b strings.Builder
	b.WriteString(st.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(textField(st, "/ ", s.Query, "words or a reference like John 3:16", width-2))
	b.WriteString("\n")

	switch {
	case len([]rune(s.Query)) < 2:
		b.WriteString(st.Muted.Render("Type at least two characters"))
		return b.String()
	case len(s.Results) == 0:
		b.WriteString(st.Muted.Render("No matches"))
		return b.String()
	}

	b.WriteString(st.Muted.Render(fmt.Sprintf("%d matches", len(s.Results))))
	b.WriteString("\n")

	rows := max(height-6, 1)
	start, end := window(s.Selection, len(s.Results), rows)
	for i := start; i < end; i++ {
		v := s.Results[i]
		ref := runewidth.FillRight(v.Reference.String(), 16)
		text := runewidth.Truncate(v.Text, max(width-20, 10), "…")
		b.WriteString(listRow(st, ref+text, i == s.Selection))
		b.WriteString("\n")
	}
	return b.String()
}

// Bookmarks renders the bookmark list.
func Bookmarks(m *nav.Machine, st Styles, width, height int) string {
	items := m.Bookmarks()

	var b strings.Builder
	b.WriteString(st.Title.Render("Bookmarks"))
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString(st.Muted.Render("No bookmarks yet. Press m while reading to add one."))
		return b.String()
	}

	sel := m.BookmarkSelection()
	start, end := window(sel, len(items), max(height-4, 1))
	for i := start; i < end; i++ {
		bm := items[i]
		label := runewidth.FillRight(bm.Reference().String(), 16)
		if !bm.CreatedAt.IsZero() {
			label += bm.CreatedAt.Local().Format("2006-01-02") + "  "
		}
		label += bm.Note
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		b.WriteString(listRow(st, runewidth.Truncate(label, max(width-2, 10), "…"), i == sel))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("enter open • d delete • esc close"))
	return b.String()
}

// Settings renders the settings box.
func Settings(m *nav.Machine, st Styles, width int) string {
	set := m.Settings()
	sel := m.SettingsSelection()

	var b strings.Builder
	b.WriteString(st.Title.Render("Settings"))
	b.WriteString("\n\n")
	for _, row := range nav.SettingRows() {
		line := st.Label.Render(row.String()) + st.Value.Render(settingValue(set, row))
		if row == sel {
			line = st.Cursor.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("enter change • esc close"))
	return st.Box.Width(width).Render(b.String())
}

func settingValue(s config.Settings, row nav.SettingRow) string {
	switch row {
	case nav.RowInputMode:
		return string(s.InputMode)
	case nav.RowTheme:
		return s.Theme
	case nav.RowVerseNumbers:
		return onOff(s.ShowVerseNumbers)
	case nav.RowVerseSpacing:
		return onOff(s.VerseSpacing)
	case nav.RowFocusMode:
		return onOff(s.FocusMode)
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Themes renders the theme picker with a swatch per theme.
func Themes(m *nav.Machine, st Styles, width int) string {
	current := m.Settings().Theme
	sel := m.ThemeSelection()

	var b strings.Builder
	b.WriteString(st.Title.Render("Theme"))
	b.WriteString("\n\n")
	for i, name := range m.Themes() {
		label := runewidth.FillRight(name, 16)
		if name == current {
			label = runewidth.FillRight(name+" *", 16)
		}
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		b.WriteString(listRow(st, label, i == sel))
		b.WriteString(swatch(theme.Get(name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("enter apply • esc cancel"))
	return st.Box.Width(width).Render(b.String())
}

func swatch(t theme.Theme) string {
	var cells []string
	for _, c := range []lipgloss.Color{t.Primary, t.Secondary, t.Accent, t.Bookmark} {
		cells = append(cells, lipgloss.NewStyle().Background(c).Render("  "))
	}
	return " " + strings.Join(cells, "")
}

// RenderHelp renders markdown for the help surface in the glamour style of t
// and splits it into lines.
func RenderHelp(markdown string, t theme.Theme, width int) []string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(t.MarkdownStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return strings.Split(markdown, "\n")
	}
	out, err := r.Render(markdown)
	if err != nil {
		return strings.Split(markdown, "\n")
	}
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

// Help renders the visible slice of the rendered help lines.
func Help(lines []string, scroll, height int, st Styles, width int) string {
	end := min(scroll+height, len(lines))
	start := min(scroll, end)
	body := strings.Join(lines[start:end], "\n")
	footer := st.Muted.Render(fmt.Sprintf("%d/%d • ↑/↓ scroll • esc close", end, len(lines)))
	return st.Box.Width(width).Render(body + "\n\n" + footer)
}
