package nav

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/f3rmion/biblios/internal/bible"
)

// minSearchRunes is the query length at which live search starts.
const minSearchRunes = 2

type searchState struct {
	query     string
	results   []bible.Verse
	selection int
}

// SearchView is the read-only state of the search surface.
type SearchView struct {
	Query     string
	Results   []bible.Verse
	Selection int
}

// Search returns the search surface state.
func (m *Machine) Search() SearchView {
	return SearchView{
		Query:     m.search.query,
		Results:   m.search.results,
		Selection: clamp(m.search.selection, len(m.search.results)),
	}
}

func (m *Machine) searchIntent(in Intent) {
	s := &m.search
	switch in.Kind {
	case Char:
		s.query += string(in.Rune)
		m.runSearch()
	case Backspace:
		if s.query != "" {
			r := []rune(s.query)
			s.query = string(r[:len(r)-1])
			m.runSearch()
		}
	case Advance:
		s.selection = clamp(s.selection+1, len(s.results))
	case Retreat:
		s.selection = clamp(s.selection-1, len(s.results))
	case Confirm:
		m.searchConfirm()
	case Cancel:
		m.base = Reader
	}
}

func (m *Machine) runSearch() {
	s := &m.search
	s.selection = 0
	s.results = nil
	if utf8.RuneCountInString(s.query) < minSearchRunes || m.ctx.Provider == nil {
		return
	}
	res, err := m.ctx.Provider.Search(s.query, m.ctx.Settings.SearchLimit)
	if err != nil {
		m.log.Warn("search failed", "query", s.query, "error", err)
		m.status = "Search failed"
		return
	}
	s.results = res
}

// searchConfirm jumps to the query when it reads as a reference, otherwise
// to the selected result.
func (m *Machine) searchConfirm() {
	if ref, err := m.ctx.Index.Resolve(m.search.query); err == nil {
		m.jump(bible.Reference{Book: ref.Book, Chapter: ref.Chapter, Verse: ref.Verse}, Search)
		return
	}
	if len(m.search.results) == 0 {
		return
	}
	v := m.search.results[clamp(m.search.selection, len(m.search.results))]
	m.jump(v.Reference, Search)
}

// cycleSearch moves through the last result list from the reader.
func (m *Machine) cycleSearch(step int) {
	s := &m.search
	n := len(s.results)
	if n == 0 {
		m.status = "No search results"
		return
	}
	s.selection = ((s.selection+step)%n + n) % n
	m.jump(s.results[s.selection].Reference, Reader)
	if m.status == "" {
		m.status = fmt.Sprintf("Result %d of %d", s.selection+1, n)
	}
}

// jump goes to ref and shows the reader; on failure the surface from stays.
func (m *Machine) jump(ref bible.Reference, from Surface) {
	if err := m.goTo(ref); err != nil {
		if errors.Is(err, bible.ErrNotFound) {
			m.status = fmt.Sprintf("%s %d unavailable", ref.Book, ref.Chapter)
		}
		m.base = from
		return
	}
	m.base = Reader
}

func (m *Machine) bookmarksIntent(in Intent) {
	n := m.ctx.Bookmarks.Len()
	switch in.Kind {
	case Advance:
		m.bookmarkSel = clamp(m.bookmarkSel+1, n)
	case Retreat:
		m.bookmarkSel = clamp(m.bookmarkSel-1, n)
	case Digit:
		m.bookmarkSel = clamp(in.Digit-1, n)
	case Confirm:
		if n > 0 {
			bm := m.ctx.Bookmarks.Items[clamp(m.bookmarkSel, n)]
			m.jump(bm.Reference(), Bookmarks)
		}
	case DeleteBookmark:
		if n > 0 {
			i := clamp(m.bookmarkSel, n)
			ref := m.ctx.Bookmarks.Items[i].Reference()
			m.ctx.Bookmarks.RemoveAt(i)
			m.bookmarkSel = clamp(i, m.ctx.Bookmarks.Len())
			m.status = "Removed bookmark " + ref.String()
			m.saveBookmarks()
		}
	case Cancel, OpenBookmarks:
		m.base = Reader
	}
}

// SettingRow is a row of the settings panel.
type SettingRow int

const (
	RowInputMode SettingRow = iota
	RowTheme
	RowVerseNumbers
	RowVerseSpacing
	RowFocusMode
	settingRows
)

func (r SettingRow) String() string {
	switch r {
	case RowInputMode:
		return "Input mode"
	case RowTheme:
		return "Theme"
	case RowVerseNumbers:
		return "Verse numbers"
	case RowVerseSpacing:
		return "Verse spacing"
	case RowFocusMode:
		return "Focus mode"
	}
	return ""
}

// SettingRows returns the rows of the settings panel in order.
func SettingRows() []SettingRow {
	return []SettingRow{RowInputMode, RowTheme, RowVerseNumbers, RowVerseSpacing, RowFocusMode}
}

// SettingsSelection returns the selected settings row.
func (m *Machine) SettingsSelection() SettingRow {
	return SettingRow(clamp(m.settingsSel, int(settingRows)))
}

func (m *Machine) settingsIntent(in Intent) {
	switch in.Kind {
	case Advance:
		m.settingsSel = clamp(m.settingsSel+1, int(settingRows))
	case Retreat:
		m.settingsSel = clamp(m.settingsSel-1, int(settingRows))
	case Confirm:
		m.activateSetting(m.SettingsSelection())
	case ToggleInputMode:
		m.toggleInputMode()
	case ToggleFocusMode:
		m.toggleFocusMode()
	case OpenThemePicker:
		m.openThemes(Settings)
	case Cancel, OpenSettings:
		m.modal = NoSurface
	}
}

func (m *Machine) activateSetting(row SettingRow) {
	s := m.ctx.Settings
	switch row {
	case RowInputMode:
		m.toggleInputMode()
		return
	case RowTheme:
		m.openThemes(Settings)
		return
	case RowVerseNumbers:
		s.ShowVerseNumbers = !s.ShowVerseNumbers
	case RowVerseSpacing:
		s.VerseSpacing = !s.VerseSpacing
	case RowFocusMode:
		m.toggleFocusMode()
		return
	}
	m.saveSettings()
}

// Themes returns the theme names offered by the theme picker.
func (m *Machine) Themes() []string { return m.ctx.Themes }

// ThemeSelection returns the selected theme row.
func (m *Machine) ThemeSelection() int { return clamp(m.themeSel, len(m.ctx.Themes)) }

func (m *Machine) openThemes(from Surface) {
	m.themeReturn = from
	m.themeSel = 0
	for i, name := range m.ctx.Themes {
		if name == m.ctx.Settings.Theme {
			m.themeSel = i
		}
	}
	m.modal = ThemePicker
}

func (m *Machine) themeIntent(in Intent) {
	n := len(m.ctx.Themes)
	switch in.Kind {
	case Advance:
		m.themeSel = clamp(m.themeSel+1, n)
	case Retreat:
		m.themeSel = clamp(m.themeSel-1, n)
	case Digit:
		m.themeSel = clamp(in.Digit-1, n)
	case Confirm:
		if n > 0 {
			m.ctx.Settings.Theme = m.ctx.Themes[clamp(m.themeSel, n)]
			m.saveSettings()
			if m.status == "" {
				m.status = "Theme: " + m.ctx.Settings.Theme
			}
		}
		m.modal = m.themeReturn
	case Cancel:
		m.modal = m.themeReturn
	}
}

// HelpScroll returns the first visible line of the help surface.
func (m *Machine) HelpScroll() int { return m.helpScroll }

// SetHelpLines tells the machine how many lines the rendered help has, so
// scrolling stops at the end.
func (m *Machine) SetHelpLines(n int) {
	m.helpLines = n
	m.helpScroll = min(m.helpScroll, m.maxHelpScroll())
}

func (m *Machine) maxHelpScroll() int {
	return max(0, m.helpLines-m.height)
}

func (m *Machine) helpIntent(in Intent) {
	switch in.Kind {
	case Advance:
		m.helpScroll = min(m.helpScroll+1, m.maxHelpScroll())
	case Retreat:
		m.helpScroll = max(m.helpScroll-1, 0)
	case PageForward:
		m.helpScroll = min(m.helpScroll+m.height, m.maxHelpScroll())
	case PageBack:
		m.helpScroll = max(m.helpScroll-m.height, 0)
	case Cancel, OpenHelp:
		m.modal = NoSurface
	}
}
