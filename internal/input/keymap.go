// Package input maps key presses to navigation intents. The mapping depends
// on the input mode and on which surface currently owns input.
package input

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/biblios/internal/config"
	"github.com/f3rmion/biblios/internal/nav"
)

// KeyMap holds the reader bindings of one input mode.
type KeyMap struct {
	Mode config.InputMode

	Down        key.Binding
	Up          key.Binding
	PageDown    key.Binding
	PageUp      key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextChapter key.Binding
	PrevChapter key.Binding
	NextBook    key.Binding
	PrevBook    key.Binding
	Picker      key.Binding
	Search      key.Binding
	SearchNext  key.Binding
	SearchPrev  key.Binding
	Bookmark    key.Binding
	Bookmarks   key.Binding
	Settings    key.Binding
	Themes      key.Binding
	Help        key.Binding
	Yank        key.Binding
	ToggleMode  key.Binding
	Focus       key.Binding
	Quit        key.Binding
}

// NormalKeys returns the arrow-key oriented bindings.
func NormalKeys() KeyMap {
	return KeyMap{
		Mode:        config.InputNormal,
		Down:        key.NewBinding(key.WithKeys("down", "right"), key.WithHelp("↓/→", "next verse")),
		Up:          key.NewBinding(key.WithKeys("up", "left"), key.WithHelp("↑/←", "previous verse")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		Top:         key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first verse")),
		Bottom:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last verse")),
		NextChapter: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next chapter")),
		PrevChapter: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous chapter")),
		NextBook:    key.NewBinding(key.WithKeys("ctrl+down", "}"), key.WithHelp("ctrl+↓", "next book")),
		PrevBook:    key.NewBinding(key.WithKeys("ctrl+up", "{"), key.WithHelp("ctrl+↑", "previous book")),
		Picker:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "go to")),
		Search:      key.NewBinding(key.WithKeys("/", "ctrl+f"), key.WithHelp("/", "search")),
		SearchNext:  key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "next result")),
		SearchPrev:  key.NewBinding(key.WithKeys("shift+f3", "f15"), key.WithHelp("shift+f3", "previous result")),
		Bookmark:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "bookmark")),
		Bookmarks:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmarks")),
		Settings:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Themes:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "themes")),
		Help:        key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
		Yank:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy verse")),
		ToggleMode:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "vim keys")),
		Focus:       key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "focus mode")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// VimKeys returns the vim-style bindings.
func VimKeys() KeyMap {
	return KeyMap{
		Mode:        config.InputVim,
		Down:        key.NewBinding(key.WithKeys("j", "l", "down"), key.WithHelp("j", "next verse")),
		Up:          key.NewBinding(key.WithKeys("k", "h", "up"), key.WithHelp("k", "previous verse")),
		PageDown:    key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
		PageUp:      key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
		Top:         key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "first verse")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last verse")),
		NextChapter: key.NewBinding(key.WithKeys("L", "]"), key.WithHelp("L", "next chapter")),
		PrevChapter: key.NewBinding(key.WithKeys("H", "["), key.WithHelp("H", "previous chapter")),
		NextBook:    key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next book")),
		PrevBook:    key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "previous book")),
		Picker:      key.NewBinding(key.WithKeys("g", "ctrl+g"), key.WithHelp("g", "go to")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		SearchNext:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next result")),
		SearchPrev:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous result")),
		Bookmark:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "bookmark")),
		Bookmarks:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmarks")),
		Settings:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Themes:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "themes")),
		Help:        key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
		Yank:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy verse")),
		ToggleMode:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "normal keys")),
		Focus:       key.NewBinding(key.WithKeys("f", "f2"), key.WithHelp("f", "focus mode")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ForMode returns the key map of mode.
func ForMode(mode config.InputMode) KeyMap {
	if mode == config.InputVim {
		return VimKeys()
	}
	return NormalKeys()
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Picker, k.Search, k.Bookmark, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom, k.NextChapter, k.PrevChapter, k.NextBook, k.PrevBook},
		{k.Picker, k.Search, k.SearchNext, k.SearchPrev},
		{k.Bookmark, k.Bookmarks, k.Yank},
		{k.Settings, k.Themes, k.ToggleMode, k.Focus, k.Help, k.Quit},
	}
}

// Markdown renders the bindings as a markdown document for the help surface.
func (k KeyMap) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Biblios keys (%s mode)\n\n", k.Mode)

	sections := []string{"Reading", "Finding", "Bookmarks", "Preferences"}
	for i, group := range k.FullHelp() {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n| --- | --- |\n", sections[i])
		for _, kb := range group {
			h := kb.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Lists and the location picker\n\n")
	b.WriteString("| Key | Action |\n| --- | --- |\n")
	b.WriteString("| `↑`/`↓` | move selection |\n")
	b.WriteString("| `1`-`9` | jump to row |\n")
	b.WriteString("| `enter` | confirm |\n")
	b.WriteString("| `esc` | back |\n")
	b.WriteString("| `d` | delete bookmark |\n")
	b.WriteString("\nType to filter books in the picker. A search query that reads as a reference, like `John 3:16`, jumps straight there.\n")
	return b.String()
}

var (
	ctrlC     = key.NewBinding(key.WithKeys("ctrl+c"))
	confirm   = key.NewBinding(key.WithKeys("enter"))
	cancel    = key.NewBinding(key.WithKeys("esc"))
	backspace = key.NewBinding(key.WithKeys("backspace"))
	listUp    = key.NewBinding(key.WithKeys("up", "k", "ctrl+p"))
	listDown  = key.NewBinding(key.WithKeys("down", "j", "ctrl+n"))
	fieldUp   = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	fieldDown = key.NewBinding(key.WithKeys("down", "ctrl+n"))
	pageDown  = key.NewBinding(key.WithKeys("pgdown", "ctrl+d"))
	pageUp    = key.NewBinding(key.WithKeys("pgup", "ctrl+u"))
	remove    = key.NewBinding(key.WithKeys("d", "x", "delete"))
	listClose = key.NewBinding(key.WithKeys("esc", "q"))
)

// Map translates a key press into an intent for the active surface. step is
// only consulted while the location picker is active.
func (k KeyMap) Map(msg tea.KeyMsg, active nav.Surface, step nav.PickerStep) nav.Intent {
	if key.Matches(msg, ctrlC) {
		return nav.Key(nav.Quit)
	}

	switch active {
	case nav.Search:
		return textIntent(msg, false)
	case nav.LocationPicker:
		if step == nav.StepBook {
			return textIntent(msg, true)
		}
		return listIntent(msg, nil)
	case nav.Bookmarks:
		return listIntent(msg, map[*key.Binding]nav.Kind{
			&remove:      nav.DeleteBookmark,
			&k.Bookmarks: nav.OpenBookmarks,
		})
	case nav.Settings:
		return listIntent(msg, map[*key.Binding]nav.Kind{
			&k.Settings:   nav.OpenSettings,
			&k.Themes:     nav.OpenThemePicker,
			&k.ToggleMode: nav.ToggleInputMode,
			&k.Focus:      nav.ToggleFocusMode,
		})
	case nav.ThemePicker:
		return listIntent(msg, nil)
	case nav.Help:
		switch {
		case key.Matches(msg, k.Help):
			return nav.Key(nav.OpenHelp)
		case key.Matches(msg, pageDown):
			return nav.Key(nav.PageForward)
		case key.Matches(msg, pageUp):
			return nav.Key(nav.PageBack)
		}
		return listIntent(msg, nil)
	}
	return k.readerIntent(msg)
}

func (k KeyMap) readerIntent(msg tea.KeyMsg) nav.Intent {
	bindings := []struct {
		b    key.Binding
		kind nav.Kind
	}{
		{k.Quit, nav.Quit},
		{k.Down, nav.Advance},
		{k.Up, nav.Retreat},
		{k.PageDown, nav.PageForward},
		{k.PageUp, nav.PageBack},
		{k.Top, nav.JumpStart},
		{k.Bottom, nav.JumpEnd},
		{k.NextChapter, nav.NextChapter},
		{k.PrevChapter, nav.PrevChapter},
		{k.NextBook, nav.NextBook},
		{k.PrevBook, nav.PrevBook},
		{k.Picker, nav.OpenPicker},
		{k.Search, nav.OpenSearch},
		{k.SearchNext, nav.SearchNext},
		{k.SearchPrev, nav.SearchPrev},
		{k.Bookmark, nav.ToggleBookmark},
		{k.Bookmarks, nav.OpenBookmarks},
		{k.Settings, nav.OpenSettings},
		{k.Themes, nav.OpenThemePicker},
		{k.Help, nav.OpenHelp},
		{k.Yank, nav.Yank},
		{k.ToggleMode, nav.ToggleInputMode},
		{k.Focus, nav.ToggleFocusMode},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return nav.Key(kb.kind)
		}
	}
	return nav.Key(nav.None)
}

// textIntent maps keys for surfaces with a text field. With digits set,
// 1-9 jump instead of typing.
func textIntent(msg tea.KeyMsg, digits bool) nav.Intent {
	switch {
	case key.Matches(msg, confirm):
		return nav.Key(nav.Confirm)
	case key.Matches(msg, cancel):
		return nav.Key(nav.Cancel)
	case key.Matches(msg, backspace):
		return nav.Key(nav.Backspace)
	case key.Matches(msg, fieldUp):
		return nav.Key(nav.Retreat)
	case key.Matches(msg, fieldDown):
		return nav.Key(nav.Advance)
	}
	if msg.Type == tea.KeySpace {
		return nav.CharOf(' ')
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return nav.Key(nav.None)
	}
	r := msg.Runes[0]
	if digits && r >= '1' && r <= '9' {
		return nav.DigitOf(int(r - '0'))
	}
	return nav.CharOf(r)
}

// listIntent maps keys for selection lists. extra adds surface specific
// bindings.
func listIntent(msg tea.KeyMsg, extra map[*key.Binding]nav.Kind) nav.Intent {
	switch {
	case key.Matches(msg, confirm):
		return nav.Key(nav.Confirm)
	case key.Matches(msg, listClose):
		return nav.Key(nav.Cancel)
	case key.Matches(msg, listUp):
		return nav.Key(nav.Retreat)
	case key.Matches(msg, listDown):
		return nav.Key(nav.Advance)
	}
	for b, kind := range extra {
		if key.Matches(msg, *b) {
			return nav.Key(kind)
		}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '9' {
			return nav.DigitOf(int(r - '0'))
		}
	}
	return nav.Key(nav.None)
}
