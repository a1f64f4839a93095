package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/biblios/internal/config"
	"github.com/f3rmion/biblios/internal/nav"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReaderBindings(t *testing.T) {
	tests := []struct {
		name string
		mode config.InputMode
		msg  tea.KeyMsg
		want nav.Kind
	}{
		{"normal down", config.InputNormal, tea.KeyMsg{Type: tea.KeyDown}, nav.Advance},
		{"normal left", config.InputNormal, tea.KeyMsg{Type: tea.KeyLeft}, nav.Retreat},
		{"normal page", config.InputNormal, tea.KeyMsg{Type: tea.KeyPgDown}, nav.PageForward},
		{"normal end", config.InputNormal, tea.KeyMsg{Type: tea.KeyEnd}, nav.JumpEnd},
		{"normal chapter", config.InputNormal, runes("]"), nav.NextChapter},
		{"normal picker", config.InputNormal, tea.KeyMsg{Type: tea.KeyCtrlG}, nav.OpenPicker},
		{"normal search", config.InputNormal, runes("/"), nav.OpenSearch},
		{"normal search next", config.InputNormal, tea.KeyMsg{Type: tea.KeyF3}, nav.SearchNext},
		{"normal bookmark", config.InputNormal, runes("m"), nav.ToggleBookmark},
		{"normal help", config.InputNormal, tea.KeyMsg{Type: tea.KeyF1}, nav.OpenHelp},
		{"normal next book", config.InputNormal, tea.KeyMsg{Type: tea.KeyCtrlDown}, nav.NextBook},
		{"normal prev book", config.InputNormal, runes("{"), nav.PrevBook},
		{"normal focus", config.InputNormal, tea.KeyMsg{Type: tea.KeyF2}, nav.ToggleFocusMode},
		{"normal esc is nothing", config.InputNormal, tea.KeyMsg{Type: tea.KeyEsc}, nav.None},
		{"normal j is nothing", config.InputNormal, runes("j"), nav.None},
		{"normal q is nothing", config.InputNormal, runes("q"), nav.None},
		{"vim j", config.InputVim, runes("j"), nav.Advance},
		{"vim k", config.InputVim, runes("k"), nav.Retreat},
		{"vim ctrl+d", config.InputVim, tea.KeyMsg{Type: tea.KeyCtrlD}, nav.PageForward},
		{"vim G", config.InputVim, runes("G"), nav.JumpEnd},
		{"vim g", config.InputVim, runes("g"), nav.OpenPicker},
		{"vim L", config.InputVim, runes("L"), nav.NextChapter},
		{"vim N", config.InputVim, runes("N"), nav.SearchPrev},
		{"vim q", config.InputVim, runes("q"), nav.Quit},
		{"vim toggle", config.InputVim, runes("i"), nav.ToggleInputMode},
		{"vim next book", config.InputVim, runes("}"), nav.NextBook},
		{"vim prev book", config.InputVim, runes("{"), nav.PrevBook},
		{"vim focus", config.InputVim, runes("f"), nav.ToggleFocusMode},
		{"ctrl+c", config.InputNormal, tea.KeyMsg{Type: tea.KeyCtrlC}, nav.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForMode(tt.mode).Map(tt.msg, nav.Reader, nav.StepBook)
			if got.Kind != tt.want {
				t.Errorf("Map(%q) = %s, want %s", tt.msg.String(), got.Kind, tt.want)
			}
		})
	}
}

func TestSearchTakesText(t *testing.T) {
	k := VimKeys()

	got := k.Map(runes("j"), nav.Search, nav.StepBook)
	if got.Kind != nav.Char || got.Rune != 'j' {
		t.Errorf("j in search = %+v, want char", got)
	}
	got = k.Map(runes("3"), nav.Search, nav.StepBook)
	if got.Kind != nav.Char || got.Rune != '3' {
		t.Errorf("3 in search = %+v, want char", got)
	}
	got = k.Map(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, nav.Search, nav.StepBook)
	if got.Kind != nav.Char || got.Rune != ' ' {
		t.Errorf("space in search = %+v", got)
	}
	if got := k.Map(runes("q"), nav.Search, nav.StepBook); got.Kind != nav.Char {
		t.Errorf("q should type in search, got %s", got.Kind)
	}
	if got := k.Map(tea.KeyMsg{Type: tea.KeyCtrlC}, nav.Search, nav.StepBook); got.Kind != nav.Quit {
		t.Errorf("ctrl+c in search = %s", got.Kind)
	}
}

func TestPickerSteps(t *testing.T) {
	k := NormalKeys()

	tests := []struct {
		name string
		step nav.PickerStep
		msg  tea.KeyMsg
		want nav.Intent
	}{
		{"book letter", nav.StepBook, runes("j"), nav.CharOf('j')},
		{"book digit", nav.StepBook, runes("3"), nav.DigitOf(3)},
		{"book zero types", nav.StepBook, runes("0"), nav.CharOf('0')},
		{"book backspace", nav.StepBook, tea.KeyMsg{Type: tea.KeyBackspace}, nav.Key(nav.Backspace)},
		{"book down", nav.StepBook, tea.KeyMsg{Type: tea.KeyDown}, nav.Key(nav.Advance)},
		{"chapter digit", nav.StepChapter, runes("9"), nav.DigitOf(9)},
		{"chapter j", nav.StepChapter, runes("j"), nav.Key(nav.Advance)},
		{"verse enter", nav.StepVerse, tea.KeyMsg{Type: tea.KeyEnter}, nav.Key(nav.Confirm)},
		{"verse esc", nav.StepVerse, tea.KeyMsg{Type: tea.KeyEsc}, nav.Key(nav.Cancel)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Map(tt.msg, nav.LocationPicker, tt.step); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListSurfaces(t *testing.T) {
	k := NormalKeys()

	tests := []struct {
		name   string
		active nav.Surface
		msg    tea.KeyMsg
		want   nav.Kind
	}{
		{"bookmarks delete", nav.Bookmarks, runes("d"), nav.DeleteBookmark},
		{"bookmarks delete key", nav.Bookmarks, tea.KeyMsg{Type: tea.KeyDelete}, nav.DeleteBookmark},
		{"bookmarks close", nav.Bookmarks, runes("b"), nav.OpenBookmarks},
		{"bookmarks digit", nav.Bookmarks, runes("2"), nav.Digit},
		{"settings themes", nav.Settings, runes("t"), nav.OpenThemePicker},
		{"settings toggle", nav.Settings, runes("i"), nav.ToggleInputMode},
		{"settings q", nav.Settings, runes("q"), nav.Cancel},
		{"settings focus", nav.Settings, tea.KeyMsg{Type: tea.KeyF2}, nav.ToggleFocusMode},
		{"themes down", nav.ThemePicker, tea.KeyMsg{Type: tea.KeyDown}, nav.Advance},
		{"themes m", nav.ThemePicker, runes("m"), nav.None},
		{"help page", nav.Help, tea.KeyMsg{Type: tea.KeyPgDown}, nav.PageForward},
		{"help close", nav.Help, runes("?"), nav.OpenHelp},
		{"help esc", nav.Help, tea.KeyMsg{Type: tea.KeyEsc}, nav.Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.Map(tt.msg, tt.active, nav.StepBook); got.Kind != tt.want {
				t.Errorf("got %s, want %s", got.Kind, tt.want)
			}
		})
	}
}

func TestMarkdownListsBindings(t *testing.T) {
	md := VimKeys().Markdown()
	for _, want := range []string{"vim mode", "`ctrl+d`", "next chapter", "next book", "focus mode", "`g`"} {
		if !strings.Contains(md, want) {
			t.Errorf("help markdown missing %q", want)
		}
	}
}
