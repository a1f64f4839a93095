package nav

// Surface is an interactive surface that can own input.
type Surface int

const (
	NoSurface Surface = iota
	Reader
	Search
	Bookmarks
	LocationPicker
	ThemePicker
	Settings
	Help
)

func (s Surface) String() string {
	switch s {
	case Reader:
		return "reader"
	case Search:
		return "search"
	case Bookmarks:
		return "bookmarks"
	case LocationPicker:
		return "picker"
	case ThemePicker:
		return "themes"
	case Settings:
		return "settings"
	case Help:
		return "help"
	default:
		return "none"
	}
}

// IsModal reports whether s is drawn as an overlay above the base view.
func (s Surface) IsModal() bool {
	switch s {
	case LocationPicker, ThemePicker, Settings, Help:
		return true
	}
	return false
}

// modalPriority lists overlays from highest to lowest priority.
var modalPriority = []Surface{LocationPicker, ThemePicker, Settings, Help}

// accepts lists the intents each surface reacts to. Anything else is
// discarded by that surface. Quit is accepted everywhere.
var accepts = map[Surface]map[Kind]bool{
	Reader: set(Advance, Retreat, PageForward, PageBack, JumpStart, JumpEnd,
		NextChapter, PrevChapter, NextBook, PrevBook, OpenSearch,
		OpenBookmarks, OpenPicker, OpenSettings, OpenThemePicker, OpenHelp,
		ToggleBookmark, ToggleInputMode, ToggleFocusMode, SearchNext,
		SearchPrev, Yank, Quit),
	Search:         set(Char, Backspace, Advance, Retreat, Confirm, Cancel, Quit),
	Bookmarks:      set(Advance, Retreat, Digit, Confirm, Cancel, DeleteBookmark, OpenBookmarks, Quit),
	LocationPicker: set(Char, Backspace, Advance, Retreat, Digit, Confirm, Cancel, Quit),
	ThemePicker:    set(Advance, Retreat, Digit, Confirm, Cancel, Quit),
	Settings:       set(Advance, Retreat, Confirm, Cancel, ToggleInputMode, ToggleFocusMode, OpenThemePicker, OpenSettings, Quit),
	Help:           set(Advance, Retreat, PageForward, PageBack, Cancel, OpenHelp, Quit),
}

// Accepts reports whether s reacts to intents of kind k.
func (s Surface) Accepts(k Kind) bool {
	return accepts[s][k]
}

func set(kinds ...Kind) map[Kind]bool {
	m := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}
