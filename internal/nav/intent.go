package nav

// Kind identifies an abstract input intent.
type Kind int

const (
	None Kind = iota
	Advance
	Retreat
	PageForward
	PageBack
	JumpStart
	JumpEnd
	NextChapter
	PrevChapter
	NextBook
	PrevBook
	OpenSearch
	OpenBookmarks
	OpenPicker
	OpenSettings
	OpenThemePicker
	OpenHelp
	Confirm
	Cancel
	ToggleBookmark
	DeleteBookmark
	ToggleInputMode
	ToggleFocusMode
	SearchNext
	SearchPrev
	Yank
	Char
	Backspace
	Digit
	Quit
)

var kindNames = [...]string{
	None:            "none",
	Advance:         "advance",
	Retreat:         "retreat",
	PageForward:     "page-forward",
	PageBack:        "page-back",
	JumpStart:       "jump-start",
	JumpEnd:         "jump-end",
	NextChapter:     "next-chapter",
	PrevChapter:     "prev-chapter",
	NextBook:        "next-book",
	PrevBook:        "prev-book",
	OpenSearch:      "open-search",
	OpenBookmarks:   "open-bookmarks",
	OpenPicker:      "open-picker",
	OpenSettings:    "open-settings",
	OpenThemePicker: "open-theme-picker",
	OpenHelp:        "open-help",
	Confirm:         "confirm",
	Cancel:          "cancel",
	ToggleBookmark:  "toggle-bookmark",
	DeleteBookmark:  "delete-bookmark",
	ToggleInputMode: "toggle-input-mode",
	ToggleFocusMode: "toggle-focus-mode",
	SearchNext:      "search-next",
	SearchPrev:      "search-prev",
	Yank:            "yank",
	Char:            "char",
	Backspace:       "backspace",
	Digit:           "digit",
	Quit:            "quit",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Intent is one unit of user input. Rune is set for Char, Digit (1-9) for
// Digit.
type Intent struct {
	Kind  Kind
	Rune  rune
	Digit int
}

// Key returns an intent without payload.
func Key(k Kind) Intent {
	return Intent{Kind: k}
}

// CharOf returns a Char intent.
func CharOf(r rune) Intent {
	return Intent{Kind: Char, Rune: r}
}

// DigitOf returns a Digit intent.
func DigitOf(d int) Intent {
	return Intent{Kind: Digit, Digit: d}
}
