// Package nav is the reading core: it interprets intents, decides which
// surface owns input, and keeps the location, loaded chapter and viewport
// consistent across the book/chapter/verse hierarchy.
//
// A Machine is not safe for concurrent use. Intents are processed one at a
// time, each to completion, including any chapter load.
package nav

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/f3rmion/biblios/internal/bible"
	"github.com/f3rmion/biblios/internal/config"
	"github.com/f3rmion/biblios/internal/logging"
)

// Provider supplies chapter text and search results.
type Provider interface {
	LoadChapter(book string, chapter int) (bible.Chapter, error)
	Search(query string, limit int) ([]bible.Verse, error)
}

// Persister writes user data.
type Persister interface {
	SaveState(config.State) error
	SaveSettings(config.Settings) error
	SaveBookmarks(*config.Bookmarks) error
}

// Context carries the collaborators and user data the handlers work on.
type Context struct {
	Index     *bible.Index
	Provider  Provider
	Persist   Persister
	Settings  *config.Settings
	Bookmarks *config.Bookmarks
	Themes    []string
	Logger    *slog.Logger
}

// Location is a position in the document. VerseIndex is 0-based into the
// loaded chapter.
type Location struct {
	Book       string
	Chapter    int
	VerseIndex int
}

// Default starting location when no position was persisted.
var DefaultLocation = Location{Book: "John", Chapter: 1}

// Outcome reports effects the host must carry out after an intent.
type Outcome struct {
	Quit      bool
	Clipboard string
}

// Machine is the navigation and modal-interaction state machine.
type Machine struct {
	ctx *Context
	log *slog.Logger

	loc     Location
	chapter bible.Chapter
	offset  int
	height  int

	base  Surface
	modal Surface

	picker      Picker
	search      searchState
	bookmarkSel int
	settingsSel int
	themeSel    int
	themeReturn Surface
	helpScroll  int
	helpLines   int

	status string
	quit   bool
	saved  Location
}

// New creates a machine seeded from the persisted state. A missing or
// unusable position falls back to DefaultLocation, then to the first
// loadable chapter of the index.
func New(ctx *Context, st config.State) *Machine {
	if ctx.Settings == nil {
		s := config.DefaultSettings()
		ctx.Settings = &s
	}
	if ctx.Bookmarks == nil {
		ctx.Bookmarks = &config.Bookmarks{}
	}
	log := ctx.Logger
	if log == nil {
		log = logging.GetLogger()
	}

	m := &Machine{
		ctx:    ctx,
		log:    log,
		height: 10,
		base:   Reader,
	}
	m.seed(st)
	m.saved = m.loc
	return m
}

func (m *Machine) seed(st config.State) {
	if st.HasPosition() {
		if ch, ok := m.load(*st.Book, *st.Chapter); ok {
			m.land(ch, st.VerseIndex)
			m.log.Debug("restored position", "book", *st.Book, "chapter", *st.Chapter, "verse_index", st.VerseIndex)
			return
		}
		m.log.Info("persisted position unavailable", "book", *st.Book, "chapter", *st.Chapter)
	}
	if ch, ok := m.load(DefaultLocation.Book, DefaultLocation.Chapter); ok {
		m.land(ch, 0)
		return
	}
	if book, ch, ok := m.scanForward(0); ok {
		m.loc.Book = book
		m.land(ch, 0)
		return
	}
	m.log.Warn("no chapters available")
	m.loc = DefaultLocation
	m.chapter = bible.Chapter{Book: DefaultLocation.Book, Number: DefaultLocation.Chapter}
}

// Dispatch routes one intent to the surface that owns input and commits the
// result. It never fails; unavailable content leaves the position unchanged.
func (m *Machine) Dispatch(in Intent) Outcome {
	m.status = ""
	before := m.Active()

	var out Outcome
	if in.Kind == Quit {
		m.quit = true
		out.Quit = true
	} else {
		out = m.route(in)
	}

	if m.loc != m.saved || m.Active() != before {
		m.commit()
	}
	return out
}

func (m *Machine) route(in Intent) Outcome {
	for _, s := range modalPriority {
		if m.modal != s {
			continue
		}
		if !s.Accepts(in.Kind) {
			return Outcome{}
		}
		switch s {
		case LocationPicker:
			m.pickerIntent(in)
		case ThemePicker:
			m.themeIntent(in)
		case Settings:
			m.settingsIntent(in)
		case Help:
			m.helpIntent(in)
		}
		return Outcome{}
	}

	if !m.base.Accepts(in.Kind) {
		return Outcome{}
	}
	switch m.base {
	case Search:
		m.searchIntent(in)
	case Bookmarks:
		m.bookmarksIntent(in)
	default:
		return m.readerIntent(in)
	}
	return Outcome{}
}

func (m *Machine) readerIntent(in Intent) Outcome {
	switch in.Kind {
	case Advance:
		m.advance()
	case Retreat:
		m.retreat()
	case PageForward:
		m.moveWithin(m.loc.VerseIndex + m.pageSize())
	case PageBack:
		m.moveWithin(m.loc.VerseIndex - m.pageSize())
	case JumpStart:
		m.moveWithin(0)
	case JumpEnd:
		m.moveWithin(m.chapter.Len() - 1)
	case NextChapter:
		m.nextChapter()
	case PrevChapter:
		m.prevChapter()
	case NextBook:
		m.nextBook()
	case PrevBook:
		m.prevBook()
	case OpenSearch:
		m.base = Search
		m.search.selection = 0
	case OpenBookmarks:
		m.base = Bookmarks
		m.bookmarkSel = clamp(m.bookmarkSel, m.ctx.Bookmarks.Len())
	case OpenPicker:
		m.picker = Picker{}
		m.modal = LocationPicker
	case OpenSettings:
		m.settingsSel = 0
		m.modal = Settings
	case OpenThemePicker:
		m.openThemes(NoSurface)
	case OpenHelp:
		m.helpScroll = 0
		m.modal = Help
	case ToggleBookmark:
		m.toggleBookmark()
	case ToggleInputMode:
		m.toggleInputMode()
	case ToggleFocusMode:
		m.toggleFocusMode()
	case SearchNext:
		m.cycleSearch(1)
	case SearchPrev:
		m.cycleSearch(-1)
	case Yank:
		return m.yank()
	}
	return Outcome{}
}

func (m *Machine) commit() {
	book, chapter := m.loc.Book, m.loc.Chapter
	st := config.State{Book: &book, Chapter: &chapter, VerseIndex: m.loc.VerseIndex}
	if m.ctx.Persist == nil {
		m.saved = m.loc
		return
	}
	if err := m.ctx.Persist.SaveState(st); err != nil {
		m.log.Warn("saving reading position", "error", err)
		return
	}
	m.saved = m.loc
}

// Shutdown flushes the reading position, settings and bookmarks. Failures
// are logged and returned joined; the caller has no further use for them.
func (m *Machine) Shutdown() error {
	if m.ctx.Persist == nil {
		return nil
	}
	book, chapter := m.loc.Book, m.loc.Chapter
	st := config.State{Book: &book, Chapter: &chapter, VerseIndex: m.loc.VerseIndex}

	var errs []error
	if err := m.ctx.Persist.SaveState(st); err != nil {
		errs = append(errs, err)
	}
	if err := m.ctx.Persist.SaveSettings(*m.ctx.Settings); err != nil {
		errs = append(errs, err)
	}
	if err := m.ctx.Persist.SaveBookmarks(m.ctx.Bookmarks); err != nil {
		errs = append(errs, err)
	}
	err := errors.Join(errs...)
	if err != nil {
		m.log.Warn("flushing on shutdown", "error", err)
	}
	return err
}

func (m *Machine) saveSettings() {
	if m.ctx.Persist == nil {
		return
	}
	if err := m.ctx.Persist.SaveSettings(*m.ctx.Settings); err != nil {
		m.log.Warn("saving settings", "error", err)
		m.status = "Could not save settings"
	}
}

func (m *Machine) saveBookmarks() {
	if m.ctx.Persist == nil {
		return
	}
	if err := m.ctx.Persist.SaveBookmarks(m.ctx.Bookmarks); err != nil {
		m.log.Warn("saving bookmarks", "error", err)
		m.status = "Could not save bookmarks"
	}
}

func (m *Machine) toggleInputMode() {
	m.ctx.Settings.ToggleInputMode()
	m.saveSettings()
	if m.status == "" {
		m.status = fmt.Sprintf("Input mode: %s", m.ctx.Settings.InputMode)
	}
}

func (m *Machine) toggleFocusMode() {
	s := m.ctx.Settings
	s.FocusMode = !s.FocusMode
	m.saveSettings()
	if m.status == "" {
		m.status = "Focus mode " + onOff(s.FocusMode)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *Machine) toggleBookmark() {
	v, ok := m.CurrentVerse()
	if !ok {
		return
	}
	on := m.ctx.Bookmarks.Toggle(v.Reference)
	if on {
		m.status = "Bookmarked " + v.Reference.String()
	} else {
		m.status = "Removed bookmark " + v.Reference.String()
	}
	m.saveBookmarks()
}

func (m *Machine) yank() Outcome {
	v, ok := m.CurrentVerse()
	if !ok {
		return Outcome{}
	}
	m.status = "Copied " + v.Reference.String()
	return Outcome{Clipboard: v.Reference.String() + " " + v.Text}
}

// Active returns the surface that currently owns input.
func (m *Machine) Active() Surface {
	if m.modal != NoSurface {
		return m.modal
	}
	return m.base
}

// Base returns the non-modal view beneath any overlay.
func (m *Machine) Base() Surface { return m.base }

// Location returns the current location.
func (m *Machine) Location() Location { return m.loc }

// Chapter returns the loaded chapter.
func (m *Machine) Chapter() bible.Chapter { return m.chapter }

// Offset returns the first visible verse index.
func (m *Machine) Offset() int { return m.offset }

// ViewportHeight returns the number of verse rows the viewport shows.
func (m *Machine) ViewportHeight() int { return m.height }

// Status returns the message produced by the last intent, if any.
func (m *Machine) Status() string { return m.status }

// Quitting reports whether a Quit intent was received.
func (m *Machine) Quitting() bool { return m.quit }

// Settings returns the live settings.
func (m *Machine) Settings() config.Settings { return *m.ctx.Settings }

// Bookmarks returns the bookmark list.
func (m *Machine) Bookmarks() []config.Bookmark { return m.ctx.Bookmarks.Items }

// BookmarkSelection returns the selected row of the bookmarks list.
func (m *Machine) BookmarkSelection() int { return clamp(m.bookmarkSel, m.ctx.Bookmarks.Len()) }

// Index returns the book index.
func (m *Machine) Index() *bible.Index { return m.ctx.Index }

// CurrentVerse returns the verse under the cursor.
func (m *Machine) CurrentVerse() (bible.Verse, bool) {
	if m.loc.VerseIndex < 0 || m.loc.VerseIndex >= m.chapter.Len() {
		return bible.Verse{}, false
	}
	return m.chapter.Verses[m.loc.VerseIndex], true
}

// CurrentBook returns the index entry of the current book.
func (m *Machine) CurrentBook() bible.Book {
	b, _ := m.ctx.Index.Get(m.loc.Book)
	return b
}

// Goto moves to ref, loading its chapter. A zero verse lands on the first
// verse; a verse missing from the chapter lands on the nearest one before it.
func (m *Machine) Goto(ref bible.Reference) error {
	if err := m.goTo(ref); err != nil {
		return err
	}
	if m.loc != m.saved {
		m.commit()
	}
	return nil
}

func (m *Machine) goTo(ref bible.Reference) error {
	ch, ok := m.load(ref.Book, ref.Chapter)
	if !ok {
		return fmt.Errorf("%s %d: %w", ref.Book, ref.Chapter, bible.ErrNotFound)
	}
	idx := 0
	if ref.Verse > 0 {
		idx = ch.IndexOfVerse(ref.Verse)
		if idx < 0 {
			idx = 0
			for i, v := range ch.Verses {
				if v.Verse <= ref.Verse {
					idx = i
				}
			}
		}
	}
	m.land(ch, idx)
	return nil
}

func (m *Machine) pageSize() int {
	if m.ctx.Settings.PageSize < 1 {
		return 10
	}
	return m.ctx.Settings.PageSize
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
