package nav

import (
	"github.com/f3rmion/biblios/internal/bible"
)

// load fetches a chapter. Chapters outside the book's range, provider
// errors and empty chapters all count as unavailable.
func (m *Machine) load(book string, chapter int) (bible.Chapter, bool) {
	b, ok := m.ctx.Index.Get(book)
	if !ok || chapter < 1 || chapter > b.Chapters || m.ctx.Provider == nil {
		return bible.Chapter{}, false
	}
	ch, err := m.ctx.Provider.LoadChapter(book, chapter)
	if err != nil {
		m.log.Debug("chapter unavailable", "book", book, "chapter", chapter, "error", err)
		return bible.Chapter{}, false
	}
	if ch.Len() == 0 {
		m.log.Debug("chapter empty", "book", book, "chapter", chapter)
		return bible.Chapter{}, false
	}
	ch.Book, ch.Number = book, chapter
	return ch, true
}

// land replaces the loaded chapter and puts the cursor on idx with the
// viewport reset to the top.
func (m *Machine) land(ch bible.Chapter, idx int) {
	m.chapter = ch
	m.loc = Location{Book: ch.Book, Chapter: ch.Number, VerseIndex: clamp(idx, ch.Len())}
	m.offset = 0
	m.follow()
}

// landEnd replaces the loaded chapter and puts the cursor on its last verse
// with the tail of the chapter in view.
func (m *Machine) landEnd(ch bible.Chapter) {
	m.chapter = ch
	m.loc = Location{Book: ch.Book, Chapter: ch.Number, VerseIndex: ch.Len() - 1}
	m.offset = max(0, ch.Len()-m.height)
	m.follow()
}

func (m *Machine) advance() {
	if m.loc.VerseIndex+1 < m.chapter.Len() {
		m.loc.VerseIndex++
		m.follow()
		return
	}
	if ch, ok := m.load(m.loc.Book, m.loc.Chapter+1); ok {
		m.land(ch, 0)
		return
	}
	m.advanceBook()
}

func (m *Machine) advanceBook() {
	pos := m.ctx.Index.Position(m.loc.Book)
	if pos < 0 {
		return
	}
	if _, ch, ok := m.scanForward(pos + 1); ok {
		m.land(ch, 0)
		return
	}
	m.status = "End of the document"
}

func (m *Machine) retreat() {
	if m.loc.VerseIndex > 0 && m.chapter.Len() > 0 {
		m.loc.VerseIndex--
		m.follow()
		return
	}
	if ch, ok := m.before(m.loc.Book, m.loc.Chapter); ok {
		m.landEnd(ch)
		return
	}
	m.status = "Start of the document"
}

func (m *Machine) nextChapter() {
	if ch, ok := m.load(m.loc.Book, m.loc.Chapter+1); ok {
		m.land(ch, 0)
		return
	}
	m.advanceBook()
}

func (m *Machine) prevChapter() {
	if ch, ok := m.before(m.loc.Book, m.loc.Chapter); ok {
		m.land(ch, 0)
		return
	}
	m.status = "Start of the document"
}

// nextBook lands on the first verse of the next book that has a loadable
// chapter.
func (m *Machine) nextBook() {
	pos := m.ctx.Index.Position(m.loc.Book)
	if pos < 0 {
		return
	}
	if _, ch, ok := m.scanForward(pos + 1); ok {
		m.land(ch, 0)
		return
	}
	m.status = "Last book"
}

// prevBook lands on the first verse of the previous book that has a
// loadable chapter.
func (m *Machine) prevBook() {
	pos := m.ctx.Index.Position(m.loc.Book)
	if pos < 0 {
		return
	}
	for i := pos - 1; i >= 0; i-- {
		if ch, ok := m.firstChapter(i); ok {
			m.land(ch, 0)
			return
		}
	}
	m.status = "First book"
}

// firstChapter returns the first loadable chapter of the book at pos.
func (m *Machine) firstChapter(pos int) (bible.Chapter, bool) {
	b, ok := m.ctx.Index.At(pos)
	if !ok {
		return bible.Chapter{}, false
	}
	for c := 1; c <= b.Chapters; c++ {
		if ch, ok := m.load(b.ID, c); ok {
			return ch, true
		}
	}
	return bible.Chapter{}, false
}

// before returns the nearest loadable chapter preceding chapter in reading
// order: earlier chapters of book first, then earlier books.
func (m *Machine) before(book string, chapter int) (bible.Chapter, bool) {
	for c := chapter - 1; c >= 1; c-- {
		if ch, ok := m.load(book, c); ok {
			return ch, true
		}
	}
	pos := m.ctx.Index.Position(book)
	if pos < 0 {
		return bible.Chapter{}, false
	}
	return m.scanBackward(pos - 1)
}

// scanForward returns the first loadable chapter at or after the start of
// the book at position from.
func (m *Machine) scanForward(from int) (string, bible.Chapter, bool) {
	for i := from; i < m.ctx.Index.Len(); i++ {
		if ch, ok := m.firstChapter(i); ok {
			return ch.Book, ch, true
		}
	}
	return "", bible.Chapter{}, false
}

// scanBackward returns the last loadable chapter at or before the end of the
// book at position from.
func (m *Machine) scanBackward(from int) (bible.Chapter, bool) {
	for i := from; i >= 0; i-- {
		b, _ := m.ctx.Index.At(i)
		for c := b.Chapters; c >= 1; c-- {
			if ch, ok := m.load(b.ID, c); ok {
				return ch, true
			}
		}
	}
	return bible.Chapter{}, false
}

// moveWithin moves the cursor inside the loaded chapter, clamped to its
// bounds. It never crosses into another chapter.
func (m *Machine) moveWithin(idx int) {
	if m.chapter.Len() == 0 {
		return
	}
	m.loc.VerseIndex = clamp(idx, m.chapter.Len())
	m.follow()
}

// follow scrolls the viewport just enough to show the cursor.
func (m *Machine) follow() {
	m.offset = Follow(m.loc.VerseIndex, m.offset, m.height)
}

// Follow returns the viewport offset that keeps index visible in a viewport
// of height rows starting at offset, moving it as little as possible.
func Follow(index, offset, height int) int {
	if height < 1 {
		height = 1
	}
	if offset < 0 {
		offset = 0
	}
	switch {
	case index < offset:
		return index
	case index >= offset+height:
		return index - (height - 1)
	}
	return offset
}

// SetViewportHeight sets the number of verse rows visible and re-applies
// viewport follow.
func (m *Machine) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	m.height = h
	m.follow()
}
