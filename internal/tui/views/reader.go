// Package views renders the surfaces of the reader. Renderers are read-only:
// they take the navigation machine and draw its current state.
package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/f3rmion/biblios/internal/bible"
	"github.com/f3rmion/biblios/internal/nav"
)

const (
	cursorMark   = "▌"
	bookmarkMark = "◆"
)

// ReaderHeader renders the title line of the reader.
func ReaderHeader(m *nav.Machine, st Styles, translation string) string {
	loc := m.Location()
	book := m.CurrentBook()
	name := book.Name
	if name == "" {
		name = loc.Book
	}

	title := st.Title.Render(fmt.Sprintf("%s %d", name, loc.Chapter))
	var parts []string
	if v, ok := m.CurrentVerse(); ok {
		parts = append(parts, fmt.Sprintf("verse %d of %d", v.Verse, m.Chapter().Len()))
	}
	if book.Testament != "" {
		parts = append(parts, book.Testament.Label())
	}
	if translation != "" {
		parts = append(parts, translation)
	}
	return title + st.Subtitle.Render(strings.Join(parts, " · "))
}

// Reader renders the visible verses of the current chapter within width by
// height cells. The verse under the cursor is always drawn.
func Reader(m *nav.Machine, st Styles, width, height int) string {
	ch := m.Chapter()
	if ch.Len() == 0 {
		return st.Muted.Render("No text available. Import a translation with 'biblios import <file>'.")
	}

	settings := m.Settings()
	loc := m.Location()
	marked := bookmarkedVerses(m, ch)

	numWidth := 0
	if settings.ShowVerseNumbers {
		numWidth = len(strconv.Itoa(ch.Verses[ch.Len()-1].Verse))
	}

	type block struct {
		index int
		lines []string
	}
	var blocks []block
	first := m.Offset()
	last := min(first+m.ViewportHeight(), ch.Len())
	for i := first; i < last; i++ {
		lines := verseLines(st, ch.Verses[i], i == loc.VerseIndex, marked[i], numWidth, width)
		if settings.VerseSpacing && i < last-1 {
			lines = append(lines, "")
		}
		blocks = append(blocks, block{index: i, lines: lines})
	}

	total := 0
	for _, b := range blocks {
		total += len(b.lines)
	}
	for total > height && len(blocks) > 1 && blocks[0].index < loc.VerseIndex {
		total -= len(blocks[0].lines)
		blocks = blocks[1:]
	}

	var out []string
	for _, b := range blocks {
		out = append(out, b.lines...)
	}
	if height > 0 && len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

func bookmarkedVerses(m *nav.Machine, ch bible.Chapter) map[int]bool {
	marked := make(map[int]bool)
	for _, b := range m.Bookmarks() {
		if b.Book == ch.Book && b.Chapter == ch.Number {
			if i := ch.IndexOfVerse(b.Verse); i >= 0 {
				marked[i] = true
			}
		}
	}
	return marked
}

func verseLines(st Styles, v bible.Verse, active, marked bool, numWidth, width int) []string {
	gutter := " "
	switch {
	case active:
		gutter = st.Cursor.Render(cursorMark)
	case marked:
		gutter = st.Bookmark.Render(bookmarkMark)
	}

	prefix := ""
	if numWidth > 0 {
		prefix = fmt.Sprintf("%*d ", numWidth, v.Verse)
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	textWidth := max(width-runewidth.StringWidth(prefix)-2, 10)

	textStyle := st.Verse
	if active {
		textStyle = st.VerseActive
	}
	numStyle := st.VerseNumber
	if marked {
		numStyle = st.Bookmark
	}

	wrapped := strings.Split(wordwrap.String(v.Text, textWidth), "\n")
	lines := make([]string, 0, len(wrapped))
	for i, text := range wrapped {
		text = runewidth.Truncate(text, textWidth, "…")
		lead := indent
		if i == 0 {
			lead = numStyle.Render(prefix)
		}
		mark := " "
		if i == 0 || active {
			mark = gutter
		}
		lines = append(lines, mark+" "+lead+textStyle.Render(text))
	}
	return lines
}

// window returns the [start, end) range of size items around sel.
func window(sel, n, size int) (int, int) {
	if size <= 0 || n <= size {
		return 0, n
	}
	start := max(0, min(sel-size/2, n-size))
	return start, start + size
}
