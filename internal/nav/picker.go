package nav

import (
	"fmt"

	"github.com/f3rmion/biblios/internal/bible"
)

// PickerStep is a step of the location picker.
type PickerStep int

const (
	StepBook PickerStep = iota
	StepChapter
	StepVerse
)

func (s PickerStep) String() string {
	switch s {
	case StepChapter:
		return "chapter"
	case StepVerse:
		return "verse"
	default:
		return "book"
	}
}

// placeholderVerses is the verse count offered when the chosen chapter
// could not be loaded.
const placeholderVerses = 50

// Picker is the state of the three-step location picker. The zero value is
// the initial Book step with an empty filter.
type Picker struct {
	Step          PickerStep
	Filter        string
	Selection     int
	ChosenBook    string // empty until a book is confirmed
	ChosenChapter int    // 0 until a chapter is confirmed

	chapter bible.Chapter
	loaded  bool
}

// Candidates returns the books matching the filter at the Book step.
func (p *Picker) Candidates(idx *bible.Index) []bible.Book {
	return idx.Filter(p.Filter)
}

// Count returns the number of candidates at the current step.
func (p *Picker) Count(idx *bible.Index) int {
	switch p.Step {
	case StepChapter:
		b, _ := idx.Get(p.ChosenBook)
		return b.Chapters
	case StepVerse:
		if p.loaded {
			return p.chapter.Len()
		}
		return placeholderVerses
	default:
		return len(p.Candidates(idx))
	}
}

// VerseLoaded reports whether the chapter chosen at the Chapter step was
// loaded, and returns it.
func (p *Picker) VerseLoaded() (bible.Chapter, bool) {
	return p.chapter, p.loaded
}

// Picker returns a copy of the picker state with the selection clamped to
// the current candidate count.
func (m *Machine) Picker() Picker {
	p := m.picker
	p.Selection = clamp(p.Selection, p.Count(m.ctx.Index))
	return p
}

func (m *Machine) pickerIntent(in Intent) {
	p := &m.picker
	n := p.Count(m.ctx.Index)
	p.Selection = clamp(p.Selection, n)

	switch in.Kind {
	case Char:
		if p.Step == StepBook {
			p.Filter += string(in.Rune)
			p.Selection = 0
		}
	case Backspace:
		if p.Step == StepBook && p.Filter != "" {
			r := []rune(p.Filter)
			p.Filter = string(r[:len(r)-1])
			p.Selection = 0
		}
	case Advance:
		p.Selection = clamp(p.Selection+1, n)
	case Retreat:
		p.Selection = clamp(p.Selection-1, n)
	case Digit:
		if in.Digit >= 1 && in.Digit <= 9 {
			p.Selection = clamp(in.Digit-1, n)
		}
	case Confirm:
		m.pickerConfirm(n)
	case Cancel:
		m.pickerBack()
	}
}

func (m *Machine) pickerConfirm(n int) {
	p := &m.picker
	if n == 0 {
		return
	}
	switch p.Step {
	case StepBook:
		cands := p.Candidates(m.ctx.Index)
		p.ChosenBook = cands[p.Selection].ID
		p.Filter = ""
		p.Step = StepChapter
		p.Selection = 0
	case StepChapter:
		p.ChosenChapter = p.Selection + 1
		p.chapter, p.loaded = m.load(p.ChosenBook, p.ChosenChapter)
		p.Step = StepVerse
		p.Selection = 0
	case StepVerse:
		ch, ok := p.chapter, p.loaded
		if !ok {
			ch, ok = m.load(p.ChosenBook, p.ChosenChapter)
		}
		if !ok {
			m.status = fmt.Sprintf("%s %d unavailable", p.ChosenBook, p.ChosenChapter)
		} else {
			m.land(ch, p.Selection)
		}
		m.closePicker()
	}
}

func (m *Machine) pickerBack() {
	p := &m.picker
	switch p.Step {
	case StepBook:
		m.closePicker()
	case StepChapter:
		p.Step = StepBook
		p.ChosenBook = ""
		p.Selection = 0
	case StepVerse:
		p.Step = StepChapter
		p.ChosenChapter = 0
		p.Selection = 0
		p.chapter, p.loaded = bible.Chapter{}, false
	}
}

func (m *Machine) closePicker() {
	m.picker = Picker{}
	m.modal = NoSurface
}
