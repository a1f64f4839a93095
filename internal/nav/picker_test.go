package nav

import (
	"strings"
	"testing"
)

func TestPickerScenario(t *testing.T) {
	h := newHarness(t, fixtureCounts(), Location{"Gen", 1, 0})

	h.send(OpenPicker)
	if h.m.Active() != LocationPicker {
		t.Fatalf("active = %s, want picker", h.m.Active())
	}
	h.m.Dispatch(CharOf('j'))
	h.m.Dispatch(CharOf('o'))

	p := h.m.Picker()
	cands := p.Candidates(h.ctx.Index)
	if len(cands) == 0 || cands[p.Selection].ID != "John" {
		t.Fatalf("candidate 0 = %v, want John", cands)
	}
	h.send(Confirm)

	p = h.m.Picker()
	if p.Step != StepChapter || p.ChosenBook != "John" || p.Filter != "" || p.Selection != 0 {
		t.Fatalf("after book confirm: %+v", p)
	}
	h.m.Dispatch(DigitOf(3))
	h.send(Confirm)

	p = h.m.Picker()
	if p.Step != StepVerse || p.ChosenChapter != 3 {
		t.Fatalf("after chapter confirm: %+v", p)
	}
	if n := p.Count(h.ctx.Index); n != 21 {
		t.Errorf("verse count = %d, want 21", n)
	}
	h.m.Dispatch(DigitOf(9))
	for i := 0; i < 7; i++ {
		h.send(Advance)
	}
	h.send(Confirm)

	if got := h.m.Location(); got != (Location{"John", 3, 15}) {
		t.Errorf("location = %+v, want John 3 index 15", got)
	}
	if h.m.Active() != Reader {
		t.Errorf("active = %s, want reader", h.m.Active())
	}
	p = h.m.Picker()
	if _, loaded := p.VerseLoaded(); p.Step != StepBook || p.Filter != "" || p.Selection != 0 ||
		p.ChosenBook != "" || p.ChosenChapter != 0 || loaded {
		t.Errorf("picker not cleared: %+v", p)
	}
	if h.m.Offset() != 6 {
		t.Errorf("offset = %d, want 6 after follow", h.m.Offset())
	}
}

func TestPickerFilter(t *testing.T) {
	h := newHarness(t, fixtureCounts(), Location{"Gen", 1, 0})
	h.send(OpenPicker)

	p := h.m.Picker()
	all := p.Candidates(h.ctx.Index)
	books := h.ctx.Index.Books()
	if len(all) != len(books) {
		t.Fatalf("empty filter: %d candidates, want %d", len(all), len(books))
	}
	for i := range all {
		if all[i].ID != books[i].ID {
			t.Errorf("empty filter reordered: %s at %d", all[i].ID, i)
		}
	}

	h.send(Advance, Advance, Advance)
	if got := h.m.Picker().Selection; got != 3 {
		t.Fatalf("selection = %d, want 3", got)
	}
	h.m.Dispatch(CharOf('E'))
	p = h.m.Picker()
	if p.Selection != 0 {
		t.Errorf("typing should reset selection, got %d", p.Selection)
	}
	for _, b := range p.Candidates(h.ctx.Index) {
		if !strings.Contains(strings.ToLower(b.ID), "e") && !strings.Contains(strings.ToLower(b.Name), "e") {
			t.Errorf("candidate %s does not match filter", b.ID)
		}
	}

	h.send(Advance, Advance, Advance, Advance)
	if got, n := h.m.Picker().Selection, p.Count(h.ctx.Index); got != n-1 {
		t.Errorf("selection = %d, want clamp to %d", got, n-1)
	}

	h.send(Backspace)
	p = h.m.Picker()
	if p.Filter != "" || p.Selection != 0 {
		t.Errorf("backspace: %+v", p)
	}
	h.send(Backspace)
	if h.m.Active() != LocationPicker {
		t.Error("backspace on empty filter should keep the picker open")
	}
}

func TestPickerDigitJump(t *testing.T) {
	h := newHarness(t, fixtureCounts(), Location{"Gen", 1, 0})
	h.send(OpenPicker)

	h.m.Dispatch(DigitOf(2))
	if got := h.m.Picker().Selection; got != 1 {
		t.Errorf("digit 2 = %d, want 1", got)
	}
	h.m.Dispatch(DigitOf(9))
	if got := h.m.Picker().Selection; got != 3 {
		t.Errorf("digit 9 over 4 books = %d, want 3", got)
	}

	h.m.Dispatch(DigitOf(1))
	h.send(Confirm) // Genesis, 3 chapters
	h.m.Dispatch(DigitOf(7))
	if got := h.m.Picker().Selection; got != 2 {
		t.Errorf("digit 7 over 3 chapters = %d, want 2", got)
	}
	h.m.Dispatch(DigitOf(1))
	if got := h.m.Picker().Selection; got != 0 {
		t.Errorf("digit 1 = %d, want 0", got)
	}
}

func TestPickerFilterWithNoMatches(t *testing.T) {
	h := newHarness(t, fixtureCounts(), Location{"Gen", 1, 0})
	h.send(OpenPicker)
	h.m.Dispatch(CharOf('z'))
	h.m.Dispatch(CharOf('z'))

	h.send(Advance, Confirm)
	p := h.m.Picker()
	if p.Step != StepBook || p.Selection != 0 {
		t.Errorf("confirm with no candidates should do nothing: %+v", p)
	}
}

func TestPickerCancelSteps(t *testing.T) {
	h := newHarness(t, fixtureCounts(), Location{"Gen", 1, 0})
	h.send(OpenPicker)
	h.m.Dispatch(DigitOf(3))
	h.send(Confirm)
	h.m.Dispatch(DigitOf(2))
	h.send(Confirm)
	h.send(Advance)

	h.send(Cancel)
	p := h.m.Picker()
	if p.Step != StepChapter || p.ChosenChapter != 0 || p.ChosenBook != "John" || p.Selection != 0 {
		t.Errorf("cancel at verse step: %+v", p)
	}

	h.send(Cancel)
	p = h.m.Picker()
	if p.Step != StepBook || p.ChosenBook != "" || p.Selection != 0 {
		t.Errorf("cancel at chapter step: %+v", p)
	}

	h.send(Cancel)
	if h.m.Active() != Reader {
		t.Errorf("cancel at book step should close the picker, active = %s", h.m.Active())
	}
	if got := h.m.Location(); got != (Location{"Gen", 1, 0}) {
		t.Errorf("cancelled picker moved location: %+v", got)
	}
}

func TestPickerIgnoresTextOutsideBookStep(t *testing.T) {
	h := newHarness(t, fixtureCounts(), Location{"Gen", 1, 0})
	h.send(OpenPicker, Confirm)

	h.m.Dispatch(CharOf('x'))
	h.send(Backspace)
	p := h.m.Picker()
	if p.Step != StepChapter || p.Filter != "" {
		t.Errorf("chapter step should ignore text: %+v", p)
	}
}

func TestPickerUnavailableChapter(t *testing.T) {
	counts := fixtureCounts()
	counts["Exod"][1] = -1 // Exod 2 missing

	h := newHarness(t, counts, Location{"Gen", 1, 0})
	h.send(OpenPicker)
	h.m.Dispatch(DigitOf(2))
	h.send(Confirm)
	h.m.Dispatch(DigitOf(2))
	h.send(Confirm)

	p := h.m.Picker()
	if p.Step != StepVerse {
		t.Fatalf("failed load should not block the verse step: %+v", p)
	}
	if _, loaded := p.VerseLoaded(); loaded {
		t.Error("chapter should not be loaded")
	}
	if n := p.Count(h.ctx.Index); n != placeholderVerses {
		t.Errorf("count = %d, want placeholder %d", n, placeholderVerses)
	}

	h.send(Confirm)
	if got := h.m.Location(); got != (Location{"Gen", 1, 0}) {
		t.Errorf("location = %+v, want unchanged", got)
	}
	if h.m.Active() != Reader {
		t.Errorf("picker should close, active = %s", h.m.Active())
	}
	if h.m.Status() != "Exod 2 unavailable" {
		t.Errorf("status = %q", h.m.Status())
	}
}
