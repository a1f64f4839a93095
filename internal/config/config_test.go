package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/biblios/internal/bible"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	f := Files{Dir: t.TempDir()}

	s := DefaultSettings()
	s.Theme = "sepia"
	s.ShowVerseNumbers = false
	s.ToggleInputMode()
	if err := f.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := f.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != s {
		t.Errorf("got %+v, want %+v", got, s)
	}
	if got.InputMode != InputVim {
		t.Errorf("input mode = %s, want vim", got.InputMode)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	data := "theme: dark\npage_size: 0\ninput_mode: emacs\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Theme != "dark" {
		t.Errorf("theme = %q, want dark", s.Theme)
	}
	if s.PageSize != 10 || s.SearchLimit != 100 {
		t.Errorf("expected default sizes, got page=%d limit=%d", s.PageSize, s.SearchLimit)
	}
	if s.InputMode != InputNormal {
		t.Errorf("unknown input mode should fall back to normal, got %s", s.InputMode)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if s != DefaultSettings() {
		t.Errorf("expected defaults on error, got %+v", s)
	}
}

func TestStateRoundTrip(t *testing.T) {
	f := Files{Dir: t.TempDir()}

	empty, err := f.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if empty.HasPosition() {
		t.Error("missing state file should have no position")
	}

	book, chapter := "Rom", 8
	if err := f.SaveState(State{Book: &book, Chapter: &chapter, VerseIndex: 27}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	got, err := f.LoadState()
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !got.HasPosition() || *got.Book != "Rom" || *got.Chapter != 8 || got.VerseIndex != 27 {
		t.Errorf("unexpected state: %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on save")
	}
}

func TestBookmarks(t *testing.T) {
	var b Bookmarks
	ref := bible.Reference{Book: "John", Chapter: 3, Verse: 16}

	first := b.Add(ref, "")
	if first.ID == "" {
		t.Fatal("bookmark should get an id")
	}
	if again := b.Add(ref, "dup"); again.ID != first.ID || b.Len() != 1 {
		t.Errorf("adding an existing reference should not duplicate it")
	}
	if !b.Has(ref) {
		t.Error("expected ref to be bookmarked")
	}

	if on := b.Toggle(ref); on || b.Has(ref) {
		t.Error("toggle should remove an existing bookmark")
	}
	if on := b.Toggle(ref); !on || !b.Has(ref) {
		t.Error("toggle should add a missing bookmark")
	}

	if b.RemoveAt(5) {
		t.Error("RemoveAt out of range should fail")
	}
	if !b.RemoveAt(0) || b.Len() != 0 {
		t.Error("RemoveAt(0) should empty the list")
	}
}

func TestBookmarksRoundTrip(t *testing.T) {
	f := Files{Dir: t.TempDir()}

	b := &Bookmarks{}
	b.Add(bible.Reference{Book: "Ps", Chapter: 23, Verse: 1}, "shepherd")
	b.Add(bible.Reference{Book: "Gen", Chapter: 1, Verse: 1}, "")
	if err := f.SaveBookmarks(b); err != nil {
		t.Fatalf("SaveBookmarks: %v", err)
	}

	got, err := f.LoadBookmarks()
	if err != nil {
		t.Fatalf("LoadBookmarks: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", got.Len())
	}
	if got.Items[0].Note != "shepherd" || got.Items[0].ID != b.Items[0].ID {
		t.Errorf("unexpected first bookmark: %+v", got.Items[0])
	}
	if got.Items[1].Reference().String() != "Gen 1:1" {
		t.Errorf("unexpected second bookmark: %s", got.Items[1].Reference())
	}
}

func TestCorruptFilesAreSetAside(t *testing.T) {
	f := Files{Dir: t.TempDir()}
	corrupt := "bookmarks:\n  - {book: John, chapter: 3, verse: 16\n"
	if err := os.WriteFile(f.Path(BookmarksFile), []byte(corrupt), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f.Path(SettingsFile), []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := f.LoadBookmarks()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if b.Len() != 0 {
		t.Errorf("expected empty list, got %d", b.Len())
	}
	if _, err := f.LoadSettings(); err == nil {
		t.Fatal("expected parse error")
	}

	// Saving the fallback must leave the original readable as a backup.
	if err := f.SaveBookmarks(b); err != nil {
		t.Fatalf("SaveBookmarks: %v", err)
	}
	got, err := os.ReadFile(f.Path(BookmarksFile + BackupSuffix))
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(got) != corrupt {
		t.Errorf("backup = %q, want original content", got)
	}
	if _, err := os.Stat(f.Path(SettingsFile + BackupSuffix)); err != nil {
		t.Errorf("settings backup missing: %v", err)
	}
}

func TestMissingFilesAreNotSetAside(t *testing.T) {
	f := Files{Dir: t.TempDir()}
	if _, err := f.LoadBookmarks(); err != nil {
		t.Fatalf("LoadBookmarks: %v", err)
	}
	if _, err := f.LoadSettings(); err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files, got %d", len(entries))
	}
}
