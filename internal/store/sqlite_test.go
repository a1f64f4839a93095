package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/f3rmion/biblios/internal/bible"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bible.db"), bible.Canonical())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

const sampleJSON = `{
  "translation": {"id": "TST", "name": "Test Translation", "abbreviation": "TST", "language": "en"},
  "books": [
    {"name": "Genesis", "chapters": [["In the beginning God created the heaven and the earth.", "And the earth was without form."]]},
    {"name": "John", "chapters": [["In the beginning was the Word."], ["And the third day there was a marriage."]]}
  ]
}`

const sampleOSIS = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
  <osisText osisIDWork="OSS" xml:lang="en">
    <header>
      <work osisWork="OSS"><title>OSIS Sample</title></work>
    </header>
    <div type="book" osisID="Ps">
      <chapter osisID="Ps.23">
        <verse osisID="Ps.23.1">The LORD is my shepherd;
          I shall not want.</verse>
        <verse osisID="Ps.23.2">He maketh me to lie down in green pastures.</verse>
      </chapter>
    </div>
  </osisText>
</osis>`

func TestSeedSample(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	wrote, err := s.SeedSample(ctx)
	if err != nil || !wrote {
		t.Fatalf("SeedSample = %v, %v", wrote, err)
	}
	if wrote, _ := s.SeedSample(ctx); wrote {
		t.Error("second SeedSample should be a no-op")
	}

	ch, err := s.LoadChapter("John", 1)
	if err != nil {
		t.Fatalf("LoadChapter: %v", err)
	}
	if ch.Len() != 5 || ch.Verses[0].Verse != 1 || ch.Verses[4].Verse != 5 {
		t.Errorf("unexpected chapter: %+v", ch)
	}

	ch3, err := s.LoadChapter("John", 3)
	if err != nil {
		t.Fatalf("LoadChapter: %v", err)
	}
	if ch3.IndexOfVerse(16) != 0 {
		t.Errorf("John 3 should start at verse 16")
	}

	tr, err := s.Translation()
	if err != nil || tr.ID != "KJV" {
		t.Errorf("Translation = %+v, %v", tr, err)
	}
}

func TestLoadChapterNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadChapter("John", 2); !errors.Is(err, bible.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Translation(); !errors.Is(err, bible.ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty translations, got %v", err)
	}
	if _, err := s.LoadVerse(bible.Reference{Book: "John", Chapter: 3, Verse: 16}); !errors.Is(err, bible.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing verse, got %v", err)
	}
}

func TestImportJSON(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	res, err := s.Import(ctx, "test.json", FormatJSON, []byte(sampleJSON))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Verses != 4 || res.Translation.ID != "TST" || res.Checksum == "" {
		t.Errorf("unexpected result: %+v", res)
	}

	v, err := s.LoadVerse(bible.Reference{Book: "Gen", Chapter: 1, Verse: 2})
	if err != nil {
		t.Fatalf("LoadVerse: %v", err)
	}
	if v.Text != "And the earth was without form." {
		t.Errorf("unexpected text: %q", v.Text)
	}

	if _, err := s.Import(ctx, "again.json", FormatJSON, []byte(sampleJSON)); !errors.Is(err, ErrAlreadyImported) {
		t.Errorf("expected ErrAlreadyImported, got %v", err)
	}
}

func TestImportJSONUnknownBook(t *testing.T) {
	s := openTestStore(t)
	data := `{"translation": {"id": "X"}, "books": [{"name": "Hezekiah", "chapters": [["text"]]}]}`

	if _, err := s.Import(context.Background(), "bad.json", FormatJSON, []byte(data)); err == nil {
		t.Fatal("expected error for unknown book")
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("failed import should store nothing, found %d verses", n)
	}
}

func TestImportOSIS(t *testing.T) {
	s := openTestStore(t)

	res, err := s.Import(context.Background(), "ps.xml", FormatOSIS, []byte(sampleOSIS))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Translation.ID != "OSS" || res.Translation.Name != "OSIS Sample" {
		t.Errorf("unexpected translation: %+v", res.Translation)
	}

	ch, err := s.LoadChapter("Ps", 23)
	if err != nil {
		t.Fatalf("LoadChapter: %v", err)
	}
	if ch.Len() != 2 {
		t.Fatalf("expected 2 verses, got %d", ch.Len())
	}
	if ch.Verses[0].Text != "The LORD is my shepherd; I shall not want." {
		t.Errorf("whitespace should be collapsed, got %q", ch.Verses[0].Text)
	}
}

func TestImportFileXZ(t *testing.T) {
	s := openTestStore(t)

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(sampleJSON)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "test.json.xz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := s.ImportFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if res.Verses != 4 {
		t.Errorf("expected 4 verses, got %d", res.Verses)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"kjv.json", FormatJSON, true},
		{"KJV.JSON.XZ", FormatJSON, true},
		{"web.xml", FormatOSIS, true},
		{"web.osis.xz", FormatOSIS, true},
		{"notes.txt", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if (err == nil) != tt.ok {
				t.Fatalf("DetectFormat(%q) err = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if _, err := s.Import(ctx, "test.json", FormatJSON, []byte(sampleJSON)); err != nil {
		t.Fatal(err)
	}

	got, err := s.Search("beginning", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Book != "Gen" || got[1].Book != "John" {
		t.Errorf("results should follow canonical order, got %s then %s", got[0].Book, got[1].Book)
	}

	if limited, _ := s.Search("beginning", 1); len(limited) != 1 {
		t.Errorf("limit not applied: %d results", len(limited))
	}
	if none, _ := s.Search("", 10); len(none) != 0 {
		t.Errorf("empty query should return nothing")
	}
}

func TestSearchRanking(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Import(context.Background(), "test.json", FormatJSON, []byte(sampleJSON)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		// "earth." in Gen 1:1 is not a whole-word match.
		{"whole word first", "earth", []string{"Gen 1:2", "Gen 1:1"}},
		{"case insensitive", "EARTH", []string{"Gen 1:2", "Gen 1:1"}},
		{"reference", "John 2", []string{"John 2:1"}},
		{"reference prefix", "john", []string{"John 1:1", "John 2:1"}},
		{"underscore is literal", "_n", nil},
		{"percent is literal", "%", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(tt.query, 10)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			var refs []string
			for _, v := range got {
				refs = append(refs, v.Reference.String())
			}
			if strings.Join(refs, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Search(%q) = %v, want %v", tt.query, refs, tt.want)
			}
		})
	}
}
