package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"

	"github.com/f3rmion/biblios/internal/bible"
)

// Bookmark is a saved location.
type Bookmark struct {
	ID        string    `yaml:"id"`
	Book      string    `yaml:"book"`
	Chapter   int       `yaml:"chapter"`
	Verse     int       `yaml:"verse"`
	Note      string    `yaml:"note,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Reference returns the bookmarked verse reference.
func (b Bookmark) Reference() bible.Reference {
	return bible.Reference{Book: b.Book, Chapter: b.Chapter, Verse: b.Verse}
}

// Bookmarks is the ordered list of saved locations.
type Bookmarks struct {
	Items []Bookmark `yaml:"bookmarks"`
}

// Len returns the number of bookmarks.
func (b *Bookmarks) Len() int {
	return len(b.Items)
}

// Find returns the position of the bookmark for ref, or -1.
func (b *Bookmarks) Find(ref bible.Reference) int {
	for i, bm := range b.Items {
		if bm.Reference() == ref {
			return i
		}
	}
	return -1
}

// Has reports whether ref is bookmarked.
func (b *Bookmarks) Has(ref bible.Reference) bool {
	return b.Find(ref) >= 0
}

// Add bookmarks ref. Adding an existing reference returns the existing entry.
func (b *Bookmarks) Add(ref bible.Reference, note string) Bookmark {
	if i := b.Find(ref); i >= 0 {
		return b.Items[i]
	}
	bm := Bookmark{
		ID:        uuid.NewString(),
		Book:      ref.Book,
		Chapter:   ref.Chapter,
		Verse:     ref.Verse,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	b.Items = append(b.Items, bm)
	return bm
}

// Toggle adds ref if absent and removes it otherwise. It reports whether ref
// is bookmarked afterwards.
func (b *Bookmarks) Toggle(ref bible.Reference) bool {
	if i := b.Find(ref); i >= 0 {
		b.RemoveAt(i)
		return false
	}
	b.Add(ref, "")
	return true
}

// RemoveAt deletes the bookmark at position i.
func (b *Bookmarks) RemoveAt(i int) bool {
	if i < 0 || i >= len(b.Items) {
		return false
	}
	b.Items = append(b.Items[:i], b.Items[i+1:]...)
	return true
}

// LoadBookmarks loads bookmarks from a YAML file. A missing file yields an
// empty list.
func LoadBookmarks(path string) (*Bookmarks, error) {
	var b Bookmarks
	if err := readYAML(path, &b); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Bookmarks{}, nil
		}
		return &Bookmarks{}, fmt.Errorf("loading bookmarks: %w", err)
	}
	for i := range b.Items {
		if b.Items[i].ID == "" {
			b.Items[i].ID = uuid.NewString()
		}
	}
	return &b, nil
}

// SaveBookmarks saves bookmarks to a YAML file.
func SaveBookmarks(path string, b *Bookmarks) error {
	if err := writeYAML(path, b); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}
	return nil
}
