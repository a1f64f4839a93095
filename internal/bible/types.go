// Package bible provides the document model for Biblios: the canonical book
// catalog, verses, chapters and references.
package bible

import (
	"errors"
	"fmt"
)

// Errors returned by document providers.
var (
	// ErrNotFound means the requested book or chapter does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyChapter means the chapter exists but holds no verses.
	ErrEmptyChapter = errors.New("chapter has no verses")
)

// Testament classifies a book.
type Testament string

const (
	OldTestament Testament = "old"
	NewTestament Testament = "new"
)

// Label returns the display name of the testament.
func (t Testament) Label() string {
	switch t {
	case OldTestament:
		return "Old Testament"
	case NewTestament:
		return "New Testament"
	default:
		return string(t)
	}
}

// Book is one entry of the document index.
type Book struct {
	ID        string    `yaml:"id" json:"id"`               // Short identifier (e.g., "Gen", "1John")
	Name      string    `yaml:"name" json:"name"`           // Long name (e.g., "Genesis", "1 John")
	Testament Testament `yaml:"testament" json:"testament"` // old or new
	Chapters  int       `yaml:"chapters" json:"chapters"`   // Number of chapters
}

// Reference identifies a single verse.
type Reference struct {
	Book    string `yaml:"book" json:"book"`
	Chapter int    `yaml:"chapter" json:"chapter"`
	Verse   int    `yaml:"verse" json:"verse"`
}

// String formats the reference as "Book C:V".
func (r Reference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Verse is a single verse with its text.
type Verse struct {
	Reference `json:"reference"`
	Text      string `json:"text"`
}

// Chapter is the ordered verse sequence of one chapter.
type Chapter struct {
	Book   string  `json:"book"`
	Number int     `json:"number"`
	Verses []Verse `json:"verses"`
}

// Len returns the number of verses in the chapter.
func (c Chapter) Len() int {
	return len(c.Verses)
}

// IndexOfVerse returns the position of the verse numbered n, or -1.
func (c Chapter) IndexOfVerse(n int) int {
	for i, v := range c.Verses {
		if v.Reference.Verse == n {
			return i
		}
	}
	return -1
}

// Translation holds metadata about a loaded translation.
type Translation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Language     string `json:"language"`
	Description  string `json:"description"`
}
