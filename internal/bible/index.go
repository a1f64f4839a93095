package bible

import "strings"

// Index is the ordered, immutable catalog of books.
type Index struct {
	books []Book
	pos   map[string]int
}

// NewIndex builds an index over books in the given order.
func NewIndex(books []Book) *Index {
	idx := &Index{
		books: make([]Book, len(books)),
		pos:   make(map[string]int, len(books)),
	}
	copy(idx.books, books)
	for i, b := range idx.books {
		idx.pos[b.ID] = i
	}
	return idx
}

// Canonical returns the index of the 66-book Protestant canon.
func Canonical() *Index {
	return NewIndex(canon)
}

// Len returns the number of books.
func (x *Index) Len() int {
	return len(x.books)
}

// Books returns a copy of all books in order.
func (x *Index) Books() []Book {
	out := make([]Book, len(x.books))
	copy(out, x.books)
	return out
}

// At returns the book at position i.
func (x *Index) At(i int) (Book, bool) {
	if i < 0 || i >= len(x.books) {
		return Book{}, false
	}
	return x.books[i], true
}

// Get returns the book with the given short identifier.
func (x *Index) Get(id string) (Book, bool) {
	i, ok := x.pos[id]
	if !ok {
		return Book{}, false
	}
	return x.books[i], true
}

// Position returns the position of the book id, or -1.
func (x *Index) Position(id string) int {
	if i, ok := x.pos[id]; ok {
		return i
	}
	return -1
}

// Lookup resolves a short or long name, ignoring case and spaces.
func (x *Index) Lookup(name string) (Book, bool) {
	if b, ok := x.Get(name); ok {
		return b, true
	}
	key := normalizeName(name)
	if key == "" {
		return Book{}, false
	}
	for _, b := range x.books {
		if normalizeName(b.ID) == key || normalizeName(b.Name) == key {
			return b, true
		}
	}
	return Book{}, false
}

// Next returns the book after id.
func (x *Index) Next(id string) (Book, bool) {
	i := x.Position(id)
	if i < 0 {
		return Book{}, false
	}
	return x.At(i + 1)
}

// Prev returns the book before id.
func (x *Index) Prev(id string) (Book, bool) {
	i := x.Position(id)
	if i < 0 {
		return Book{}, false
	}
	return x.At(i - 1)
}

// Filter returns books whose short or long name contains query,
// case-insensitively. An empty query returns every book in order.
func (x *Index) Filter(query string) []Book {
	if query == "" {
		return x.Books()
	}
	q := strings.ToLower(query)
	var out []Book
	for _, b := range x.books {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.ID), q) {
			out = append(out, b)
		}
	}
	return out
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

var canon = []Book{
	// Old Testament
	{"Gen", "Genesis", OldTestament, 50},
	{"Exod", "Exodus", OldTestament, 40},
	{"Lev", "Leviticus", OldTestament, 27},
	{"Num", "Numbers", OldTestament, 36},
	{"Deut", "Deuteronomy", OldTestament, 34},
	{"Josh", "Joshua", OldTestament, 24},
	{"Judg", "Judges", OldTestament, 21},
	{"Ruth", "Ruth", OldTestament, 4},
	{"1Sam", "1 Samuel", OldTestament, 31},
	{"2Sam", "2 Samuel", OldTestament, 24},
	{"1Kgs", "1 Kings", OldTestament, 22},
	{"2Kgs", "2 Kings", OldTestament, 25},
	{"1Chr", "1 Chronicles", OldTestament, 29},
	{"2Chr", "2 Chronicles", OldTestament, 36},
	{"Ezra", "Ezra", OldTestament, 10},
	{"Neh", "Nehemiah", OldTestament, 13},
	{"Esth", "Esther", OldTestament, 10},
	{"Job", "Job", OldTestament, 42},
	{"Ps", "Psalms", OldTestament, 150},
	{"Prov", "Proverbs", OldTestament, 31},
	{"Eccl", "Ecclesiastes", OldTestament, 12},
	{"Song", "Song of Solomon", OldTestament, 8},
	{"Isa", "Isaiah", OldTestament, 66},
	{"Jer", "Jeremiah", OldTestament, 52},
	{"Lam", "Lamentations", OldTestament, 5},
	{"Ezek", "Ezekiel", OldTestament, 48},
	{"Dan", "Daniel", OldTestament, 12},
	{"Hos", "Hosea", OldTestament, 14},
	{"Joel", "Joel", OldTestament, 3},
	{"Amos", "Amos", OldTestament, 9},
	{"Obad", "Obadiah", OldTestament, 1},
	{"Jonah", "Jonah", OldTestament, 4},
	{"Mic", "Micah", OldTestament, 7},
	{"Nah", "Nahum", OldTestament, 3},
	{"Hab", "Habakkuk", OldTestament, 3},
	{"Zeph", "Zephaniah", OldTestament, 3},
	{"Hag", "Haggai", OldTestament, 2},
	{"Zech", "Zechariah", OldTestament, 14},
	{"Mal", "Malachi", OldTestament, 4},
	// New Testament
	{"Matt", "Matthew", NewTestament, 28},
	{"Mark", "Mark", NewTestament, 16},
	{"Luke", "Luke", NewTestament, 24},
	{"John", "John", NewTestament, 21},
	{"Acts", "Acts", NewTestament, 28},
	{"Rom", "Romans", NewTestament, 16},
	{"1Cor", "1 Corinthians", NewTestament, 16},
	{"2Cor", "2 Corinthians", NewTestament, 13},
	{"Gal", "Galatians", NewTestament, 6},
	{"Eph", "Ephesians", NewTestament, 6},
	{"Phil", "Philippians", NewTestament, 4},
	{"Col", "Colossians", NewTestament, 4},
	{"1Thess", "1 Thessalonians", NewTestament, 5},
	{"2Thess", "2 Thessalonians", NewTestament, 3},
	{"1Tim", "1 Timothy", NewTestament, 6},
	{"2Tim", "2 Timothy", NewTestament, 4},
	{"Titus", "Titus", NewTestament, 3},
	{"Phlm", "Philemon", NewTestament, 1},
	{"Heb", "Hebrews", NewTestament, 13},
	{"Jas", "James", NewTestament, 5},
	{"1Pet", "1 Peter", NewTestament, 5},
	{"2Pet", "2 Peter", NewTestament, 3},
	{"1John", "1 John", NewTestament, 5},
	{"2John", "2 John", NewTestament, 1},
	{"3John", "3 John", NewTestament, 1},
	{"Jude", "Jude", NewTestament, 1},
	{"Rev", "Revelation", NewTestament, 22},
}
