// Package store implements the verse store on SQLite: chapter loading,
// ranked search and translation imports.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/f3rmion/biblios/internal/bible"
)

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	abbreviation TEXT NOT NULL,
	language TEXT NOT NULL,
	description TEXT
);
CREATE TABLE IF NOT EXISTS verses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	book TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	text TEXT NOT NULL,
	UNIQUE(book, chapter, verse)
);
CREATE INDEX IF NOT EXISTS idx_verses_book_chapter ON verses(book, chapter);
CREATE TABLE IF NOT EXISTS books (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS imports (
	checksum TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	translation TEXT NOT NULL,
	verses INTEGER NOT NULL,
	imported_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store is a verse store backed by a SQLite database.
type Store struct {
	db    *sql.DB
	index *bible.Index
}

// Open opens (or creates) the database at path and ensures the schema.
// The index decides the order of search results.
func Open(path string, index *bible.Index) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, index: index}
	if err := s.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Index returns the book index the store orders by.
func (s *Store) Index() *bible.Index {
	return s.index
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seeding book order: %w", err)
	}
	defer tx.Rollback()

	for i, b := range s.index.Books() {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO books (id, position) VALUES (?, ?)`, b.ID, i); err != nil {
			return fmt.Errorf("seeding book order: %w", err)
		}
	}
	return tx.Commit()
}

// Translation returns the metadata of the stored translation.
func (s *Store) Translation() (bible.Translation, error) {
	var t bible.Translation
	var desc sql.NullString
	err := s.db.QueryRow(
		`SELECT id, name, abbreviation, language, description FROM translations LIMIT 1`,
	).Scan(&t.ID, &t.Name, &t.Abbreviation, &t.Language, &desc)
	if errors.Is(err, sql.ErrNoRows) {
		return bible.Translation{}, fmt.Errorf("translation metadata: %w", bible.ErrNotFound)
	}
	if err != nil {
		return bible.Translation{}, fmt.Errorf("translation metadata: %w", err)
	}
	t.Description = desc.String
	return t, nil
}

// LoadChapter returns the verses of book/chapter in verse order. A chapter
// with no stored verses is reported as bible.ErrNotFound.
func (s *Store) LoadChapter(book string, chapter int) (bible.Chapter, error) {
	rows, err := s.db.Query(
		`SELECT verse, text FROM verses WHERE book = ? AND chapter = ? ORDER BY verse`,
		book, chapter,
	)
	if err != nil {
		return bible.Chapter{}, fmt.Errorf("loading %s %d: %w", book, chapter, err)
	}
	defer rows.Close()

	ch := bible.Chapter{Book: book, Number: chapter}
	for rows.Next() {
		v := bible.Verse{Reference: bible.Reference{Book: book, Chapter: chapter}}
		if err := rows.Scan(&v.Verse, &v.Text); err != nil {
			return bible.Chapter{}, fmt.Errorf("loading %s %d: %w", book, chapter, err)
		}
		ch.Verses = append(ch.Verses, v)
	}
	if err := rows.Err(); err != nil {
		return bible.Chapter{}, fmt.Errorf("loading %s %d: %w", book, chapter, err)
	}
	if len(ch.Verses) == 0 {
		return bible.Chapter{}, fmt.Errorf("%s %d: %w", book, chapter, bible.ErrNotFound)
	}
	return ch, nil
}

// LoadVerse returns a single verse.
func (s *Store) LoadVerse(ref bible.Reference) (bible.Verse, error) {
	v := bible.Verse{Reference: ref}
	err := s.db.QueryRow(
		`SELECT text FROM verses WHERE book = ? AND chapter = ? AND verse = ?`,
		ref.Book, ref.Chapter, ref.Verse,
	).Scan(&v.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return bible.Verse{}, fmt.Errorf("%s: %w", ref, bible.ErrNotFound)
	}
	if err != nil {
		return bible.Verse{}, fmt.Errorf("loading %s: %w", ref, err)
	}
	return v, nil
}

// likeEscaper escapes LIKE wildcards for patterns using ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns up to limit verses whose text or reference contains query.
// Whole-word text matches come first, then other text matches, then
// reference matches; ties keep canonical book order.
func (s *Store) Search(query string, limit int) ([]bible.Verse, error) {
	if query == "" || limit <= 0 {
		return nil, nil
	}
	q := likeEscaper.Replace(query)
	word, sub := "% "+q+" %", "%"+q+"%"
	rows, err := s.db.Query(`
		SELECT book, chapter, verse, text FROM (
			SELECT v.book, v.chapter, v.verse, v.text,
				COALESCE(b.position, 1000) AS pos,
				CASE
					WHEN ' ' || v.text || ' ' LIKE ? ESCAPE '\' THEN 0
					WHEN v.text LIKE ? ESCAPE '\' THEN 1
					ELSE 2
				END AS score
			FROM verses v LEFT JOIN books b ON b.id = v.book
			WHERE v.text LIKE ? ESCAPE '\'
				OR v.book || ' ' || v.chapter || ':' || v.verse LIKE ? ESCAPE '\'
		)
		ORDER BY score, pos, chapter, verse
		LIMIT ?`,
		word, sub, sub, sub, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer rows.Close()

	var out []bible.Verse
	for rows.Next() {
		var v bible.Verse
		if err := rows.Scan(&v.Book, &v.Chapter, &v.Verse, &v.Text); err != nil {
			return nil, fmt.Errorf("searching %q: %w", query, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Count returns the number of stored verses.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting verses: %w", err)
	}
	return n, nil
}
