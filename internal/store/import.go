package store

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/f3rmion/biblios/internal/bible"
)

// ErrAlreadyImported is returned when a source with the same checksum was
// imported before.
var ErrAlreadyImported = errors.New("source already imported")

// Format identifies a translation source format.
type Format string

const (
	FormatJSON Format = "json"
	FormatOSIS Format = "osis"
)

// Document is a parsed translation ready to be stored.
type Document struct {
	Translation bible.Translation
	Verses      []bible.Verse
}

// ImportResult summarizes an import.
type ImportResult struct {
	Translation bible.Translation
	Verses      int
	Checksum    string
}

// DetectFormat guesses the format from the file name. A trailing .xz is
// ignored.
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(strings.TrimSuffix(strings.ToLower(path), ".xz"))
	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, nil
	case ".xml", ".osis":
		return FormatOSIS, nil
	default:
		return "", fmt.Errorf("unsupported source format: %s", filepath.Base(path))
	}
}

// ImportFile reads, parses and stores a translation file. Files ending in
// .xz are decompressed first.
func (s *Store) ImportFile(ctx context.Context, path string) (ImportResult, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return ImportResult{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading source: %w", err)
	}
	data := raw
	if strings.HasSuffix(strings.ToLower(path), ".xz") {
		xzr, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return ImportResult{}, fmt.Errorf("xz reader: %w", err)
		}
		if data, err = io.ReadAll(xzr); err != nil {
			return ImportResult{}, fmt.Errorf("decompressing source: %w", err)
		}
	}
	return s.Import(ctx, filepath.Base(path), format, data)
}

// Import parses data in the given format and stores it in one transaction.
func (s *Store) Import(ctx context.Context, source string, format Format, data []byte) (ImportResult, error) {
	sum := blake3.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	var seen int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM imports WHERE checksum = ?`, checksum).Scan(&seen); err != nil {
		return ImportResult{}, fmt.Errorf("checking import history: %w", err)
	}
	if seen > 0 {
		return ImportResult{Checksum: checksum}, fmt.Errorf("%s: %w", source, ErrAlreadyImported)
	}

	var doc Document
	var err error
	switch format {
	case FormatJSON:
		doc, err = ParseJSON(data, s.index)
	case FormatOSIS:
		doc, err = ParseOSIS(data, s.index)
	default:
		err = fmt.Errorf("unsupported source format: %s", format)
	}
	if err != nil {
		return ImportResult{}, err
	}

	if err := s.store(ctx, source, checksum, doc); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Translation: doc.Translation, Verses: len(doc.Verses), Checksum: checksum}, nil
}

func (s *Store) store(ctx context.Context, source, checksum string, doc Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting import: %w", err)
	}
	defer tx.Rollback()

	t := doc.Translation
	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO translations (id, name, abbreviation, language, description)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Abbreviation, t.Language, t.Description); err != nil {
		return fmt.Errorf("storing translation: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO verses (book, chapter, verse, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing verse insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range doc.Verses {
		if _, err := stmt.ExecContext(ctx, v.Book, v.Chapter, v.Verse, v.Text); err != nil {
			return fmt.Errorf("storing %s: %w", v.Reference, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (checksum, source, translation, verses) VALUES (?, ?, ?, ?)`,
		checksum, source, t.ID, len(doc.Verses)); err != nil {
		return fmt.Errorf("recording import: %w", err)
	}
	return tx.Commit()
}

type jsonSource struct {
	Translation struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
		Language     string `json:"language"`
		Description  string `json:"description"`
	} `json:"translation"`
	Books []struct {
		Name     string     `json:"name"`
		Chapters [][]string `json:"chapters"`
	} `json:"books"`
}

// ParseJSON parses the JSON translation format:
//
//	{"translation": {...}, "books": [{"name": "Genesis", "chapters": [["verse 1", ...], ...]}]}
//
// Book names are resolved through index.
func ParseJSON(data []byte, index *bible.Index) (Document, error) {
	var src jsonSource
	if err := json.Unmarshal(data, &src); err != nil {
		return Document{}, fmt.Errorf("parsing JSON source: %w", err)
	}

	doc := Document{Translation: bible.Translation{
		ID:           orDefault(src.Translation.ID, "unknown"),
		Name:         orDefault(src.Translation.Name, "Unknown"),
		Abbreviation: orDefault(src.Translation.Abbreviation, "UNK"),
		Language:     orDefault(src.Translation.Language, "en"),
		Description:  src.Translation.Description,
	}}

	for _, b := range src.Books {
		book, ok := index.Lookup(b.Name)
		if !ok {
			return Document{}, fmt.Errorf("parsing JSON source: unknown book %q", b.Name)
		}
		for c, verses := range b.Chapters {
			for v, text := range verses {
				doc.Verses = append(doc.Verses, bible.Verse{
					Reference: bible.Reference{Book: book.ID, Chapter: c + 1, Verse: v + 1},
					Text:      text,
				})
			}
		}
	}
	return doc, nil
}

// ParseOSIS parses an OSIS XML document. Only container verses
// (<verse osisID="John.3.16">text</verse>) are read.
func ParseOSIS(data []byte, index *bible.Index) (Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("parsing OSIS source: %w", err)
	}

	doc := Document{Translation: bible.Translation{
		ID:           "unknown",
		Name:         "Unknown",
		Abbreviation: "UNK",
		Language:     "en",
	}}
	if n := xmlquery.FindOne(root, "//*[local-name()='osisText']"); n != nil {
		if id := n.SelectAttr("osisIDWork"); id != "" {
			doc.Translation.ID = id
			doc.Translation.Abbreviation = id
		}
		if lang := n.SelectAttr("xml:lang"); lang != "" {
			doc.Translation.Language = lang
		}
	}
	if n := xmlquery.FindOne(root, "//*[local-name()='work']/*[local-name()='title']"); n != nil {
		doc.Translation.Name = strings.TrimSpace(n.InnerText())
	}
	if n := xmlquery.FindOne(root, "//*[local-name()='work']/*[local-name()='description']"); n != nil {
		doc.Translation.Description = strings.TrimSpace(n.InnerText())
	}

	nodes, err := xmlquery.QueryAll(root, "//*[local-name()='verse'][@osisID]")
	if err != nil {
		return Document{}, fmt.Errorf("parsing OSIS source: %w", err)
	}
	for _, n := range nodes {
		if n.SelectAttr("sID") != "" || n.SelectAttr("eID") != "" {
			continue // milestone markers carry no text
		}
		ref, err := parseOSISID(n.SelectAttr("osisID"), index)
		if err != nil {
			return Document{}, fmt.Errorf("parsing OSIS source: %w", err)
		}
		doc.Verses = append(doc.Verses, bible.Verse{
			Reference: ref,
			Text:      strings.Join(strings.Fields(n.InnerText()), " "),
		})
	}
	if len(doc.Verses) == 0 {
		return Document{}, fmt.Errorf("parsing OSIS source: no verses found")
	}
	return doc, nil
}

func parseOSISID(id string, index *bible.Index) (bible.Reference, error) {
	// Ranged IDs ("John.3.16 John.3.17") keep the first verse.
	first := strings.Fields(id)
	if len(first) == 0 {
		return bible.Reference{}, fmt.Errorf("empty osisID")
	}
	parts := strings.Split(first[0], ".")
	if len(parts) != 3 {
		return bible.Reference{}, fmt.Errorf("malformed osisID %q", id)
	}
	book, ok := index.Lookup(parts[0])
	if !ok {
		return bible.Reference{}, fmt.Errorf("unknown book %q", parts[0])
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil {
		return bible.Reference{}, fmt.Errorf("malformed osisID %q: %w", id, err)
	}
	verse, err := strconv.Atoi(parts[2])
	if err != nil {
		return bible.Reference{}, fmt.Errorf("malformed osisID %q: %w", id, err)
	}
	return bible.Reference{Book: book.ID, Chapter: chapter, Verse: verse}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
