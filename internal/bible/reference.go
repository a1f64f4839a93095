package bible

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParsedReference is the result of parsing a free-form reference such as
// "1 John 2:5" or "Ps 23.1-4". Verse and EndVerse are 0 when absent.
type ParsedReference struct {
	Book     string
	Chapter  int
	Verse    int
	EndVerse int
}

// String formats the parsed reference the way it was most likely typed.
func (p ParsedReference) String() string {
	s := fmt.Sprintf("%s %d", p.Book, p.Chapter)
	if p.Verse > 0 {
		s += fmt.Sprintf(":%d", p.Verse)
	}
	if p.EndVerse > 0 {
		s += fmt.Sprintf("-%d", p.EndVerse)
	}
	return s
}

type referenceAST struct {
	Prefix  string   `parser:"@Number?"`
	Words   []string `parser:"@Ident+"`
	Chapter int      `parser:"@Number"`
	Verse   int      `parser:"( (':' | '.') @Number"`
	End     int      `parser:"  ( '-' @Number )? )?"`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[referenceAST](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseReference parses a reference and leaves the book name unresolved.
func ParseReference(input string) (ParsedReference, error) {
	ast, err := referenceParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return ParsedReference{}, fmt.Errorf("parsing reference %q: %w", input, err)
	}

	book := strings.Join(ast.Words, " ")
	if ast.Prefix != "" {
		book = ast.Prefix + " " + book
	}

	ref := ParsedReference{
		Book:     book,
		Chapter:  ast.Chapter,
		Verse:    ast.Verse,
		EndVerse: ast.End,
	}
	if ref.Chapter < 1 {
		return ParsedReference{}, fmt.Errorf("parsing reference %q: chapter must be at least 1", input)
	}
	if ref.EndVerse > 0 && ref.EndVerse < ref.Verse {
		return ParsedReference{}, fmt.Errorf("parsing reference %q: range ends before it starts", input)
	}
	return ref, nil
}

// Resolve parses input and resolves the book name against the index. The
// returned reference carries the book's short identifier.
func (x *Index) Resolve(input string) (ParsedReference, error) {
	ref, err := ParseReference(input)
	if err != nil {
		return ParsedReference{}, err
	}
	b, ok := x.Lookup(ref.Book)
	if !ok {
		return ParsedReference{}, fmt.Errorf("unknown book %q: %w", ref.Book, ErrNotFound)
	}
	if ref.Chapter > b.Chapters {
		return ParsedReference{}, fmt.Errorf("%s has %d chapters: %w", b.Name, b.Chapters, ErrNotFound)
	}
	ref.Book = b.ID
	return ref, nil
}
