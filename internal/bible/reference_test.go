package bible

import "testing"

func TestParseReference(t *testing.T) {
	tests := []struct {
		input string
		want  ParsedReference
	}{
		{"John 3:16", ParsedReference{Book: "John", Chapter: 3, Verse: 16}},
		{"1 John 2:5", ParsedReference{Book: "1 John", Chapter: 2, Verse: 5}},
		{"1John 2:5", ParsedReference{Book: "1 John", Chapter: 2, Verse: 5}},
		{"Genesis 1:1", ParsedReference{Book: "Genesis", Chapter: 1, Verse: 1}},
		{"Gen 1", ParsedReference{Book: "Gen", Chapter: 1}},
		{"Ps 23.1-4", ParsedReference{Book: "Ps", Chapter: 23, Verse: 1, EndVerse: 4}},
		{"  Song of Solomon 2:1 ", ParsedReference{Book: "Song of Solomon", Chapter: 2, Verse: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReference(tt.input)
			if err != nil {
				t.Fatalf("ParseReference(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseReference(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseReferenceErrors(t *testing.T) {
	for _, input := range []string{"", "John", "3:16", "John 0:1", "John 3:5-2", "love one another"} {
		if _, err := ParseReference(input); err == nil {
			t.Errorf("ParseReference(%q) expected error", input)
		}
	}
}

func TestParsedReferenceString(t *testing.T) {
	ref := ParsedReference{Book: "Ps", Chapter: 23, Verse: 1, EndVerse: 4}
	if got := ref.String(); got != "Ps 23:1-4" {
		t.Errorf("String() = %q", got)
	}
	if got := (ParsedReference{Book: "Gen", Chapter: 1}).String(); got != "Gen 1" {
		t.Errorf("String() = %q", got)
	}
}
