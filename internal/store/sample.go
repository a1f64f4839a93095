package store

import (
	"context"
	"fmt"

	"github.com/f3rmion/biblios/internal/bible"
)

var sampleDocument = Document{
	Translation: bible.Translation{
		ID:           "KJV",
		Name:         "King James Version",
		Abbreviation: "KJV",
		Language:     "en",
		Description:  "The King James Version (KJV) is an English translation of the Christian Bible.",
	},
	Verses: []bible.Verse{
		{Reference: bible.Reference{Book: "John", Chapter: 1, Verse: 1}, Text: "In the beginning was the Word, and the Word was with God, and the Word was God."},
		{Reference: bible.Reference{Book: "John", Chapter: 1, Verse: 2}, Text: "The same was in the beginning with God."},
		{Reference: bible.Reference{Book: "John", Chapter: 1, Verse: 3}, Text: "All things were made by him; and without him was not any thing made that was made."},
		{Reference: bible.Reference{Book: "John", Chapter: 1, Verse: 4}, Text: "In him was life; and the life was the light of men."},
		{Reference: bible.Reference{Book: "John", Chapter: 1, Verse: 5}, Text: "And the light shineth in darkness; and the darkness comprehended it not."},
		{Reference: bible.Reference{Book: "John", Chapter: 3, Verse: 16}, Text: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."},
		{Reference: bible.Reference{Book: "John", Chapter: 3, Verse: 17}, Text: "For God sent not his Son into the world to condemn the world; but that the world through him might be saved."},
	},
}

// SeedSample stores a small sample translation when the database holds no
// verses. It reports whether anything was written.
func (s *Store) SeedSample(ctx context.Context) (bool, error) {
	n, err := s.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.store(ctx, "sample", "sample", sampleDocument); err != nil {
		return false, fmt.Errorf("seeding sample: %w", err)
	}
	return true, nil
}
