package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/f3rmion/biblios/internal/bible"
)

var readCmd = &cobra.Command{
	Use:   "read <reference>",
	Short: "Print a chapter or verses",
	Long: `Print a chapter, a verse or a verse range to stdout.

Example:
  biblios read John 3
  biblios read "1 John 2:5"
  biblios read ps 23.1-4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Int("width", 80, "wrap text at this width (0 disables wrapping)")
}

func runRead(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	st, err := openStore(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer st.Close()

	ref, err := st.Index().Resolve(strings.Join(args, " "))
	if err != nil {
		return err
	}
	ch, err := st.LoadChapter(ref.Book, ref.Chapter)
	if err != nil {
		return fmt.Errorf("reading %s: %w", ref, err)
	}

	verses := selectVerses(ch, ref)
	if len(verses) == 0 {
		return fmt.Errorf("reading %s: %w", ref, bible.ErrNotFound)
	}

	book, _ := st.Index().Get(ref.Book)
	fmt.Printf("%s %d\n\n", book.Name, ref.Chapter)
	for _, v := range verses {
		line := fmt.Sprintf("%3d  %s", v.Verse, v.Text)
		if width > 0 {
			line = strings.ReplaceAll(wordwrap.String(line, width), "\n", "\n     ")
		}
		fmt.Println(line)
	}
	return nil
}

// selectVerses returns the verses of ch that ref covers. A reference without
// a verse covers the whole chapter.
func selectVerses(ch bible.Chapter, ref bible.ParsedReference) []bible.Verse {
	if ref.Verse == 0 {
		return ch.Verses
	}
	end := ref.EndVerse
	if end == 0 {
		end = ref.Verse
	}
	var out []bible.Verse
	for _, v := range ch.Verses {
		if v.Verse >= ref.Verse && v.Verse <= end {
			out = append(out, v)
		}
	}
	return out
}
