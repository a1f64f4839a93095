package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search verse text",
	Long: `Search the verse text and references for a phrase. Matching is
case-insensitive. Whole-word matches are listed first, then other text
matches, then reference matches, each group in canonical order.

Example:
  biblios search "so loved"
  biblios search light --limit 20`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("limit", 100, "maximum number of results")
	searchCmd.Flags().Int("width", 100, "truncate lines to this width (0 disables truncation)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	width, _ := cmd.Flags().GetInt("width")
	query := strings.Join(args, " ")

	st, err := openStore(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer st.Close()

	results, err := st.Search(query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("No matches for %q\n", query)
		return nil
	}

	for _, v := range results {
		line := runewidth.FillRight(v.Reference.String(), 18) + v.Text
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d matches\n", len(results))
	return nil
}
