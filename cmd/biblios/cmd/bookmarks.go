package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/biblios/internal/config"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List saved bookmarks",
	Long: `List the bookmarks saved from the reader.

Bookmarks are toggled with 'm' while reading and stored in bookmarks.yaml in
the config directory.`,
	Args: cobra.NoArgs,
	RunE: runBookmarks,
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a bookmark by its list number",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksRemove,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	files := config.Files{Dir: getConfigDir()}
	bm, err := files.LoadBookmarks()
	if err != nil {
		return err
	}
	if bm.Len() == 0 {
		fmt.Println("No bookmarks yet.")
		return nil
	}

	for i, b := range bm.Items {
		line := fmt.Sprintf("%3d. %s", i+1, runewidth.FillRight(b.Reference().String(), 16))
		if !b.CreatedAt.IsZero() {
			line += b.CreatedAt.Local().Format("2006-01-02 15:04") + "  "
		}
		fmt.Println(line + b.Note)
	}
	return nil
}

func runBookmarksRemove(cmd *cobra.Command, args []string) error {
	var n int
	if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
		return fmt.Errorf("invalid bookmark number %q", args[0])
	}

	files := config.Files{Dir: getConfigDir()}
	bm, err := files.LoadBookmarks()
	if err != nil {
		return err
	}
	if n < 1 || n > bm.Len() {
		return fmt.Errorf("no bookmark %d (have %d)", n, bm.Len())
	}
	ref := bm.Items[n-1].Reference()
	bm.RemoveAt(n - 1)
	if err := files.SaveBookmarks(bm); err != nil {
		return err
	}
	fmt.Printf("Removed bookmark %s\n", ref)
	return nil
}
