package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/biblios/internal/logging"
	"github.com/f3rmion/biblios/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a translation",
	Long: `Import a translation into the bible database.

Supported sources:
  - JSON  ({"translation": {...}, "books": [{"name": "Genesis", "chapters": [["..."]]}]})
  - OSIS  XML with <verse osisID="Gen.1.1">...</verse> elements

Either may be xz-compressed (.json.xz, .xml.xz). Importing the same file twice
is detected by checksum and skipped.

Example:
  biblios import kjv.xml
  biblios import web.json.xz`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer st.Close()

	res, err := st.ImportFile(cmd.Context(), args[0])
	if errors.Is(err, store.ErrAlreadyImported) {
		fmt.Printf("%s was already imported, nothing to do\n", args[0])
		return nil
	}
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}

	logging.Debug("import finished", "checksum", res.Checksum)
	fmt.Printf("Imported %s (%s): %d verses\n", res.Translation.Name, res.Translation.Abbreviation, res.Verses)
	return nil
}
