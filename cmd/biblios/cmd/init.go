package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/biblios/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize biblios configuration",
	Long: `Initialize biblios in your config directory.

This creates:
  - settings.yaml   (input mode, theme, display options)
  - bible.db        (a small sample text, until you import a translation)

Existing settings are kept unless --force is given.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	if err := config.EnsureDir(configDir); err != nil {
		return err
	}
	fmt.Printf("Initializing biblios in %s\n\n", configDir)

	files := config.Files{Dir: configDir}
	settingsPath := files.Path(config.SettingsFile)
	if _, err := os.Stat(settingsPath); err == nil && !force {
		fmt.Printf("  Kept %s\n", config.SettingsFile)
	} else {
		if err := files.SaveSettings(config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Printf("  Created %s\n", config.SettingsFile)
	}

	st, err := openStore(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Count()
	if err != nil {
		return err
	}
	fmt.Printf("  Database %s (%d verses)\n", getDBPath(), n)

	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Import a translation with 'biblios import <file.json|file.xml>'")
	fmt.Println("  2. Run 'biblios' to start reading")

	return nil
}
