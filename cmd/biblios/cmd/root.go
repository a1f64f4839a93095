// Package cmd contains all CLI commands for biblios.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/biblios/internal/bible"
	"github.com/f3rmion/biblios/internal/config"
	"github.com/f3rmion/biblios/internal/logging"
	"github.com/f3rmion/biblios/internal/nav"
	"github.com/f3rmion/biblios/internal/store"
	"github.com/f3rmion/biblios/internal/theme"
	"github.com/f3rmion/biblios/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "biblios [reference]",
	Short: "Read the Bible in your terminal",
	Long: `biblios is a terminal Bible reader.

Verses flow continuously: moving past the last verse of a chapter opens the
next chapter, and past the last chapter of a book the next book. Your place,
settings and bookmarks are saved in the config directory.

Running 'biblios' without arguments opens the reader where you left off.
Pass a reference to open it there instead:
  biblios John 3:16
  biblios ps 23`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(os.Stderr, logLevel(), logging.FormatText)
	},
	RunE: runReader,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $XDG_CONFIG_HOME/biblios)")
	rootCmd.PersistentFlags().String("db", "", "bible database (default is <config>/bible.db)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.DefaultDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("BIBLIOS")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// getDBPath returns the bible database path.
func getDBPath() string {
	if p := viper.GetString("db"); p != "" {
		return p
	}
	return filepath.Join(getConfigDir(), config.DatabaseFile)
}

func logLevel() logging.Level {
	if viper.GetBool("verbose") {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}

// openStore opens the bible database. With seed set, an empty database is
// filled with the sample text.
func openStore(ctx context.Context, seed bool) (*store.Store, error) {
	path := getDBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	st, err := store.Open(path, bible.Canonical())
	if err != nil {
		return nil, err
	}
	if seed {
		seeded, err := st.SeedSample(ctx)
		if err != nil {
			st.Close()
			return nil, err
		}
		if seeded {
			logging.Info("created sample database", "path", path)
		}
	}
	return st, nil
}

// loadUserData reads settings, position and bookmarks. Unreadable files are
// kept as .bak copies and replaced by defaults with a warning.
func loadUserData(files config.Files) (config.Settings, config.State, *config.Bookmarks) {
	settings, err := files.LoadSettings()
	if err != nil {
		logging.Warn("using default settings", "error", err)
	}
	state, err := files.LoadState()
	if err != nil {
		logging.Warn("ignoring saved position", "error", err)
	}
	bookmarks, err := files.LoadBookmarks()
	if err != nil {
		logging.Warn("ignoring saved bookmarks", "error", err)
	}
	return settings, state, bookmarks
}

// runReader launches the interactive reader.
func runReader(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := config.EnsureDir(configDir); err != nil {
		return err
	}

	// The reader owns the terminal, so logs go to a file.
	logFile, err := logging.OpenFile(filepath.Join(configDir, config.LogFile), logLevel())
	if err != nil {
		return err
	}
	defer logFile.Close()

	st, err := openStore(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer st.Close()

	files := config.Files{Dir: configDir}
	settings, state, bookmarks := loadUserData(files)

	machine := nav.New(&nav.Context{
		Index:     st.Index(),
		Provider:  st,
		Persist:   files,
		Settings:  &settings,
		Bookmarks: bookmarks,
		Themes:    theme.Names(),
		Logger:    logging.GetLogger(),
	}, state)

	if len(args) > 0 {
		ref, err := st.Index().Resolve(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if err := machine.Goto(bible.Reference{Book: ref.Book, Chapter: ref.Chapter, Verse: ref.Verse}); err != nil {
			return fmt.Errorf("opening %s: %w", ref, err)
		}
	}

	var opts []tui.Option
	if tr, err := st.Translation(); err == nil {
		opts = append(opts, tui.WithTranslation(tr.Abbreviation))
	}

	logging.Info("starting reader", "location", machine.Location())
	runErr := tui.Run(machine, opts...)

	// Shutdown logs its own failures.
	_ = machine.Shutdown()
	return runErr
}
