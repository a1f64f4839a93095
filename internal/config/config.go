// Package config handles loading and saving user configuration for Biblios:
// settings, the reading position and bookmarks.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	SettingsFile  = "settings.yaml"
	StateFile     = "state.yaml"
	BookmarksFile = "bookmarks.yaml"
	LogFile       = "biblios.log"
	DatabaseFile  = "bible.db"
)

// InputMode selects the key map.
type InputMode string

const (
	InputNormal InputMode = "normal"
	InputVim    InputMode = "vim"
)

// Settings holds user preferences.
type Settings struct {
	Translation      string    `yaml:"translation"`
	InputMode        InputMode `yaml:"input_mode"`         // normal or vim
	Theme            string    `yaml:"theme"`              // theme name, see internal/theme
	ShowVerseNumbers bool      `yaml:"show_verse_numbers"` // prefix verses with their number
	VerseSpacing     bool      `yaml:"verse_spacing"`      // blank line between verses
	FocusMode        bool      `yaml:"focus_mode"`         // hide header and footer while reading
	PageSize         int       `yaml:"page_size"`          // verses moved by page up/down
	SearchLimit      int       `yaml:"search_limit"`       // maximum search results
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Translation:      "KJV",
		InputMode:        InputNormal,
		Theme:            "default",
		ShowVerseNumbers: true,
		VerseSpacing:     true,
		PageSize:         10,
		SearchLimit:      100,
	}
}

// ToggleInputMode switches between normal and vim key maps.
func (s *Settings) ToggleInputMode() {
	if s.InputMode == InputVim {
		s.InputMode = InputNormal
	} else {
		s.InputMode = InputVim
	}
}

func (s *Settings) normalize() {
	d := DefaultSettings()
	if s.InputMode != InputNormal && s.InputMode != InputVim {
		s.InputMode = d.InputMode
	}
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.PageSize < 1 {
		s.PageSize = d.PageSize
	}
	if s.SearchLimit < 1 {
		s.SearchLimit = d.SearchLimit
	}
}

// State is the persisted reading position. A nil Book or Chapter means
// there is no prior position.
type State struct {
	Book       *string   `yaml:"book,omitempty"`
	Chapter    *int      `yaml:"chapter,omitempty"`
	VerseIndex int       `yaml:"verse_index"`
	UpdatedAt  time.Time `yaml:"updated_at,omitempty"`
}

// HasPosition reports whether a prior position was recorded.
func (s State) HasPosition() bool {
	return s.Book != nil && s.Chapter != nil
}

// LoadSettings loads settings from a YAML file. A missing file yields the
// defaults without error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if err := readYAML(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("loading settings: %w", err)
	}
	s.normalize()
	return s, nil
}

// SaveSettings saves settings to a YAML file.
func SaveSettings(path string, s Settings) error {
	if err := writeYAML(path, s); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// LoadState loads the reading position. A missing file yields an empty state.
func LoadState(path string) (State, error) {
	var s State
	if err := readYAML(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("loading state: %w", err)
	}
	if s.VerseIndex < 0 {
		s.VerseIndex = 0
	}
	return s, nil
}

// SaveState saves the reading position, stamping UpdatedAt.
func SaveState(path string, s State) error {
	s.UpdatedAt = time.Now().UTC()
	if err := writeYAML(path, s); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// DefaultDir returns the default configuration directory.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "biblios"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "biblios"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeYAML(path string, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
