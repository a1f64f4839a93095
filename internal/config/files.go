package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a file that could not be loaded.
const BackupSuffix = ".bak"

// Files addresses the configuration files inside one directory.
type Files struct {
	Dir string
}

// Path returns the path of name inside the config directory.
func (f Files) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

// LoadSettings loads settings.yaml. An unreadable file is moved aside, see
// setAside.
func (f Files) LoadSettings() (Settings, error) {
	s, err := LoadSettings(f.Path(SettingsFile))
	return s, f.setAside(SettingsFile, err)
}

// LoadState loads state.yaml.
func (f Files) LoadState() (State, error) {
	s, err := LoadState(f.Path(StateFile))
	return s, f.setAside(StateFile, err)
}

// LoadBookmarks loads bookmarks.yaml.
func (f Files) LoadBookmarks() (*Bookmarks, error) {
	b, err := LoadBookmarks(f.Path(BookmarksFile))
	return b, f.setAside(BookmarksFile, err)
}

// setAside renames name to name.bak after a failed load, so a later save
// cannot overwrite the user's data. The returned error names the backup.
func (f Files) setAside(name string, loadErr error) error {
	if loadErr == nil {
		return nil
	}
	path := f.Path(name)
	if err := os.Rename(path, path+BackupSuffix); err != nil {
		return errors.Join(loadErr, fmt.Errorf("backing up %s: %w", name, err))
	}
	return fmt.Errorf("%w (kept as %s)", loadErr, name+BackupSuffix)
}

// SaveSettings writes settings.yaml.
func (f Files) SaveSettings(s Settings) error {
	return SaveSettings(f.Path(SettingsFile), s)
}

// SaveState writes state.yaml.
func (f Files) SaveState(s State) error {
	return SaveState(f.Path(StateFile), s)
}

// SaveBookmarks writes bookmarks.yaml.
func (f Files) SaveBookmarks(b *Bookmarks) error {
	return SaveBookmarks(f.Path(BookmarksFile), b)
}
