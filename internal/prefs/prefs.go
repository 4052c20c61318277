// Package prefs handles illien user preferences persistence.
// Preferences are stored in ~/.config/illien/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for illien. Both fields are optional: an
// empty JournalDirectory means no directory has been chosen yet, and a nil
// DarkMode means the terminal's reported background decides the theme.
type Prefs struct {
	JournalDirectory string `toml:"journal_directory,omitempty"`
	DarkMode         *bool  `toml:"dark_mode,omitempty"`
}

const defaultPrefsPath = "~/.config/illien/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to empty
// preferences on any failure. A journal that cannot read its settings still
// has to start.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Prefs{}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Prefs{}
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	p.JournalDirectory = strings.TrimSpace(p.JournalDirectory)
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// SetJournalDirectory persists the chosen directory, keeping other fields.
func SetJournalDirectory(path, dir string) error {
	p := Load(path)
	p.JournalDirectory = dir
	return Save(path, p)
}

// SetDarkMode persists the dark-mode flag, keeping other fields.
func SetDarkMode(path string, dark bool) error {
	p := Load(path)
	p.DarkMode = &dark
	return Save(path, p)
}

// ExpandPath resolves a user-supplied path, expanding a leading "~".
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
