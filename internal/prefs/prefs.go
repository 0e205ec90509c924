// Package prefs handles cuetime user preferences persistence.
// Preferences are stored in ~/.config/cuetime/prefs.toml.
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

// Prefs holds user display preferences.
type Prefs struct {
	DisplayMode    string `toml:"display_mode"` // "timer" or "clock"
	ShowBackground bool   `toml:"show_background"`
	Theme          string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/cuetime/prefs.toml"
	defaultTheme     = "stage"

	// ModeTimer shows the server timer; ModeClock shows the local clock.
	ModeTimer = "timer"
	ModeClock = "clock"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaults() Prefs {
	return Prefs{DisplayMode: ModeTimer, ShowBackground: true, Theme: defaultTheme}
}

// Load reads preferences from the given path. It never fails: a missing or
// unreadable file yields the defaults.
func Load(path string) Prefs {
	prefs := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}
	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return defaults()
	}

	if prefs.DisplayMode != ModeTimer && prefs.DisplayMode != ModeClock {
		prefs.DisplayMode = ModeTimer
	}
	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// Save writes preferences to the given path, creating parent directories.
func Save(path string, prefs Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	bytes, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
