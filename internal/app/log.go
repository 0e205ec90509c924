package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger writes structured logs to a file under the user state dir.
// Logging to stdout would corrupt the terminal overlay, so failures fall
// back to a no-op logger rather than the console.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if env := strings.TrimSpace(os.Getenv("CUETIME_LOG")); env != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			level = parsed
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return zerolog.Nop()
	}
	dir := filepath.Join(home, ".local", "state", "cuetime")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop()
	}
	file, err := os.OpenFile(filepath.Join(dir, "cuetime.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).Level(level).With().Timestamp().Logger()
}
