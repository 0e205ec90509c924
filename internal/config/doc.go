// Package config loads the cuetime configuration file.
//
// Configuration lives in ~/.config/cuetime/config.toml and covers the
// Ontime server URL, the ±1 minute policy, and the render tick cadence.
// A missing file is not an error: every field has a default. The
// reconciliation core receives the parsed Config read-only; nothing in
// this package is written back at runtime (user display preferences,
// which are written back, live in the prefs package).
package config
