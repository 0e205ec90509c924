package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != "http://localhost:4001" {
		t.Fatalf("ServerURL = %q, want default", cfg.ServerURL)
	}
	if cfg.AddtimeAffectsDuration {
		t.Fatal("AddtimeAffectsDuration = true, want default false")
	}
	if cfg.TickEvery != time.Second {
		t.Fatalf("TickEvery = %v, want 1s", cfg.TickEvery)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
server_url = "  http://stage.local:4001  "
addtime_affects_event_duration = true
tick_ms = 250
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != "http://stage.local:4001" {
		t.Fatalf("ServerURL = %q, want trimmed url", cfg.ServerURL)
	}
	if !cfg.AddtimeAffectsDuration {
		t.Fatal("AddtimeAffectsDuration = false, want true")
	}
	if cfg.TickEvery != 250*time.Millisecond {
		t.Fatalf("TickEvery = %v, want 250ms", cfg.TickEvery)
	}
}

func TestLoad_EmptyValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server_url = "  "`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != "http://localhost:4001" {
		t.Fatalf("ServerURL = %q, want default for blank value", cfg.ServerURL)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server_url = [broken`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML, want error")
	}
}
