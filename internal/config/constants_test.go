package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConstants(t *testing.T) {
	if WindowDays != 14 {
		t.Fatalf("WindowDays must be 14, got %d", WindowDays)
	}
	if ToastDuration <= 0 {
		t.Fatalf("ToastDuration must be positive")
	}
	if KeyHabits != "habits" || KeyCompletions != "completions" || KeyUseAsNewTab != "useAsNewTab" {
		t.Fatalf("storage keys changed: %q %q %q", KeyHabits, KeyCompletions, KeyUseAsNewTab)
	}
	if EnvelopeVersion != 1 {
		t.Fatalf("EnvelopeVersion must be 1, got %d", EnvelopeVersion)
	}
	if AppName == "" || DBFileName == "" {
		t.Fatalf("AppName and DBFileName should not be empty")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "default" {
		t.Fatalf("expected default theme, got %q", cfg.Theme)
	}
	if cfg.DataDir == "" {
		t.Fatalf("expected non-empty data dir")
	}
}

func TestLoadReadsFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "theme: dracula\ndata_dir: /tmp/elsewhere\ndebug: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("expected dracula theme, got %q", cfg.Theme)
	}
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Fatalf("expected overridden data dir, got %q", cfg.DataDir)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug true")
	}

	t.Setenv("HABT_DATA_DIR", "/tmp/env-wins")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/env-wins" {
		t.Fatalf("expected env override, got %q", cfg.DataDir)
	}
	if cfg.DBPath() != filepath.Join("/tmp/env-wins", DBFileName) {
		t.Fatalf("unexpected db path %q", cfg.DBPath())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
