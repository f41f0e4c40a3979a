package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("RefreshInterval = %d, want %d", cfg.RefreshInterval, DefaultRefreshInterval)
	}
	if !cfg.Display.UseUnicode {
		t.Error("UseUnicode should default to true")
	}
	if cfg.Display.Theme != "default" {
		t.Errorf("Theme = %q, want %q", cfg.Display.Theme, "default")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("RefreshInterval = %d, want default", cfg.RefreshInterval)
	}
}

func TestLoadFromParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("refresh_interval: -5\ntime_format: weird\nwestern_teams_first: true\ndisplay:\n  use_unicode: false\n  theme: gruvbox\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("negative refresh interval not normalized: %d", cfg.RefreshInterval)
	}
	if cfg.TimeFormat != DefaultTimeFormat {
		t.Errorf("bad time format not normalized: %q", cfg.TimeFormat)
	}
	if !cfg.WesternFirst {
		t.Error("western_teams_first not parsed")
	}
	if cfg.Display.UseUnicode {
		t.Error("use_unicode not parsed")
	}
	if cfg.Display.Theme != "gruvbox" {
		t.Errorf("theme = %q, want gruvbox", cfg.Display.Theme)
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("refresh_interval: [oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}
