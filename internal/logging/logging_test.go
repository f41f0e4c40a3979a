package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	closer, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	slog.Info("started", "tab", "scores")
	if err := closer(); err != nil {
		t.Fatalf("closer error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=started") {
		t.Errorf("log content = %q", data)
	}
}

func TestSetupDisabled(t *testing.T) {
	closer, err := Setup("info", "")
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if err := closer(); err != nil {
		t.Errorf("closer error: %v", err)
	}
}
