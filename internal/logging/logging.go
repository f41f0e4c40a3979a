// Package logging configures the process-wide structured logger from the
// application config. The TUI owns the terminal, so log output goes to the
// configured file, or nowhere when no file is set.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps a config log level string to a slog level. Unknown
// values fall back to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger. The returned closer flushes and
// closes the log file; it is a no-op when logging is disabled.
func Setup(level, file string) (func() error, error) {
	var (
		w      io.Writer = io.Discard
		closer           = func() error { return nil }
	)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}
