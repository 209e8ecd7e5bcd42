package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger returns a text logger writing to path, or a discarding one
// when path is empty. The terminal belongs to the TUI, so logs never go
// to stdout or stderr.
func newLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = f.Close() }, nil
}
