// Package logging provides the process-wide log sink: a console handler,
// an append-only file handler and helpers to fan records out to both.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prodinfra/infrademo/internal/utils"
)

const (
	LogFilePermission = 0o644

	// AppLogger is the logger name used by the request handlers.
	AppLogger = "app"
)

// OpenFile opens path for appending, creating it and its parent directory if needed.
func OpenFile(path string) (*os.File, error) {
	if err := utils.EnsureParent(path); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// Named returns a logger that renders name as its logger name.
func Named(h slog.Handler, name string) *slog.Logger {
	return slog.New(h).With(LoggerKey, name)
}

// ParseLevel parses debug, info, warn/warning and error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
