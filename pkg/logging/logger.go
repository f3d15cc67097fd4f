// Package logging builds the structured loggers used for search diagnostics.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognised level name.
var ErrUnknownLevel = errors.New("unknown log level")

// New returns a logger writing key=value lines to out, dropping anything
// below level.
func New(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

func NewStdOutLogger(out io.Writer) *slog.Logger {
	return New(out, slog.LevelInfo)
}

func NewStdErrLogger(out io.Writer) *slog.Logger {
	return New(out, slog.LevelWarn)
}

// NewDefaultLogger reports warnings and errors on stderr.
func NewDefaultLogger() *slog.Logger {
	return NewStdErrLogger(os.Stderr)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
// The empty string means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Wrapf(ErrUnknownLevel, "%q", level)
}
