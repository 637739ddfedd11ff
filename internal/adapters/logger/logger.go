// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/forgeline/tsbridge/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
//
// Output goes to stderr: stdout is the worker's protocol channel and must
// carry nothing but response envelopes.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr at the given level.
func New(level slog.Level) *Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a Logger writing to w. Used by tests.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}

var _ ports.Logger = (*Logger)(nil)
