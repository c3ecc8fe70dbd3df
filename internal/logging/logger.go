// Package logging wraps charmbracelet/log with level parsing, a shared
// default logger and context propagation.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// New creates a logger writing to stderr at the given level.
// Valid levels: "debug", "info", "warn", "error"; anything else is info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared logger, creating it at info level on first use.
func Default() *log.Logger {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	if logger != nil {
		return logger
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, "error")
}

type contextKey struct{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}
