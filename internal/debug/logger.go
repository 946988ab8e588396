// Package debug provides the switchable diagnostic logger using log/slog.
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// logger is the global debug logger instance
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	// enabled indicates if debug logging is enabled
	enabled bool
	// mu protects the logger and enabled flag
	mu sync.RWMutex
)

// Enable routes debug records to os.Stderr as slog text lines.
func Enable() {
	mu.Lock()
	defer mu.Unlock()

	enabled = true

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// Disable discards all debug records.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	enabled = false
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()

	return enabled
}

// Log records a debug message with structured key/value attributes.
func Log(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	l.Debug(msg, args...)
}
