// Package logger provides the application-wide structured logger.
// Output goes to a file because the terminal belongs to the TUI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the default log file for the TUI process
const DefaultLogPath = "/tmp/nicorai-debug.log"

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
	debug      bool
)

// SetDebug switches between debug and info level
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// IsDebug reports whether debug logging is enabled
func IsDebug() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

// Init opens the log file at path. Calling Init again before Reset is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	install(f)
	slogLogger.Info("logger initialized", "path", path)
	return nil
}

// InitWriter directs log output to w. Used by tests and the one-shot CLI commands.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	install(w)
}

func install(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})
	slogLogger = slog.New(handler)
	initDone = true
}

// ensureInit lazily opens the default log file; mu must be held.
func ensureInit() {
	if initDone {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
		install(io.Discard)
		return
	}
	logFile = f
	install(f)
}

// Get returns the root logger, initializing it on first use
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()
	return slogLogger
}

// WithComponent returns a logger with the component attribute pre-attached.
//
//	log := logger.WithComponent("orchestrator")
//	log.Debug("transition", "from", prev, "to", next)
func WithComponent(component string) *slog.Logger {
	return Get().With(slog.String("component", component))
}

// WithChat returns a logger scoped to one conversation
func WithChat(chatID string) *slog.Logger {
	return Get().With(slog.String("chatID", chatID))
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
	initDone = false
}

// Reset restores the initial state so Init can be called again.
// Intended for tests.
func Reset() {
	Close()
	mu.Lock()
	defer mu.Unlock()
	debug = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the default log file. Returns the number of files removed.
func ClearLogs() (int, error) {
	if err := os.Remove(DefaultLogPath); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}
