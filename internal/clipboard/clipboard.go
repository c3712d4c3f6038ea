// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"strings"
	"sync"

	"golang.design/x/clipboard"

	apperrors "github.com/nicorai/nicorai/internal/errors"
	"github.com/nicorai/nicorai/internal/logger"
)

// Backend is the system clipboard seam; tests replace it.
type Backend interface {
	Init() error
	WriteText(text string)
	ReadText() string
}

type systemBackend struct{}

func (systemBackend) Init() error { return clipboard.Init() }

func (systemBackend) WriteText(text string) {
	// The returned channel fires when another program takes ownership; we don't care
	_ = clipboard.Write(clipboard.FmtText, []byte(text))
}

func (systemBackend) ReadText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
	initErr     error
)

// SetBackend swaps the clipboard implementation and forgets the init state.
// It returns the previous backend.
func SetBackend(b Backend) Backend {
	mu.Lock()
	defer mu.Unlock()
	prev := backend
	backend = b
	initialized = false
	initErr = nil
	return prev
}

// Init initializes the clipboard. Safe to call multiple times; a failure is
// remembered so headless sessions don't retry on every copy.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return initErr
	}
	initialized = true
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		initErr = apperrors.E(apperrors.Op("clipboard.Init"), apperrors.KindIO, "clipboard unavailable", err)
		return initErr
	}
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

// WriteText copies text to the clipboard. Empty text is rejected.
func WriteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.E(apperrors.Op("clipboard.WriteText"), apperrors.KindInvalid, "nothing to copy")
	}

	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	backend.WriteText(text)
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return "", err
	}
	return backend.ReadText(), nil
}
