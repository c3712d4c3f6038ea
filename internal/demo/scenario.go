// Package demo drives the nicorai TUI through scripted scenarios and captures
// the rendered frames. Replies come from the built-in knowledge base, so a
// recording is deterministic and needs no network.
package demo

import (
	"strconv"
	"time"

	"github.com/nicorai/nicorai/internal/config"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepAsk types a question, sends it and waits for the reply.
	StepAsk
	// StepOpen opens a navigable view as if it was clicked in the sidebar.
	StepOpen
	// StepResize changes the terminal size.
	StepResize
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// String returns the step type name used in logs and errors
func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepKey:
		return "key"
	case StepTypeText:
		return "type"
	case StepAsk:
		return "ask"
	case StepOpen:
		return "open"
	case StepResize:
		return "resize"
	case StepCapture:
		return "capture"
	case StepAnnotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepAsk
	Text string

	// For StepWait
	Duration time.Duration

	// For StepOpen
	ViewID string

	// For StepResize
	Width  int
	Height int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Views shown in the sidebar. Empty means the built-in pages.
	Views []config.NavView

	// SidebarCollapsed starts with the navigation rail collapsed
	SidebarCollapsed bool

	// Theme name, empty keeps the current theme
	Theme string

	// Initial focus (sidebar or main)
	Focus string
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Focus: "main",
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	switch s.Setup.Focus {
	case "", "main", "sidebar":
	default:
		return &ValidationError{Field: "Setup.Focus", Message: "focus must be sidebar or main"}
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			err.Field = "Steps[" + strconv.Itoa(i) + "]." + err.Field
			return err
		}
	}
	return nil
}

func (st Step) validate() *ValidationError {
	switch st.Type {
	case StepKey:
		if st.Key == "" {
			return &ValidationError{Field: "Key", Message: "key step needs a key"}
		}
	case StepAsk:
		if st.Text == "" {
			return &ValidationError{Field: "Text", Message: "ask step needs a question"}
		}
	case StepOpen:
		if st.ViewID == "" {
			return &ValidationError{Field: "ViewID", Message: "open step needs a view id"}
		}
	case StepResize:
		if st.Width <= 0 || st.Height <= 0 {
			return &ValidationError{Field: "Width", Message: "resize step needs a positive size"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Ask types a question into the composer, sends it and waits for the reply.
func Ask(question string) Step {
	return Step{
		Type: StepAsk,
		Text: question,
	}
}

// Open opens a navigable view by id.
func Open(viewID string) Step {
	return Step{
		Type:   StepOpen,
		ViewID: viewID,
	}
}

// Resize changes the terminal size mid-scenario.
func Resize(width, height int) Step {
	return Step{
		Type:   StepResize,
		Width:  width,
		Height: height,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
