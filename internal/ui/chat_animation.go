package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg is sent to update the animated waiting display
type StopwatchTickMsg time.Time

// CompletionFlashTickMsg is sent to animate the reply-arrived flash
type CompletionFlashTickMsg time.Time

// thinkingVerbs are status messages that cycle while a reply is on its way
var thinkingVerbs = []string{
	"Thinking",
	"Looking it up",
	"Checking the portfolio",
	"Gathering details",
	"Considering",
	"Preparing an answer",
	"Sketching a view",
	"Reviewing case studies",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// CompletionFlashTick returns a command that sends a completion flash tick
func CompletionFlashTick() tea.Cmd {
	return tea.Tick(160*time.Millisecond, func(t time.Time) tea.Msg {
		return CompletionFlashTickMsg(t)
	})
}

// SpinnerState tracks the waiting spinner and the completion flash.
type SpinnerState struct {
	Idx        int    // Current spinner frame index
	Verb       string // Verb shown while waiting
	StartTime  time.Time
	FlashFrame int // -1 = inactive, 0-2 = animation frames
}

// NewSpinnerState creates an idle SpinnerState
func NewSpinnerState() *SpinnerState {
	return &SpinnerState{FlashFrame: -1}
}

// renderSpinner renders the spinner character followed by the verb.
func renderSpinner(verb string, frameIdx int) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]
	spinnerStyle := lipgloss.NewStyle().Foreground(ColorUser).Bold(true)
	verbStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Italic(true)
	return spinnerStyle.Render(frame) + " " + verbStyle.Render(verb+"...")
}

// renderWaitingStatus renders "✺ Thinking... (3s)"
func renderWaitingStatus(verb string, frameIdx int, elapsed time.Duration) string {
	return renderSpinner(verb, frameIdx) + ChatHintStyle.Render(" ("+formatElapsed(elapsed)+")")
}

// renderCompletionFlash renders the checkmark shown briefly when a reply lands
func renderCompletionFlash(frame int) string {
	marks := []string{"✓", "✓", "·"}
	return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(frame == 0).Render(marks[frame%len(marks)] + " Reply received")
}

// formatElapsed formats a duration as "5s" or "1m 30s"
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// SetWaiting starts or stops the waiting spinner
func (c *Chat) SetWaiting(waiting bool) {
	c.SetWaitingWithStart(waiting, time.Now())
}

// SetWaitingWithStart starts or stops the spinner with an explicit start time
func (c *Chat) SetWaitingWithStart(waiting bool, startTime time.Time) {
	c.waiting = waiting
	if waiting {
		c.spinner.StartTime = startTime
		c.spinner.Verb = randomThinkingVerb()
		c.spinner.Idx = 0
	}
	c.updateContent()
}

// IsWaiting reports whether a reply is outstanding
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// StartCompletionFlash starts the reply-arrived animation
func (c *Chat) StartCompletionFlash() tea.Cmd {
	c.spinner.FlashFrame = 0
	c.updateContent()
	return CompletionFlashTick()
}

// IsCompletionFlashing returns whether the completion flash is showing
func (c *Chat) IsCompletionFlashing() bool {
	return c.spinner.FlashFrame >= 0
}

// handleStopwatchTick advances the spinner while waiting
func (c *Chat) handleStopwatchTick() tea.Cmd {
	if !c.waiting {
		return nil
	}
	c.spinner.Idx = (c.spinner.Idx + 1) % len(spinnerFrames)
	c.updateContent()
	return StopwatchTick()
}

// handleCompletionFlashTick advances the completion flash
func (c *Chat) handleCompletionFlashTick() tea.Cmd {
	if c.spinner.FlashFrame < 0 {
		return nil
	}
	c.spinner.FlashFrame++
	if c.spinner.FlashFrame >= 3 {
		c.spinner.FlashFrame = -1
	}
	c.updateContent()
	if c.spinner.FlashFrame >= 0 {
		return CompletionFlashTick()
	}
	return nil
}
