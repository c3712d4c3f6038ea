package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// clearScreen moves the cursor home and clears the display before each frame
const clearScreen = "\x1b[2J\x1b[H"

// castHeader is the first line of an asciicast v2 file
type castHeader struct {
	Version   int    `json:"version"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Title     string `json:"title,omitempty"`
}

// WriteCast writes frames as an asciicast v2 recording. Each frame becomes
// one output event at the running sum of frame delays. Annotations are
// emitted as markers so players can show chapter titles.
func WriteCast(w io.Writer, scenario *Scenario, frames []Frame, now time.Time) error {
	enc := json.NewEncoder(w)

	header := castHeader{
		Version: 2,
		Width:   scenario.Width,
		Height:  scenario.Height,
		Title:   scenario.Description,
	}
	if !now.IsZero() {
		header.Timestamp = now.Unix()
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed time.Duration
	for i, f := range frames {
		elapsed += f.Delay
		ts := elapsed.Seconds()
		if f.Annotation != "" {
			if err := enc.Encode([]any{ts, "m", f.Annotation}); err != nil {
				return fmt.Errorf("writing marker %d: %w", i, err)
			}
		}
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{ts, "o", data}); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}

// WriteFrames prints frames as plain text blocks for inspecting a run.
func WriteFrames(w io.Writer, frames []Frame) error {
	if _, err := fmt.Fprintf(w, "Captured %d frames\n", len(frames)); err != nil {
		return err
	}
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		if _, err := fmt.Fprintln(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}
