package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Fallback is shown when neither a view nor the chat is visible. Its one
// action is starting a new chat.
type Fallback struct {
	width  int
	height int
}

// NewFallback creates the fallback surface
func NewFallback() *Fallback {
	return &Fallback{}
}

// SetSize sets the area the fallback is centered in
func (f *Fallback) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// View renders the centered prompt and button
func (f *Fallback) View() string {
	lines := []string{
		WelcomeTitleStyle.Render("Nothing open"),
		"",
		WelcomeTextStyle.Render("Pick a view from the sidebar, or"),
		"",
		FallbackButtonStyle.Render("Start chatting"),
		"",
		ChatHintStyle.Render("press enter"),
	}
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if f.width <= 0 || f.height <= 0 {
		return block
	}
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, block)
}

// PlainText is the fallback text without styling
func (f *Fallback) PlainText() string {
	return strings.Join([]string{"Nothing open", "Start chatting"}, "\n")
}
