package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Composer is the message input. The chat panel embeds it; in view mode the
// app draws the same composer floating under the view.
type Composer struct {
	input   textarea.Model
	width   int
	focused bool
}

// NewComposer creates an empty composer
func NewComposer() *Composer {
	ti := textarea.New()
	ti.Placeholder = "Ask about services, technologies or projects..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	return &Composer{input: ti}
}

// SetWidth sets the outer width including border and padding
func (c *Composer) SetWidth(width int) {
	c.width = width
	c.input.SetWidth(max(GetViewContext().InnerWidth(width)-InputPaddingWidth, 1))
}

// SetFocused focuses or blurs the textarea
func (c *Composer) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Composer) IsFocused() bool {
	return c.focused
}

// Value returns the trimmed input text
func (c *Composer) Value() string {
	return strings.TrimSpace(c.input.Value())
}

// SetValue replaces the input text
func (c *Composer) SetValue(value string) {
	c.input.SetValue(value)
}

// Reset clears the input
func (c *Composer) Reset() {
	c.input.Reset()
}

// Update forwards key input to the textarea while focused
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the composer with its border
func (c *Composer) View() string {
	style := ChatInputStyle
	if c.focused {
		style = ChatInputFocusedStyle
	}
	return style.Width(c.width).Render(c.input.View())
}
