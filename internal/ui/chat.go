package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/dynview"
	"github.com/nicorai/nicorai/internal/keys"
)

// assistantName labels assistant messages in the transcript
const assistantName = "nicorai"

// Chat is the conversation surface: landing screen or transcript, with the
// pending dynamic view inline and the composer underneath.
type Chat struct {
	viewport viewport.Model
	composer *Composer
	width    int
	height   int
	focused  bool

	messages []conversation.Message
	landing  bool
	waiting  bool
	spinner  *SpinnerState

	pendingView *dynview.View
	closedView  *dynview.View
}

// NewChat creates a new chat panel showing the landing screen
func NewChat() *Chat {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		composer: NewComposer(),
		landing:  true,
		spinner:  NewSpinnerState(),
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	chatPanelHeight := height - InputTotalHeight
	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(max(ctx.InnerHeight(chatPanelHeight), 1))
	c.composer.SetWidth(width)
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	c.composer.SetFocused(focused)
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// Composer returns the embedded composer
func (c *Chat) Composer() *Composer {
	return c.composer
}

// SetMessages replaces the transcript
func (c *Chat) SetMessages(messages []conversation.Message) {
	c.messages = messages
	c.updateContent()
}

// Messages returns the transcript being shown
func (c *Chat) Messages() []conversation.Message {
	return c.messages
}

// AddUserMessage appends a message optimistically while the reply is pending
func (c *Chat) AddUserMessage(content string) {
	c.messages = append(c.messages, conversation.Message{
		Role:      conversation.RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	})
	c.updateContent()
}

// SetLanding toggles the welcome screen shown while the chat is empty
func (c *Chat) SetLanding(landing bool) {
	c.landing = landing
	c.updateContent()
}

// SetDynamicViews sets the views drawn inline (pending) or as a hint (closed)
func (c *Chat) SetDynamicViews(pending, closed *dynview.View) {
	c.pendingView = pending
	c.closedView = closed
	c.updateContent()
}

// LastResponse returns the newest assistant message, if any
func (c *Chat) LastResponse() *conversation.Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == conversation.RoleAssistant {
			return &c.messages[i]
		}
	}
	return nil
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sections []string
	if c.landing && len(c.messages) == 0 {
		sections = append(sections, renderLanding(wrapWidth))
	}

	for _, msg := range c.messages {
		roleStyle, roleName := ChatAssistantStyle, assistantName
		if msg.Role == conversation.RoleUser {
			roleStyle, roleName = ChatUserStyle, "You"
		}
		block := roleStyle.Render(roleName+":") + "\n" + renderMarkdown(strings.TrimSpace(msg.Content), wrapWidth)
		sections = append(sections, block)
	}

	switch {
	case c.pendingView != nil:
		sections = append(sections, renderPendingView(c.pendingView, wrapWidth))
	case c.closedView != nil:
		sections = append(sections, renderClosedHint(c.closedView))
	}

	if c.waiting {
		sections = append(sections, renderWaitingStatus(c.spinner.Verb, c.spinner.Idx, time.Since(c.spinner.StartTime)))
	} else if c.spinner.FlashFrame >= 0 {
		sections = append(sections, renderCompletionFlash(c.spinner.FlashFrame))
	}

	if len(sections) == 0 {
		sections = append(sections, ChatHintStyle.Render("Start a conversation..."))
	}

	c.viewport.SetContent(strings.Join(sections, "\n\n"))
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg.(type) {
	case StopwatchTickMsg:
		return c, c.handleStopwatchTick()
	case CompletionFlashTickMsg:
		return c, c.handleCompletionFlashTick()
	}

	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		if !c.focused {
			return c, nil
		}
		switch keyMsg.String() {
		case keys.PgUp, keys.PgDown, "ctrl+up", "ctrl+down", "home", "end":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
		if c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.composer, cmd = c.composer.Update(msg)
		return c, cmd
	}

	// Mouse wheel and other non-key events scroll the transcript
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, c.composer.View())
}

// TranscriptText returns the transcript without styling
func (c *Chat) TranscriptText() string {
	return ansi.Strip(c.viewport.GetContent())
}
