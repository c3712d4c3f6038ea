package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/nicorai/nicorai/internal/orchestrator"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient footer notice
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg asks the model to drop expired flash messages
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterContext is what the footer needs to pick bindings
type FooterContext struct {
	Mode           orchestrator.Mode
	SidebarFocused bool
	HasPendingView bool
	HasClosedView  bool
	Waiting        bool
	ModalOpen      bool
}

// Footer is the bottom bar with context-aware key bindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	ctx          FooterContext
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+b", Desc: "sidebar"},
			{Key: "ctrl+n", Desc: "new chat"},
			{Key: "ctrl+o", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the state used to choose bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the default sidebar bindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{Text: text, Type: flashType, CreatedAt: time.Now(), Duration: d}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the bindings for the current context
func (f *Footer) Bindings() []KeyBinding {
	c := f.ctx
	switch {
	case c.ModalOpen:
		return []KeyBinding{{"enter", "confirm"}, {"esc", "cancel"}}
	case c.SidebarFocused:
		return f.bindings
	case c.Waiting:
		return []KeyBinding{{"tab", "switch pane"}, {"pgup/dn", "scroll"}}
	}

	switch c.Mode {
	case orchestrator.ModeViewActive, orchestrator.ModeViewActiveFullscreenDynamic:
		return []KeyBinding{{"enter", "ask"}, {"esc", "close view"}, {"ctrl+x", "close chat"}, {"pgup/dn", "scroll"}, {"tab", "switch pane"}}
	case orchestrator.ModeIdleClosed:
		return []KeyBinding{{"enter", "start chatting"}, {"tab", "switch pane"}, {"q", "quit"}}
	}

	out := []KeyBinding{{"enter", "send"}}
	if c.HasPendingView {
		out = append(out, KeyBinding{"ctrl+f", "fullscreen"}, KeyBinding{"ctrl+d", "dismiss"})
	}
	if c.HasClosedView {
		out = append(out, KeyBinding{"ctrl+r", "show response"})
	}
	if c.Mode == orchestrator.ModeChatActive {
		out = append(out, KeyBinding{"ctrl+y", "copy"})
	}
	return append(out, KeyBinding{"ctrl+x", "close chat"}, KeyBinding{"tab", "switch pane"})
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var c = ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, c = "✕", ColorError
	case FlashWarning:
		icon, c = "⚠", ColorWarning
	case FlashSuccess:
		icon, c = "✓", ColorSuccess
	default:
		icon = "ℹ"
	}
	return lipgloss.NewStyle().Foreground(c).Render(icon + " " + f.flashMessage.Text)
}
