package orchestrator

import "github.com/nicorai/nicorai/internal/dynview"

// DefaultCompactWidth is the terminal width below which the layout is compact
const DefaultCompactWidth = 100

// Event is anything Reduce accepts. The set is closed.
type Event interface {
	eventName() string
}

// Mount resets the snapshot to the landing presentation.
type Mount struct{}

// ConversationChanged reports that the active conversation switched.
type ConversationChanged struct {
	ChatID       string
	MessageCount int
}

// MessageSent reports a finished composer action. With IsClosing unset it is a
// completed exchange; with IsClosing set it is a close request, or a
// fullscreen promotion when View is present and IsClosed is unset.
type MessageSent struct {
	IsClosing bool
	View      *dynview.View
	IsClosed  bool
}

// NavClick selects a navigable view from the sidebar.
type NavClick struct {
	ViewID string
}

// CloseView closes the active navigable view.
type CloseView struct{}

// KeyPress is a global key. Only "esc" changes state.
type KeyPress struct {
	Key string
}

// StartChatting leaves the idle fallback for a fresh conversation.
type StartChatting struct{}

// SidebarToggled records the navigation panel's expanded state.
type SidebarToggled struct {
	Expanded bool
}

// ViewportResized reports a new terminal width. Breakpoint <= 0 means
// DefaultCompactWidth.
type ViewportResized struct {
	Width      int
	Breakpoint int
}

func (Mount) eventName() string               { return "mount" }
func (ConversationChanged) eventName() string { return "conversation-changed" }
func (MessageSent) eventName() string         { return "message-sent" }
func (NavClick) eventName() string            { return "nav-click" }
func (CloseView) eventName() string           { return "close-view" }
func (KeyPress) eventName() string            { return "key" }
func (StartChatting) eventName() string       { return "start-chatting" }
func (SidebarToggled) eventName() string      { return "sidebar-toggled" }
func (ViewportResized) eventName() string     { return "viewport-resized" }

// EventName returns a short label for logging
func EventName(ev Event) string {
	if ev == nil {
		return "nil"
	}
	return ev.eventName()
}
