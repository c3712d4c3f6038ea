package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/conversation"
	apperrors "github.com/nicorai/nicorai/internal/errors"
	"github.com/nicorai/nicorai/internal/notification"
	"github.com/nicorai/nicorai/internal/ui"
)

// handleConversationChanged applies a notification and re-arms the listener
func (m *Model) handleConversationChanged(msg conversationChangedMsg) (tea.Model, tea.Cmd) {
	m.log.Debug("conversation changed", "chatID", msg.Event.ChatID, "messages", len(msg.Event.Messages))
	m.orch.ConversationChanged(msg.Event)
	m.applyState()
	return m, m.listenForConversationChanges()
}

// handleNavSelected activates a navigable view from the sidebar
func (m *Model) handleNavSelected(msg ui.NavSelectedMsg) (tea.Model, tea.Cmd) {
	m.orch.NavClick(msg.ViewID)
	m.closeDrawer()
	m.setFocus(FocusMain)
	m.applyState()
	return m, nil
}

// handleChatSelected switches conversations. The orchestrator hears about it
// through the subscription.
func (m *Model) handleChatSelected(msg ui.ChatSelectedMsg) (tea.Model, tea.Cmd) {
	if m.chat.IsWaiting() {
		return m, m.ShowFlashWarning("Wait for the reply before switching chats")
	}
	if err := m.service.SelectChat(msg.ChatID); err != nil {
		m.log.Warn("select chat failed", "chatID", msg.ChatID, "error", err)
		return m, m.ShowFlashError("Chat not found")
	}
	m.closeDrawer()
	m.setFocus(FocusMain)
	return m, nil
}

// startNewChat handles ctrl+n and the sidebar's new-chat row
func (m *Model) startNewChat() (tea.Model, tea.Cmd) {
	if m.chat.IsWaiting() {
		return m, m.ShowFlashWarning("Wait for the reply before starting a new chat")
	}
	m.closeDrawer()
	m.setFocus(FocusMain)
	return m.startChatting()
}

// startChatting creates a conversation and shows the landing chat
func (m *Model) startChatting() (tea.Model, tea.Cmd) {
	m.orch.StartChatting()
	m.applyState()
	return m, nil
}

// sendMessage submits the composer text and waits for the reply off the
// event loop.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	composer := m.chat.Composer()
	text := composer.Value()
	if text == "" || m.chat.IsWaiting() {
		return m, nil
	}

	composer.Reset()
	m.chat.AddUserMessage(text)
	m.chat.SetWaiting(true)

	timeout := time.Duration(m.config.GetResponseTimeout()) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	m.sendCancel = cancel

	m.log.Debug("sending message", "length", len(text), "timeout", timeout)
	svc := m.service
	send := func() tea.Msg {
		defer cancel()
		reply, err := svc.Send(ctx, text)
		return ReplyMsg{Text: text, Reply: reply, Err: err}
	}
	return m, tea.Batch(send, ui.StopwatchTick())
}

// handleReply records a completed send. The reply data is already resolved;
// the orchestrator only sees the view that came with it.
func (m *Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.sendCancel = nil
	m.chat.SetWaiting(false)

	if msg.Err != nil {
		m.log.Warn("reply failed", "error", msg.Err)
		m.refreshTranscript()
		if apperrors.Is(msg.Err, apperrors.KindTimeout) {
			return m, m.ShowFlashError("The reply timed out")
		}
		return m, m.ShowFlashError("Could not get a reply")
	}

	m.orch.MessageSent(false, msg.Reply.View, false)
	m.applyState()

	cmds := []tea.Cmd{m.chat.StartCompletionFlash()}
	if !m.terminalFocused && m.config.GetNotificationsEnabled() {
		cmds = append(cmds, notifyReply(msg.Reply))
	}
	return m, tea.Batch(cmds...)
}

// notifyReply sends a desktop notification off the event loop
func notifyReply(reply conversation.Reply) tea.Cmd {
	var summary string
	if reply.View != nil {
		summary = reply.View.Summary()
	}
	return func() tea.Msg {
		// Failures are logged by the notification package
		_ = notification.ReplyReady(summary)
		return nil
	}
}

// setSidebarExpanded records the navigation panel state and persists it
func (m *Model) setSidebarExpanded(expanded bool) {
	m.orch.ToggleSidebar(expanded)
	m.config.SetSidebarExpanded(expanded)
	_ = m.saveConfig()
	m.applyState()
}

// closeDrawer hides the sidebar drawer in a compact viewport so the content
// it opened is visible.
func (m *Model) closeDrawer() {
	s := m.orch.Snapshot()
	if s.IsCompactViewport && s.IsSidebarExpanded {
		m.orch.ToggleSidebar(false)
	}
}

// escape closes the active view; without one it closes the drawer
func (m *Model) escape() (tea.Model, tea.Cmd) {
	s := m.orch.Snapshot()
	if !s.HasActiveView() && s.IsCompactViewport && s.IsSidebarExpanded {
		m.orch.ToggleSidebar(false)
	} else {
		m.orch.Escape()
	}
	m.applyState()
	return m, nil
}

// closeChat handles ctrl+x: the chat closes to the landing screen, or away
func (m *Model) closeChat() (tea.Model, tea.Cmd) {
	m.orch.MessageSent(true, nil, false)
	m.applyState()
	return m, nil
}

// promotePendingView opens the pending dynamic view fullscreen
func (m *Model) promotePendingView() (tea.Model, tea.Cmd) {
	v := m.orch.Snapshot().PendingDynamicView
	if v == nil {
		return m, nil
	}
	m.orch.MessageSent(true, v, false)
	m.applyState()
	return m, nil
}

// dismissPendingView hides the pending view behind a "show response" hint
func (m *Model) dismissPendingView() (tea.Model, tea.Cmd) {
	v := m.orch.Snapshot().PendingDynamicView
	if v == nil {
		return m, nil
	}
	m.orch.MessageSent(false, v, true)
	m.applyState()
	return m, nil
}

// reopenClosedView brings a dismissed view back inline
func (m *Model) reopenClosedView() (tea.Model, tea.Cmd) {
	v := m.orch.Snapshot().ClosedDynamicView
	if v == nil {
		return m, nil
	}
	m.orch.MessageSent(false, v, false)
	m.applyState()
	return m, nil
}
