package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/keys"
	"github.com/nicorai/nicorai/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.orch.Resize(msg.Width)
		m.applyState()
		return m, nil

	case tea.FocusMsg:
		m.terminalFocused = true
		return m, nil

	case tea.BlurMsg:
		m.terminalFocused = false
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case conversationChangedMsg:
		return m.handleConversationChanged(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case ui.NavSelectedMsg:
		return m.handleNavSelected(msg)

	case ui.ChatSelectedMsg:
		return m.handleChatSelected(msg)

	case ui.NewChatRequestedMsg:
		return m.startNewChat()

	case ui.SidebarToggleMsg:
		m.setSidebarExpanded(msg.Expanded)
		return m, nil

	case ui.StopwatchTickMsg, ui.CompletionFlashTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return m, cmd

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes a key: modal first, then global shortcuts, then the
// focused panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd
	}
	return m.handleMainKey(msg)
}

// handleMainKey handles keys while the content area has focus
func (m *Model) handleMainKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	surf := m.surfaces()
	key := msg.String()

	if surf.ShowFallback {
		if key == keys.Enter {
			return m.startChatting()
		}
		return m, nil
	}

	if key == keys.Enter && (surf.ShowChat || surf.ShowFloatingComposer) {
		return m.sendMessage()
	}

	if surf.ShowViewRenderer {
		switch key {
		case keys.PgUp, keys.PgDown, "home", "end":
			presenter, cmd := m.presenter.Update(msg)
			m.presenter = presenter
			return m, cmd
		}
		if !surf.ShowFloatingComposer {
			presenter, cmd := m.presenter.Update(msg)
			m.presenter = presenter
			return m, cmd
		}
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return m, cmd
}

// handleMouseWheel scrolls whichever surface owns the content area
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m, nil
	}
	if m.surfaces().ShowViewRenderer {
		presenter, cmd := m.presenter.Update(msg)
		m.presenter = presenter
		return m, cmd
	}
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return m, cmd
}
