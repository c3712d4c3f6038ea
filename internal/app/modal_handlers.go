package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/keys"
	"github.com/nicorai/nicorai/internal/ui"
	"github.com/nicorai/nicorai/internal/ui/modals"
)

// handleModalKey dispatches key events to the handler for the visible modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *modals.SettingsState:
		return m.handleSettingsModal(msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(msg, s)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// themeOptions lists the built-in themes for the settings form
func themeOptions() []modals.ThemeOption {
	names := ui.ThemeNames()
	out := make([]modals.ThemeOption, 0, len(names))
	for _, name := range names {
		out = append(out, modals.ThemeOption{Key: string(name), Name: ui.GetTheme(name).Name})
	}
	return out
}

// showSettingsModal opens the settings form seeded from the config
func (m *Model) showSettingsModal() {
	m.modal.Show(modals.NewSettingsState(
		themeOptions(),
		string(ui.CurrentThemeName()),
		m.config.GetCompactWidth(),
		m.config.GetNotificationsEnabled(),
		m.orch.Snapshot().IsSidebarExpanded,
	))
}

// handleSettingsModal handles key events for the settings modal
func (m *Model) handleSettingsModal(msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.saveSettings(state)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// saveSettings applies the form and persists it
func (m *Model) saveSettings(state *modals.SettingsState) (tea.Model, tea.Cmd) {
	width, err := state.GetCompactWidth()
	if err != nil {
		m.modal.SetError(err.Error())
		return m, nil
	}

	if state.ThemeChanged() {
		theme := state.GetSelectedTheme()
		ui.SetThemeByName(theme)
		m.config.SetTheme(theme)
	}

	m.config.SetCompactWidth(width)
	m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
	m.config.SetSidebarExpanded(state.GetSidebarExpanded())

	m.orch.SetCompactWidth(width)
	if m.width > 0 {
		m.orch.Resize(m.width)
	}
	m.orch.ToggleSidebar(state.GetSidebarExpanded())

	m.modal.Hide()
	m.applyState()

	if err := m.saveConfig(); err != nil {
		return m, m.ShowFlashError("Failed to save settings")
	}
	m.log.Info("settings saved", "theme", m.config.GetTheme(), "compactWidth", width)
	return m, m.ShowFlashSuccess("Settings saved")
}

// handleHelpModal handles key events for the help modal. Enter runs the
// highlighted shortcut.
func (m *Model) handleHelpModal(msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch msg.String() {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		sc := state.SelectedShortcut()
		m.modal.Hide()
		if sc == nil {
			return m, nil
		}
		if result, cmd, handled := m.ExecuteShortcut(sc.Key); handled {
			return result, cmd
		}
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
