package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nicorai/nicorai/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)

	// An open drawer covers the content; size it as if the drawer were shut
	mainWidth := ctx.MainWidth
	if mainWidth <= 0 {
		mainWidth = ctx.TerminalWidth
	}

	presenterHeight := ctx.ContentHeight
	if m.surfaces().ShowFloatingComposer {
		presenterHeight -= ui.InputTotalHeight
	}
	m.chat.SetSize(mainWidth, ctx.ContentHeight)
	m.presenter.SetSize(mainWidth, presenterHeight)
	m.fallback.SetSize(mainWidth, ctx.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	ctx := ui.GetViewContext()
	var body string
	switch {
	case ctx.IsDrawerOpen():
		body = m.sidebar.View()
	case ctx.SidebarWidth == 0:
		body = m.mainView()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.mainView())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}

// mainView renders the surface that owns the content area
func (m *Model) mainView() string {
	surf := m.surfaces()
	switch {
	case surf.ShowViewRenderer && surf.ShowFloatingComposer:
		return lipgloss.JoinVertical(lipgloss.Left, m.presenter.View(), m.chat.Composer().View())
	case surf.ShowViewRenderer:
		return m.presenter.View()
	case surf.ShowChat:
		return m.chat.View()
	default:
		return m.fallback.View()
	}
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	s := m.orch.Snapshot()
	m.footer.SetContext(ui.FooterContext{
		Mode:           s.Mode(),
		SidebarFocused: m.focus == FocusSidebar,
		HasPendingView: s.PendingDynamicView != nil,
		HasClosedView:  s.ClosedDynamicView != nil,
		Waiting:        m.chat.IsWaiting(),
		ModalOpen:      m.modal.IsVisible(),
	})
}
