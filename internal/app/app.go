package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/logger"
	"github.com/nicorai/nicorai/internal/orchestrator"
	"github.com/nicorai/nicorai/internal/ui"
)

// Focus represents which panel receives key input
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	if f == FocusSidebar {
		return "sidebar"
	}
	return "main"
}

// Model is the main Bubble Tea model. It translates terminal input into
// orchestrator events and projects the resulting snapshot onto the UI
// components.
type Model struct {
	config  *config.Config
	service *conversation.Service
	orch    *orchestrator.Orchestrator
	version string

	header    *ui.Header
	footer    *ui.Footer
	sidebar   *ui.Sidebar
	chat      *ui.Chat
	presenter *ui.Presenter
	fallback  *ui.Fallback
	modal     *ui.Modal

	width  int
	height int
	focus  Focus

	// terminalFocused tracks tea.FocusMsg/tea.BlurMsg for notifications
	terminalFocused bool

	// sendCancel aborts the in-flight reply, nil when idle
	sendCancel context.CancelFunc

	log *slog.Logger
}

// conversationChangedMsg carries one notification from the orchestrator's
// subscription into the event loop.
type conversationChangedMsg struct {
	Event conversation.Changed
}

// ReplyMsg is sent when a Send completes. Reply is fully resolved.
type ReplyMsg struct {
	Text  string
	Reply conversation.Reply
	Err   error
}

// New creates a new app model. The orchestrator is started here so the
// subscription exists before the first event arrives.
func New(cfg *config.Config, svc *conversation.Service, version string) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:          cfg,
		service:         svc,
		orch:            orchestrator.New(svc, cfg.GetCompactWidth()),
		version:         version,
		header:          ui.NewHeader(),
		footer:          ui.NewFooter(),
		sidebar:         ui.NewSidebar(),
		chat:            ui.NewChat(),
		presenter:       ui.NewPresenter(),
		fallback:        ui.NewFallback(),
		modal:           ui.NewModal(),
		focus:           FocusMain,
		terminalFocused: true,
		log:             logger.WithComponent("app"),
	}

	m.sidebar.SetViews(cfg.GetViews())
	m.orch.Start()
	m.orch.ToggleSidebar(cfg.GetSidebarExpanded())
	m.applyState()

	m.log.Info("app created", "version", version, "views", len(cfg.GetViews()))
	return m
}

// Init starts listening for conversation changes
func (m *Model) Init() tea.Cmd {
	return m.listenForConversationChanges()
}

// Close releases the subscription and aborts a pending reply
func (m *Model) Close() {
	if m.sendCancel != nil {
		m.sendCancel()
		m.sendCancel = nil
	}
	m.orch.Stop()
}

// Snapshot exposes the orchestrator state, read-only
func (m *Model) Snapshot() orchestrator.State {
	return m.orch.Snapshot()
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// IsWaiting reports whether a reply is outstanding
func (m *Model) IsWaiting() bool {
	return m.chat.IsWaiting()
}

// layout is the sidebar geometry used to offset the content area
func layout() orchestrator.Layout {
	return orchestrator.Layout{
		ExpandedSidebarWidth:  ui.ExpandedSidebarWidth,
		CollapsedSidebarWidth: ui.CollapsedSidebarWidth,
	}
}

// surfaces is the render selection for the current snapshot
func (m *Model) surfaces() orchestrator.Surfaces {
	return m.orch.Surfaces(layout())
}

// listenForConversationChanges waits for the next notification. The handler
// re-arms it; a closed subscription ends the loop.
func (m *Model) listenForConversationChanges() tea.Cmd {
	ch := m.orch.Changes()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return conversationChangedMsg{Event: ev}
	}
}

// applyState pushes the orchestrator snapshot into every component. Called
// after each dispatch.
func (m *Model) applyState() {
	s := m.orch.Snapshot()

	ui.GetViewContext().SetSidebar(s.IsSidebarExpanded, s.IsCompactViewport)
	m.sidebar.SetExpanded(s.IsSidebarExpanded)
	m.sidebar.SetChats(m.service.Chats())
	m.sidebar.SetCurrentChat(m.service.CurrentChatID())
	m.sidebar.SetActiveView(s.ActiveView())

	m.chat.SetLanding(s.IsInitialView)
	m.chat.SetDynamicViews(s.PendingDynamicView, s.ClosedDynamicView)
	m.refreshTranscript()

	surf := m.surfaces()
	switch {
	case !surf.ShowViewRenderer:
		m.presenter.Clear()
	case surf.ViewID == orchestrator.ReservedDynamicViewID:
		m.presenter.ShowDynamic(surf.ViewID, surf.ViewContent)
	default:
		if v := m.config.GetView(surf.ViewID); v != nil {
			m.presenter.ShowPage(*v)
		} else {
			m.presenter.ShowMissing(surf.ViewID)
		}
	}

	m.updateHeader(s)
	if m.width > 0 && m.height > 0 {
		m.updateSizes()
	}
	m.applyFocus()
}

// refreshTranscript reloads the chat from the service. The landing screen
// hides the transcript, and an outstanding reply keeps the optimistic copy.
func (m *Model) refreshTranscript() {
	if m.chat.IsWaiting() {
		return
	}
	if m.orch.Snapshot().IsInitialView {
		m.chat.SetMessages(nil)
		return
	}
	m.chat.SetMessages(m.service.CurrentChatMessages())
}

func (m *Model) updateHeader(s orchestrator.State) {
	m.header.SetBadge(s.Mode().String())
	switch {
	case s.HasActiveView():
		m.header.SetSubtitle(m.presenter.Title())
	case !s.IsInitialView:
		m.header.SetSubtitle(m.currentChatTitle())
	default:
		m.header.SetSubtitle("")
	}
}

func (m *Model) currentChatTitle() string {
	id := m.service.CurrentChatID()
	for _, c := range m.service.Chats() {
		if c.ID == id {
			return c.Title
		}
	}
	return ""
}

// applyFocus hands key focus to the components that own it
func (m *Model) applyFocus() {
	surf := m.surfaces()
	main := m.focus == FocusMain

	m.sidebar.SetFocused(!main)
	m.chat.SetFocused(main && (surf.ShowChat || surf.ShowFloatingComposer))
	m.presenter.SetFocused(main && surf.ShowViewRenderer)
}

// setFocus switches panels
func (m *Model) setFocus(f Focus) {
	if m.focus != f {
		m.log.Debug("focus changed", "from", m.focus.String(), "to", f.String())
	}
	m.focus = f
	m.applyFocus()
}

// toggleFocus switches between the sidebar and the main area
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.setFocus(FocusMain)
	} else {
		m.setFocus(FocusSidebar)
	}
}

// saveConfig persists settings. Configs not backed by a file (tests, the
// built-in default) are left in memory.
func (m *Model) saveConfig() error {
	if m.config.Path() == "" {
		m.log.Debug("config has no file, skipping save")
		return nil
	}
	if err := m.config.Save(); err != nil {
		m.log.Error("failed to save config", "error", err)
		return err
	}
	return nil
}
