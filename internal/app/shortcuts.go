package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/clipboard"
	"github.com/nicorai/nicorai/internal/keys"
	"github.com/nicorai/nicorai/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "ctrl+f")
	DisplayKey      string                              // Display name in help; defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSidebar bool                                // Must have the sidebar focused
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryChat       = "Chat"
	CategoryViews      = "Views"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryChat,
	CategoryViews,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of keyboard shortcuts. Entries
// appear in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Switch between sidebar and content",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:         keys.CtrlB,
		Description: "Expand or collapse the sidebar",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleSidebar,
	},
	{
		Key:         keys.Escape,
		Description: "Close the open view",
		Category:    CategoryNavigation,
		Handler:     shortcutEscape,
	},

	// Chat
	{
		Key:         keys.CtrlN,
		Description: "Start a new chat",
		Category:    CategoryChat,
		Handler:     shortcutNewChat,
	},
	{
		Key:         keys.CtrlX,
		Description: "Close the chat",
		Category:    CategoryChat,
		Handler:     shortcutCloseChat,
		Condition:   func(m *Model) bool { return m.surfaces().ShowChat || m.surfaces().ShowFloatingComposer },
	},
	{
		Key:         keys.CtrlY,
		Description: "Copy the last reply or open view",
		Category:    CategoryChat,
		Handler:     shortcutCopy,
	},

	// Views
	{
		Key:         keys.CtrlF,
		Description: "Open the attached view fullscreen",
		Category:    CategoryViews,
		Handler:     shortcutPromoteView,
		Condition:   func(m *Model) bool { return m.orch.Snapshot().PendingDynamicView != nil },
	},
	{
		Key:         keys.CtrlD,
		Description: "Dismiss the attached view",
		Category:    CategoryViews,
		Handler:     shortcutDismissView,
		Condition:   func(m *Model) bool { return m.orch.Snapshot().PendingDynamicView != nil },
	},
	{
		Key:         keys.CtrlR,
		Description: "Show the dismissed view again",
		Category:    CategoryViews,
		Handler:     shortcutReopenView,
		Condition:   func(m *Model) bool { return m.orch.Snapshot().ClosedDynamicView != nil },
	},

	// General
	// Note: "?" (help) is handled in ExecuteShortcut to avoid an init cycle
	{
		Key:         keys.CtrlO,
		Description: "Settings",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Key:             "q",
		Description:     "Quit",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is defined separately because its handler reads the registry
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from it
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move in the sidebar", Category: CategoryNavigation},
	{DisplayKey: "←/→ or h/l", Description: "Collapse or expand the sidebar", Category: CategoryNavigation},
	{DisplayKey: "pgup/pgdown", Description: "Scroll the chat or view", Category: CategoryNavigation},
	{DisplayKey: "enter", Description: "Open item / send message / start chatting", Category: CategoryNavigation},
}

// isShortcutApplicable checks the guards of s against the current state
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus != FocusSidebar {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guards passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "focus", m.focus.String())
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds help sections from the shortcuts whose
// guards pass right now, plus the display-only entries.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}
	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	for _, s := range displayOnly {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.setSidebarExpanded(!m.orch.Snapshot().IsSidebarExpanded)
	return m, nil
}

func shortcutEscape(m *Model) (tea.Model, tea.Cmd) {
	return m.escape()
}

func shortcutNewChat(m *Model) (tea.Model, tea.Cmd) {
	return m.startNewChat()
}

func shortcutCloseChat(m *Model) (tea.Model, tea.Cmd) {
	return m.closeChat()
}

func shortcutPromoteView(m *Model) (tea.Model, tea.Cmd) {
	return m.promotePendingView()
}

func shortcutDismissView(m *Model) (tea.Model, tea.Cmd) {
	return m.dismissPendingView()
}

func shortcutReopenView(m *Model) (tea.Model, tea.Cmd) {
	return m.reopenClosedView()
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	text := m.copyableText()
	if strings.TrimSpace(text) == "" {
		return m, m.ShowFlashWarning("Nothing to copy")
	}
	if err := clipboard.WriteText(text); err != nil {
		m.log.Error("failed to copy to clipboard", "error", err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Copied to clipboard")
}

// copyableText picks what ctrl+y copies: the open view, then the attached
// view, then the last reply.
func (m *Model) copyableText() string {
	if m.surfaces().ShowViewRenderer {
		return m.presenter.PlainText()
	}
	s := m.orch.Snapshot()
	if s.PendingDynamicView != nil {
		return s.PendingDynamicView.PlainText()
	}
	if last := m.chat.LastResponse(); last != nil {
		return last.Content
	}
	return ""
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.showSettingsModal()
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	allShortcuts := append(ShortcutRegistry[:len(ShortcutRegistry):len(ShortcutRegistry)], helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpState(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
