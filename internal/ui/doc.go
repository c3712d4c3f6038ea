// Package ui provides the visual components of the nicorai TUI.
//
// # Overview
//
// Components follow the Bubble Tea Model-Update-View pattern and are styled
// with Lipgloss. They hold presentation state only; which surfaces are shown
// is decided by the orchestrator and applied by the app package.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────┬──────────────────────────────────────────┤
//	│          │                                          │
//	│ Sidebar  │  Presenter (view) or Chat or Fallback    │
//	│          │                                          │
//	│          ├──────────────────────────────────────────┤
//	│          │  Composer                                │
//	├──────────┴──────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below the compact width the sidebar becomes a drawer drawn over the
// content instead of taking a column.
//
// # Components
//
// ViewContext: Singleton holding terminal size and sidebar geometry. All
// size calculations go through it.
//
// Sidebar: Navigable views and chat history. Emits NavSelectedMsg,
// ChatSelectedMsg and NewChatRequestedMsg; collapses to a one-glyph rail.
//
// Chat: Landing screen or transcript, with the pending dynamic view drawn
// inline and a hint for a dismissed one.
//
// Presenter: A navigable page rendered with glamour, or a dynamic view
// (table, cards, chart, items, text).
//
// Fallback: Shown when nothing else is visible.
//
// Modal: Hosts a modals.ModalState (settings, help).
//
// # Styles
//
// Styles live in styles.go and are rebuilt from the active Theme by
// SetTheme, which also refreshes the modal styles and the glamour renderer
// cache.
package ui
