package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/keys"
)

// sidebarItemKind distinguishes navigable views from chat history entries.
type sidebarItemKind int

const (
	itemKindView    sidebarItemKind = iota // A navigable view
	itemKindNewChat                        // The "+ New chat" action
	itemKindChat                           // A chat in the history
)

// sidebarItem is one selectable row in the sidebar.
type sidebarItem struct {
	Kind  sidebarItemKind
	ID    string
	Title string
}

// NavSelectedMsg is emitted when the user opens a navigable view
type NavSelectedMsg struct {
	ViewID string
}

// ChatSelectedMsg is emitted when the user picks a chat from the history
type ChatSelectedMsg struct {
	ChatID string
}

// NewChatRequestedMsg is emitted by the "+ New chat" row
type NewChatRequestedMsg struct{}

// SidebarToggleMsg asks the app to expand or collapse the sidebar
type SidebarToggleMsg struct {
	Expanded bool
}

// Sidebar is the navigation panel: navigable views on top, chat history below.
type Sidebar struct {
	views []config.NavView
	chats []conversation.ChatSummary
	items []sidebarItem

	selectedIdx   int
	selectionSet  bool // the cursor was placed by the user or SelectView
	activeViewID  string
	currentChatID string

	width        int
	height       int
	focused      bool
	expanded     bool
	scrollOffset int
}

// NewSidebar creates a new, expanded sidebar
func NewSidebar() *Sidebar {
	s := &Sidebar{expanded: true}
	s.rebuild()
	return s
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetExpanded switches between the labelled panel and the collapsed rail
func (s *Sidebar) SetExpanded(expanded bool) {
	s.expanded = expanded
}

// IsExpanded reports whether labels are shown
func (s *Sidebar) IsExpanded() bool {
	return s.expanded
}

// SetViews replaces the navigable views
func (s *Sidebar) SetViews(views []config.NavView) {
	s.views = views
	s.rebuild()
}

// SetChats replaces the chat history, newest first
func (s *Sidebar) SetChats(chats []conversation.ChatSummary) {
	s.chats = chats
	s.rebuild()
}

// SetActiveView marks the view currently shown in the content area
func (s *Sidebar) SetActiveView(id string) {
	s.activeViewID = id
}

// SetCurrentChat marks the chat the conversation surface is showing
func (s *Sidebar) SetCurrentChat(id string) {
	s.currentChatID = id
}

// rebuild flattens views and chats into the selectable item list. A cursor
// the user placed stays on the same row when it still exists; otherwise it
// rests on the first row.
func (s *Sidebar) rebuild() {
	var prev *sidebarItem
	if s.selectionSet && s.selectedIdx >= 0 && s.selectedIdx < len(s.items) {
		p := s.items[s.selectedIdx]
		prev = &p
	}

	items := make([]sidebarItem, 0, len(s.views)+len(s.chats)+1)
	for _, v := range s.views {
		items = append(items, sidebarItem{Kind: itemKindView, ID: v.ID, Title: v.Title})
	}
	items = append(items, sidebarItem{Kind: itemKindNewChat, Title: "+ New chat"})
	for _, c := range s.chats {
		title := c.Title
		if title == "" {
			title = "Untitled chat"
		}
		items = append(items, sidebarItem{Kind: itemKindChat, ID: c.ID, Title: title})
	}
	s.items = items

	if prev == nil {
		s.selectedIdx = 0
		return
	}
	for i, it := range items {
		if it.Kind == prev.Kind && it.ID == prev.ID {
			s.selectedIdx = i
			return
		}
	}
	if s.selectedIdx >= len(items) {
		s.selectedIdx = len(items) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// SelectedIndex returns the cursor position
func (s *Sidebar) SelectedIndex() int {
	return s.selectedIdx
}

// ItemCount returns the number of selectable rows
func (s *Sidebar) ItemCount() int {
	return len(s.items)
}

// SelectView moves the cursor to the given navigable view
func (s *Sidebar) SelectView(id string) {
	for i, it := range s.items {
		if it.Kind == itemKindView && it.ID == id {
			s.selectedIdx = i
			s.selectionSet = true
			return
		}
	}
}

// activate returns the intent for the selected row
func (s *Sidebar) activate() tea.Cmd {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.items) {
		return nil
	}
	it := s.items[s.selectedIdx]
	var msg tea.Msg
	switch it.Kind {
	case itemKindView:
		msg = NavSelectedMsg{ViewID: it.ID}
	case itemKindNewChat:
		msg = NewChatRequestedMsg{}
	case itemKindChat:
		msg = ChatSelectedMsg{ChatID: it.ID}
	default:
		return nil
	}
	return func() tea.Msg { return msg }
}

// Update handles navigation keys while the sidebar is focused
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch key.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
		s.selectionSet = true
	case keys.Down, "j":
		if s.selectedIdx < len(s.items)-1 {
			s.selectedIdx++
		}
		s.selectionSet = true
	case keys.Enter:
		return s, s.activate()
	case keys.Left, "h":
		if s.expanded {
			return s, func() tea.Msg { return SidebarToggleMsg{Expanded: false} }
		}
	case keys.Right, "l":
		if !s.expanded {
			return s, func() tea.Msg { return SidebarToggleMsg{Expanded: true} }
		}
	}
	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	var lines []string
	selectedLine := 0
	if s.expanded {
		lines, selectedLine = s.renderExpanded(innerWidth)
	} else {
		lines, selectedLine = s.renderRail(innerWidth)
	}

	// Keep the cursor row on screen.
	if selectedLine < s.scrollOffset {
		s.scrollOffset = selectedLine
	} else if innerHeight > 0 && selectedLine >= s.scrollOffset+innerHeight {
		s.scrollOffset = selectedLine - innerHeight + 1
	}
	maxScroll := max(len(lines)-innerHeight, 0)
	s.scrollOffset = min(max(s.scrollOffset, 0), maxScroll)

	lines = lines[s.scrollOffset:]
	if innerHeight > 0 && len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}

func (s *Sidebar) renderExpanded(innerWidth int) ([]string, int) {
	var lines []string
	selectedLine := 0
	// SidebarItemStyle pads one column each side
	labelWidth := max(innerWidth-2, 1)

	lines = append(lines, SidebarSectionStyle.Render("Views"))
	for i, it := range s.items {
		if it.Kind == itemKindNewChat {
			lines = append(lines, "", SidebarSectionStyle.Render("Chats"))
		}

		marker := "  "
		if s.isActive(it) {
			marker = "• "
		}
		if i == s.selectedIdx {
			marker = "> "
			selectedLine = len(lines)
		}
		label := runewidth.Truncate(marker+it.Title, labelWidth, "…")

		itemStyle := SidebarItemStyle
		switch {
		case i == s.selectedIdx && s.focused:
			itemStyle = SidebarSelectedStyle
		case s.isActive(it):
			itemStyle = SidebarActiveStyle
		case it.Kind == itemKindNewChat:
			itemStyle = SidebarItemStyle.Foreground(ColorTextMuted).Italic(true)
		}
		lines = append(lines, itemStyle.Width(innerWidth).Render(label))
	}
	return lines, selectedLine
}

// renderRail shows one glyph per row: the first grapheme cluster of each title.
func (s *Sidebar) renderRail(innerWidth int) ([]string, int) {
	var lines []string
	selectedLine := 0
	for i, it := range s.items {
		glyph := firstGrapheme(it.Title)
		if it.Kind == itemKindNewChat {
			glyph = "+"
			lines = append(lines, "")
		}

		itemStyle := lipgloss.NewStyle().Width(innerWidth).Align(lipgloss.Center)
		switch {
		case i == s.selectedIdx && s.focused:
			itemStyle = itemStyle.Inherit(SidebarSelectedStyle)
		case s.isActive(it):
			itemStyle = itemStyle.Foreground(ColorSecondary).Bold(true)
		default:
			itemStyle = itemStyle.Foreground(ColorTextMuted)
		}
		if i == s.selectedIdx {
			selectedLine = len(lines)
		}
		lines = append(lines, itemStyle.Render(glyph))
	}
	return lines, selectedLine
}

func (s *Sidebar) isActive(it sidebarItem) bool {
	switch it.Kind {
	case itemKindView:
		return it.ID != "" && it.ID == s.activeViewID
	case itemKindChat:
		return s.activeViewID == "" && it.ID != "" && it.ID == s.currentChatID
	}
	return false
}

// firstGrapheme returns the first user-perceived character of s, upper-cased
// when it is a plain letter.
func firstGrapheme(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "·"
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return strings.ToUpper(cluster)
}
