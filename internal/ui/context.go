package ui

import (
	"sync"

	"github.com/nicorai/nicorai/internal/logger"
)

// ViewContext holds the layout calculations shared by every component.
// All size calculations go through it.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int

	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// SidebarWidth is the drawn sidebar width, MainWidth what is left for the
	// content area. In a compact viewport an expanded sidebar is a drawer that
	// takes the whole width and a collapsed one is hidden.
	SidebarWidth int
	MainWidth    int

	SidebarExpanded bool
	Compact         bool

	mu sync.Mutex
}

var (
	ctx     *ViewContext
	ctxOnce sync.Once
)

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight:    HeaderHeight,
			FooterHeight:    FooterHeight,
			SidebarExpanded: true,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions for a new terminal size.
// Called from the main event loop.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	v.TerminalWidth = width
	v.TerminalHeight = height
	v.recalculate()
}

// SetSidebar updates the sidebar layout hints and recalculates widths
func (v *ViewContext) SetSidebar(expanded, compact bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.SidebarExpanded = expanded
	v.Compact = compact
	v.recalculate()
}

// recalculate derives the panel sizes; mu must be held.
func (v *ViewContext) recalculate() {
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = v.TerminalHeight - v.HeaderHeight - v.FooterHeight

	switch {
	case v.Compact && v.SidebarExpanded:
		v.SidebarWidth = v.TerminalWidth
		v.MainWidth = 0
	case v.Compact:
		v.SidebarWidth = 0
		v.MainWidth = v.TerminalWidth
	case v.SidebarExpanded:
		v.SidebarWidth = ExpandedSidebarWidth
		v.MainWidth = v.TerminalWidth - v.SidebarWidth
	default:
		v.SidebarWidth = CollapsedSidebarWidth
		v.MainWidth = v.TerminalWidth - v.SidebarWidth
	}

	logger.WithComponent("ui").Debug("layout updated",
		"width", v.TerminalWidth,
		"height", v.TerminalHeight,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"mainWidth", v.MainWidth,
		"compact", v.Compact,
	)
}

// IsDrawerOpen reports whether the sidebar currently covers the content area
func (v *ViewContext) IsDrawerOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Compact && v.SidebarExpanded
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}
