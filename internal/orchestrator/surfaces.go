package orchestrator

import "github.com/nicorai/nicorai/internal/dynview"

// Layout carries the sidebar widths used to offset the content area.
type Layout struct {
	ExpandedSidebarWidth  int
	CollapsedSidebarWidth int
}

// Surfaces says what the main area should render for a snapshot.
type Surfaces struct {
	ShowViewRenderer bool
	ViewID           string
	// ViewContent is set only for the reserved dynamic-view slot.
	ViewContent *dynview.View

	// When both ShowViewRenderer and ShowChat are set the view renderer owns
	// the content area and the chat is drawn below it if room remains.
	ShowChat             bool
	ShowFallback         bool
	ShowFloatingComposer bool

	// ContentOffset is the column where the content area starts. In a compact
	// viewport the sidebar draws over the content, so the offset is zero.
	ContentOffset int
}

// Select derives the visible surfaces from s.
func Select(s State, l Layout) Surfaces {
	var out Surfaces

	if s.ActiveViewID != nil {
		out.ShowViewRenderer = true
		out.ViewID = *s.ActiveViewID
		if out.ViewID == ReservedDynamicViewID {
			out.ViewContent = s.FullscreenDynamicView
		}
	}
	out.ShowChat = s.IsChatVisible
	out.ShowFallback = s.ActiveViewID == nil && !s.IsChatVisible
	out.ShowFloatingComposer = !s.IsInitialView && !s.IsChatVisible && s.ActiveViewID != nil

	switch {
	case s.IsCompactViewport:
		out.ContentOffset = 0
	case s.IsSidebarExpanded:
		out.ContentOffset = l.ExpandedSidebarWidth
	default:
		out.ContentOffset = l.CollapsedSidebarWidth
	}
	return out
}
