// Package orchestrator decides which surface owns the main content area:
// the landing welcome, the chat transcript, a navigable view, or a dynamic
// view promoted to fullscreen. All transitions go through Reduce.
package orchestrator

import (
	"fmt"

	"github.com/nicorai/nicorai/internal/dynview"
	apperrors "github.com/nicorai/nicorai/internal/errors"
)

// ReservedDynamicViewID is the navigable-view slot used for fullscreen dynamic views.
const ReservedDynamicViewID = "dynamic-view"

// State is the presentation snapshot. Only Reduce produces new values.
type State struct {
	// ActiveViewID is the navigable view occupying the content area, nil for none
	ActiveViewID *string

	IsChatVisible bool
	IsInitialView bool // landing welcome instead of the transcript
	HasMessages   bool

	// At most one of Pending and Closed is set.
	PendingDynamicView *dynview.View
	ClosedDynamicView  *dynview.View
	// Set only while ActiveViewID is ReservedDynamicViewID.
	FullscreenDynamicView *dynview.View

	IsSidebarExpanded bool
	IsCompactViewport bool
}

// Initial returns the snapshot a fresh orchestrator starts from
func Initial() State {
	return State{
		IsChatVisible:     true,
		IsInitialView:     true,
		IsSidebarExpanded: true,
	}
}

// ActiveView returns the active view id, or "" when none is active
func (s State) ActiveView() string {
	if s.ActiveViewID == nil {
		return ""
	}
	return *s.ActiveViewID
}

// HasActiveView reports whether a navigable view is active
func (s State) HasActiveView() bool {
	return s.ActiveViewID != nil
}

// IsDynamicSlot reports whether the active view is the reserved dynamic-view slot
func (s State) IsDynamicSlot() bool {
	return s.ActiveViewID != nil && *s.ActiveViewID == ReservedDynamicViewID
}

// Equal compares two snapshots field by field. Dynamic views compare structurally.
func (s State) Equal(o State) bool {
	if (s.ActiveViewID == nil) != (o.ActiveViewID == nil) {
		return false
	}
	if s.ActiveViewID != nil && *s.ActiveViewID != *o.ActiveViewID {
		return false
	}
	return s.IsChatVisible == o.IsChatVisible &&
		s.IsInitialView == o.IsInitialView &&
		s.HasMessages == o.HasMessages &&
		s.IsSidebarExpanded == o.IsSidebarExpanded &&
		s.IsCompactViewport == o.IsCompactViewport &&
		dynview.Equal(s.PendingDynamicView, o.PendingDynamicView) &&
		dynview.Equal(s.ClosedDynamicView, o.ClosedDynamicView) &&
		dynview.Equal(s.FullscreenDynamicView, o.FullscreenDynamicView)
}

// String renders a compact description for logs
func (s State) String() string {
	view := "-"
	if s.ActiveViewID != nil {
		view = *s.ActiveViewID
	}
	return fmt.Sprintf("mode=%s view=%s chat=%t initial=%t pending=%t closed=%t fullscreen=%t",
		s.Mode(), view, s.IsChatVisible, s.IsInitialView,
		s.PendingDynamicView != nil, s.ClosedDynamicView != nil, s.FullscreenDynamicView != nil)
}

// Mode is the presentation mode derived from a snapshot. It is never stored.
type Mode int

const (
	ModeLanding Mode = iota
	ModeChatActive
	ModeViewActive
	ModeViewActiveFullscreenDynamic
	ModeIdleClosed
)

func (m Mode) String() string {
	switch m {
	case ModeLanding:
		return "landing"
	case ModeChatActive:
		return "chat"
	case ModeViewActive:
		return "view"
	case ModeViewActiveFullscreenDynamic:
		return "fullscreen-dynamic"
	case ModeIdleClosed:
		return "idle-closed"
	default:
		return "unknown"
	}
}

// Mode derives the presentation mode. An active view takes precedence over a
// visible chat.
func (s State) Mode() Mode {
	switch {
	case s.ActiveViewID != nil:
		if s.IsDynamicSlot() && s.FullscreenDynamicView != nil {
			return ModeViewActiveFullscreenDynamic
		}
		return ModeViewActive
	case !s.IsChatVisible:
		return ModeIdleClosed
	case s.IsInitialView:
		return ModeLanding
	default:
		return ModeChatActive
	}
}

// CheckInvariants reports the first broken snapshot invariant, or nil.
func CheckInvariants(s State) error {
	if s.FullscreenDynamicView != nil && !s.IsDynamicSlot() {
		return apperrors.InvariantViolated("fullscreen slot",
			fmt.Sprintf("fullscreen view set while active view is %q", s.ActiveView()))
	}
	if s.PendingDynamicView != nil && s.ClosedDynamicView != nil {
		return apperrors.InvariantViolated("dynamic view exclusivity", "pending and closed views both set")
	}
	if s.ActiveViewID != nil && *s.ActiveViewID == "" {
		return apperrors.InvariantViolated("active view", "empty view id")
	}
	return nil
}
