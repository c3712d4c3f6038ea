package orchestrator

// Transcript gives a synchronous look at the current conversation
type Transcript interface {
	MessageCount() int
}

// Reduce applies one event to prev and returns the next snapshot. It is the
// only place transitions are defined. tr may be nil, which reads as an empty
// transcript.
func Reduce(prev State, ev Event, tr Transcript) State {
	next := prev

	switch e := ev.(type) {
	case Mount:
		next.IsInitialView = true
		next.IsChatVisible = true
		next.ActiveViewID = nil
		next.FullscreenDynamicView = nil

	case ConversationChanged:
		next.ActiveViewID = nil
		next.IsChatVisible = true
		next.IsInitialView = e.MessageCount == 0
		next.HasMessages = e.MessageCount > 0

	case MessageSent:
		if e.IsClosing {
			next = closeChat(next, e)
		} else {
			next = messageExchanged(next, e)
		}

	case NavClick:
		if e.ViewID == "" || e.ViewID == ReservedDynamicViewID {
			// the reserved slot is entered only through promotion
			return prev
		}
		previous := prev.ActiveView()
		id := e.ViewID
		next.ActiveViewID = &id
		next.IsInitialView = false
		if prev.IsChatVisible || previous != id {
			next.IsChatVisible = false
			next.PendingDynamicView = nil
		}

	case CloseView:
		next = closeView(next, tr)

	case KeyPress:
		if e.Key != "esc" || prev.ActiveViewID == nil {
			return prev
		}
		next = closeView(next, tr)

	case StartChatting:
		next.IsChatVisible = true
		next.IsInitialView = true

	case SidebarToggled:
		next.IsSidebarExpanded = e.Expanded

	case ViewportResized:
		bp := e.Breakpoint
		if bp <= 0 {
			bp = DefaultCompactWidth
		}
		next.IsCompactViewport = e.Width < bp

	default:
		return prev
	}

	return normalize(next)
}

// messageExchanged handles a completed send.
func messageExchanged(s State, e MessageSent) State {
	s.HasMessages = true
	s.IsInitialView = false
	s.IsChatVisible = true
	if e.View != nil {
		if e.IsClosed {
			s.ClosedDynamicView = e.View
			s.PendingDynamicView = nil
		} else {
			s.PendingDynamicView = e.View
			s.ClosedDynamicView = nil
		}
		s.FullscreenDynamicView = nil
	}
	s.ActiveViewID = nil
	return s
}

// closeChat handles a close request, including fullscreen promotion.
func closeChat(s State, e MessageSent) State {
	if e.View != nil && !e.IsClosed {
		id := ReservedDynamicViewID
		s.FullscreenDynamicView = e.View
		s.ActiveViewID = &id
		s.IsChatVisible = false
		return s
	}

	switch {
	case s.ActiveViewID == nil && !s.IsInitialView:
		s.IsInitialView = true
		s.IsChatVisible = true
		s.FullscreenDynamicView = nil
	case s.ActiveViewID != nil:
		s.IsChatVisible = false
		if s.IsDynamicSlot() {
			s.FullscreenDynamicView = nil
		}
	default:
		s.IsChatVisible = false
		s.FullscreenDynamicView = nil
	}
	// the closed view survives so it can be reopened
	s.PendingDynamicView = nil
	return s
}

func closeView(s State, tr Transcript) State {
	s.ActiveViewID = nil
	s.IsChatVisible = true
	s.IsInitialView = tr == nil || tr.MessageCount() == 0
	return s
}

// normalize enforces the slot invariants after every transition.
func normalize(s State) State {
	if !s.IsDynamicSlot() {
		s.FullscreenDynamicView = nil
	}
	if s.PendingDynamicView != nil && s.ClosedDynamicView != nil {
		s.ClosedDynamicView = nil
	}
	return s
}
