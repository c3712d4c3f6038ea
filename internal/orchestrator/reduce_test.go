package orchestrator

import (
	"testing"
)

func TestReduce_Mount(t *testing.T) {
	prev := chatState()
	prev.ActiveViewID = strPtr(ReservedDynamicViewID)
	prev.IsChatVisible = false
	prev.FullscreenDynamicView = tableView("Services")
	prev.ClosedDynamicView = tableView("Old")

	got := Reduce(prev, Mount{}, nil)

	if got.Mode() != ModeLanding {
		t.Errorf("Mode() = %s, want landing", got.Mode())
	}
	if got.ActiveViewID != nil || got.FullscreenDynamicView != nil {
		t.Error("mount should clear the active view and fullscreen view")
	}
	if !got.IsChatVisible || !got.IsInitialView {
		t.Error("mount should show the landing chat")
	}
	if got.ClosedDynamicView == nil {
		t.Error("mount should leave the closed view alone")
	}
}

func TestReduce_ConversationChanged(t *testing.T) {
	tests := []struct {
		name     string
		prev     State
		count    int
		wantMode Mode
	}{
		{"empty from chat", chatState(), 0, ModeLanding},
		{"empty from view", func() State {
			s := chatState()
			s.ActiveViewID = strPtr("reports")
			s.IsChatVisible = false
			return s
		}(), 0, ModeLanding},
		{"empty from idle", func() State {
			s := Initial()
			s.IsChatVisible = false
			return s
		}(), 0, ModeLanding},
		{"non-empty from landing", Initial(), 3, ModeChatActive},
		{"non-empty from fullscreen", func() State {
			s := chatState()
			s.ActiveViewID = strPtr(ReservedDynamicViewID)
			s.FullscreenDynamicView = tableView("x")
			s.IsChatVisible = false
			return s
		}(), 2, ModeChatActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.prev, ConversationChanged{ChatID: "c", MessageCount: tt.count}, nil)
			if got.Mode() != tt.wantMode {
				t.Errorf("Mode() = %s, want %s", got.Mode(), tt.wantMode)
			}
			if got.ActiveViewID != nil {
				t.Error("active view should be cleared")
			}
			if !got.IsChatVisible {
				t.Error("chat should be visible")
			}
			if got.FullscreenDynamicView != nil {
				t.Error("fullscreen view should not outlive the dynamic slot")
			}
			if got.HasMessages != (tt.count > 0) {
				t.Errorf("HasMessages = %t, want %t", got.HasMessages, tt.count > 0)
			}
		})
	}
}

func TestReduce_MessageSentNormal(t *testing.T) {
	view := tableView("Services")
	old := tableView("Old")

	tests := []struct {
		name        string
		prev        State
		ev          MessageSent
		wantPending bool
		wantClosed  bool
	}{
		{
			name: "no view keeps slots",
			prev: func() State { s := Initial(); s.ClosedDynamicView = old; return s }(),
			ev:   MessageSent{},
			// closed view is untouched when no view accompanies the message
			wantClosed: true,
		},
		{
			name:        "view goes to pending",
			prev:        func() State { s := Initial(); s.ClosedDynamicView = old; return s }(),
			ev:          MessageSent{View: view},
			wantPending: true,
		},
		{
			name:       "view marked closed goes to closed",
			prev:       func() State { s := Initial(); s.PendingDynamicView = old; return s }(),
			ev:         MessageSent{View: view, IsClosed: true},
			wantClosed: true,
		},
		{
			name: "clears active view",
			prev: func() State {
				s := chatState()
				s.ActiveViewID = strPtr("reports")
				s.IsChatVisible = false
				return s
			}(),
			ev:          MessageSent{View: view},
			wantPending: true,
		},
		{
			name: "leaves fullscreen",
			prev: func() State {
				s := chatState()
				s.ActiveViewID = strPtr(ReservedDynamicViewID)
				s.FullscreenDynamicView = old
				s.IsChatVisible = false
				return s
			}(),
			ev: MessageSent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.prev, tt.ev, nil)
			if got.Mode() != ModeChatActive {
				t.Errorf("Mode() = %s, want chat", got.Mode())
			}
			if !got.HasMessages || got.IsInitialView || !got.IsChatVisible || got.ActiveViewID != nil {
				t.Errorf("unexpected flags: %s", got)
			}
			if (got.PendingDynamicView != nil) != tt.wantPending {
				t.Errorf("pending set = %t, want %t", got.PendingDynamicView != nil, tt.wantPending)
			}
			if (got.ClosedDynamicView != nil) != tt.wantClosed {
				t.Errorf("closed set = %t, want %t", got.ClosedDynamicView != nil, tt.wantClosed)
			}
			if got.FullscreenDynamicView != nil {
				t.Error("fullscreen view should be cleared")
			}
		})
	}
}

func TestReduce_FullscreenPromotion(t *testing.T) {
	view := tableView("Services")
	prev := chatState()
	prev.PendingDynamicView = view

	got := Reduce(prev, MessageSent{IsClosing: true, View: view}, nil)

	if got.Mode() != ModeViewActiveFullscreenDynamic {
		t.Fatalf("Mode() = %s, want fullscreen-dynamic", got.Mode())
	}
	if got.ActiveView() != ReservedDynamicViewID {
		t.Errorf("ActiveView() = %q", got.ActiveView())
	}
	if got.IsChatVisible {
		t.Error("chat should be hidden")
	}
	if got.PendingDynamicView == nil {
		t.Error("promotion does not touch the pending view")
	}

	again := Reduce(got, MessageSent{IsClosing: true, View: view}, nil)
	if !again.Equal(got) {
		t.Errorf("promotion is not idempotent:\n once: %s\ntwice: %s", got, again)
	}
}

func TestReduce_CloseChat(t *testing.T) {
	closed := tableView("Closed")
	pending := tableView("Pending")

	tests := []struct {
		name           string
		prev           State
		ev             MessageSent
		wantMode       Mode
		wantFullscreen bool
	}{
		{
			name:     "chat with no view returns to landing",
			prev:     chatState(),
			ev:       MessageSent{IsClosing: true},
			wantMode: ModeLanding,
		},
		{
			name: "view active hides chat",
			prev: func() State {
				s := chatState()
				s.ActiveViewID = strPtr("reports")
				return s
			}(),
			ev:       MessageSent{IsClosing: true},
			wantMode: ModeViewActive,
		},
		{
			name: "dynamic slot loses fullscreen view",
			prev: func() State {
				s := chatState()
				s.ActiveViewID = strPtr(ReservedDynamicViewID)
				s.FullscreenDynamicView = tableView("Full")
				return s
			}(),
			ev:       MessageSent{IsClosing: true},
			wantMode: ModeViewActive,
		},
		{
			name:     "already landing goes idle",
			prev:     Initial(),
			ev:       MessageSent{IsClosing: true},
			wantMode: ModeIdleClosed,
		},
		{
			name:     "closing with a view marked closed is a plain close",
			prev:     chatState(),
			ev:       MessageSent{IsClosing: true, View: tableView("X"), IsClosed: true},
			wantMode: ModeLanding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, slots := range []struct {
				name    string
				pending *bool
			}{{"pending", boolPtr(true)}, {"closed", boolPtr(false)}} {
				prev := tt.prev
				if *slots.pending {
					prev.PendingDynamicView = pending
				} else {
					prev.ClosedDynamicView = closed
				}

				got := Reduce(prev, tt.ev, nil)
				if got.Mode() != tt.wantMode {
					t.Errorf("[%s] Mode() = %s, want %s", slots.name, got.Mode(), tt.wantMode)
				}
				if got.PendingDynamicView != nil {
					t.Errorf("[%s] pending view should be cleared", slots.name)
				}
				if !*slots.pending && got.ClosedDynamicView != closed {
					t.Errorf("[%s] closed view should survive", slots.name)
				}
				if got.FullscreenDynamicView != nil {
					t.Errorf("[%s] fullscreen view should be cleared", slots.name)
				}
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestReduce_NavClick(t *testing.T) {
	closed := tableView("Closed")
	pending := tableView("Pending")

	t.Run("from landing", func(t *testing.T) {
		prev := Initial()
		prev.PendingDynamicView = pending
		got := Reduce(prev, NavClick{ViewID: "reports"}, nil)

		if got.ActiveView() != "reports" || got.IsChatVisible || got.IsInitialView {
			t.Errorf("unexpected state %s", got)
		}
		if got.PendingDynamicView != nil {
			t.Error("pending view should be cleared")
		}
	})

	t.Run("preserves closed view", func(t *testing.T) {
		prev := chatState()
		prev.ClosedDynamicView = closed
		got := Reduce(prev, NavClick{ViewID: "services"}, nil)
		if got.ClosedDynamicView != closed {
			t.Error("closed view should survive navigation")
		}
	})

	t.Run("same view with hidden chat keeps pending", func(t *testing.T) {
		prev := chatState()
		prev.ActiveViewID = strPtr("reports")
		prev.IsChatVisible = false
		prev.PendingDynamicView = pending
		got := Reduce(prev, NavClick{ViewID: "reports"}, nil)
		if got.PendingDynamicView != pending {
			t.Error("re-clicking the active view should not clear pending")
		}
	})

	t.Run("switching away from fullscreen", func(t *testing.T) {
		prev := chatState()
		prev.ActiveViewID = strPtr(ReservedDynamicViewID)
		prev.FullscreenDynamicView = pending
		prev.IsChatVisible = false
		got := Reduce(prev, NavClick{ViewID: "reports"}, nil)
		if got.FullscreenDynamicView != nil {
			t.Error("fullscreen view should be cleared when leaving the dynamic slot")
		}
		if got.Mode() != ModeViewActive {
			t.Errorf("Mode() = %s, want view", got.Mode())
		}
	})

	t.Run("reserved and empty ids are ignored", func(t *testing.T) {
		prev := chatState()
		for _, id := range []string{"", ReservedDynamicViewID} {
			if got := Reduce(prev, NavClick{ViewID: id}, nil); !got.Equal(prev) {
				t.Errorf("NavClick(%q) changed state to %s", id, got)
			}
		}
	})
}

func TestReduce_CloseView(t *testing.T) {
	prev := chatState()
	prev.ActiveViewID = strPtr("reports")
	prev.IsChatVisible = false

	if got := Reduce(prev, CloseView{}, fakeTranscript(4)); got.Mode() != ModeChatActive {
		t.Errorf("with transcript: Mode() = %s, want chat", got.Mode())
	}
	if got := Reduce(prev, CloseView{}, fakeTranscript(0)); got.Mode() != ModeLanding {
		t.Errorf("empty transcript: Mode() = %s, want landing", got.Mode())
	}
	if got := Reduce(prev, CloseView{}, nil); got.Mode() != ModeLanding {
		t.Errorf("nil transcript: Mode() = %s, want landing", got.Mode())
	}
}

func TestReduce_Escape(t *testing.T) {
	t.Run("no active view is a no-op", func(t *testing.T) {
		for _, prev := range []State{Initial(), chatState(), func() State {
			s := Initial()
			s.IsChatVisible = false
			s.ClosedDynamicView = tableView("x")
			return s
		}()} {
			got := Reduce(prev, KeyPress{Key: "esc"}, fakeTranscript(2))
			if !got.Equal(prev) {
				t.Errorf("escape changed %s into %s", prev, got)
			}
		}
	})

	t.Run("closes active view", func(t *testing.T) {
		prev := chatState()
		prev.ActiveViewID = strPtr("reports")
		prev.IsChatVisible = false
		got := Reduce(prev, KeyPress{Key: "esc"}, fakeTranscript(2))
		if got.ActiveViewID != nil || got.Mode() != ModeChatActive {
			t.Errorf("unexpected state %s", got)
		}
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		prev := chatState()
		prev.ActiveViewID = strPtr("reports")
		if got := Reduce(prev, KeyPress{Key: "q"}, nil); !got.Equal(prev) {
			t.Error("non-escape key changed state")
		}
	})
}

func TestReduce_StartChatting(t *testing.T) {
	prev := chatState()
	prev.IsChatVisible = false
	got := Reduce(prev, StartChatting{}, nil)
	if got.Mode() != ModeLanding {
		t.Errorf("Mode() = %s, want landing", got.Mode())
	}
}

func TestReduce_LayoutSignals(t *testing.T) {
	s := Initial()
	s = Reduce(s, SidebarToggled{Expanded: false}, nil)
	if s.IsSidebarExpanded {
		t.Error("sidebar should be collapsed")
	}

	tests := []struct {
		width, breakpoint int
		want              bool
	}{
		{80, 0, true},
		{DefaultCompactWidth, 0, false},
		{140, 0, false},
		{100, 120, true},
	}
	for _, tt := range tests {
		got := Reduce(s, ViewportResized{Width: tt.width, Breakpoint: tt.breakpoint}, nil)
		if got.IsCompactViewport != tt.want {
			t.Errorf("width %d breakpoint %d: compact = %t, want %t", tt.width, tt.breakpoint, got.IsCompactViewport, tt.want)
		}
		if got.Mode() != s.Mode() {
			t.Error("layout signals must not change the mode")
		}
	}
}

func TestScenario_NavThenEscape(t *testing.T) {
	s := reduceAll(t, Initial(), fakeTranscript(0), Mount{}, NavClick{ViewID: "reports"})
	if s.ActiveView() != "reports" || s.IsChatVisible {
		t.Fatalf("after nav: %s", s)
	}

	s = reduceAll(t, s, fakeTranscript(0), KeyPress{Key: "esc"})
	if s.ActiveViewID != nil || !s.IsInitialView || !s.IsChatVisible {
		t.Errorf("after escape: %s", s)
	}
}

func TestScenario_PendingThenClose(t *testing.T) {
	closed := tableView("Earlier")
	view := tableView("Services")

	s := Initial()
	s = reduceAll(t, s, nil, Mount{}, MessageSent{View: closed, IsClosed: true}, MessageSent{View: view})
	if s.PendingDynamicView != view || s.ClosedDynamicView != nil || s.ActiveViewID != nil {
		t.Fatalf("after send: %s", s)
	}

	s = reduceAll(t, s, nil, MessageSent{IsClosing: true})
	if s.Mode() != ModeLanding || s.PendingDynamicView != nil {
		t.Errorf("after close: %s", s)
	}

	// A closed view from the previous exchange survives a close request.
	s = reduceAll(t, Initial(), nil, MessageSent{View: closed, IsClosed: true}, MessageSent{IsClosing: true})
	if s.ClosedDynamicView != closed {
		t.Error("closed view should survive closing the chat")
	}
}
