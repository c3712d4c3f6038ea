package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	if GetViewContext() != GetViewContext() {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.SetSidebar(true, false)
	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 || ctx.TerminalHeight != 40 {
		t.Errorf("Expected 120x40, got %dx%d", ctx.TerminalWidth, ctx.TerminalHeight)
	}
	if want := 40 - HeaderHeight - FooterHeight; ctx.ContentHeight != want {
		t.Errorf("Expected ContentHeight %d, got %d", want, ctx.ContentHeight)
	}
	if ctx.SidebarWidth != ExpandedSidebarWidth {
		t.Errorf("Expected SidebarWidth %d, got %d", ExpandedSidebarWidth, ctx.SidebarWidth)
	}
	if want := 120 - ExpandedSidebarWidth; ctx.MainWidth != want {
		t.Errorf("Expected MainWidth %d, got %d", want, ctx.MainWidth)
	}
}

func TestViewContext_MinimumSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(10, 3)

	if ctx.TerminalWidth != MinTerminalWidth {
		t.Errorf("Expected width clamped to %d, got %d", MinTerminalWidth, ctx.TerminalWidth)
	}
	if ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("Expected height clamped to %d, got %d", MinTerminalHeight, ctx.TerminalHeight)
	}
}

func TestViewContext_SetSidebar(t *testing.T) {
	tests := []struct {
		name        string
		expanded    bool
		compact     bool
		wantSidebar int
		wantMain    int
		wantDrawer  bool
	}{
		{"expanded", true, false, ExpandedSidebarWidth, 90 - ExpandedSidebarWidth, false},
		{"collapsed", false, false, CollapsedSidebarWidth, 90 - CollapsedSidebarWidth, false},
		{"compact drawer", true, true, 90, 0, true},
		{"compact hidden", false, true, 0, 90, false},
	}

	ctx := GetViewContext()
	ctx.UpdateTerminalSize(90, 30)
	defer ctx.SetSidebar(true, false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.SetSidebar(tt.expanded, tt.compact)
			if ctx.SidebarWidth != tt.wantSidebar {
				t.Errorf("SidebarWidth = %d, want %d", ctx.SidebarWidth, tt.wantSidebar)
			}
			if ctx.MainWidth != tt.wantMain {
				t.Errorf("MainWidth = %d, want %d", ctx.MainWidth, tt.wantMain)
			}
			if ctx.IsDrawerOpen() != tt.wantDrawer {
				t.Errorf("IsDrawerOpen = %v, want %v", ctx.IsDrawerOpen(), tt.wantDrawer)
			}
		})
	}
}

func TestViewContext_InnerSize(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panel int
		want  int
	}{
		{100, 100 - BorderSize},
		{50, 50 - BorderSize},
		{BorderSize, 0},
		{0, 0},
	}

	for _, tt := range tests {
		if got := ctx.InnerWidth(tt.panel); got != tt.want {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.panel, got, tt.want)
		}
		if got := ctx.InnerHeight(tt.panel); got != tt.want {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.panel, got, tt.want)
		}
	}
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := GetViewContext()
	defer ctx.SetSidebar(true, false)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n)
		}(i)
		go func(n int) {
			defer wg.Done()
			ctx.SetSidebar(n%2 == 0, n%3 == 0)
		}(i)
	}
	wg.Wait()
}
