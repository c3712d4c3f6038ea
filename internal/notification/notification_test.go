package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Test Title", "Test Message", nil, false},
		{"notification error", "Test Title", "Test Message", errors.New("notification failed"), true},
		{"empty title", "", "Message with empty title", nil, false},
		{"empty message", "Title", "", nil, false},
		{"unicode content", "通知", "🎉 Notification with emoji", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
			if call.icon != "" {
				t.Errorf("icon = %v, want platform default", call.icon)
			}
		})
	}
}

func TestReplyReady(t *testing.T) {
	tests := []struct {
		name            string
		summary         string
		expectedMessage string
		mockErr         error
	}{
		{"no view", "", "Your answer is ready", nil},
		{"with view", "Stack (2 rows)", "Your answer is ready: Stack (2 rows)", nil},
		{"failure", "", "Your answer is ready", errors.New("notification system unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := ReplyReady(tt.summary)
			if (err != nil) != (tt.mockErr != nil) {
				t.Errorf("ReplyReady() error = %v, want %v", err, tt.mockErr)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != AppName {
				t.Errorf("title = %q, want %q", call.title, AppName)
			}
			if call.message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", call.message, tt.expectedMessage)
			}
		})
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	// Reset must detach the mock; the real notifier is not invoked here
	if notifyFunc == nil {
		t.Fatal("notifier should be restored")
	}
	if len(mock.calls) != 0 {
		t.Errorf("mock should not have been called, got %d calls", len(mock.calls))
	}
}
