// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/nicorai/nicorai/internal/logger"
)

// AppName is the notification title
const AppName = "nicorai"

// NotifyFunc matches beeep.Notify
type NotifyFunc func(title, message string, icon any) error

var notifyFunc NotifyFunc = beeep.Notify

// SetNotifier replaces the function used to deliver notifications
func SetNotifier(fn NotifyFunc) {
	notifyFunc = fn
}

// ResetNotifier restores delivery through beeep
func ResetNotifier() {
	notifyFunc = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	err := notifyFunc(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ReplyReady tells the user a reply arrived while the terminal was in the
// background. summary describes the attached view, if any.
func ReplyReady(summary string) error {
	message := "Your answer is ready"
	if summary != "" {
		message += ": " + summary
	}
	return Send(AppName, message)
}
