package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/ui"
)

// ShowFlash puts text in the footer and returns the tick that expires it.
// A newer flash replaces the current one.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.log.Debug("flash", "type", int(flashType), "text", text)
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
