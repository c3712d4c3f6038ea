package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/nicorai/nicorai/internal/keys"
)

// initHuhForm runs the form's Init so the first render already has its
// fields laid out.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate forwards msg to the form. Enter and Escape belong to the app
// layer (submit and cancel) and never reach huh.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if k := keyMsg.String(); k == keys.Enter || k == keys.Escape {
			return form, nil
		}
	}

	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		return f, cmd
	}
	return form, cmd
}

// ModalTheme builds a huh theme from the modal palette. It reads the colors
// at call time, so forms created after a theme switch pick up the new one.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		fg := func(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = fg(ColorText).Bold(true)
		t.Focused.Description = fg(ColorTextMuted)
		t.Focused.ErrorIndicator = fg(ColorWarning).SetString(" !")
		t.Focused.ErrorMessage = fg(ColorWarning).Italic(true)

		// theme select
		t.Focused.SelectSelector = fg(ColorPrimary).SetString("› ")
		t.Focused.Option = fg(ColorText)
		t.Focused.NextIndicator = fg(ColorTextMuted).MarginLeft(1).SetString("›")
		t.Focused.PrevIndicator = fg(ColorTextMuted).MarginRight(1).SetString("‹")

		// options multi-select
		t.Focused.MultiSelectSelector = fg(ColorPrimary).SetString("› ")
		t.Focused.SelectedOption = fg(ColorSecondary)
		t.Focused.SelectedPrefix = fg(ColorSecondary).SetString("● ")
		t.Focused.UnselectedOption = fg(ColorText)
		t.Focused.UnselectedPrefix = fg(ColorTextMuted).SetString("○ ")

		// compact width input
		t.Focused.TextInput.Cursor = fg(ColorPrimary)
		t.Focused.TextInput.Prompt = fg(ColorPrimary)
		t.Focused.TextInput.Text = fg(ColorText)
		t.Focused.TextInput.Placeholder = fg(ColorTextMuted).Italic(true)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorTextMuted)

		// Blurred fields drop the border but keep the text aligned
		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = fg(ColorTextMuted)
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = fg(ColorSecondary).Bold(true)
		t.Group.Description = fg(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
