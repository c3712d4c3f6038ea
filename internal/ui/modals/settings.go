package modals

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// Compact width bounds accepted by the settings form
const (
	MinCompactWidth = 40
	MaxCompactWidth = 400
)

const (
	optionNotifications = "notifications"
	optionSidebar       = "sidebar"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

type SettingsState struct {
	// Bound form values
	selectedTheme        string
	OriginalTheme        string // To detect if theme changed
	compactWidth         string
	NotificationsEnabled bool
	SidebarExpanded      bool

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form

	availableWidth int
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidth }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 6
	}
	return ModalWidth - 6
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	s.SidebarExpanded = slices.Contains(s.generalOptions, optionSidebar)
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// GetSidebarExpanded returns whether the sidebar starts expanded
func (s *SettingsState) GetSidebarExpanded() bool {
	return s.SidebarExpanded
}

// GetCompactWidth parses the compact breakpoint field.
func (s *SettingsState) GetCompactWidth() (int, error) {
	return parseCompactWidth(s.compactWidth)
}

// SetCompactWidthInput replaces the raw compact width text.
// Works because huh binds via pointer, so mutations to the struct field
// reflect in the form.
func (s *SettingsState) SetCompactWidthInput(v string) {
	s.compactWidth = v
}

func parseCompactWidth(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("compact width must be a number")
	}
	if n < MinCompactWidth || n > MaxCompactWidth {
		return 0, fmt.Errorf("compact width must be between %d and %d", MinCompactWidth, MaxCompactWidth)
	}
	return n, nil
}

// NewSettingsState creates the settings form seeded with the current values
func NewSettingsState(themes []ThemeOption, currentTheme string, compactWidth int,
	notificationsEnabled, sidebarExpanded bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		compactWidth:         strconv.Itoa(compactWidth),
		NotificationsEnabled: notificationsEnabled,
		SidebarExpanded:      sidebarExpanded,
		availableWidth:       ModalWidth,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i, t := range themes {
		themeOptions[i] = huh.NewOption(t.Name, t.Key)
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
		huh.NewOption("Expand sidebar on start", optionSidebar).
			Selected(sidebarExpanded),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	if sidebarExpanded {
		s.generalOptions = append(s.generalOptions, optionSidebar)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.selectedTheme),
			huh.NewInput().
				Title("Compact width").
				Description("Below this many columns the sidebar becomes a drawer").
				Placeholder("100").
				CharLimit(3).
				Value(&s.compactWidth),
			huh.NewMultiSelect[string]().
				Title("Options").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
