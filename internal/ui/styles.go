package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette, rebuilt from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header and footer
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Panels
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarActiveStyle   lipgloss.Style
	SidebarSectionStyle  lipgloss.Style
)

// Chat
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatHintStyle         lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	WelcomeTitleStyle     lipgloss.Style
	WelcomeTextStyle      lipgloss.Style
	SuggestionStyle       lipgloss.Style
)

// Dynamic views
var (
	ViewTitleStyle      lipgloss.Style
	ViewCloseHintStyle  lipgloss.Style
	CardStyle           lipgloss.Style
	CardTitleStyle      lipgloss.Style
	ChartBarStyle       lipgloss.Style
	ChartLabelStyle     lipgloss.Style
	TableHeaderStyle    lipgloss.Style
	TableCellStyle      lipgloss.Style
	TableBorderStyle    lipgloss.Style
	PendingViewBoxStyle lipgloss.Style
)

// Modal, status and markdown
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style

	FallbackButtonStyle lipgloss.Style

	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownQuoteStyle      lipgloss.Style
	MarkdownRuleStyle       lipgloss.Style
)

// regenerateStyles rebuilds every style from the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Background(ColorPrimary).Padding(0, 1)
	FooterStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	FooterSepStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().Padding(0, 1)
	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)
	SidebarActiveStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Padding(0, 1)
	SidebarSectionStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().Foreground(ColorUser).Bold(true)
	ChatAssistantStyle = lipgloss.NewStyle().Foreground(ColorAssistant).Bold(true)
	ChatMessageStyle = lipgloss.NewStyle().Foreground(ColorText)
	ChatHintStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ChatInputFocusedStyle = ChatInputStyle.BorderForeground(ColorBorderFocus)
	WelcomeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	WelcomeTextStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	SuggestionStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

	ViewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	ViewCloseHintStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.CardBorder)).
		Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	ChartBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.ChartBar))
	ChartLabelStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Padding(0, 1)
	TableCellStyle = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	TableBorderStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	PendingViewBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorInfo).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	FallbackButtonStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 2)

	MarkdownH1Style = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	MarkdownH2Style = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	MarkdownH3Style = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	MarkdownBoldStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	MarkdownInlineCodeStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	MarkdownListBulletStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	MarkdownLinkStyle = lipgloss.NewStyle().Foreground(ColorInfo).Underline(true)
	MarkdownItalicStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorText)
	MarkdownQuoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorBorder).
		PaddingLeft(1)
	MarkdownRuleStyle = lipgloss.NewStyle().Foreground(ColorBorder)
}
