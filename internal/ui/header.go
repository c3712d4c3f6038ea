package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " nicorai"

// Header is the top bar: app title on the left, the current chat or view on
// the right.
type Header struct {
	width    int
	subtitle string
	badge    string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSubtitle sets the right-hand text (chat title or view title)
func (h *Header) SetSubtitle(subtitle string) {
	h.subtitle = subtitle
}

// SetBadge sets a muted marker shown after the subtitle, e.g. the mode
func (h *Header) SetBadge(badge string) {
	h.badge = badge
}

// View renders the header
func (h *Header) View() string {
	var right string
	if h.subtitle != "" {
		right = h.subtitle
	}
	if h.badge != "" {
		if right != "" {
			right += " "
		}
		right += "[" + h.badge + "]"
	}
	if right != "" {
		right += " "
	}

	// Drop the subtitle rather than wrap when the terminal is narrow.
	room := h.width - runewidth.StringWidth(headerTitle)
	if runewidth.StringWidth(right) > room {
		right = runewidth.Truncate(right, max(room-1, 0), "…")
	}
	padding := max(room-runewidth.StringWidth(right), 0)

	return h.renderGradient(headerTitle + strings.Repeat(" ", padding) + right)
}

// parseHexColor parses a hex color string (e.g., "#2563EB") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints content over a background fading from the primary
// color to the theme background. The badge is drawn muted.
func (h *Header) renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	badgeStart := -1
	if h.badge != "" {
		if i := strings.LastIndex(content, "["+h.badge+"]"); i >= 0 {
			badgeStart = len([]rune(content[:i]))
		}
	}

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(headerTitle))
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleLen)
		if badgeStart >= 0 && i >= badgeStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
