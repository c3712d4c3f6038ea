package ui

import (
	"github.com/alecthomas/chroma/v2/styles"
)

// Theme is the color palette used by every component.
type Theme struct {
	Name string

	Primary   string // focus, highlights, header gradient start
	Secondary string // key hints, assistant accents

	Bg         string
	BgSelected string // defaults to Primary when empty

	Text        string
	TextMuted   string
	TextInverse string

	User      string
	Assistant string
	Warning   string
	Error     string
	Success   string
	Info      string

	Border      string
	BorderFocus string // defaults to Primary when empty

	// Dynamic view colors
	CardBorder string
	ChartBar   string

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
	// GlamourStyle is the glamour standard style for navigable pages
	GlamourStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName identifies a built-in theme
type ThemeName string

const (
	ThemeDarkBlue ThemeName = "dark-blue"
	ThemeNord     ThemeName = "nord"
	ThemeDracula  ThemeName = "dracula"
	ThemeLight    ThemeName = "light"
)

// DefaultTheme is used when the configured name is unknown
const DefaultTheme = ThemeDarkBlue

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkBlue: {
		Name:         "Dark Blue",
		Primary:      "#2563EB",
		Secondary:    "#38BDF8",
		Bg:           "#111827",
		Text:         "#F9FAFB",
		TextMuted:    "#9CA3AF",
		TextInverse:  "#111827",
		User:         "#93C5FD",
		Assistant:    "#5EEAD4",
		Warning:      "#F59E0B",
		Error:        "#EF4444",
		Success:      "#10B981",
		Info:         "#38BDF8",
		Border:       "#374151",
		CardBorder:   "#3B82F6",
		ChartBar:     "#60A5FA",
		CodeStyle:    "monokai",
		GlamourStyle: "dark",
	},
	ThemeNord: {
		Name:         "Nord",
		Primary:      "#88C0D0",
		Secondary:    "#81A1C1",
		Bg:           "#2E3440",
		Text:         "#ECEFF4",
		TextMuted:    "#D8DEE9",
		TextInverse:  "#2E3440",
		User:         "#A3BE8C",
		Assistant:    "#88C0D0",
		Warning:      "#EBCB8B",
		Error:        "#BF616A",
		Success:      "#A3BE8C",
		Info:         "#81A1C1",
		Border:       "#4C566A",
		CardBorder:   "#5E81AC",
		ChartBar:     "#8FBCBB",
		CodeStyle:    "nord",
		GlamourStyle: "dark",
	},
	ThemeDracula: {
		Name:         "Dracula",
		Primary:      "#BD93F9",
		Secondary:    "#8BE9FD",
		Bg:           "#282A36",
		Text:         "#F8F8F2",
		TextMuted:    "#A0A4B8",
		TextInverse:  "#282A36",
		User:         "#FF79C6",
		Assistant:    "#8BE9FD",
		Warning:      "#F1FA8C",
		Error:        "#FF5555",
		Success:      "#50FA7B",
		Info:         "#8BE9FD",
		Border:       "#44475A",
		CardBorder:   "#BD93F9",
		ChartBar:     "#FF79C6",
		CodeStyle:    "dracula",
		GlamourStyle: "dracula",
	},
	ThemeLight: {
		Name:         "Light",
		Primary:      "#2563EB",
		Secondary:    "#0891B2",
		Bg:           "#FFFFFF",
		BgSelected:   "#DBEAFE",
		Text:         "#111827",
		TextMuted:    "#4B5563",
		TextInverse:  "#FFFFFF",
		User:         "#1D4ED8",
		Assistant:    "#0F766E",
		Warning:      "#B45309",
		Error:        "#DC2626",
		Success:      "#059669",
		Info:         "#0891B2",
		Border:       "#D1D5DB",
		CardBorder:   "#2563EB",
		ChartBar:     "#3B82F6",
		CodeStyle:    "github",
		GlamourStyle: "light",
	},
}

// ThemeNames returns the built-in themes in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeDarkBlue, ThemeNord, ThemeDracula, ThemeLight}
}

// GetTheme returns a theme by name, defaulting to DefaultTheme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the active theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme activates a theme and rebuilds every style
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	resetRendererCache()
	RefreshModalStyles()
}

// SetThemeByName activates a theme by its string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// codeStyleName returns a chroma style that exists, falling back to monokai
func codeStyleName() string {
	if name := currentTheme.CodeStyle; name != "" && styles.Get(name) != styles.Fallback {
		return name
	}
	return "monokai"
}

func init() {
	regenerateStyles()
	RefreshModalStyles()
}
