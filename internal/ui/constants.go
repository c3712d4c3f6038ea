package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ExpandedSidebarWidth is the sidebar width when expanded
	ExpandedSidebarWidth = 28

	// CollapsedSidebarWidth is the width of the collapsed icon rail
	CollapsedSidebarWidth = 5

	// TextareaHeight is the number of lines for the composer textarea
	TextareaHeight = 3

	// InputPaddingWidth is the horizontal padding inside the input area
	InputPaddingWidth = 2

	// InputTotalHeight is the composer height including borders
	InputTotalHeight = TextareaHeight + BorderSize

	// DefaultWrapWidth is used when the viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight bound layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// MaxChartBarWidth caps bar length in chart views
	MaxChartBarWidth = 40
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60
)

// DefaultFlashDuration is how long footer flash messages stay up
const DefaultFlashDuration = 4 * time.Second
