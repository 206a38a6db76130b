package constants

// Indicator glyphs, must be single-cell
const (
	IndicatorActive   = '●'
	IndicatorInactive = '○'
)

// Layout
const (
	// IndicatorSpacing is the number of cells between indicator glyphs
	IndicatorSpacing = 1

	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1

	// IndicatorRowHeight is reserved above the status bar
	IndicatorRowHeight = 1

	// SlidePadding is the inner margin of a slide panel in cells
	SlidePadding = 2

	// MinSlideWidth is the narrowest viewport the host will run with
	MinSlideWidth = 10
)

// Status bar phase labels, all padded to the same width
const (
	PhaseTextIdle     = " IDLE     "
	PhaseTextDragging = " DRAGGING "
	PhaseTextSliding  = " SLIDING  "
)
