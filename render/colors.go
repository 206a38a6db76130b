package render

import "github.com/gdamore/tcell/v2"

// Palette (Tokyo Night)
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Screen background
	RgbPanel      = tcell.NewRGBColor(36, 40, 59)    // Slide panel fill
	RgbPanelEdge  = tcell.NewRGBColor(65, 72, 104)   // Slide border
	RgbTitle      = tcell.NewRGBColor(122, 162, 247) // Slide title
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Slide body
	RgbTextDim    = tcell.NewRGBColor(86, 95, 137)   // Footer hints

	RgbIndicatorActive   = tcell.NewRGBColor(255, 158, 100) // Orange dot for the current item
	RgbIndicatorInactive = tcell.NewRGBColor(86, 95, 137)   // Dimmed dot

	// Status bar backgrounds
	RgbPhaseIdleBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPhaseDraggingBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPhaseSlidingBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatusBg        = tcell.NewRGBColor(41, 46, 66)    // Status bar fill
	RgbStatusText      = tcell.NewRGBColor(0, 0, 0)       // Dark text on phase badge
	RgbStatusInfo      = tcell.NewRGBColor(169, 177, 214) // Light text on status fill
)

// Styles composed from the palette
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StylePanel      = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbText)
	StylePanelEdge  = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbPanelEdge)
	StyleTitle      = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbTitle).Bold(true)
	StyleHint       = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbTextDim)
	StyleStatus     = tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusInfo)
)
