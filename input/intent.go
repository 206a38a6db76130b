// Package input translates terminal events into carousel intents
package input

import "github.com/lixenwraith/vi-carousel/carousel"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+Q, Ctrl+C
	IntentToggleMute // m, Ctrl+S
	IntentResize     // Terminal resize event

	// Carousel intents
	IntentGesture // Mouse-driven drag lifecycle or tap, see Intent.Gesture
	IntentStep    // h/l, arrows, wheel
	IntentOpen    // Enter/Space, taps the current item
)

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentResize:
		return "Resize"
	case IntentGesture:
		return "Gesture"
	case IntentStep:
		return "Step"
	case IntentOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// Intent is one translated input event
type Intent struct {
	Type      IntentType
	Gesture   carousel.Gesture // IntentGesture
	Direction int              // IntentStep, -1 or 1
	Width     int              // IntentResize
	Height    int              // IntentResize
}
