package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering and engine tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta fed to the engine after a stall (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the frame loop
	EventChannelSize = 256
)

// Engine Defaults
const (
	// DefaultSlideThreshold is the drag distance in cells that commits a step
	DefaultSlideThreshold = 5.0

	// DefaultSlideTime is the slide animation duration
	DefaultSlideTime = 300 * time.Millisecond

	// DefaultAutoPlayTime is the idle interval between automatic advances
	DefaultAutoPlayTime = 3 * time.Second
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-carousel.log"
)
