package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two sounds of the same type
	MinSoundGap = 50 * time.Millisecond
)

// Commit Click Timing
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 30 * time.Millisecond
)

// Snap-Back Thud Timing
const (
	ThudSoundDuration = 90 * time.Millisecond
	ThudSoundAttack   = 5 * time.Millisecond
	ThudSoundRelease  = 60 * time.Millisecond
)

// Autoplay Chime Timing
const (
	ChimeSoundNote1Duration = 60 * time.Millisecond
	ChimeSoundNote2Duration = 180 * time.Millisecond
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Release  = 30 * time.Millisecond
	ChimeSoundNote2Release  = 150 * time.Millisecond
)
