package audio

import "errors"

// SoundType represents different feedback sounds
type SoundType int

const (
	SoundClick SoundType = iota // Drag committed or keyboard step
	SoundThud                   // Drag snapped back
	SoundChime                  // Autoplay advanced
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundThud:
		return "thud"
	case SoundChime:
		return "chime"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
