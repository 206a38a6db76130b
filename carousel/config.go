package carousel

import (
	"time"

	"github.com/lixenwraith/vi-carousel/constants"
)

// Config holds engine tunables, set once at initialization
type Config struct {
	// SlideThreshold is the drag distance, in container units, that must be exceeded to commit a step
	SlideThreshold float64
	// SlideTime is the duration of the animation toward a committed target
	SlideTime time.Duration
	// IsAutoPlay enables automatic forward advancement while idle
	IsAutoPlay bool
	// AutoPlayTime is the idle interval between automatic advances
	AutoPlayTime time.Duration
}

// DefaultConfig returns the stock tunables with autoplay disabled
func DefaultConfig() Config {
	return Config{
		SlideThreshold: constants.DefaultSlideThreshold,
		SlideTime:      constants.DefaultSlideTime,
		IsAutoPlay:     false,
		AutoPlayTime:   constants.DefaultAutoPlayTime,
	}
}

// Validate rejects tunables the engine cannot run with
func (c Config) Validate() error {
	if c.SlideThreshold < 0 {
		return configError("", "slide threshold must not be negative, got %v", c.SlideThreshold)
	}
	if c.SlideTime < 0 {
		return configError("", "slide time must not be negative, got %v", c.SlideTime)
	}
	if c.IsAutoPlay && c.AutoPlayTime <= 0 {
		return configError("", "autoplay time must be positive when autoplay is enabled, got %v", c.AutoPlayTime)
	}
	return nil
}
