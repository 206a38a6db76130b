package config

import (
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-carousel/vmath"
)

// Environment variable overrides
const (
	EnvAutoPlay     = "VI_CAROUSEL_AUTOPLAY"
	EnvAutoPlayTime = "VI_CAROUSEL_AUTOPLAY_TIME"
	EnvSlideTime    = "VI_CAROUSEL_SLIDE_TIME"
	EnvAudioEnabled = "VI_CAROUSEL_AUDIO_ENABLED"
	EnvMasterVolume = "VI_CAROUSEL_MASTER_VOLUME"
)

// ApplyEnv overrides file values from the environment
// Unparseable values are logged and ignored
func (f *File) ApplyEnv() {
	if v := os.Getenv(EnvAutoPlay); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Carousel.AutoPlay = b
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvAutoPlay, v, err)
		}
	}

	if v := os.Getenv(EnvAutoPlayTime); v != "" {
		if s, err := strconv.ParseFloat(v, 64); err == nil {
			f.Carousel.AutoPlayTime = s
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvAutoPlayTime, v, err)
		}
	}

	if v := os.Getenv(EnvSlideTime); v != "" {
		if s, err := strconv.ParseFloat(v, 64); err == nil {
			f.Carousel.SlideTime = s
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvSlideTime, v, err)
		}
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Audio.Enabled = b
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvAudioEnabled, v, err)
		}
	}

	// 0-100 converted to 0.0-1.0
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Audio.MasterVolume = vmath.Clamp(float64(n)/100.0, 0, 1)
		} else {
			log.Printf("Ignoring %s=%q: %v", EnvMasterVolume, v, err)
		}
	}
}
