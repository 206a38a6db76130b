// Package config loads the carousel TOML configuration and environment overrides
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-carousel/asset"
	"github.com/lixenwraith/vi-carousel/audio"
	"github.com/lixenwraith/vi-carousel/carousel"
	"github.com/lixenwraith/vi-carousel/constants"
	"github.com/lixenwraith/vi-carousel/vmath"
)

// CarouselSection holds engine tunables, durations are in seconds
type CarouselSection struct {
	SlideThreshold float64 `toml:"slide_threshold"`
	SlideTime      float64 `toml:"slide_time"`
	AutoPlay       bool    `toml:"autoplay"`
	AutoPlayTime   float64 `toml:"autoplay_time"`
}

// AudioSection holds feedback sound settings
type AudioSection struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// DisplaySection holds view layer glyphs
type DisplaySection struct {
	IndicatorActive   string `toml:"indicator_active"`
	IndicatorInactive string `toml:"indicator_inactive"`
}

// ItemSection is one [[item]] table
type ItemSection struct {
	Resource string   `toml:"resource"`
	Multi    bool     `toml:"multi"`
	Actions  []string `toml:"actions"`
}

// File is the decoded configuration
type File struct {
	Carousel CarouselSection `toml:"carousel"`
	Audio    AudioSection    `toml:"audio"`
	Display  DisplaySection  `toml:"display"`
	Items    []ItemSection   `toml:"item"`

	// Source names where the configuration came from, for logging
	Source string `toml:"-"`
}

func defaults() File {
	return File{
		Carousel: CarouselSection{
			SlideThreshold: constants.DefaultSlideThreshold,
			SlideTime:      constants.DefaultSlideTime.Seconds(),
			AutoPlay:       false,
			AutoPlayTime:   constants.DefaultAutoPlayTime.Seconds(),
		},
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Display: DisplaySection{
			IndicatorActive:   string(constants.IndicatorActive),
			IndicatorInactive: string(constants.IndicatorInactive),
		},
	}
}

// Parse decodes TOML over the built-in defaults
// Keys absent from data keep their default value
func Parse(data []byte) (*File, error) {
	f := defaults()
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Ignoring unknown config key: %s", key.String())
	}

	for i, item := range f.Items {
		if strings.TrimSpace(item.Resource) == "" {
			return nil, fmt.Errorf("item %d: missing resource path", i)
		}
	}
	return &f, nil
}

// Load reads and decodes a configuration file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	f.Source = path
	return f, nil
}

// Default decodes the embedded configuration
func Default() (*File, error) {
	f, err := Parse([]byte(asset.DefaultConfig))
	if err != nil {
		return nil, err
	}
	f.Source = "built-in"
	return f, nil
}

// Engine converts the carousel section into a validated engine config
func (f *File) Engine() (carousel.Config, error) {
	cfg := carousel.Config{
		SlideThreshold: f.Carousel.SlideThreshold,
		SlideTime:      seconds(f.Carousel.SlideTime),
		IsAutoPlay:     f.Carousel.AutoPlay,
		AutoPlayTime:   seconds(f.Carousel.AutoPlayTime),
	}
	if err := cfg.Validate(); err != nil {
		return carousel.Config{}, err
	}
	return cfg, nil
}

// CarouselItems converts the [[item]] tables into engine items
func (f *File) CarouselItems() []carousel.Item {
	items := make([]carousel.Item, len(f.Items))
	for i, it := range f.Items {
		items[i] = carousel.Item{
			ResourcePath: it.Resource,
			IsMulti:      it.Multi,
			Actions:      append([]string(nil), it.Actions...),
		}
	}
	return items
}

// AudioConfig converts the audio section, effect volumes keep the stock mix
// Master volume is clamped to [0, 1]
func (f *File) AudioConfig() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = f.Audio.Enabled
	cfg.MasterVolume = vmath.Clamp(f.Audio.MasterVolume, 0, 1)
	if f.Audio.SampleRate > 0 {
		cfg.SampleRate = f.Audio.SampleRate
	}
	return cfg
}

// IndicatorGlyphs returns the first rune of each indicator string, falling back to the defaults
func (f *File) IndicatorGlyphs() (active, inactive rune) {
	return firstRune(f.Display.IndicatorActive, constants.IndicatorActive),
		firstRune(f.Display.IndicatorInactive, constants.IndicatorInactive)
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
