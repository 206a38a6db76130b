package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-carousel/carousel"
	"github.com/lixenwraith/vi-carousel/constants"
)

// SoundManager plays feedback sounds for carousel events
// Safe to use from the frame loop while beep's speaker goroutine drains playback
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	play        func(beep.Streamer)
	now         func() time.Time
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager, nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg: cfg,
		now: time.Now,
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.play = func(s beep.Streamer) { speaker.Play(s) }
	sm.initialized = true
	return nil
}

// Cleanup stops playback, the speaker stays open for the process lifetime
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
	sm.play = nil
}

// Play queues a sound, repeated sounds inside MinSoundGap are dropped
// Returns false when nothing was queued
func (sm *SoundManager) Play(s SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.play == nil || s < 0 || s >= soundTypeCount {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[s]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[s] = now
	sm.play(streamer)
	return true
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Audible reports whether Play can currently queue sounds
func (sm *SoundManager) Audible() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// OnCarouselEvent implements carousel.Listener
func (sm *SoundManager) OnCarouselEvent(ev carousel.Event) {
	if s, ok := SoundForEvent(ev.Kind); ok {
		if !sm.Play(s) {
			log.Printf("Sound %s skipped for %s", s, ev.Kind)
		}
	}
}

// SoundForEvent maps engine events to feedback sounds
func SoundForEvent(kind carousel.EventKind) (SoundType, bool) {
	switch kind {
	case carousel.EventCommit, carousel.EventStep:
		return SoundClick, true
	case carousel.EventSnapBack:
		return SoundThud, true
	case carousel.EventAutoAdvance:
		return SoundChime, true
	default:
		return 0, false
	}
}
