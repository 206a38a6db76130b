// Package timer provides the countdown used by carousel animations and autoplay.
// Time only moves when the host calls Update with a frame delta, there is no wall clock involved.
package timer

import "time"

// Timer counts elapsed time up to a fixed duration
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// New creates a timer that completes after d, negative durations count as zero
func New(d time.Duration) *Timer {
	if d < 0 {
		d = 0
	}
	return &Timer{duration: d}
}

// Update advances the timer by dt and reports whether it is still running
// Returns false on the call that reaches the duration and on every call after
func (t *Timer) Update(dt time.Duration) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		return false
	}
	return true
}

// Percentage returns elapsed/duration in [0, 1]
// A zero-duration timer is always complete
func (t *Timer) Percentage() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Elapsed returns time accumulated since creation or the last Reset
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns time left before completion
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Duration returns the configured duration
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Done reports whether the timer has reached its duration
func (t *Timer) Done() bool {
	return t.elapsed >= t.duration
}

// Reset rewinds the timer to zero elapsed
func (t *Timer) Reset() {
	t.elapsed = 0
}
