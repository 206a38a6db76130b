package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-carousel/carousel"
)

// HitTester maps a screen cell to the visual item index drawn there, -1 for none
type HitTester func(x, y int) int

// MouseTracker turns raw left-button mouse reports into drag and tap gestures
// A press that moves at least one cell before release is a drag, otherwise a tap
type MouseTracker struct {
	hit HitTester

	pressed   bool
	dragging  bool
	pressX    int
	lastX     int
	pressItem int
}

// NewMouseTracker creates a tracker, nil hit reports every press as item -1
func NewMouseTracker(hit HitTester) *MouseTracker {
	if hit == nil {
		hit = func(int, int) int { return -1 }
	}
	return &MouseTracker{hit: hit}
}

// Dragging reports whether a drag gesture is in progress
func (m *MouseTracker) Dragging() bool {
	return m.dragging
}

// Track consumes a mouse event and returns the gestures it completes
func (m *MouseTracker) Track(ev *tcell.EventMouse) []carousel.Gesture {
	x, y := ev.Position()
	left := ev.Buttons()&tcell.Button1 != 0

	switch {
	case left && !m.pressed:
		m.pressed = true
		m.pressX, m.lastX = x, x
		m.pressItem = m.hit(x, y)
		return nil

	case left && m.pressed:
		if x == m.lastX {
			return nil
		}
		var out []carousel.Gesture
		if !m.dragging {
			m.dragging = true
			out = append(out, carousel.Gesture{Kind: carousel.GestureBegin, Item: m.pressItem})
		}
		out = append(out, carousel.Gesture{Kind: carousel.GestureDrag, Item: m.pressItem, DeltaX: float64(x - m.lastX)})
		m.lastX = x
		return out

	case !left && m.pressed:
		g := carousel.Gesture{Kind: carousel.GestureEnd, Item: m.pressItem}
		if !m.dragging {
			g.Kind = carousel.GestureTap
		}
		wasTap := !m.dragging
		m.reset()
		if wasTap && g.Item < 0 {
			return nil
		}
		return []carousel.Gesture{g}
	}

	return nil
}

// Cancel ends any drag in progress, used when the screen resizes mid-gesture
func (m *MouseTracker) Cancel() []carousel.Gesture {
	dragging := m.dragging
	item := m.pressItem
	m.reset()
	if !dragging {
		return nil
	}
	return []carousel.Gesture{{Kind: carousel.GestureEnd, Item: item}}
}

func (m *MouseTracker) reset() {
	m.pressed = false
	m.dragging = false
	m.pressItem = -1
}
