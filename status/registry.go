package status

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-carousel/carousel"
)

const eventKinds = int(carousel.EventActionFallback) + 1

// Registry is the carousel state shown in the status bar
// Engine listeners and the frame loop write it, the renderer only reads
type Registry struct {
	Counter    atomic.Int64
	Items      atomic.Int64
	Audible    atomic.Bool
	Autoplay   Gauge // seconds until the next automatic advance, 0 when disarmed
	FPS        Gauge
	LastAction Label

	phase  atomic.Int32
	events [eventKinds]atomic.Int64
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) SetPhase(p carousel.Phase) { r.phase.Store(int32(p)) }
func (r *Registry) Phase() carousel.Phase     { return carousel.Phase(r.phase.Load()) }

// AddEvent counts one event of kind, unknown kinds are dropped
func (r *Registry) AddEvent(kind carousel.EventKind) {
	if kind >= 0 && int(kind) < eventKinds {
		r.events[kind].Add(1)
	}
}

// Events returns how many events of kind were counted
func (r *Registry) Events(kind carousel.EventKind) int64 {
	if kind >= 0 && int(kind) < eventKinds {
		return r.events[kind].Load()
	}
	return 0
}
