package status

import "github.com/lixenwraith/vi-carousel/carousel"

// Recorder mirrors carousel events and engine state into a Registry
type Recorder struct {
	reg *Registry
}

func NewRecorder(reg *Registry) *Recorder {
	return &Recorder{reg: reg}
}

// OnCarouselEvent implements carousel.Listener
func (r *Recorder) OnCarouselEvent(ev carousel.Event) {
	r.reg.AddEvent(ev.Kind)
	r.reg.Counter.Store(int64(ev.Counter))
	if ev.Kind == carousel.EventTap {
		r.reg.LastAction.Store(ev.Action)
	}
}

// Count returns how many events of kind were recorded
func (r *Recorder) Count(kind carousel.EventKind) int64 {
	return r.reg.Events(kind)
}

// Sample writes engine state that does not arrive through events
func (r *Recorder) Sample(e *carousel.Engine) {
	r.reg.Counter.Store(int64(e.Counter()))
	r.reg.Items.Store(int64(e.ItemCount()))
	r.reg.SetPhase(e.Phase())

	remaining, armed := e.Autoplay()
	if !armed {
		remaining = 0
	}
	r.reg.Autoplay.Set(remaining.Seconds())
}
