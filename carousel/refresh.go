package carousel

import "github.com/lixenwraith/vi-carousel/timer"

// refresh normalizes a wrapped counter and recomputes the activation window
//
// At most three items are active: the counter and its two neighbours. With three or more
// items the boundary neighbour on the far side is re-placed next to the counter so the
// list reads as circular: the last item left of index 0, or the first item right of the last.
func (e *Engine) refresh() {
	n := e.itemCount
	w := e.itemWidth

	switch {
	case e.counter >= n:
		e.counter = 0
		e.containerOffset = 0
	case e.counter < 0:
		e.counter = n - 1
		e.containerOffset = -float64(n-1) * w
	}

	e.layout()

	if e.cfg.IsAutoPlay {
		e.autoplayTimer = timer.New(e.cfg.AutoPlayTime)
	}
}

// rebase folds an interrupted wrap slide back into range
// The container moves by one full loop so the boundary item stays where it is on screen
func (e *Engine) rebase() {
	loop := float64(e.itemCount) * e.itemWidth

	switch {
	case e.counter >= e.itemCount:
		e.counter -= e.itemCount
		e.containerOffset += loop
	case e.counter < 0:
		e.counter += e.itemCount
		e.containerOffset -= loop
	default:
		return
	}
	e.layout()
}

func (e *Engine) layout() {
	n := e.itemCount
	w := e.itemWidth

	for i := range e.plan.Items {
		e.plan.Items[i] = Placement{
			OffsetX: float64(i) * w,
			Active:  i >= e.counter-1 && i <= e.counter+1,
		}
	}

	if n >= 3 {
		switch e.counter {
		case 0:
			e.plan.Items[n-1] = Placement{OffsetX: -w, Active: true}
		case n - 1:
			e.plan.Items[0] = Placement{OffsetX: float64(n) * w, Active: true}
		}
	}

	for i := range e.plan.Indicators {
		e.plan.Indicators[i] = Indicator{Active: i == e.counter}
	}
	e.plan.Counter = e.counter
}
