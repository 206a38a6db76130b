package carousel

import "fmt"

// GestureKind identifies a gesture source event
type GestureKind int

const (
	GestureBegin GestureKind = iota
	GestureDrag
	GestureEnd
	GestureTap
)

func (k GestureKind) String() string {
	switch k {
	case GestureBegin:
		return "Begin"
	case GestureDrag:
		return "Drag"
	case GestureEnd:
		return "End"
	case GestureTap:
		return "Tap"
	default:
		return "Unknown"
	}
}

// Gesture is one event from a multiplexed gesture source
// Item is the visual index that received the raw input, DeltaX is set for GestureDrag
type Gesture struct {
	Kind   GestureKind
	Item   int
	DeltaX float64
}

// Handle routes a gesture to the engine regardless of which item received it
func (e *Engine) Handle(g Gesture) error {
	switch g.Kind {
	case GestureBegin:
		e.BeginDrag()
	case GestureDrag:
		e.Drag(g.DeltaX)
	case GestureEnd:
		e.EndDrag()
	case GestureTap:
		_, err := e.Tap(g.Item)
		return err
	default:
		return fmt.Errorf("unknown gesture kind %d", g.Kind)
	}
	return nil
}

// ActionFor resolves the action string of a visual item
// Out-of-range indices fall back to the first action, reported by fellBack
//
// The flattened action list is not aligned with visual indices when multi-resource items
// are mixed with single ones, the fallback keeps taps usable in that case
func (e *Engine) ActionFor(visualIndex int) (action string, fellBack bool, err error) {
	actions := e.catalog.Actions
	if len(actions) == 0 {
		return "", false, ErrNoAction
	}
	if visualIndex >= 0 && visualIndex < len(actions) {
		return actions[visualIndex], false, nil
	}
	return actions[0], true, nil
}

// Tap resolves the tapped item's action and hands it to the opener
func (e *Engine) Tap(visualIndex int) (string, error) {
	action, fellBack, err := e.ActionFor(visualIndex)
	if err != nil {
		return "", err
	}
	if fellBack {
		e.emit(EventActionFallback, visualIndex, action)
	}
	e.emit(EventTap, visualIndex, action)

	if e.opener == nil {
		return action, nil
	}
	if err := e.opener.Open(action); err != nil {
		return action, fmt.Errorf("open %q: %w", action, err)
	}
	return action, nil
}
