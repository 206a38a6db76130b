package carousel

// EventKind identifies an engine notification
type EventKind int

const (
	EventCommit         EventKind = iota // Drag passed the threshold and moved the counter
	EventSnapBack                        // Drag released under the threshold
	EventAutoAdvance                     // Autoplay moved the counter
	EventStep                            // Programmatic step moved the counter
	EventSettle                          // Slide finished and the window was refreshed
	EventTap                             // Tap resolved to an action
	EventActionFallback                  // Tapped index had no action, first action used
)

func (k EventKind) String() string {
	switch k {
	case EventCommit:
		return "Commit"
	case EventSnapBack:
		return "SnapBack"
	case EventAutoAdvance:
		return "AutoAdvance"
	case EventStep:
		return "Step"
	case EventSettle:
		return "Settle"
	case EventTap:
		return "Tap"
	case EventActionFallback:
		return "ActionFallback"
	default:
		return "Unknown"
	}
}

// Event is delivered synchronously from inside the entry point that caused it
// Counter is normalized, Item is the visual index involved (tap) or -1
type Event struct {
	Kind    EventKind
	Counter int
	Item    int
	Action  string
}

// Listener receives engine events
type Listener interface {
	OnCarouselEvent(Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnCarouselEvent(ev Event) { f(ev) }

// Listeners fans one event out to several listeners in order
type Listeners []Listener

func (ls Listeners) OnCarouselEvent(ev Event) {
	for _, l := range ls {
		if l != nil {
			l.OnCarouselEvent(ev)
		}
	}
}
