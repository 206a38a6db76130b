package carousel

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-carousel/timer"
	"github.com/lixenwraith/vi-carousel/vmath"
)

// Phase is the drag/slide lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSliding
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDragging:
		return "Dragging"
	case PhaseSliding:
		return "Sliding"
	default:
		return "Unknown"
	}
}

// ActionOpener receives the action string of a tapped item
type ActionOpener interface {
	Open(action string) error
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithListener registers the receiver of engine events
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

// WithOpener registers the collaborator that acts on tapped items
func WithOpener(o ActionOpener) Option {
	return func(e *Engine) { e.opener = o }
}

// WithStartIndex opens the carousel on item i instead of the first, out-of-range values wrap
// Hosts use it to rebuild an engine at a new width without losing the position
func WithStartIndex(i int) Option {
	return func(e *Engine) { e.start = i }
}

// Engine owns the carousel state, it is not safe for concurrent use
type Engine struct {
	cfg     Config
	catalog Catalog

	// Fixed after New
	itemCount int
	itemWidth float64

	// counter may hold -1 or itemCount between EndDrag and the refresh that ends the slide
	counter         int
	containerOffset float64
	dragAnchor      float64

	slideTimer  *timer.Timer
	slideFrom   float64
	slideTarget float64

	autoplayTimer *timer.Timer

	phase Phase
	plan  Plan

	listener Listener
	opener   ActionOpener
	start    int
}

// New initializes an engine over an expanded catalog
// containerWidth is the viewport width, every item fills it exactly
func New(catalog Catalog, containerWidth float64, cfg Config, opts ...Option) (*Engine, error) {
	n := catalog.Len()
	if n == 0 {
		return nil, configError("", "item list is empty")
	}
	if math.IsNaN(containerWidth) || math.IsInf(containerWidth, 0) || containerWidth <= 0 {
		return nil, configError("", "container width must be positive, got %v", containerWidth)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		catalog:   catalog,
		itemCount: n,
		itemWidth: containerWidth,
		plan: Plan{
			Items:          make([]Placement, n),
			Indicators:     make([]Indicator, n),
			ItemWidth:      containerWidth,
			ContainerWidth: float64(n) * containerWidth,
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.counter = vmath.Wrap(e.start, n)
	e.containerOffset = -containerWidth * float64(e.counter)
	e.refresh()
	return e, nil
}

// NewFromItems expands items through resolver and initializes an engine over the result
func NewFromItems(items []Item, resolver Resolver, containerWidth float64, cfg Config, opts ...Option) (*Engine, error) {
	catalog, err := Expand(items, resolver)
	if err != nil {
		return nil, err
	}
	return New(catalog, containerWidth, cfg, opts...)
}

// BeginDrag cancels any slide or autoplay and anchors the drag at the current offset
// A wrap slide cut short is rebased first so the next commit steps from an in-range counter
func (e *Engine) BeginDrag() {
	e.slideTimer = nil
	e.autoplayTimer = nil
	e.rebase()
	e.dragAnchor = e.containerOffset
	e.phase = PhaseDragging
}

// Drag moves the container 1:1 with the pointer, the counter does not change
func (e *Engine) Drag(deltaX float64) {
	if e.phase != PhaseDragging {
		return
	}
	e.containerOffset += deltaX
}

// EndDrag commits at most one step and always starts a slide onto an item boundary
func (e *Engine) EndDrag() {
	if e.phase != PhaseDragging {
		return
	}

	delta := e.containerOffset - e.dragAnchor
	committed := false
	if vmath.Abs(delta) > e.cfg.SlideThreshold {
		// Dragging left (negative delta) moves to the next item
		prev := e.counter
		e.changeCounter(-vmath.Sign(delta))
		committed = e.counter != prev
	}

	e.startSlide()

	if committed {
		e.emit(EventCommit, -1, "")
	} else {
		e.emit(EventSnapBack, -1, "")
	}
}

// Step moves one item in direction's sign, only accepted while Idle
func (e *Engine) Step(direction int) bool {
	if e.phase != PhaseIdle || direction == 0 {
		return false
	}
	e.changeCounter(vmath.Sign(float64(direction)))
	e.startSlide()
	e.emit(EventStep, -1, "")
	return true
}

// Tick advances the slide animation, or the autoplay timer when no slide runs
// A slide completing in this tick does not also advance autoplay
func (e *Engine) Tick(dt time.Duration) Plan {
	if e.slideTimer != nil {
		e.slideTimer.Update(dt)
		if !e.slideTimer.Done() {
			e.containerOffset = vmath.Lerp(e.slideFrom, e.slideTarget, e.slideTimer.Percentage())
		} else {
			e.containerOffset = e.slideTarget
			e.slideTimer = nil
			e.phase = PhaseIdle
			e.refresh()
			e.emit(EventSettle, -1, "")
		}
	} else if e.autoplayTimer != nil && e.phase == PhaseIdle {
		e.autoplayTimer.Update(dt)
		if e.autoplayTimer.Done() {
			e.autoplayTimer.Reset()
			e.changeCounter(1)
			e.startSlide()
			e.emit(EventAutoAdvance, -1, "")
		}
	}

	return e.Plan()
}

// Plan returns a copy of the current placement plan with the live container offset
func (e *Engine) Plan() Plan {
	p := e.plan.clone()
	p.ContainerOffset = e.containerOffset
	p.Counter = e.Counter()
	return p
}

// Counter returns the current index normalized into [0, ItemCount)
func (e *Engine) Counter() int {
	return vmath.Wrap(e.counter, e.itemCount)
}

// Offset returns the container scroll position
func (e *Engine) Offset() float64 {
	return e.containerOffset
}

// Phase returns the drag/slide lifecycle state
func (e *Engine) Phase() Phase {
	return e.phase
}

// Slide returns the slide target and whether a slide is running
func (e *Engine) Slide() (target float64, active bool) {
	return e.slideTarget, e.slideTimer != nil
}

// Autoplay returns the time left before the next automatic advance and whether autoplay is armed
func (e *Engine) Autoplay() (remaining time.Duration, armed bool) {
	if e.autoplayTimer == nil {
		return 0, false
	}
	return e.autoplayTimer.Remaining(), true
}

func (e *Engine) ItemCount() int     { return e.itemCount }
func (e *Engine) ItemWidth() float64 { return e.itemWidth }
func (e *Engine) Config() Config     { return e.cfg }
func (e *Engine) Catalog() Catalog   { return e.catalog }

func (e *Engine) startSlide() {
	e.slideTimer = timer.New(e.cfg.SlideTime)
	e.slideFrom = e.containerOffset
	e.slideTarget = -e.itemWidth * float64(e.counter)
	e.phase = PhaseSliding
}

func (e *Engine) changeCounter(delta int) {
	e.counter += delta
	e.validateCounter()
}

// validateCounter clamps when there are too few items to draw the wrap illusion
// Otherwise the out-of-range value is left for refresh to interpret as a wrap
func (e *Engine) validateCounter() {
	if e.itemCount < 3 && (e.counter < 0 || e.counter >= e.itemCount) {
		e.counter = vmath.ClampInt(e.counter, 0, e.itemCount-1)
	}
}

func (e *Engine) emit(kind EventKind, item int, action string) {
	if e.listener == nil {
		return
	}
	e.listener.OnCarouselEvent(Event{Kind: kind, Counter: e.Counter(), Item: item, Action: action})
}
