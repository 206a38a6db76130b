package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-carousel/audio"
	"github.com/lixenwraith/vi-carousel/carousel"
	"github.com/lixenwraith/vi-carousel/constants"
	"github.com/lixenwraith/vi-carousel/core"
	"github.com/lixenwraith/vi-carousel/input"
	"github.com/lixenwraith/vi-carousel/render"
	"github.com/lixenwraith/vi-carousel/status"
)

// app wires one engine to a screen
// All engine calls happen on the goroutine running run, the poller only forwards events
type app struct {
	screen  tcell.Screen
	catalog carousel.Catalog
	cfg     carousel.Config

	engine *carousel.Engine
	layer  *render.Layer
	buf    *render.Buffer
	bar    *render.StatusBar
	input  *input.Translator

	reg      *status.Registry
	rec      *status.Recorder
	sound    *audio.SoundManager
	listener carousel.Listener
	opener   carousel.ActionOpener
}

// newApp sizes the engine to the screen, sound may be nil
func newApp(screen tcell.Screen, catalog carousel.Catalog, cfg carousel.Config, sound *audio.SoundManager, opener carousel.ActionOpener) (*app, error) {
	reg := status.NewRegistry()
	a := &app{
		screen:  screen,
		catalog: catalog,
		cfg:     cfg,
		buf:     render.NewBuffer(0, 0),
		bar:     render.NewStatusBar(reg),
		reg:     reg,
		rec:     status.NewRecorder(reg),
		sound:   sound,
		opener:  opener,
	}

	listeners := carousel.Listeners{a.rec, carousel.ListenerFunc(logEvent)}
	if sound != nil {
		listeners = append(listeners, sound)
	}
	a.listener = listeners
	a.input = input.NewTranslator(func(x, y int) int { return a.layer.HitTest(x, y) })

	w, h := screen.Size()
	if err := a.rebuild(w, h); err != nil {
		return nil, err
	}
	return a, nil
}

// rebuild recreates the engine at a new width, item width is fixed for an engine's lifetime
func (a *app) rebuild(width, height int) error {
	start := 0
	if a.engine != nil {
		start = a.engine.Counter()
	}

	e, err := carousel.New(a.catalog, float64(max(width, constants.MinSlideWidth)), a.cfg,
		carousel.WithListener(a.listener),
		carousel.WithOpener(a.opener),
		carousel.WithStartIndex(start),
	)
	if err != nil {
		return err
	}
	a.engine = e

	if a.layer == nil {
		a.layer = render.NewLayer(a.catalog, width, height)
	} else {
		a.layer.Resize(width, height)
	}
	a.buf.Resize(width, height)
	a.layer.Apply(e.Plan())
	return nil
}

// handle applies one terminal event, false means quit
func (a *app) handle(ev tcell.Event) bool {
	for _, in := range a.input.Translate(ev) {
		switch in.Type {
		case input.IntentQuit:
			return false

		case input.IntentToggleMute:
			if a.sound != nil {
				log.Printf("Muted: %v", a.sound.ToggleMute())
			}

		case input.IntentResize:
			if err := a.rebuild(in.Width, in.Height); err != nil {
				log.Printf("Resize to %dx%d failed: %v", in.Width, in.Height, err)
			}
			a.screen.Sync()

		case input.IntentGesture:
			if err := a.engine.Handle(in.Gesture); err != nil {
				log.Printf("Gesture %s on item %d: %v", in.Gesture.Kind, in.Gesture.Item, err)
			}

		case input.IntentStep:
			a.engine.Step(in.Direction)

		case input.IntentOpen:
			if _, err := a.engine.Tap(a.engine.Counter()); err != nil {
				log.Printf("Open item %d: %v", a.engine.Counter(), err)
			}
		}
	}
	return true
}

// frame advances the engine by dt and draws the result
func (a *app) frame(dt time.Duration) {
	if dt > constants.MaxFrameDelta {
		dt = constants.MaxFrameDelta
	}
	a.layer.Apply(a.engine.Tick(dt))

	a.rec.Sample(a.engine)
	a.reg.Audible.Store(a.sound != nil && a.sound.Audible())
	if dt > 0 {
		a.reg.FPS.Smooth(float64(time.Second)/float64(dt), 0.1)
	}

	a.buf.Clear()
	a.layer.Draw(a.buf)
	a.bar.Draw(a.buf)
	a.buf.Flush(a.screen)
	a.screen.Show()
}

// run polls the screen on a separate goroutine and drives frames until quit
func (a *app) run() error {
	events := make(chan tcell.Event, constants.EventChannelSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()
	a.frame(0)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.frame(now.Sub(last))
			last = now
		}
	}
}

func logEvent(ev carousel.Event) {
	switch ev.Kind {
	case carousel.EventTap, carousel.EventActionFallback:
		log.Printf("Event %s: item=%d action=%q counter=%d", ev.Kind, ev.Item, ev.Action, ev.Counter)
	default:
		log.Printf("Event %s: counter=%d", ev.Kind, ev.Counter)
	}
}
