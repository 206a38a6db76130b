package carousel

import (
	"errors"
	"testing"
)

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(action string) error {
	o.opened = append(o.opened, action)
	return o.err
}

func TestHandleRoutesGestures(t *testing.T) {
	e := newTestEngine(t, 4, DefaultConfig())

	gestures := []Gesture{
		{Kind: GestureBegin, Item: 2},
		{Kind: GestureDrag, Item: 2, DeltaX: -12},
		{Kind: GestureDrag, Item: 3, DeltaX: -12},
		{Kind: GestureEnd, Item: 3},
	}
	for _, g := range gestures {
		if err := e.Handle(g); err != nil {
			t.Fatalf("Handle(%v) failed: %v", g.Kind, err)
		}
	}

	if e.Counter() != 1 {
		t.Errorf("Expected counter 1 regardless of originating item, got %d", e.Counter())
	}
	if e.Phase() != PhaseSliding {
		t.Errorf("Expected Sliding, got %v", e.Phase())
	}

	if err := e.Handle(Gesture{Kind: GestureKind(99)}); err == nil {
		t.Error("Expected error for unknown gesture kind")
	}
}

func TestTapOpensAction(t *testing.T) {
	opener := &recordingOpener{}
	log := &eventLog{}
	e, err := New(CatalogOf(3, "a", "b", "c"), testWidth, DefaultConfig(), WithOpener(opener), WithListener(log))
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Handle(Gesture{Kind: GestureTap, Item: 1}); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "b" {
		t.Errorf("Expected [b] opened, got %v", opener.opened)
	}
	if len(log.events) != 1 || log.events[0].Kind != EventTap || log.events[0].Item != 1 {
		t.Errorf("Expected one Tap event for item 1, got %+v", log.events)
	}
}

func TestTapFallsBackToFirstAction(t *testing.T) {
	opener := &recordingOpener{}
	log := &eventLog{}
	e, err := New(CatalogOf(4, "first"), testWidth, DefaultConfig(), WithOpener(opener), WithListener(log))
	if err != nil {
		t.Fatal(err)
	}

	action, err := e.Tap(3)
	if err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if action != "first" {
		t.Errorf("Expected fallback to first action, got %q", action)
	}
	if got := log.kinds(); len(got) != 2 || got[0] != EventActionFallback || got[1] != EventTap {
		t.Errorf("Expected ActionFallback then Tap, got %v", got)
	}

	if _, fellBack, _ := e.ActionFor(-1); !fellBack {
		t.Error("Expected negative index to fall back")
	}
}

func TestTapWithoutActions(t *testing.T) {
	e := newTestEngine(t, 2, DefaultConfig())
	if _, err := e.Tap(0); !errors.Is(err, ErrNoAction) {
		t.Errorf("Expected ErrNoAction, got %v", err)
	}
}

func TestTapOpenerFailureIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	e, err := New(CatalogOf(1, "x"), testWidth, DefaultConfig(), WithOpener(&recordingOpener{err: boom}))
	if err != nil {
		t.Fatal(err)
	}

	action, err := e.Tap(0)
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped opener error, got %v", err)
	}
	if action != "x" {
		t.Errorf("Expected action returned alongside error, got %q", action)
	}
}
