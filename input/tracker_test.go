package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-carousel/carousel"
)

func press(x, y int) *tcell.EventMouse   { return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone) }
func release(x, y int) *tcell.EventMouse { return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone) }

// columnHit reports item x/10, matching 10-cell wide items starting at column 0
func columnHit(x, _ int) int { return x / 10 }

func TestTrackerDragSequence(t *testing.T) {
	m := NewMouseTracker(columnHit)

	if g := m.Track(press(25, 3)); g != nil {
		t.Fatalf("Expected no gesture on press, got %v", g)
	}

	g := m.Track(press(22, 3))
	if len(g) != 2 || g[0].Kind != carousel.GestureBegin || g[1].Kind != carousel.GestureDrag {
		t.Fatalf("Expected Begin+Drag on first motion, got %v", g)
	}
	if g[1].DeltaX != -3 || g[1].Item != 2 {
		t.Errorf("Expected delta -3 on item 2, got %v on %d", g[1].DeltaX, g[1].Item)
	}
	if !m.Dragging() {
		t.Error("Expected tracker to be dragging")
	}

	g = m.Track(press(15, 3))
	if len(g) != 1 || g[0].Kind != carousel.GestureDrag || g[0].DeltaX != -7 {
		t.Fatalf("Expected incremental Drag of -7, got %v", g)
	}

	if g := m.Track(press(15, 3)); g != nil {
		t.Errorf("Expected no gesture without movement, got %v", g)
	}

	g = m.Track(release(15, 3))
	if len(g) != 1 || g[0].Kind != carousel.GestureEnd {
		t.Fatalf("Expected End on release, got %v", g)
	}
	if m.Dragging() {
		t.Error("Expected drag to be over after release")
	}
}

func TestTrackerTap(t *testing.T) {
	m := NewMouseTracker(columnHit)

	m.Track(press(31, 0))
	g := m.Track(release(31, 0))
	if len(g) != 1 || g[0].Kind != carousel.GestureTap || g[0].Item != 3 {
		t.Fatalf("Expected Tap on item 3, got %v", g)
	}
}

func TestTrackerTapOutsideItems(t *testing.T) {
	m := NewMouseTracker(func(int, int) int { return -1 })

	m.Track(press(1, 1))
	if g := m.Track(release(1, 1)); g != nil {
		t.Errorf("Expected no tap outside items, got %v", g)
	}
}

func TestTrackerIgnoresMotionWithoutPress(t *testing.T) {
	m := NewMouseTracker(columnHit)
	if g := m.Track(release(5, 5)); g != nil {
		t.Errorf("Expected no gesture for hover, got %v", g)
	}
}

func TestTrackerCancel(t *testing.T) {
	m := NewMouseTracker(columnHit)
	if g := m.Cancel(); g != nil {
		t.Errorf("Expected Cancel to be a no-op when idle, got %v", g)
	}

	m.Track(press(10, 0))
	m.Track(press(12, 0))
	g := m.Cancel()
	if len(g) != 1 || g[0].Kind != carousel.GestureEnd {
		t.Errorf("Expected End from Cancel, got %v", g)
	}
}

func TestTrackerDrivesEngine(t *testing.T) {
	e, err := carousel.New(carousel.CatalogOf(4), 10, carousel.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m := NewMouseTracker(columnHit)

	events := []*tcell.EventMouse{press(8, 0), press(4, 0), press(1, 0), release(1, 0)}
	for _, ev := range events {
		for _, g := range m.Track(ev) {
			if err := e.Handle(g); err != nil {
				t.Fatal(err)
			}
		}
	}

	if e.Counter() != 1 {
		t.Errorf("Expected drag of -7 cells to commit to item 1, got %d", e.Counter())
	}
}
