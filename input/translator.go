package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator converts tcell events into intents
type Translator struct {
	mouse *MouseTracker
}

// NewTranslator creates a translator that hit-tests mouse presses with hit
func NewTranslator(hit HitTester) *Translator {
	return &Translator{mouse: NewMouseTracker(hit)}
}

// Dragging reports whether a mouse drag is in progress
func (t *Translator) Dragging() bool {
	return t.mouse.Dragging()
}

// Translate returns the intents for one event, nil when the event carries none
func (t *Translator) Translate(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if in := translateKey(ev); in.Type != IntentNone {
			return []Intent{in}
		}

	case *tcell.EventMouse:
		if step := wheelStep(ev.Buttons()); step != 0 && !t.mouse.Dragging() {
			return []Intent{{Type: IntentStep, Direction: step}}
		}
		var out []Intent
		for _, g := range t.mouse.Track(ev) {
			out = append(out, Intent{Type: IntentGesture, Gesture: g})
		}
		return out

	case *tcell.EventResize:
		w, h := ev.Size()
		out := []Intent{}
		for _, g := range t.mouse.Cancel() {
			out = append(out, Intent{Type: IntentGesture, Gesture: g})
		}
		return append(out, Intent{Type: IntentResize, Width: w, Height: h})
	}
	return nil
}

func translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return Intent{Type: IntentQuit}
	case tcell.KeyCtrlS:
		return Intent{Type: IntentToggleMute}
	case tcell.KeyLeft:
		return Intent{Type: IntentStep, Direction: -1}
	case tcell.KeyRight:
		return Intent{Type: IntentStep, Direction: 1}
	case tcell.KeyEnter:
		return Intent{Type: IntentOpen}
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch ev.Rune() {
			case 'c', 'q':
				return Intent{Type: IntentQuit}
			case 's':
				return Intent{Type: IntentToggleMute}
			}
			return Intent{}
		}
		switch ev.Rune() {
		case 'q':
			return Intent{Type: IntentQuit}
		case 'm':
			return Intent{Type: IntentToggleMute}
		case 'h':
			return Intent{Type: IntentStep, Direction: -1}
		case 'l':
			return Intent{Type: IntentStep, Direction: 1}
		case ' ':
			return Intent{Type: IntentOpen}
		}
	}
	return Intent{}
}

func wheelStep(b tcell.ButtonMask) int {
	switch {
	case b&(tcell.WheelUp|tcell.WheelLeft) != 0:
		return -1
	case b&(tcell.WheelDown|tcell.WheelRight) != 0:
		return 1
	default:
		return 0
	}
}
