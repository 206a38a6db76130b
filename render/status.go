package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-carousel/carousel"
	"github.com/lixenwraith/vi-carousel/constants"
	"github.com/lixenwraith/vi-carousel/status"
)

// StatusBar draws the bottom row from the metrics registry
type StatusBar struct {
	reg *status.Registry
}

// NewStatusBar creates a status bar reading reg
func NewStatusBar(reg *status.Registry) *StatusBar {
	return &StatusBar{reg: reg}
}

// Draw renders the phase badge followed by position, autoplay and frame rate
func (s *StatusBar) Draw(buf *Buffer) {
	width, height := buf.Bounds()
	y := height - constants.StatusBarHeight
	if y < 0 {
		return
	}
	buf.Fill(0, y, width, constants.StatusBarHeight, ' ', StyleStatus)

	text, bg := phaseBadge(s.reg.Phase())
	x := buf.Text(0, y, text, tcell.StyleDefault.Background(bg).Foreground(RgbStatusText))

	counter := s.reg.Counter.Load()
	items := s.reg.Items.Load()
	info := fmt.Sprintf(" %d/%d", counter+1, items)
	if remaining := s.reg.Autoplay.Get(); remaining > 0 {
		info += fmt.Sprintf("  auto %.1fs", remaining)
	}
	if last := s.reg.LastAction.Load(); last != "" {
		info += "  " + last
	}
	if !s.reg.Audible.Load() {
		info += "  muted"
	}

	right := ""
	if fps := s.reg.FPS.Get(); fps > 0 {
		right = fmt.Sprintf("%.0f fps ", fps)
	}

	room := width - x - runewidth.StringWidth(right)
	buf.Text(x, y, runewidth.Truncate(info, max(room, 0), "…"), StyleStatus)
	if right != "" && room > 0 {
		buf.Text(width-runewidth.StringWidth(right), y, right, StyleStatus)
	}
}

func phaseBadge(phase carousel.Phase) (string, tcell.Color) {
	switch phase {
	case carousel.PhaseDragging:
		return constants.PhaseTextDragging, RgbPhaseDraggingBg
	case carousel.PhaseSliding:
		return constants.PhaseTextSliding, RgbPhaseSlidingBg
	default:
		return constants.PhaseTextIdle, RgbPhaseIdleBg
	}
}
