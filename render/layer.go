// Package render draws carousel plans onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-carousel/carousel"
	"github.com/lixenwraith/vi-carousel/constants"
	"github.com/lixenwraith/vi-carousel/vmath"
)

// ItemView is the on-screen handle for one visual item
type ItemView struct {
	Slide  Slide
	X      int // Screen column of the left edge
	Width  int
	Active bool
}

// Visible reports whether an active view overlaps [0, screenWidth)
func (v ItemView) Visible(screenWidth int) bool {
	return v.Active && v.X < screenWidth && v.X+v.Width > 0
}

// IndicatorView is the on-screen handle for one position dot
type IndicatorView struct {
	Active bool
}

// Layer holds the view handles a Plan is applied to
type Layer struct {
	items      []ItemView
	indicators []IndicatorView
	width      int
	height     int

	glyphActive   rune
	glyphInactive rune
}

// NewLayer creates one item view and one indicator per catalog entry
func NewLayer(catalog carousel.Catalog, width, height int) *Layer {
	l := &Layer{
		items:         make([]ItemView, catalog.Len()),
		indicators:    make([]IndicatorView, catalog.Len()),
		glyphActive:   constants.IndicatorActive,
		glyphInactive: constants.IndicatorInactive,
	}
	for i, entry := range catalog.Entries {
		l.items[i].Slide = ParseSlide(entry.Resource)
	}
	l.Resize(width, height)
	return l
}

// SetGlyphs replaces the indicator runes
func (l *Layer) SetGlyphs(active, inactive rune) {
	l.glyphActive, l.glyphInactive = active, inactive
}

// Resize records new screen dimensions, the next Apply repositions the views
func (l *Layer) Resize(width, height int) {
	l.width, l.height = width, height
}

// SlideHeight returns the rows available to slide panels
func (l *Layer) SlideHeight() int {
	return max(l.height-constants.StatusBarHeight-constants.IndicatorRowHeight, 0)
}

// Apply copies a plan into the view handles
func (l *Layer) Apply(p carousel.Plan) {
	w := vmath.Round(p.ItemWidth)
	for i := range l.items {
		if i >= len(p.Items) {
			l.items[i].Active = false
			continue
		}
		pl := p.Items[i]
		l.items[i].X = vmath.Round(p.ContainerOffset + pl.OffsetX)
		l.items[i].Width = w
		l.items[i].Active = pl.Active
	}
	for i := range l.indicators {
		l.indicators[i].Active = i < len(p.Indicators) && p.Indicators[i].Active
	}
}

// Items returns a copy of the item views
func (l *Layer) Items() []ItemView {
	return append([]ItemView(nil), l.items...)
}

// Indicators returns a copy of the indicator views
func (l *Layer) Indicators() []IndicatorView {
	return append([]IndicatorView(nil), l.indicators...)
}

// HitTest returns the visual index of the active item drawn at x, y, or -1
func (l *Layer) HitTest(x, y int) int {
	if y < 0 || y >= l.SlideHeight() || x < 0 || x >= l.width {
		return -1
	}
	for i, v := range l.items {
		if v.Active && x >= v.X && x < v.X+v.Width {
			return i
		}
	}
	return -1
}

// Draw renders visible item views and the indicator row into buf
func (l *Layer) Draw(buf *Buffer) {
	h := l.SlideHeight()
	for _, v := range l.items {
		if v.Visible(l.width) {
			drawPanel(buf, v, h)
		}
	}
	l.drawIndicators(buf, h)
}

// drawPanel draws a bordered slide with its left edge at v.X, cells off screen are dropped by Buffer
func drawPanel(buf *Buffer, v ItemView, height int) {
	// One blank column on each side keeps adjacent panels apart while sliding
	x0, x1 := v.X+1, v.X+v.Width-2
	if x1-x0 < 2 || height < 3 {
		return
	}
	y0, y1 := 0, height-1

	buf.Fill(x0, y0, x1-x0+1, height, ' ', StylePanel)
	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, '─', StylePanelEdge)
		buf.Set(x, y1, '─', StylePanelEdge)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, '│', StylePanelEdge)
		buf.Set(x1, y, '│', StylePanelEdge)
	}
	buf.Set(x0, y0, '╭', StylePanelEdge)
	buf.Set(x1, y0, '╮', StylePanelEdge)
	buf.Set(x0, y1, '╰', StylePanelEdge)
	buf.Set(x1, y1, '╯', StylePanelEdge)

	inner := x1 - x0 - 1 - 2*constants.SlidePadding
	if inner <= 0 {
		return
	}
	left := x0 + 1 + constants.SlidePadding

	row := y0 + 1
	if row < y1 {
		buf.Text(left, row, runewidth.Truncate(v.Slide.Title, inner, "…"), StyleTitle)
		row += 2
	}
	for _, line := range Wrap(v.Slide.Body, inner) {
		if row >= y1 {
			break
		}
		buf.Text(left, row, line, StylePanel)
		row++
	}
}

func (l *Layer) drawIndicators(buf *Buffer, y int) {
	n := len(l.indicators)
	if n == 0 || y >= l.height {
		return
	}
	span := n + (n-1)*constants.IndicatorSpacing
	x := (l.width - span) / 2

	for _, ind := range l.indicators {
		r, style := l.glyphInactive, tcell.StyleDefault.Background(RgbBackground).Foreground(RgbIndicatorInactive)
		if ind.Active {
			r, style = l.glyphActive, tcell.StyleDefault.Background(RgbBackground).Foreground(RgbIndicatorActive)
		}
		buf.Set(x, y, r, style)
		x += 1 + constants.IndicatorSpacing
	}
}
