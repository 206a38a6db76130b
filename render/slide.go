package render

import (
	"path"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-carousel/carousel"
)

// Slide is the drawable content of one resource
// The first non-empty line of a text body is the title, the rest is the body
type Slide struct {
	Title string
	Body  []string
}

// ParseSlide builds a slide from a resolved resource
// Resources without a body are titled by their file name
func ParseSlide(res carousel.Resource) Slide {
	text := strings.ReplaceAll(string(res.Body), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return Slide{Title: stem(res)}
	}

	body := lines[1:]
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	return Slide{Title: strings.TrimSpace(lines[0]), Body: body}
}

func stem(res carousel.Resource) string {
	name := res.Name
	if name == "" {
		name = path.Base(res.Path)
	}
	return strings.TrimSuffix(name, path.Ext(name))
}

// Wrap breaks each paragraph line into display rows no wider than width
// Words longer than width are truncated with an ellipsis
func Wrap(lines []string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var row strings.Builder
		rowWidth := 0
		for _, w := range words {
			ww := runewidth.StringWidth(w)
			if ww > width {
				w = runewidth.Truncate(w, width, "…")
				ww = runewidth.StringWidth(w)
			}
			switch {
			case rowWidth == 0:
				row.WriteString(w)
				rowWidth = ww
			case rowWidth+1+ww <= width:
				row.WriteByte(' ')
				row.WriteString(w)
				rowWidth += 1 + ww
			default:
				out = append(out, row.String())
				row.Reset()
				row.WriteString(w)
				rowWidth = ww
			}
		}
		out = append(out, row.String())
	}
	return out
}
