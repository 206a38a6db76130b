package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelLen bounds a label in bytes, a status row never shows more
const MaxLabelLen = 48

// Label holds the last tapped action for display
type Label struct {
	ptr atomic.Pointer[string]
}

// Store keeps at most MaxLabelLen bytes, cut on a rune boundary
func (l *Label) Store(val string) {
	if len(val) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	l.ptr.Store(&val)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
