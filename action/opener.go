// Package action implements the openers that act on a tapped carousel item
package action

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/browser"
)

// ErrUnsupportedScheme is returned for action strings the browser opener will not launch
var ErrUnsupportedScheme = errors.New("unsupported action scheme")

// Browser opens http(s) and file actions with the system browser
type Browser struct {
	// open is swapped in tests
	open func(string) error
}

// NewBrowser creates a browser opener, launcher output is discarded so it cannot corrupt the terminal
func NewBrowser() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{open: browser.OpenURL}
}

// Open validates the action as a URL and launches it
func (b *Browser) Open(action string) error {
	u, err := url.Parse(strings.TrimSpace(action))
	if err != nil {
		return fmt.Errorf("parse action: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "file":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	log.Printf("Opening %s", u)
	return b.open(u.String())
}

// Log records actions without acting on them
type Log struct{}

func (Log) Open(action string) error {
	log.Printf("Action: %s", action)
	return nil
}

// Recorder keeps every opened action in order, safe for concurrent use
type Recorder struct {
	mu      sync.Mutex
	actions []string
}

func (r *Recorder) Open(action string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
	return nil
}

// Actions returns a copy of the recorded actions
func (r *Recorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.actions...)
}

// Last returns the most recent action, empty when nothing was opened
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.actions) == 0 {
		return ""
	}
	return r.actions[len(r.actions)-1]
}
