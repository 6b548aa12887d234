// Package viewport provides in-process media query matching for callers
// without a browser: the terminal and the TUI.
package viewport

import (
	"fmt"
	"sync"

	"github.com/bnema/prefkit/internal/application/port"
)

// Viewport is a port.Viewport whose width is pushed by its owner.
type Viewport struct {
	mu      sync.Mutex
	width   int
	queries []*query
}

var _ port.Viewport = (*Viewport)(nil)

// New creates a viewport with the given initial width in pixels.
func New(width int) *Viewport {
	return &Viewport{width: width}
}

// Width returns the current width in pixels.
func (v *Viewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// MatchMedia implements port.Viewport for "(min-width: Npx)" queries.
func (v *Viewport) MatchMedia(minWidth int) port.MediaQuery {
	v.mu.Lock()
	defer v.mu.Unlock()

	q := &query{min: minWidth, matches: v.width >= minWidth}
	v.queries = append(v.queries, q)
	return q
}

// SetWidth updates every query and then notifies the listeners of those
// whose result flipped, so no listener observes a partially applied width.
func (v *Viewport) SetWidth(width int) {
	v.mu.Lock()
	v.width = width
	var flips []flip
	for _, q := range v.queries {
		if f, ok := q.update(width >= q.min); ok {
			flips = append(flips, f)
		}
	}
	v.mu.Unlock()

	for _, f := range flips {
		for _, fn := range f.listeners {
			fn(f.matches)
		}
	}
}

type flip struct {
	matches   bool
	listeners []func(bool)
}

type listener struct {
	fn func(bool)
}

type query struct {
	min int

	mu        sync.Mutex
	matches   bool
	listeners []*listener
}

func (q *query) Query() string {
	return fmt.Sprintf("(min-width: %dpx)", q.min)
}

func (q *query) Matches() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.matches
}

func (q *query) OnChange(fn func(bool)) func() {
	q.mu.Lock()
	defer q.mu.Unlock()

	l := &listener{fn: fn}
	q.listeners = append(q.listeners, l)

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i, cur := range q.listeners {
			if cur == l {
				q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
				return
			}
		}
	}
}

func (q *query) update(matches bool) (flip, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.matches == matches {
		return flip{}, false
	}
	q.matches = matches
	fns := make([]func(bool), len(q.listeners))
	for i, l := range q.listeners {
		fns[i] = l.fn
	}
	return flip{matches: matches, listeners: fns}, true
}

func (q *query) listenerCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.listeners)
}
