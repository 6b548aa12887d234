package preference

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/prefkit/internal/application/port"
)

var errBackend = errors.New("storage disabled")

// fakeKV is an in-memory port.KeyValueStore that counts writes and can fail.
type fakeKV struct {
	mu      sync.Mutex
	data    map[string]string
	sets    int
	removes int
	failGet error
	failSet error
}

func newFakeKV(seed map[string]string) *fakeKV {
	data := make(map[string]string, len(seed))
	for k, v := range seed {
		data[k] = v
	}
	return &fakeKV{data: data}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return "", false, f.failGet
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet != nil {
		return f.failSet
	}
	f.sets++
	f.data[key] = value
	return nil
}

func (f *fakeKV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet != nil {
		return f.failSet
	}
	f.removes++
	delete(f.data, key)
	return nil
}

func (f *fakeKV) value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeKV) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets + f.removes
}

// fakeQuery is a port.MediaQuery driven by fakeViewport.
type fakeQuery struct {
	mu        sync.Mutex
	min       int
	matches   bool
	listeners map[int]func(bool)
	nextID    int
	added     int
	removed   int
}

func (q *fakeQuery) Query() string { return fmt.Sprintf("(min-width: %dpx)", q.min) }

func (q *fakeQuery) Matches() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.matches
}

func (q *fakeQuery) OnChange(fn func(bool)) func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := q.nextID
	q.nextID++
	q.listeners[id] = fn
	q.added++
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		if _, ok := q.listeners[id]; ok {
			delete(q.listeners, id)
			q.removed++
		}
	}
}

// update flips the match state and returns the listeners to notify, if any.
func (q *fakeQuery) update(v bool) []func(bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.matches == v {
		return nil
	}
	q.matches = v
	fns := make([]func(bool), 0, len(q.listeners))
	for _, fn := range q.listeners {
		fns = append(fns, fn)
	}
	return fns
}

type fakeViewport struct {
	width   int
	queries []*fakeQuery
}

func (v *fakeViewport) MatchMedia(minWidth int) port.MediaQuery {
	q := &fakeQuery{min: minWidth, matches: v.width >= minWidth, listeners: map[int]func(bool){}}
	v.queries = append(v.queries, q)
	return q
}

// setWidth updates every query before notifying, so listeners never observe
// a half-applied resize.
func (v *fakeViewport) setWidth(width int) {
	v.width = width
	type pending struct {
		fns []func(bool)
		v   bool
	}
	var calls []pending
	for _, q := range v.queries {
		m := width >= q.min
		if fns := q.update(m); len(fns) > 0 {
			calls = append(calls, pending{fns, m})
		}
	}
	for _, c := range calls {
		for _, fn := range c.fns {
			fn(c.v)
		}
	}
}

// attached returns the number of listeners currently registered across all queries.
func (v *fakeViewport) attached() int {
	n := 0
	for _, q := range v.queries {
		q.mu.Lock()
		n += len(q.listeners)
		q.mu.Unlock()
	}
	return n
}

func (v *fakeViewport) totalRemoved() int {
	n := 0
	for _, q := range v.queries {
		q.mu.Lock()
		n += q.removed
		q.mu.Unlock()
	}
	return n
}

// fakeSignal backs both port.ColorSchemeSource and port.LanguageSource.
type fakeSignal struct {
	mu        sync.Mutex
	dark      bool
	known     bool
	languages []string
	listeners listeners[struct{}]
	adds      int
}

func (s *fakeSignal) PrefersDark() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark, s.known
}

func (s *fakeSignal) Languages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.languages)
}

func (s *fakeSignal) OnChange(fn func()) func() {
	s.mu.Lock()
	s.adds++
	s.mu.Unlock()
	return s.listeners.add(func(struct{}) { fn() })
}

func (s *fakeSignal) setDark(dark bool) {
	s.mu.Lock()
	s.dark, s.known = dark, true
	s.mu.Unlock()
	s.listeners.notify(struct{}{})
}

func (s *fakeSignal) setLanguages(langs ...string) {
	s.mu.Lock()
	s.languages = langs
	s.mu.Unlock()
	s.listeners.notify(struct{}{})
}

// fire notifies without changing anything, like a spurious languagechange event.
func (s *fakeSignal) fire() {
	s.listeners.notify(struct{}{})
}

var (
	_ port.KeyValueStore     = (*fakeKV)(nil)
	_ port.Viewport          = (*fakeViewport)(nil)
	_ port.ColorSchemeSource = (*fakeSignal)(nil)
	_ port.LanguageSource    = (*fakeSignal)(nil)
)
