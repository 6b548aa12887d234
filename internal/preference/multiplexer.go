package preference

import "sync"

// once returns a function that runs f on its first call only.
func once(f func()) func() {
	var o sync.Once
	return func() { o.Do(f) }
}

// Multiplexer shares one underlying listener registration between any number
// of subscribers. attach runs when the subscriber count goes from 0 to 1 and
// the detach function it returned runs when the count drops back to 0.
type Multiplexer struct {
	mu     sync.Mutex
	count  int
	attach func() (detach func())
	detach func()
}

// NewMultiplexer creates a multiplexer around attach. attach may return nil
// when there is nothing to detach.
func NewMultiplexer(attach func() (detach func())) *Multiplexer {
	return &Multiplexer{attach: attach}
}

// Acquire registers a subscriber and returns its release handle.
// Calling the handle more than once has no further effect.
func (m *Multiplexer) Acquire() (release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.count == 0 && m.attach != nil {
		m.detach = m.attach()
	}
	m.count++
	return once(m.release)
}

// Active returns the number of unreleased subscribers.
func (m *Multiplexer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *Multiplexer) release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.count == 0 {
		return
	}
	m.count--
	if m.count == 0 && m.detach != nil {
		detach := m.detach
		m.detach = nil
		detach()
	}
}
