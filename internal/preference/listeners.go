package preference

import "sync"

// listener wraps a callback to enable pointer comparison for removal.
type listener[T any] struct {
	fn func(T)
}

// listeners is a set of change callbacks.
type listeners[T any] struct {
	mu    sync.Mutex
	items []*listener[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	w := &listener[T]{fn: fn}

	l.mu.Lock()
	l.items = append(l.items, w)
	l.mu.Unlock()

	return once(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, item := range l.items {
			if item == w {
				l.items = append(l.items[:i], l.items[i+1:]...)
				return
			}
		}
	})
}

// notify calls every listener outside the lock.
func (l *listeners[T]) notify(v T) {
	l.mu.Lock()
	items := make([]*listener[T], len(l.items))
	copy(items, l.items)
	l.mu.Unlock()

	for _, item := range items {
		item.fn(v)
	}
}

func (l *listeners[T]) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
