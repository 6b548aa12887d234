// Package colorscheme turns desktop color scheme hints into the live
// prefers-dark signal the theme preference follows.
package colorscheme

import (
	"sort"
	"strings"
	"sync"

	"github.com/bnema/prefkit/internal/application/port"
)

const (
	// sourceNone indicates no detector provided the preference.
	sourceNone = "none"
	// sourceConfig indicates the preference came from the signals config.
	sourceConfig = "config"
)

// ConfigProvider provides access to the color scheme signal override.
type ConfigProvider interface {
	// GetColorScheme returns the configured color scheme.
	// Expected values: "default", "prefer-dark", "prefer-light", "dark", "light"
	GetColorScheme() string
}

// Preference is a resolved color scheme reading.
type Preference struct {
	PrefersDark bool
	// Known is false when neither the config nor any detector could answer.
	Known  bool
	Source string
}

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func()
}

// Resolver implements port.ColorSchemeSource.
// It consults detectors in priority order and respects the config override.
// Readings are cached; Refresh re-runs the detectors.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   Preference
	callbacks []*callbackWrapper
}

var _ port.ColorSchemeSource = (*Resolver)(nil)

// NewResolver creates a resolver with no detectors. The reading stays
// unknown until the first Refresh.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config:    config,
		detectors: make([]port.ColorSchemeDetector, 0),
		current:   Preference{Source: sourceNone},
	}
}

// Resolve runs the config override and the detector chain without
// updating the cached reading.
func (r *Resolver) Resolve() Preference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// resolveInternal performs the actual resolution without locking.
// Caller must hold at least a read lock.
func (r *Resolver) resolveInternal() Preference {
	if r.config != nil {
		if dark, ok := parseScheme(r.config.GetColorScheme()); ok {
			return Preference{PrefersDark: dark, Known: true, Source: sourceConfig}
		}
		// "default" or empty falls through to the detector chain
	}

	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return Preference{PrefersDark: prefersDark, Known: true, Source: detector.Name()}
		}
	}

	return Preference{Source: sourceNone}
}

func parseScheme(s string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer-dark", "dark":
		return true, true
	case "prefer-light", "light":
		return false, true
	}
	return false, false
}

// RegisterDetector adds a detector. Call Refresh afterwards to pick it up.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Current returns the cached reading.
func (r *Resolver) Current() Preference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// PrefersDark implements port.ColorSchemeSource.
func (r *Resolver) PrefersDark() (dark, ok bool) {
	cur := r.Current()
	return cur.PrefersDark, cur.Known
}

// Refresh re-resolves and notifies listeners if the reading changed.
func (r *Resolver) Refresh() Preference {
	r.mu.Lock()
	newPref := r.resolveInternal()
	changed := newPref.PrefersDark != r.current.PrefersDark || newPref.Known != r.current.Known
	r.current = newPref
	if !changed {
		r.mu.Unlock()
		return newPref
	}

	callbacks := make([]*callbackWrapper, len(r.callbacks))
	copy(callbacks, r.callbacks)
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn()
	}
	return newPref
}

// OnChange implements port.ColorSchemeSource.
func (r *Resolver) OnChange(callback func()) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}
