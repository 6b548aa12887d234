package preference

import (
	"fmt"
	"sync"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/domain/service"
)

// BreakpointOptions configures Breakpoints.
type BreakpointOptions struct {
	Thresholds entity.Thresholds
	// Fallback is reported when no viewport is available.
	Fallback entity.SizeClass
}

// DefaultBreakpointOptions uses the default thresholds and assumes a desktop.
func DefaultBreakpointOptions() BreakpointOptions {
	return BreakpointOptions{
		Thresholds: entity.DefaultThresholds(),
		Fallback:   entity.SizeLarge,
	}
}

// Breakpoints tracks the viewport size class.
type Breakpoints struct {
	thresholds entity.Thresholds
	fallback   entity.SizeClass
	queries    []port.MediaQuery // sm, md, lg, xl; empty without a viewport

	mu        sync.Mutex
	last      entity.SizeClass
	listeners listeners[entity.SizeClass]
	mux       *Multiplexer
}

// NewBreakpoints validates opts and creates one media query per threshold.
// A nil viewport pins the size class to opts.Fallback.
func NewBreakpoints(viewport port.Viewport, opts BreakpointOptions) (*Breakpoints, error) {
	if err := opts.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("breakpoints: %w", err)
	}
	if !opts.Fallback.Valid() {
		return nil, fmt.Errorf("breakpoints: invalid fallback size class %d", int(opts.Fallback))
	}

	b := &Breakpoints{
		thresholds: opts.Thresholds,
		fallback:   opts.Fallback,
	}
	if viewport != nil {
		for _, width := range opts.Thresholds.Values() {
			b.queries = append(b.queries, viewport.MatchMedia(width))
		}
	}
	b.last = b.SizeClass()
	b.mux = NewMultiplexer(b.attach)
	return b, nil
}

// Thresholds returns the validated thresholds.
func (b *Breakpoints) Thresholds() entity.Thresholds {
	return b.thresholds
}

// Available reports whether a viewport backs the size class.
func (b *Breakpoints) Available() bool {
	return len(b.queries) > 0
}

// SizeClass returns the current size class.
func (b *Breakpoints) SizeClass() entity.SizeClass {
	if len(b.queries) == 0 {
		return b.fallback
	}
	return service.CalculateSizeClass(
		b.queries[0].Matches(),
		b.queries[1].Matches(),
		b.queries[2].Matches(),
		b.queries[3].Matches(),
	)
}

// MiniOnly reports a viewport below sm.
func (b *Breakpoints) MiniOnly() bool { return b.SizeClass() == entity.SizeMini }

// SmallOnly reports a viewport in [sm, md).
func (b *Breakpoints) SmallOnly() bool { return b.SizeClass() == entity.SizeSmall }

// MediumOnly reports a viewport in [md, lg).
func (b *Breakpoints) MediumOnly() bool { return b.SizeClass() == entity.SizeMedium }

// LargeOnly reports a viewport in [lg, xl).
func (b *Breakpoints) LargeOnly() bool { return b.SizeClass() == entity.SizeLarge }

// ExtraLargeOnly reports a viewport of at least xl.
func (b *Breakpoints) ExtraLargeOnly() bool { return b.SizeClass() == entity.SizeExtraLarge }

// Small reports a viewport of at least sm.
func (b *Breakpoints) Small() bool { return b.SizeClass() >= entity.SizeSmall }

// Medium reports a viewport of at least md.
func (b *Breakpoints) Medium() bool { return b.SizeClass() >= entity.SizeMedium }

// Large reports a viewport of at least lg.
func (b *Breakpoints) Large() bool { return b.SizeClass() >= entity.SizeLarge }

// ExtraLarge reports a viewport of at least xl.
func (b *Breakpoints) ExtraLarge() bool { return b.SizeClass() >= entity.SizeExtraLarge }

// Start begins listening to the viewport. Every call must be paired with a
// call of the returned release function; the media query listeners stay
// attached while at least one caller has not released.
func (b *Breakpoints) Start() (release func()) {
	if len(b.queries) == 0 {
		return func() {}
	}
	return b.mux.Acquire()
}

// OnChange registers fn to be called when a viewport change moves the size
// class. Changes are only observed between Start and the last release.
func (b *Breakpoints) OnChange(fn func(entity.SizeClass)) (unregister func()) {
	return b.listeners.add(fn)
}

func (b *Breakpoints) attach() func() {
	b.mu.Lock()
	b.last = b.SizeClass()
	b.mu.Unlock()

	removers := make([]func(), 0, len(b.queries))
	for _, q := range b.queries {
		removers = append(removers, q.OnChange(func(bool) { b.refresh() }))
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// refresh reads the queries under mu so concurrent resizes settle on the
// newest class.
func (b *Breakpoints) refresh() {
	b.mu.Lock()
	class := b.SizeClass()
	if class == b.last {
		b.mu.Unlock()
		return
	}
	b.last = class
	b.mu.Unlock()

	b.listeners.notify(class)
}
