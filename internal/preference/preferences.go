package preference

import (
	"context"
	"fmt"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/i18n"
)

// Deps are the adapters a Preferences instance is built from.
// Any signal source may be nil.
type Deps struct {
	Backend     port.KeyValueStore
	Viewport    port.Viewport
	ColorScheme port.ColorSchemeSource
	Languages   port.LanguageSource
	Breakpoints BreakpointOptions
}

// Preferences is the application-wide preference context. Build it once at
// startup and pass it to whatever needs it.
type Preferences struct {
	Store       *Store
	Breakpoints *Breakpoints
	Theme       *Theme
	Locale      *Locale
}

// Snapshot is a point-in-time copy of every resolved preference.
type Snapshot struct {
	SizeClass    entity.SizeClass
	Theme        entity.ResolvedTheme
	ThemeChoice  entity.ThemePreference
	Locale       i18n.Locale
	LocaleChoice string
	Languages    []string
}

// New builds the preference context. It fails only on invalid breakpoint
// options; a zero Deps.Breakpoints selects DefaultBreakpointOptions.
func New(ctx context.Context, deps Deps) (*Preferences, error) {
	opts := deps.Breakpoints
	if opts == (BreakpointOptions{}) {
		opts = DefaultBreakpointOptions()
	}
	breakpoints, err := NewBreakpoints(deps.Viewport, opts)
	if err != nil {
		return nil, fmt.Errorf("create preferences: %w", err)
	}

	store := NewStore(ctx, deps.Backend)
	return &Preferences{
		Store:       store,
		Breakpoints: breakpoints,
		Theme:       NewTheme(ctx, store, deps.ColorScheme),
		Locale:      NewLocale(ctx, store, deps.Languages),
	}, nil
}

// Start starts all three resolvers and returns a single release handle.
func (p *Preferences) Start() (release func()) {
	releases := []func(){
		p.Breakpoints.Start(),
		p.Theme.Start(),
		p.Locale.Start(),
	}
	return once(func() {
		for _, r := range releases {
			r()
		}
	})
}

// Snapshot returns the current resolved values.
func (p *Preferences) Snapshot() Snapshot {
	theme := p.Theme.State()
	locale := p.Locale.State()
	return Snapshot{
		SizeClass:    p.Breakpoints.SizeClass(),
		Theme:        theme.Name,
		ThemeChoice:  theme.Choice,
		Locale:       locale.Locale,
		LocaleChoice: locale.Choice,
		Languages:    p.Locale.Languages(),
	}
}
