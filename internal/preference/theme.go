package preference

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/domain/service"
	"github.com/bnema/prefkit/internal/logging"
)

const themeKey = "theme"

// ThemeState is the user's theme choice and the theme it resolves to.
type ThemeState struct {
	Choice entity.ThemePreference
	Name   entity.ResolvedTheme
}

// Theme resolves the user theme override against the OS color scheme.
type Theme struct {
	store  *Store
	scheme port.ColorSchemeSource
	log    zerolog.Logger

	mu        sync.RWMutex
	choice    entity.ThemePreference
	last      ThemeState
	listeners listeners[ThemeState]
	mux       *Multiplexer
}

// NewTheme restores the persisted choice. scheme may be nil, in which case
// auto always resolves to light.
func NewTheme(ctx context.Context, store *Store, scheme port.ColorSchemeSource) *Theme {
	t := &Theme{
		store:  store,
		scheme: scheme,
		log:    logging.ComponentLogger(ctx, "theme"),
	}
	t.choice = t.load(ctx)
	t.last = t.State()
	t.mux = NewMultiplexer(t.attach)
	return t
}

func (t *Theme) load(ctx context.Context) entity.ThemePreference {
	raw := t.store.Load(ctx, themeKey, string(entity.ThemeAuto))
	pref, ok := entity.ParseThemePreference(raw)
	if !ok {
		t.log.Warn().Str("value", raw).Msg("unknown stored theme, using auto")
		return entity.ThemeAuto
	}
	return pref
}

// Choice returns the user's choice.
func (t *Theme) Choice() entity.ThemePreference {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.choice
}

// SetChoice changes the user's choice. Unknown values are coerced to auto.
// Setting the current choice again does nothing.
func (t *Theme) SetChoice(ctx context.Context, value string) {
	pref, ok := entity.ParseThemePreference(value)
	if !ok {
		t.log.Warn().Str("value", value).Msg("unknown theme, using auto")
	}

	t.mu.Lock()
	if pref == t.choice {
		t.mu.Unlock()
		return
	}
	t.store.Save(ctx, themeKey, string(pref), string(entity.ThemeAuto))
	t.choice = pref
	t.mu.Unlock()

	t.publish()
}

// OS returns the theme the operating system asks for.
func (t *Theme) OS() entity.ResolvedTheme {
	dark, ok := t.osPrefersDark()
	return service.ResolveTheme(entity.ThemeAuto, dark, ok)
}

// Name returns the theme in effect.
func (t *Theme) Name() entity.ResolvedTheme {
	return t.State().Name
}

// State returns the choice and resolved theme together.
func (t *Theme) State() ThemeState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stateLocked()
}

// stateLocked must be called with mu held.
func (t *Theme) stateLocked() ThemeState {
	dark, ok := t.osPrefersDark()
	return ThemeState{Choice: t.choice, Name: service.ResolveTheme(t.choice, dark, ok)}
}

// Start begins following OS color scheme changes. See Breakpoints.Start.
func (t *Theme) Start() (release func()) {
	return t.mux.Acquire()
}

// OnChange registers fn to be called when the choice or resolved theme changes.
func (t *Theme) OnChange(fn func(ThemeState)) (unregister func()) {
	return t.listeners.add(fn)
}

func (t *Theme) osPrefersDark() (dark, ok bool) {
	if t.scheme == nil {
		return false, false
	}
	return t.scheme.PrefersDark()
}

func (t *Theme) attach() func() {
	if t.scheme == nil {
		return nil
	}
	t.mu.Lock()
	t.last = t.stateLocked()
	t.mu.Unlock()
	return t.scheme.OnChange(t.publish)
}

// publish resolves and compares under mu so concurrent signals cannot leave
// last behind the newest state.
func (t *Theme) publish() {
	t.mu.Lock()
	state := t.stateLocked()
	if state == t.last {
		t.mu.Unlock()
		return
	}
	t.last = state
	t.mu.Unlock()

	t.log.Debug().Str("choice", string(state.Choice)).Str("name", string(state.Name)).Msg("theme changed")
	t.listeners.notify(state)
}
