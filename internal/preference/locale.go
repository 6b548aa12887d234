package preference

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/domain/entity"
	"github.com/bnema/prefkit/internal/domain/service"
	"github.com/bnema/prefkit/internal/i18n"
	"github.com/bnema/prefkit/internal/logging"
)

const localeKey = "locale"

// LocaleState is the user's locale choice and the catalog entry it resolves to.
type LocaleState struct {
	Choice string
	Locale i18n.Locale
}

func (s LocaleState) equal(o LocaleState) bool {
	return s.Choice == o.Choice && s.Locale.ID == o.Locale.ID
}

// Locale resolves the user locale override against the preferred language list.
type Locale struct {
	store     *Store
	languages port.LanguageSource
	log       zerolog.Logger

	mu        sync.RWMutex
	choice    string
	seen      []string
	last      LocaleState
	listeners listeners[LocaleState]
	mux       *Multiplexer
}

// NewLocale restores the persisted choice. languages may be nil, which is
// treated as an empty language list.
func NewLocale(ctx context.Context, store *Store, languages port.LanguageSource) *Locale {
	l := &Locale{
		store:     store,
		languages: languages,
		log:       logging.ComponentLogger(ctx, "locale"),
	}
	l.choice = l.load(ctx)
	l.seen = l.Languages()
	l.last = l.State()
	l.mux = NewMultiplexer(l.attach)
	return l
}

func (l *Locale) load(ctx context.Context) string {
	raw := l.store.Load(ctx, localeKey, entity.LocaleAuto)
	if raw == entity.LocaleAuto || entity.IsLocaleID(raw) {
		return raw
	}
	l.log.Warn().Str("value", raw).Msg("unknown stored locale, using auto")
	return entity.LocaleAuto
}

// Choice returns "auto" or the chosen catalog id.
func (l *Locale) Choice() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.choice
}

// SetChoice changes the user's choice. Spelling variants of a catalog id are
// normalised; anything else that is not "auto" is coerced to auto.
// Setting the current choice again does nothing.
func (l *Locale) SetChoice(ctx context.Context, value string) {
	choice := l.normalize(value)

	l.mu.Lock()
	if choice == l.choice {
		l.mu.Unlock()
		return
	}
	l.store.Save(ctx, localeKey, choice, entity.LocaleAuto)
	l.choice = choice
	l.mu.Unlock()

	l.publish()
}

func (l *Locale) normalize(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), entity.LocaleAuto) {
		return entity.LocaleAuto
	}
	if id, ok := i18n.Normalize(value); ok {
		return id
	}
	l.log.Warn().Str("value", value).Msg("unknown locale, using auto")
	return entity.LocaleAuto
}

// Languages returns the current preferred language list.
func (l *Locale) Languages() []string {
	if l.languages == nil {
		return nil
	}
	return l.languages.Languages()
}

// Locale returns the catalog entry in effect.
func (l *Locale) Locale() i18n.Locale {
	return l.State().Locale
}

// State returns the choice and resolved locale together.
func (l *Locale) State() LocaleState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stateLocked()
}

// stateLocked must be called with mu held.
func (l *Locale) stateLocked() LocaleState {
	return LocaleState{
		Choice: l.choice,
		Locale: i18n.Get(service.MatchLocale(l.choice, l.Languages())),
	}
}

// Start begins following language list changes. See Breakpoints.Start.
func (l *Locale) Start() (release func()) {
	return l.mux.Acquire()
}

// OnChange registers fn to be called when the choice or resolved locale changes.
func (l *Locale) OnChange(fn func(LocaleState)) (unregister func()) {
	return l.listeners.add(fn)
}

func (l *Locale) attach() func() {
	if l.languages == nil {
		return nil
	}
	l.mu.Lock()
	l.seen = l.Languages()
	l.last = l.stateLocked()
	l.mu.Unlock()
	return l.languages.OnChange(l.onLanguagesChange)
}

func (l *Locale) onLanguagesChange() {
	l.mu.Lock()
	langs := l.Languages()
	if slices.Equal(langs, l.seen) {
		l.mu.Unlock()
		return
	}
	l.seen = langs
	l.mu.Unlock()

	l.log.Debug().Strs("languages", langs).Msg("system languages changed")
	l.publish()
}

func (l *Locale) publish() {
	l.mu.Lock()
	state := l.stateLocked()
	if state.equal(l.last) {
		l.mu.Unlock()
		return
	}
	l.last = state
	l.mu.Unlock()

	l.listeners.notify(state)
}
