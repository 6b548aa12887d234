// Package language derives the preferred language list from the POSIX
// locale environment or the signals config.
package language

import (
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/bnema/prefkit/internal/application/port"
)

// localeVars are consulted in POSIX precedence order; the first one set
// decides the message locale.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// ConfigProvider supplies the configured language override.
type ConfigProvider interface {
	GetLanguages() []string
}

// Source implements port.LanguageSource. Readings are cached; Refresh
// re-reads the config and environment.
type Source struct {
	config ConfigProvider
	getenv func(string) string

	mu        sync.RWMutex
	current   []string
	callbacks []*callbackWrapper
}

type callbackWrapper struct {
	fn func()
}

var _ port.LanguageSource = (*Source)(nil)

// NewSource reads the list once. config may be nil.
func NewSource(config ConfigProvider) *Source {
	return newSource(config, os.Getenv)
}

func newSource(config ConfigProvider, getenv func(string) string) *Source {
	s := &Source{config: config, getenv: getenv}
	s.current = s.resolve()
	return s
}

// Languages implements port.LanguageSource.
func (s *Source) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.current)
}

// Refresh re-reads the list and notifies listeners if it changed.
func (s *Source) Refresh() []string {
	langs := s.resolve()

	s.mu.Lock()
	if slices.Equal(langs, s.current) {
		s.mu.Unlock()
		return langs
	}
	s.current = langs
	callbacks := slices.Clone(s.callbacks)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn()
	}
	return langs
}

// OnChange implements port.LanguageSource.
func (s *Source) OnChange(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	wrapper := &callbackWrapper{fn: fn}
	s.callbacks = append(s.callbacks, wrapper)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.callbacks = slices.DeleteFunc(s.callbacks, func(cb *callbackWrapper) bool { return cb == wrapper })
	}
}

func (s *Source) resolve() []string {
	if s.config != nil {
		if configured := Normalize(s.config.GetLanguages()); len(configured) > 0 {
			return configured
		}
	}
	return FromEnv(s.getenv)
}

// FromEnv builds the list from the LANGUAGE colon list followed by the
// effective message locale: the first non-empty of LC_ALL, LC_MESSAGES
// and LANG.
func FromEnv(getenv func(string) string) []string {
	var raw []string
	if v := getenv("LANGUAGE"); v != "" {
		raw = strings.Split(v, ":")
	}
	for _, name := range localeVars {
		if v := getenv(name); v != "" {
			raw = append(raw, v)
			break
		}
	}
	return Normalize(raw)
}

// Normalize converts POSIX locale names and BCP 47 tags to canonical BCP 47,
// dropping C/POSIX, unparsable entries and duplicates while keeping order.
func Normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		tag, ok := ToTag(v)
		if !ok || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// ToTag converts one locale name such as "zh_CN.UTF-8" to "zh-CN".
func ToTag(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil || tag == language.Und {
		return "", false
	}
	return tag.String(), true
}
