// Package preference resolves breakpoint, theme and locale preferences from
// live signals and persisted user overrides.
package preference

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/logging"
)

var errStoreUnavailable = errors.New("preference store unavailable")

// Store persists single string preferences.
//
// A value equal to its default is never written: saving it removes the key,
// so "absent" and "default" mean the same thing. Backend failures are logged
// and swallowed; persistence is a convenience, not a dependency.
type Store struct {
	backend port.KeyValueStore
	log     zerolog.Logger
}

// NewStore wraps backend. A nil backend behaves as a store that is always unavailable.
func NewStore(ctx context.Context, backend port.KeyValueStore) *Store {
	return &Store{
		backend: backend,
		log:     logging.ComponentLogger(ctx, "preference-store"),
	}
}

// Load returns the value stored under key, or def when the key is absent or
// the backend fails.
func (s *Store) Load(ctx context.Context, key, def string) string {
	if s.backend == nil {
		s.log.Warn().Err(errStoreUnavailable).Str("key", key).Msg("load preference failed")
		return def
	}

	value, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("load preference failed")
		return def
	}
	if !ok {
		value = def
	}
	s.log.Debug().Str("key", key).Str("value", value).Msg("load preference")
	return value
}

// Save stores value under key, or removes key when value equals def.
func (s *Store) Save(ctx context.Context, key, value, def string) {
	if s.backend == nil {
		s.log.Warn().Err(errStoreUnavailable).Str("key", key).Str("value", value).Msg("save preference failed")
		return
	}

	var err error
	if value == def {
		err = s.backend.Remove(ctx, key)
	} else {
		err = s.backend.Set(ctx, key, value)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Str("value", value).Msg("save preference failed")
		return
	}
	s.log.Info().Str("key", key).Str("value", value).Msg("save preference")
}
