// Package port defines interfaces for infrastructure adapters.
package port

import "context"

//go:generate mockgen -source=key_value_store.go -destination=mocks/mock_key_value_store.go -package=mocks

// KeyValueStore is a durable string key-value backend for user preferences.
// Any method may fail (disk full, database locked, read-only home); callers
// treat a failure as "store unavailable" and continue with defaults.
type KeyValueStore interface {
	// Get returns the stored value. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// KeyValueLister is implemented by backends that can enumerate their keys.
type KeyValueLister interface {
	All(ctx context.Context) (map[string]string, error)
}
