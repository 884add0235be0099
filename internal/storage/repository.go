// ABOUTME: Repository for trainer data over a key-value store.
// ABOUTME: Owns key layout, JSON encoding, and prefix lookups.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/trainer/internal/kv"
)

const (
	keyPrefix = "trainer:"

	WorkoutPrefix  = keyPrefix + "workout:"
	ExercisePrefix = keyPrefix + "exercise:"

	recommendationsKey = keyPrefix + "recommendations"
	unitKey            = keyPrefix + "unit"
	profileKey         = keyPrefix + "profile"
	sessionKey         = keyPrefix + "session"
	schemaVersionKey   = keyPrefix + "schema_version"
	workoutSeqKey      = keyPrefix + "workout_seq"
)

var (
	// ErrNotFound is returned when no record matches an ID or prefix.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned when an ID prefix matches more than one record.
	ErrAmbiguous = errors.New("ambiguous prefix")
)

// Repository stores workouts, exercises, and preferences in a kv.Store.
type Repository struct {
	store kv.Store
}

// New wraps store and brings its schema up to date.
func New(store kv.Store) (*Repository, error) {
	r := &Repository{store: store}
	if err := r.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return r, nil
}

// Store returns the underlying key-value store.
func (r *Repository) Store() kv.Store {
	return r.store
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	return r.store.Close()
}

// getJSON decodes the value at key into v. Missing keys return found=false.
func (r *Repository) getJSON(key string, v any) (bool, error) {
	data, err := r.store.Get(key)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// putJSON encodes v and stores it at key.
func (r *Repository) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// resolveKey finds the single key under typePrefix whose ID starts with idPrefix.
// An exact ID match wins over longer keys sharing the prefix.
func (r *Repository) resolveKey(typePrefix, idPrefix string) (string, error) {
	if idPrefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	keys, err := r.store.Keys(typePrefix + idPrefix)
	if err != nil {
		return "", fmt.Errorf("list keys: %w", err)
	}
	switch len(keys) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, idPrefix)
	case 1:
		return keys[0], nil
	}
	for _, k := range keys {
		if k == typePrefix+idPrefix {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %s: matches %d records", ErrAmbiguous, idPrefix, len(keys))
}

// deleteByPrefix removes every key under prefix.
func (r *Repository) deleteByPrefix(prefix string) (int, error) {
	keys, err := r.store.Keys(prefix)
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	for _, k := range keys {
		if err := r.store.Delete(k); err != nil {
			return 0, fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return len(keys), nil
}

// extractID extracts the ID portion from a prefixed key.
func extractID(key, prefix string) string {
	return strings.TrimPrefix(key, prefix)
}

// ClearAll removes workouts, exercises, recommendations, profile, and session.
// The weight unit preference is kept.
func (r *Repository) ClearAll() error {
	for _, prefix := range []string{WorkoutPrefix, ExercisePrefix} {
		if _, err := r.deleteByPrefix(prefix); err != nil {
			return err
		}
	}
	for _, key := range []string{recommendationsKey, profileKey, sessionKey, workoutSeqKey} {
		if err := r.store.Delete(key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}
