// ABOUTME: Key-value store abstraction shared by all storage backends.
// ABOUTME: Backends are badger (default), sqlite, and charm (cloud synced).
package kv

import "errors"

var (
	// ErrNotFound is returned by Get when the key does not exist.
	ErrNotFound = errors.New("key not found")
	// ErrReadOnly is returned by writes on a store opened without write access.
	ErrReadOnly = errors.New("store is read-only")
)

// Store is a byte-oriented key-value store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Keys returns all keys starting with prefix in ascending key order.
	Keys(prefix string) ([]string, error)
	Close() error
}
