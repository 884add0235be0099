// ABOUTME: Badger-backed Store, the default local backend.
// ABOUTME: Supports an in-memory mode used by tests.
package kv

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog/log"
)

// Badger is a Store backed by a badger database directory.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens or creates a badger database in dir.
func OpenBadger(dir string) (*Badger, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return openBadger(badger.DefaultOptions(dir))
}

// OpenBadgerInMemory opens a throwaway in-memory badger database.
func OpenBadgerInMemory() (*Badger, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true))
}

func openBadger(opts badger.Options) (*Badger, error) {
	db, err := badger.Open(opts.WithLogger(badgerLogger{}))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

// Get returns the value for key or ErrNotFound.
func (b *Badger) Get(key string) ([]byte, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return val, err
}

// Set stores value under key.
func (b *Badger) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (b *Badger) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Keys returns keys with the given prefix in ascending order.
func (b *Badger) Keys(prefix string) ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// Close closes the database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// badgerLogger routes badger's internal logging through zerolog.
type badgerLogger struct{}

func (badgerLogger) Errorf(f string, v ...interface{})   { log.Error().Msgf(f, v...) }
func (badgerLogger) Warningf(f string, v ...interface{}) { log.Warn().Msgf(f, v...) }
func (badgerLogger) Infof(f string, v ...interface{})    { log.Debug().Msgf(f, v...) }
func (badgerLogger) Debugf(f string, v ...interface{})   { log.Trace().Msgf(f, v...) }
