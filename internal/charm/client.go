// ABOUTME: Charm KV client wrapper implementing the trainer key-value store.
// ABOUTME: Provides thread-safe initialization and automatic cloud sync.
package charm

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/charm/client"
	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/trainer/internal/kv"
)

const (
	// DBName is the Charm KV database name.
	DBName           = "trainer"
	defaultCharmHost = "charm.2389.dev"
)

// ErrReadOnly is returned on writes while another process holds the database lock.
var ErrReadOnly = fmt.Errorf("%w: database is locked by another process (MCP server?)", kv.ErrReadOnly)

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

// Client is a kv.Store backed by Charm KV.
type Client struct {
	kv       *charmkv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ kv.Store = (*Client)(nil)

// InitClient initializes the global Charm client.
// Thread-safe; can be called multiple times.
func InitClient() (*Client, error) {
	clientOnce.Do(func() {
		if os.Getenv("CHARM_HOST") == "" {
			if err := os.Setenv("CHARM_HOST", defaultCharmHost); err != nil {
				clientErr = err
				return
			}
		}

		db, err := charmkv.OpenWithDefaultsFallback(DBName)
		if err != nil {
			clientErr = fmt.Errorf("open charm kv: %w", err)
			return
		}

		globalClient = &Client{
			kv:       db,
			autoSync: true,
		}

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			if err := db.Sync(); err != nil {
				log.Warn().Err(err).Msg("initial charm sync failed")
			}
		}
	})

	return globalClient, clientErr
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

func (c *Client) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		if err := c.kv.Sync(); err != nil {
			log.Warn().Err(err).Msg("charm sync after write failed")
		}
	}
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// Get returns the value for key or kv.ErrNotFound.
func (c *Client) Get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, kv.ErrNotFound
	}
	return val, err
}

// Set stores a value and syncs when auto-sync is on.
func (c *Client) Set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Set([]byte(key), data); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// Delete removes a key.
func (c *Client) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// Keys returns all keys matching the given prefix, sorted.
func (c *Client) Keys(prefix string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}
	return filterPrefix(all, prefix), nil
}

func filterPrefix(keys [][]byte, prefix string) []string {
	p := []byte(prefix)
	var out [][]byte
	for _, k := range keys {
		if bytes.HasPrefix(k, p) {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })
	res := make([]string, len(out))
	for i, k := range out {
		res[i] = string(k)
	}
	return res
}
