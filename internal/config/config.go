// ABOUTME: Trainer configuration management with backend selection.
// ABOUTME: Handles the config file, env overrides, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/charm"
	"github.com/harperreed/trainer/internal/kv"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
)

const (
	DefaultLogLevel = "warn"
	DefaultAPIAddr  = "127.0.0.1:8080"
)

// Config stores trainer configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite" or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data.
	// Badger keeps its files in DataDir/badger, SQLite uses DataDir/trainer.db.
	// Supports ~ expansion. Defaults to ~/.local/share/trainer.
	DataDir string `json:"data_dir,omitempty"`

	LogLevel string    `json:"log_level,omitempty"`
	AI       AIConfig  `json:"ai"`
	API      APIConfig `json:"api"`
}

// AIConfig configures the generative AI client.
type AIConfig struct {
	APIKey         string `json:"api_key,omitempty"`
	Model          string `json:"model,omitempty"`
	BaseURL        string `json:"base_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// APIConfig configures the HTTP API server.
type APIConfig struct {
	Addr string `json:"addr,omitempty"`
	// Key, when set, must be sent as X-API-Key on mutating requests.
	Key string `json:"key,omitempty"`
}

// GetBackend returns the configured backend, defaulting to badger.
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendBadger
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the parsed log level, defaulting to warn.
func (c *Config) GetLogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// GetAPIAddr returns the HTTP listen address.
func (c *Config) GetAPIAddr() string {
	if c.API.Addr == "" {
		return DefaultAPIAddr
	}
	return c.API.Addr
}

// ClientConfig converts the AI section into client settings.
func (c *Config) ClientConfig() ai.ClientConfig {
	return ai.ClientConfig{
		APIKey:  c.AI.APIKey,
		Model:   c.AI.Model,
		BaseURL: c.AI.BaseURL,
		Timeout: time.Duration(c.AI.TimeoutSeconds) * time.Second,
	}
}

// Validate checks the backend and log level.
func (c *Config) Validate() error {
	switch c.GetBackend() {
	case BackendBadger, BackendSQLite, BackendCharm:
	default:
		return fmt.Errorf("unknown backend: %q (want badger, sqlite or charm)", c.Backend)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
		}
	}
	if c.AI.TimeoutSeconds < 0 {
		return fmt.Errorf("ai.timeout_seconds must not be negative")
	}
	return nil
}

// DefaultDataDir returns $XDG_DATA_HOME/trainer or ~/.local/share/trainer.
func DefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "trainer")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// StorePath returns where the backend keeps its data, or "" for charm.
func (c *Config) StorePath() string {
	switch c.GetBackend() {
	case BackendBadger:
		return filepath.Join(c.GetDataDir(), "badger")
	case BackendSQLite:
		return filepath.Join(c.GetDataDir(), "trainer.db")
	}
	return ""
}

// OpenStore opens the configured backend.
func (c *Config) OpenStore() (kv.Store, error) {
	return c.OpenBackend(c.GetBackend())
}

// OpenBackend opens the named backend using this config's data directory.
func (c *Config) OpenBackend(backend string) (kv.Store, error) {
	other := *c
	other.Backend = backend
	switch backend {
	case BackendBadger:
		return kv.OpenBadger(other.StorePath())
	case BackendSQLite:
		return kv.OpenSQLite(other.StorePath())
	case BackendCharm:
		client, err := charm.InitClient()
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "trainer", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFile reads config from disk without environment overrides.
// Use it when the result will be saved back.
func LoadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRAINER_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TRAINER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TRAINER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("TRAINER_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("TRAINER_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("TRAINER_AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("TRAINER_AI_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AI.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("TRAINER_API_ADDR"); v != "" {
		cfg.API.Addr = v
	}
	if v := os.Getenv("TRAINER_API_KEY"); v != "" {
		cfg.API.Key = v
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
