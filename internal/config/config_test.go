// ABOUTME: Tests for trainer configuration management.
// ABOUTME: Covers load, save, env overrides, validation, and backend selection.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// isolate points config and data paths at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{
		"TRAINER_BACKEND", "TRAINER_DATA_DIR", "TRAINER_LOG_LEVEL", "GEMINI_API_KEY",
		"TRAINER_AI_API_KEY", "TRAINER_AI_MODEL", "TRAINER_AI_BASE_URL", "TRAINER_AI_TIMEOUT",
		"TRAINER_API_ADDR", "TRAINER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestDefaults(t *testing.T) {
	dir := isolate(t)
	cfg := &Config{}

	if got := cfg.GetBackend(); got != BackendBadger {
		t.Errorf("GetBackend() = %q, want %q", got, BackendBadger)
	}
	if got, want := cfg.GetDataDir(), filepath.Join(dir, "data", "trainer"); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
	if got := cfg.GetLogLevel(); got != zerolog.WarnLevel {
		t.Errorf("GetLogLevel() = %v, want warn", got)
	}
	if got := cfg.GetAPIAddr(); got != DefaultAPIAddr {
		t.Errorf("GetAPIAddr() = %q, want %q", got, DefaultAPIAddr)
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		if got := cfg.GetLogLevel(); got != tt.want {
			t.Errorf("GetLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/trainer", filepath.Join(home, "data/trainer")},
		{"data/trainer", "data/trainer"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStorePath(t *testing.T) {
	cfg := &Config{DataDir: "/srv/trainer"}
	if got := cfg.StorePath(); got != "/srv/trainer/badger" {
		t.Errorf("badger StorePath() = %q", got)
	}
	cfg.Backend = BackendSQLite
	if got := cfg.StorePath(); got != "/srv/trainer/trainer.db" {
		t.Errorf("sqlite StorePath() = %q", got)
	}
	cfg.Backend = BackendCharm
	if got := cfg.StorePath(); got != "" {
		t.Errorf("charm StorePath() = %q, want empty", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"sqlite", Config{Backend: "sqlite"}, false},
		{"charm", Config{Backend: "charm"}, false},
		{"markdown", Config{Backend: "markdown"}, true},
		{"bad level", Config{LogLevel: "loud"}, true},
		{"negative timeout", Config{AI: AIConfig{TimeoutSeconds: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := &Config{AI: AIConfig{APIKey: "k", Model: "m", BaseURL: "http://x", TimeoutSeconds: 5}}
	cc := cfg.ClientConfig()
	if cc.APIKey != "k" || cc.Model != "m" || cc.BaseURL != "http://x" || cc.Timeout != 5*time.Second {
		t.Errorf("ClientConfig() = %+v", cc)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{
		Backend:  BackendSQLite,
		DataDir:  "/tmp/trainer-data",
		LogLevel: "debug",
		AI:       AIConfig{Model: "gemini-pro"},
		API:      APIConfig{Addr: ":9000"},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Backend != BackendSQLite || loaded.DataDir != "/tmp/trainer-data" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.AI.Model != "gemini-pro" || loaded.API.Addr != ":9000" {
		t.Errorf("nested sections mismatch: %+v", loaded)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	if err := (&Config{Backend: BackendSQLite, AI: AIConfig{APIKey: "file-key"}}).Save(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TRAINER_BACKEND", "badger")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("TRAINER_AI_TIMEOUT", "12")
	t.Setenv("TRAINER_API_ADDR", "0.0.0.0:1")
	t.Setenv("TRAINER_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != BackendBadger {
		t.Errorf("Backend = %q, want badger", cfg.Backend)
	}
	if cfg.AI.APIKey != "gemini-key" {
		t.Errorf("APIKey = %q, want gemini-key", cfg.AI.APIKey)
	}
	if cfg.AI.TimeoutSeconds != 12 {
		t.Errorf("TimeoutSeconds = %d, want 12", cfg.AI.TimeoutSeconds)
	}
	if cfg.API.Addr != "0.0.0.0:1" {
		t.Errorf("Addr = %q", cfg.API.Addr)
	}
	if cfg.API.Key != "secret" {
		t.Errorf("API.Key = %q, want secret", cfg.API.Key)
	}

	t.Setenv("TRAINER_AI_API_KEY", "trainer-key")
	cfg, _ = Load()
	if cfg.AI.APIKey != "trainer-key" {
		t.Errorf("TRAINER_AI_API_KEY should win, got %q", cfg.AI.APIKey)
	}

	raw, err := LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if raw.Backend != BackendSQLite || raw.AI.APIKey != "file-key" {
		t.Errorf("LoadFile() should ignore env, got %+v", raw)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := isolate(t)

	if err := (&Config{Backend: BackendSQLite}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config", "trainer", "config.json")); err != nil {
		t.Errorf("expected config file: %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, "config", "trainer")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid JSON config")
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Backend: BackendSQLite, DataDir: dir}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() for sqlite failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "trainer.db")); err != nil {
		t.Errorf("expected trainer.db to be created: %v", err)
	}
}

func TestOpenStoreBadger(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() for badger failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(dir, "badger")); err != nil {
		t.Errorf("expected badger dir: %v", err)
	}
}

func TestOpenStoreUnknown(t *testing.T) {
	cfg := &Config{Backend: "markdown", DataDir: t.TempDir()}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}
