// ABOUTME: Mood configuration management with backend selection.
// ABOUTME: Handles settings, environment overrides, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/mood/internal/charm"
	"github.com/harperreed/mood/internal/logging"
	"github.com/harperreed/mood/internal/storage"
	"go.uber.org/zap"
)

// Backend names accepted in config and on the command line.
const (
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Config stores mood tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "charm", or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts mood.db here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/mood.
	DataDir string `json:"data_dir,omitempty"`

	// AutoSync controls whether the charm backend syncs after every write. Defaults to true.
	AutoSync *bool `json:"auto_sync,omitempty"`

	// LogLevel is debug, info, warn (default), or error.
	LogLevel string `json:"log_level,omitempty"`

	// LogFile sends logs to a rotating file instead of stderr.
	LogFile string `json:"log_file,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetAutoSync returns whether charm writes sync immediately.
func (c *Config) GetAutoSync() bool {
	return c.AutoSync == nil || *c.AutoSync
}

// LoggingOptions converts the config to logger options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level: c.LogLevel,
		File:  ExpandPath(c.LogFile),
	}
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

// OpenStorage creates a Repository based on the configured backend.
func (c *Config) OpenStorage(logger *zap.Logger) (storage.Repository, error) {
	backend, err := c.OpenBackend()
	if err != nil {
		return nil, err
	}
	return storage.NewStore(backend, storage.WithLogger(logger)), nil
}

// OpenBackend opens the raw key/value backend for the configured backend name.
func (c *Config) OpenBackend() (storage.Backend, error) {
	switch c.GetBackend() {
	case BackendSQLite:
		return storage.Open(filepath.Join(c.GetDataDir(), "mood.db"))
	case BackendCharm:
		client, err := charm.InitClient()
		if err != nil {
			return nil, fmt.Errorf("initialize charm client: %w", err)
		}
		client.SetAutoSync(c.GetAutoSync())
		return client, nil
	case BackendMemory:
		return storage.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// ApplyEnv overrides fields from MOOD_* environment variables.
func (c *Config) ApplyEnv() {
	envOverride(&c.Backend, "MOOD_BACKEND")
	envOverride(&c.DataDir, "MOOD_DATA_DIR")
	envOverride(&c.LogLevel, "MOOD_LOG_LEVEL")
	envOverride(&c.LogFile, "MOOD_LOG_FILE")
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "mood", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.ApplyEnv()
	return cfg, nil
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
