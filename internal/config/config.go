// ABOUTME: Tool configuration with storage backend selection.
// ABOUTME: Handles the config file, path expansion, and the repository factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/myndness/mynd/internal/kvstore"
	"github.com/myndness/mynd/internal/storage"
)

// Config stores mynd tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts mynd.db
	// here; Badger puts a kv/ folder here. Supports ~ expansion for the
	// home directory. Defaults to ~/.local/share/mynd.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
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

// OpenStorage creates a Repository implementation based on the configured
// backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "mynd.db"))
	case "badger":
		return kvstore.Open(filepath.Join(dataDir, "kv"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenBackend opens a specific backend in the configured data directory,
// regardless of which one the config selects. Used for migration.
func (c *Config) OpenBackend(backend string) (storage.Repository, error) {
	other := *c
	other.Backend = backend
	return other.OpenStorage()
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "mynd", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
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
		return nil, err
	}
	return &cfg, nil
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
