// ABOUTME: Tests for configuration defaults and the backend factory.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/myndness/mynd/internal/kvstore"
	"github.com/myndness/mynd/internal/storage"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %s, want sqlite", got)
	}

	cfg.Backend = "badger"
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %s, want badger", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if _, ok := repo.(*storage.DB); !ok {
		t.Errorf("expected *storage.DB, got %T", repo)
	}
}

func TestOpenStorageBadger(t *testing.T) {
	cfg := &Config{Backend: "badger", DataDir: t.TempDir()}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if _, ok := repo.(*kvstore.Store); !ok {
		t.Errorf("expected *kvstore.Store, got %T", repo)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "redis", DataDir: t.TempDir()}

	if _, err := cfg.OpenStorage(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenBackendOverridesSelection(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}

	repo, err := cfg.OpenBackend("badger")
	if err != nil {
		t.Fatalf("OpenBackend failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if _, ok := repo.(*kvstore.Store); !ok {
		t.Errorf("expected *kvstore.Store, got %T", repo)
	}
	// The original config is untouched.
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %s, want sqlite", cfg.Backend)
	}
}
