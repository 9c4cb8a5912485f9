// ABOUTME: Tests for longevity configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "charm"}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	// GetDataDir with empty DataDir should return storage.DataDir()
	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/longevity-test"}
	if got := cfg.GetDataDir(); got != "/tmp/longevity-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/longevity-test")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/longevity")
	want := filepath.Join(home, "data/longevity")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/longevity\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/longevity"); got != "data/longevity" {
		t.Errorf("ExpandPath(\"data/longevity\") = %q, want %q", got, "data/longevity")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "carrier-pigeon"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GetBackend() != "sqlite" {
		t.Errorf("default backend = %q, want sqlite", cfg.GetBackend())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "/tmp/longevity-rt"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "/tmp/longevity-rt" {
		t.Errorf("loaded config = %+v", loaded)
	}
}
