package env

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("os.UserConfigDir() returned error: %v", err)
	}
	if want := filepath.Join(userConfigDir, "ccenv"); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

// TestConfigDirWithXDG verifies XDG_CONFIG_HOME is honored on Linux-like systems.
func TestConfigDirWithXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("os.UserConfigDir ignores XDG_CONFIG_HOME here")
	}
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() failed with custom config home: %v", err)
	}
	if want := filepath.Join(tempDir, "ccenv"); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigPaths(t *testing.T) {
	if got := ConfigPaths("custom.yaml", "proj"); len(got) != 1 || got[0] != "custom.yaml" {
		t.Errorf("explicit config: got %v", got)
	}

	got := ConfigPaths("", "proj")
	if len(got) == 0 || got[0] != filepath.Join("proj", ConfigName) {
		t.Fatalf("ConfigPaths() = %v, want project file first", got)
	}
	if userDir, err := ConfigDir(); err == nil {
		if len(got) != 2 || got[1] != filepath.Join(userDir, ConfigName) {
			t.Errorf("ConfigPaths() = %v, want user file second", got)
		}
	}
}
