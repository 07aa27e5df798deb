package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory %s to exist", dir)
	}

	// Second call is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Second call failed: %v", err)
	}
}

func TestDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	if got := DataDir(); got != filepath.Join("/xdg/data", AppName) {
		t.Errorf("Unexpected DataDir %s", got)
	}
	if got := DefaultDatabasePath(); got != filepath.Join("/xdg/data", AppName, DatabaseFile) {
		t.Errorf("Unexpected DefaultDatabasePath %s", got)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	if got := ConfigDir(); got != filepath.Join("/xdg/config", AppName) {
		t.Errorf("Unexpected ConfigDir %s", got)
	}
	if got := DefaultConfigPath(); got != filepath.Join("/xdg/config", AppName, ConfigFile) {
		t.Errorf("Unexpected DefaultConfigPath %s", got)
	}
}

func TestDataDir_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	if got := DataDir(); got != filepath.Join(home, ".local", "share", AppName) {
		t.Errorf("Unexpected DataDir %s", got)
	}
}
