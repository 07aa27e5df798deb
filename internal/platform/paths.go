package platform

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories
const AppName = "tasklist"

// File names
const (
	DatabaseFile = "tasks.db"
	ConfigFile   = "config.yaml"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// DataDir returns $XDG_DATA_HOME/tasklist or ~/.local/share/tasklist
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// ConfigDir returns $XDG_CONFIG_HOME/tasklist or ~/.config/tasklist
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDatabasePath returns the SQLite file inside DataDir
func DefaultDatabasePath() string {
	return filepath.Join(DataDir(), DatabaseFile)
}

// DefaultConfigPath returns the config file inside ConfigDir
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFile)
}

// CreateDirectoryIfNotExists creates a directory (and parents) if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
