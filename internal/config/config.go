// Package config handles the YAML configuration file shared by all front-ends
// and the desktop app's Fyne-backed preferences.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ytget/tasklist/internal/platform"
	"github.com/ytget/tasklist/internal/storage"
)

// EnvPrefix prefixes environment overrides, e.g. TASKLIST_STORAGE_BACKEND
const EnvPrefix = "TASKLIST"

// Default file config values
const (
	DefaultFileLanguage = "en"
	DefaultBackend      = storage.BackendSQLite
	DefaultLogLevel     = "warn"
)

var (
	// ErrInvalidLevel is returned for log levels slog does not know
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidBackend is returned for unknown storage backends
	ErrInvalidBackend = errors.New("invalid storage backend")
)

// Config is the file configuration
type Config struct {
	Language string        `mapstructure:"language" yaml:"language"`
	Storage  StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`

	// Path is the file the config was read from, empty when defaults were used
	Path string `mapstructure:"-" yaml:"-"`
}

// StorageConfig selects where tasks are persisted
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Language: DefaultFileLanguage,
		Storage: StorageConfig{
			Backend: DefaultBackend,
			Path:    platform.DefaultDatabasePath(),
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads the config file at path (platform.DefaultConfigPath when empty)
// and applies TASKLIST_* environment overrides. A missing file is not an
// error; defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = platform.DefaultConfigPath()
	}

	def := Default()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("language", def.Language)
	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fromFile := false
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		fromFile = true
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if fromFile {
		cfg.Path = path
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	for _, known := range storage.Backends() {
		if backend == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidBackend, c.Storage.Backend, strings.Join(storage.Backends(), ", "))
}

// SlogLevel parses the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return level, nil
}

// StorageOptions converts the storage section into storage.Options
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend: c.Storage.Backend,
		Path:    c.Storage.Path,
	}
}

// YAML renders the config as YAML
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

// WriteDefault writes the default config to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = platform.DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists: %s", path)
	}

	data, err := Default().YAML()
	if err != nil {
		return err
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
