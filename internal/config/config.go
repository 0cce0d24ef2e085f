// Package config provides configuration loading and structs for pdftext.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LocalConfigName is the config file looked up in the working directory when
// no config path is given.
const LocalConfigName = "pdftext.yaml"

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Document DocumentConfig `yaml:"document"`
	Watch    WatchConfig    `yaml:"watch"`
}

// DocumentConfig holds the default input document.
type DocumentConfig struct {
	Path string `yaml:"path"`
}

// WatchConfig holds file watch settings.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_ms"`
}

// Debounce returns the watch debounce as a duration.
func (w *WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMillis) * time.Millisecond
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if cfg.Document.Path != "" {
		cfg.Document.Path = expandPath(cfg.Document.Path, filepath.Dir(path))
	}
	return &cfg, nil
}

// LoadOrDefault loads the config at path. When path is empty it loads
// LocalConfigName from the working directory if present, and otherwise
// returns defaults. The second return value is the file actually loaded,
// or "" when defaults were used.
func LoadOrDefault(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	if _, err := os.Stat(LocalConfigName); err == nil {
		abs, absErr := filepath.Abs(LocalConfigName)
		if absErr != nil {
			abs = LocalConfigName
		}
		cfg, err := Load(abs)
		if err != nil {
			return nil, "", err
		}
		return cfg, abs, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("failed to stat config: %w", err)
	}
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg, "", nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
