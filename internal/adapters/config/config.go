// Package config loads the optional worker-level configuration file.
//
// This is worker plumbing only (log level, default backend, watch roots); the
// per-project compiler configuration always arrives in the Init request.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file probed in the working directory.
const DefaultFilename = "tsbridge.yaml"

// Config is the resolved worker configuration.
type Config struct {
	LogLevel slog.Level
	Silent   bool
	Backend  string
	Watch    WatchConfig
}

// WatchConfig controls the optional filesystem watcher.
type WatchConfig struct {
	Enabled  bool
	Roots    []string
	Debounce time.Duration
}

// fileDTO mirrors the YAML schema.
type fileDTO struct {
	LogLevel string   `yaml:"logLevel"`
	Silent   bool     `yaml:"silent"`
	Backend  string   `yaml:"backend"`
	Watch    watchDTO `yaml:"watch"`
}

type watchDTO struct {
	Enabled    bool     `yaml:"enabled"`
	Roots      []string `yaml:"roots"`
	DebounceMs int      `yaml:"debounceMs"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		Backend:  "sitter",
		Watch:    WatchConfig{Debounce: 200 * time.Millisecond},
	}
}

// Load reads the config file from cwd. A missing file yields the defaults;
// a malformed file is an error.
func Load(cwd string) (Config, error) {
	return LoadFile(filepath.Join(cwd, DefaultFilename))
}

// LoadFile reads the config from an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, zerr.Wrap(err, "failed to read config file")
	}

	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return cfg, zerr.Wrap(err, "failed to parse config file")
	}

	if dto.LogLevel != "" {
		level, err := parseLevel(dto.LogLevel)
		if err != nil {
			return cfg, err
		}
		cfg.LogLevel = level
	}
	cfg.Silent = dto.Silent
	if dto.Backend != "" {
		cfg.Backend = dto.Backend
	}
	cfg.Watch.Enabled = dto.Watch.Enabled
	if len(dto.Watch.Roots) > 0 {
		cfg.Watch.Roots = dto.Watch.Roots
	}
	if dto.Watch.DebounceMs > 0 {
		cfg.Watch.Debounce = time.Duration(dto.Watch.DebounceMs) * time.Millisecond
	}

	return cfg, nil
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, zerr.With(zerr.New("invalid log level"), "log_level", name)
}
