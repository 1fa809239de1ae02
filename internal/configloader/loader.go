// Package configloader resolves htmldom's optional project configuration.
// A project may carry a .htmldom.yaml next to the documents it processes;
// CLI flags always take precedence over file values.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project config file searched in the working
// directory.
const DefaultFileName = ".htmldom.yaml"

// Config holds the file-configurable defaults for the CLI.
type Config struct {
	// LogLevel is the default log level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// Color controls styled output: auto, always, or never.
	Color string `yaml:"color"`

	// Drop lists element names pruned by "tree --drop" when the flag is
	// not given explicitly.
	Drop []string `yaml:"drop"`
}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory searched for the project config.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config). When
	// set, discovery is skipped and a missing file is an error.
	ExplicitPath string
}

// Load resolves the configuration. A missing project config is not an
// error; defaults are returned.
func Load(opts LoadOptions) (*Config, error) {
	cfg := defaults()

	path := opts.ExplicitPath
	if path == "" {
		dir := opts.WorkingDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("resolve working directory: %w", err)
			}
			dir = wd
		}
		candidate := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cfg, nil
			}
			return nil, fmt.Errorf("stat %s: %w", candidate, err)
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		LogLevel: "info",
		Color:    "auto",
	}
}

func validate(cfg *Config) error {
	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", cfg.Color)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}
