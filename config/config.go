package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nanaki-93/lsr/model"
	"github.com/nanaki-93/lsr/render"
)

// EnvConfigPath overrides the default config file location
const EnvConfigPath = "LSR_CONFIG"

// Config holds defaults for the listing flags
type Config struct {
	// Sort is the default sort field for detailed listings (name, size, time)
	Sort string `yaml:"sort"`

	// All includes hidden entries by default
	All bool `yaml:"all"`

	// GitIgnore hides entries matched by the listed directory's .gitignore
	GitIgnore bool `yaml:"git_ignore"`

	// Color is auto, always or never
	Color string `yaml:"color"`

	// WidthMargin is subtracted from the terminal width before laying out the grid
	WidthMargin int `yaml:"width_margin"`

	// FallbackWidth is used when stdout is not a terminal
	FallbackWidth int `yaml:"fallback_width"`

	// Workers bounds concurrent metadata resolution (0 = number of CPUs)
	Workers int `yaml:"workers"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Sort:          "name",
		All:           false,
		GitIgnore:     false,
		Color:         string(render.ColorAuto),
		WidthMargin:   10,
		FallbackWidth: 80,
		Workers:       0,
		LogLevel:      "warn",
	}
}

// DefaultPath returns $LSR_CONFIG, or config.yaml under the user config dir
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "lsr", "config.yaml"), nil
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// Keys missing from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(sort *string, all *bool, gitIgnore *bool, color *string, workers *int) {
	if sort != nil {
		c.Sort = *sort
	}
	if all != nil {
		c.All = *all
	}
	if gitIgnore != nil {
		c.GitIgnore = *gitIgnore
	}
	if color != nil {
		c.Color = *color
	}
	if workers != nil {
		c.Workers = *workers
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if _, err := model.ParseSortField(c.Sort); err != nil {
		return err
	}
	if _, err := render.ParseColorMode(c.Color); err != nil {
		return err
	}
	if c.WidthMargin < 0 {
		return fmt.Errorf("width_margin must be >= 0, got %d", c.WidthMargin)
	}
	if c.FallbackWidth <= 0 {
		return fmt.Errorf("fallback_width must be > 0, got %d", c.FallbackWidth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	return nil
}
