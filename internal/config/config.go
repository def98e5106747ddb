// Package config loads settings for the convolve command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultOutput is where the comparison image goes when nothing else is set.
const DefaultOutput = "images/comparison.png"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds command settings. Zero values mean "use the default".
type Config struct {
	// Output is the comparison image path; its extension picks the format.
	Output string `yaml:"output"`

	// Workers is the number of convolution goroutines. 0 means GOMAXPROCS,
	// 1 runs the single-threaded reference path.
	Workers int `yaml:"workers"`

	// BandHeight is the rows per parallel job. 0 means automatic.
	BandHeight int `yaml:"band_height"`

	// Labels draws a caption on each panel.
	Labels bool `yaml:"labels"`

	// JPEGQuality applies to .jpg/.jpeg output (1-100). 0 means default.
	JPEGQuality int `yaml:"jpeg_quality"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output:     DefaultOutput,
		Workers:    1,
		BandHeight: 0,
		Labels:     false,
		LogLevel:   "info",
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error;
// the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.BandHeight < 0 {
		return fmt.Errorf("%w: band_height must be >= 0, got %d", ErrInvalidConfig, c.BandHeight)
	}
	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg_quality must be 0-100, got %d", ErrInvalidConfig, c.JPEGQuality)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel. An empty level means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
