package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/search"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize     = 16
	DefaultInterval = 100 * time.Millisecond
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
	MinInterval     = time.Millisecond
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Height   int             `yaml:"height"`
	Width    int             `yaml:"width"`
	Seed     int64           `yaml:"seed"`
	Strategy search.Strategy `yaml:"strategy"`
	Interval time.Duration   `yaml:"interval"`
	Theme    string          `yaml:"theme"`
	LogLevel string          `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Height:   DefaultSize,
		Width:    DefaultSize,
		Strategy: search.BreadthFirst,
		Interval: DefaultInterval,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Height < grid.MinSize || c.Width < grid.MinSize {
		return fmt.Errorf("%w: size %dx%d below %d", ErrInvalidConfig, c.Height, c.Width, grid.MinSize)
	}
	if c.Interval < MinInterval {
		return fmt.Errorf("%w: interval %v below %v", ErrInvalidConfig, c.Interval, MinInterval)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "disable":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Seeded reports whether the config pins the maze seed.
func (c *Config) Seeded() bool {
	return c.Seed != 0
}
