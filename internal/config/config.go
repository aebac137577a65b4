// Package config holds promisetracker's top-level Config, loaded from
// YAML via gopkg.in/yaml.v3, modeled on the teacher's Config/DefaultConfig
// pattern (internal/config/config.go): a struct of nested sub-configs with
// yaml tags, a DefaultConfig() constructor, and a Load(path) that falls
// back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all promisetracker configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Render   RenderConfig   `yaml:"render"`
	Resolver ResolverConfig `yaml:"resolver"`
}

// LoggingConfig selects which ptlog categories are emitted and at what
// level, mirroring the teacher's loggingConfig{DebugMode, Categories,
// Level} shape (internal/logging/logger.go).
type LoggingConfig struct {
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// RenderConfig picks the default text-renderer layout and whether
// lipgloss/ANSI styling is applied (spec §4.6/§6).
type RenderConfig struct {
	Color      bool `yaml:"color"`
	Compressed bool `yaml:"compressed"`
}

// ResolverConfig carries MaxCycleDepth, which is loaded and saved but not
// read by the resolver: resolution depth is bounded only by the
// resolution-stack guard in internal/tracker, whatever value is set here.
type ResolverConfig struct {
	MaxCycleDepth int `yaml:"max_cycle_depth"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Categories: nil,
		},
		Render: RenderConfig{
			Color:      true,
			Compressed: false,
		},
		Resolver: ResolverConfig{
			MaxCycleDepth: 0,
		},
	}
}

// Load loads configuration from a YAML file, falling back to
// DefaultConfig() if path does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
