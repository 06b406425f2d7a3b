// Package config provides configuration loading for mask-tools-mcp. It
// handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/friendlygt/mask-tools-mcp/internal/mask"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Annotation parameters
	Annotation struct {
		// PatchesPerAxis is the patch grid size along one dimension; each
		// image is partitioned into PatchesPerAxis² patches.
		PatchesPerAxis int `yaml:"patchesPerAxis"`

		// SmoothingSigma enables Gaussian pre-smoothing of loaded images
		// with the given radius when above zero. Zero disables smoothing.
		SmoothingSigma float64 `yaml:"smoothingSigma"`
	} `yaml:"annotation"`

	// Output parameters
	Output struct {
		// Verbose controls whether core annotation events are logged.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Annotation.PatchesPerAxis = mask.DefaultPatchesPerAxis
	cfg.Annotation.SmoothingSigma = 0
	cfg.Output.Verbose = false
	return cfg
}

// LoadConfig loads configuration from a YAML file. If the file doesn't
// exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the
// specified path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
