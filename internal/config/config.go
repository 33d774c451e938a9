// Package config provides configuration loading for the heatmap overlay
// service. It handles loading configuration from YAML files and provides
// default values for every parameter.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sightline-labs/heatmap-overlay/internal/heatmap"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Server parameters for the HTTP frontend
	Server struct {
		// Addr is the listen address, e.g. ":8000"
		Addr string `yaml:"addr"`

		// MaxJSONBytes caps the accepted event-log upload size
		MaxJSONBytes int64 `yaml:"maxJSONBytes"`

		// MaxImageBytes caps the accepted image upload size
		MaxImageBytes int64 `yaml:"maxImageBytes"`
	} `yaml:"server"`

	// Heatmap parameters for the rendering pipeline
	Heatmap struct {
		// Sigma is the Gaussian smoothing standard deviation
		Sigma float64 `yaml:"sigma"`

		// Cap is the density ceiling applied after smoothing
		Cap float64 `yaml:"cap"`

		// Alpha is the overlay opacity in [0, 1]
		Alpha float64 `yaml:"alpha"`

		// Width and Height are the canonical output dimensions
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// Class is the target detection class label
		Class string `yaml:"class"`
	} `yaml:"heatmap"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Server.Addr = ":8000"
	cfg.Server.MaxJSONBytes = 15_000_000
	cfg.Server.MaxImageBytes = 5_000_000

	cfg.Heatmap.Sigma = heatmap.DefaultSigma
	cfg.Heatmap.Cap = heatmap.DefaultCap
	cfg.Heatmap.Alpha = heatmap.DefaultAlpha
	cfg.Heatmap.Width = heatmap.DefaultWidth
	cfg.Heatmap.Height = heatmap.DefaultHeight
	cfg.Heatmap.Class = heatmap.DefaultClass

	return cfg
}

// LoadConfig loads configuration from a YAML file, overlaying the defaults.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// validate rejects parameter values the pipeline cannot work with.
func (c *Config) validate() error {
	if c.Heatmap.Alpha < 0 || c.Heatmap.Alpha > 1 {
		return fmt.Errorf("heatmap.alpha must be in [0, 1], got %v", c.Heatmap.Alpha)
	}
	if c.Heatmap.Width <= 0 || c.Heatmap.Height <= 0 {
		return fmt.Errorf("heatmap dimensions must be positive, got %dx%d", c.Heatmap.Width, c.Heatmap.Height)
	}
	if c.Heatmap.Cap <= 0 {
		return fmt.Errorf("heatmap.cap must be positive, got %v", c.Heatmap.Cap)
	}
	if c.Heatmap.Class == "" {
		return fmt.Errorf("heatmap.class must not be empty")
	}
	if c.Server.MaxJSONBytes <= 0 || c.Server.MaxImageBytes <= 0 {
		return fmt.Errorf("server upload limits must be positive")
	}
	return nil
}

// Options converts the heatmap section into pipeline options.
func (c *Config) Options() heatmap.Options {
	return heatmap.Options{
		Sigma:  c.Heatmap.Sigma,
		Cap:    c.Heatmap.Cap,
		Alpha:  c.Heatmap.Alpha,
		Width:  c.Heatmap.Width,
		Height: c.Heatmap.Height,
	}
}
