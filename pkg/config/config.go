// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/lofistripes/pkg/lofistripes"
	"github.com/user/lofistripes/pkg/orchestrator"
	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// Config represents the full configuration for lofistripes.
type Config struct {
	// Assets
	Font string `yaml:"font"`

	// Caption
	TextTop    string  `yaml:"text_top"`
	TextBottom string  `yaml:"text_bottom"`
	FontSize   float64 `yaml:"font_size"`

	// Stripes
	StripeCount         int `yaml:"stripe_count"`
	StripeHeightPercent int `yaml:"stripe_height_percent"`

	// Text
	OutlineClamp string `yaml:"outline_clamp"`
	Normalize    bool   `yaml:"normalize"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Batch
	Workers   int  `yaml:"workers"`
	Overwrite bool `yaml:"overwrite"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Caption
		FontSize: 10,

		// Stripes
		StripeCount:         0,
		StripeHeightPercent: 50,

		// Text
		OutlineClamp: pipeline.OutlineClampLiteral.String(),
		Normalize:    false,

		// Logging
		LogLevel: ports.LevelInfo.String(),

		// Batch
		Workers: 0,

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file over Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated and non-negative fields.
// Stripe percentages outside (0, 100) are valid and disable striping.
func (c Config) Validate() error {
	switch c.OutlineClamp {
	case "literal", "minimum":
	default:
		return fmt.Errorf("outline_clamp must be literal or minimum, got %q", c.OutlineClamp)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "quiet":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, quiet; got %q", c.LogLevel)
	}
	if c.StripeCount < 0 {
		return fmt.Errorf("stripe_count must not be negative, got %d", c.StripeCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// ToServiceConfig converts Config to lofistripes.Config.
func (c Config) ToServiceConfig() lofistripes.Config {
	return lofistripes.NewConfigBuilder().
		WithFontSize(c.FontSize).
		WithStripes(c.StripeCount, c.StripeHeightPercent).
		WithOutlineClamp(pipeline.ParseOutlineClamp(c.OutlineClamp)).
		WithNormalize(c.Normalize).
		Build()
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return c.ToServiceConfig().ToOrchestratorConfig(c.TextTop, c.TextBottom)
}
