// Package lofistripes provides a high-level API for captioning and striping images.
package lofistripes

import (
	"github.com/user/lofistripes/pkg/orchestrator"
	"github.com/user/lofistripes/pkg/pipeline"
)

// Config represents the render options of a Service.
type Config struct {
	// Caption
	FontSize float64 // Caption size relative to the longer image side (default: 10)

	// Stripes
	StripeCount         int // Number of stripe periods (0 disables stripes)
	StripeHeightPercent int // Opaque share of each period, exclusive (0, 100)

	// Text
	OutlineClamp pipeline.OutlineClamp // Outline half-thickness clamp mode
	Normalize    bool                  // NFC-normalize captions before layout
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

func defaults() Config {
	d := orchestrator.DefaultConfig()
	return Config{
		FontSize:            d.FontSize,
		StripeCount:         d.StripeCount,
		StripeHeightPercent: d.StripeHeightPercent,
		OutlineClamp:        d.OutlineClamp,
		Normalize:           d.Normalize,
	}
}

// Build returns the final Config.
// Negative stripe values are forced to 0, which disables stripes.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.StripeCount < 0 {
		cfg.StripeCount = 0
	}
	if cfg.StripeHeightPercent < 0 {
		cfg.StripeHeightPercent = 0
	}

	return cfg
}

// WithFontSize sets the caption font size.
func (b *ConfigBuilder) WithFontSize(size float64) *ConfigBuilder {
	b.config.FontSize = size
	return b
}

// WithStripes sets the stripe count and the opaque percentage of each period.
func (b *ConfigBuilder) WithStripes(count, heightPercent int) *ConfigBuilder {
	b.config.StripeCount = count
	b.config.StripeHeightPercent = heightPercent
	return b
}

// WithOutlineClamp sets the outline clamp mode.
func (b *ConfigBuilder) WithOutlineClamp(clamp pipeline.OutlineClamp) *ConfigBuilder {
	b.config.OutlineClamp = clamp
	return b
}

// WithNormalize enables or disables NFC normalization of captions.
func (b *ConfigBuilder) WithNormalize(normalize bool) *ConfigBuilder {
	b.config.Normalize = normalize
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config for one pair of captions.
func (c Config) ToOrchestratorConfig(top, bottom string) orchestrator.Config {
	return orchestrator.Config{
		TextTop:    top,
		TextBottom: bottom,
		FontSize:   c.FontSize,

		StripeCount:         c.StripeCount,
		StripeHeightPercent: c.StripeHeightPercent,

		OutlineClamp: c.OutlineClamp,
		Normalize:    c.Normalize,
	}
}
