package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/lofistripes/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lofistripes.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.FontSize != 10 {
		t.Errorf("expected font size 10, got %v", cfg.FontSize)
	}
	if cfg.StripeCount != 0 || cfg.StripeHeightPercent != 50 {
		t.Errorf("unexpected stripe defaults: %d/%d", cfg.StripeCount, cfg.StripeHeightPercent)
	}
	if cfg.OutlineClamp != "literal" || cfg.Normalize {
		t.Errorf("unexpected text defaults: %q %v", cfg.OutlineClamp, cfg.Normalize)
	}
	if cfg.LogLevel != "info" || cfg.DebugDir != "./debug" || cfg.Debug {
		t.Errorf("unexpected ambient defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
font: fonts/impact.ttf
text_top: HELLO
font_size: 12.5
stripe_count: 6
outline_clamp: minimum
normalize: true
workers: 3
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Font != "fonts/impact.ttf" || cfg.TextTop != "HELLO" {
		t.Errorf("unexpected assets: %+v", cfg)
	}
	if cfg.FontSize != 12.5 || cfg.StripeCount != 6 || cfg.Workers != 3 {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
	if !cfg.Normalize {
		t.Error("expected normalize to be overridden")
	}
	// Unset keys keep their defaults
	if cfg.StripeHeightPercent != 50 || cfg.LogLevel != "info" {
		t.Errorf("expected defaults for unset keys, got %+v", cfg)
	}

	oc := cfg.ToOrchestratorConfig()
	if oc.TextTop != "HELLO" || oc.FontSize != 12.5 || oc.StripeCount != 6 {
		t.Errorf("unexpected orchestrator config: %+v", oc)
	}
	if oc.OutlineClamp != pipeline.OutlineClampMinimum || !oc.Normalize {
		t.Errorf("unexpected text options: %+v", oc)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"yaml", "font_size: [", "parse"},
		{"clamp", "outline_clamp: thick", "outline_clamp"},
		{"log level", "log_level: loud", "log_level"},
		{"stripes", "stripe_count: -1", "stripe_count"},
		{"workers", "workers: -2", "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
