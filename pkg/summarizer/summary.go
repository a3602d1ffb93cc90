// Package summarizer provides summary generation for render results.
package summarizer

import (
	"time"

	"github.com/user/lofistripes/pkg/orchestrator"
)

// Summary contains all data collected during one render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source image
	Input InputInfo

	// Caption text and size
	Captions CaptionInfo

	// Stripe settings and result
	Stripes StripeInfo

	// Computed text metrics
	Text TextInfo

	// Output image details
	Output OutputInfo
}

// InputInfo describes the source image.
type InputInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// CaptionInfo contains the requested captions.
type CaptionInfo struct {
	Top      string
	Bottom   string
	FontSize float64
}

// StripeInfo contains stripe parameters and the number of bands painted.
type StripeInfo struct {
	Count         int
	HeightPercent int
	Bands         int
}

// TextInfo contains the metrics the caption layout was computed from.
type TextInfo struct {
	Scale        float64
	TextHeight   int
	Padding      int
	Outline      int
	OutlineClamp string
}

// OutputInfo contains information about the rendered image.
type OutputInfo struct {
	Path         string
	Width        int
	Height       int
	FileSize     int64
	ExpandTop    int
	ExpandBottom int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets source image information.
func (b *Builder) WithInput(path, format string, width, height int) *Builder {
	b.summary.Input = InputInfo{
		Path:   path,
		Format: format,
		Width:  width,
		Height: height,
	}
	return b
}

// WithConfig records captions, stripe parameters and the clamp mode of a render.
func (b *Builder) WithConfig(config orchestrator.Config) *Builder {
	b.summary.Captions = CaptionInfo{
		Top:      config.TextTop,
		Bottom:   config.TextBottom,
		FontSize: config.FontSize,
	}
	b.summary.Stripes.Count = config.StripeCount
	b.summary.Stripes.HeightPercent = config.StripeHeightPercent
	b.summary.Text.OutlineClamp = config.OutlineClamp.String()
	return b
}

// WithResult records the metrics and geometry of a finished render.
func (b *Builder) WithResult(result orchestrator.RunResult) *Builder {
	b.summary.Stripes.Bands = len(result.Stripes)
	b.summary.Text.Scale = result.Metrics.Scale
	b.summary.Text.TextHeight = result.Metrics.TextHeight
	b.summary.Text.Padding = result.Metrics.Padding
	b.summary.Text.Outline = result.Metrics.Outline
	b.summary.Output.ExpandTop = result.ExpandTop
	b.summary.Output.ExpandBottom = result.ExpandBottom
	if result.Image != nil {
		b.summary.Output.Width = result.Image.Bounds().Dx()
		b.summary.Output.Height = result.Image.Bounds().Dy()
	}
	return b
}

// WithOutput sets the output path and encoded size.
func (b *Builder) WithOutput(path string, fileSize int64) *Builder {
	b.summary.Output.Path = path
	b.summary.Output.FileSize = fileSize
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
