// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"

	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// Config contains the parameters of one render.
type Config struct {
	// Caption
	TextTop    string
	TextBottom string
	FontSize   float64

	// Stripes
	StripeCount         int
	StripeHeightPercent int

	// Text
	OutlineClamp pipeline.OutlineClamp
	Normalize    bool // Normalize captions to NFC before layout
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FontSize:            10,
		StripeCount:         0,
		StripeHeightPercent: 50,
		OutlineClamp:        pipeline.OutlineClampLiteral,
		Normalize:           false,
	}
}

// Stages groups the pipeline stages driven by the orchestrator.
type Stages struct {
	Stripes pipeline.Stage[pipeline.StripeInput, pipeline.StripeResult]
	Expand  pipeline.Stage[pipeline.ExpandInput, pipeline.ExpandResult]
	Measure pipeline.Stage[pipeline.MeasureInput, pipeline.Metrics]
	Layout  pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	Caption pipeline.Stage[pipeline.CaptionInput, pipeline.CaptionResult]
}

// Orchestrator coordinates the execution of all pipeline stages.
// It holds no per-render state and is safe for concurrent use when its stages are.
type Orchestrator struct {
	stages Stages
	sink   ports.DebugSink
	logger ports.Logger
}

// New creates a new Orchestrator.
func New(stages Stages, sink ports.DebugSink, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		stages: stages,
		sink:   sink,
		logger: logger,
	}
}

// Run renders stripes and captions onto a private copy of src.
// font may be nil when both captions are empty.
func (o *Orchestrator) Run(ctx context.Context, src *image.RGBA, font ports.Font, config Config) (RunResult, error) {
	if src == nil || src.Bounds().Empty() {
		return RunResult{}, fmt.Errorf("%w: image not set or has no pixels", pipeline.ErrEmptyAsset)
	}
	o.logger.Info("Rendering %dx%d image", src.Bounds().Dx(), src.Bounds().Dy())

	// 1. Clone
	img := cloneRGBA(src)
	result := RunResult{SourceWidth: img.Bounds().Dx(), SourceHeight: img.Bounds().Dy()}

	// 2. Stripes
	striped, err := o.stages.Stripes.Execute(ctx, pipeline.StripeInput{
		Image:         img,
		Count:         config.StripeCount,
		HeightPercent: config.StripeHeightPercent,
	})
	if err != nil {
		o.logger.Error("Failed to draw stripes: %s", err)
		return RunResult{}, fmt.Errorf("stripes stage: %w", err)
	}
	img = striped.Image
	result.Stripes = striped.Bands
	o.logger.Info("Stripes drawn: %d bands", len(striped.Bands))

	if o.sink.Enabled() {
		o.sink.SaveStriped(img)
	}

	top, bottom := o.captions(config)
	if top == "" && bottom == "" {
		result.Image = img
		o.logger.Info("No captions, render completed")
		return result, nil
	}

	// 3. Measure
	if font == nil {
		o.logger.Error("Failed to draw text: font is empty")
		return RunResult{}, fmt.Errorf("%w: font not set", pipeline.ErrEmptyAsset)
	}
	sample := top
	if sample == "" {
		sample = bottom
	}
	metrics, err := o.stages.Measure.Execute(ctx, pipeline.MeasureInput{
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		FontSize: config.FontSize,
		Font:     font,
		Sample:   sample,
		Clamp:    config.OutlineClamp,
	})
	if err != nil {
		o.logger.Error("Failed to measure text: %s", err)
		return RunResult{}, fmt.Errorf("measure stage: %w", err)
	}
	result.Metrics = metrics

	// 4. Expand
	bandHeight := metrics.TextHeight + 2*metrics.Outline + metrics.Padding
	result.ExpandTop = conditionalInt(top != "", bandHeight, 0)
	result.ExpandBottom = conditionalInt(bottom != "", bandHeight, 0)

	expanded, err := o.stages.Expand.Execute(ctx, pipeline.ExpandInput{
		Image:  img,
		Top:    result.ExpandTop,
		Bottom: result.ExpandBottom,
	})
	if err != nil {
		o.logger.Error("Failed to expand canvas: %s", err)
		return RunResult{}, fmt.Errorf("expand stage: %w", err)
	}
	img = expanded.Image
	o.logger.Info("Canvas expanded: top %d, bottom %d", result.ExpandTop, result.ExpandBottom)

	if o.sink.Enabled() {
		o.sink.SaveExpanded(img)
	}

	// 5. Top caption
	if top != "" {
		if err := o.drawCaption(ctx, img, font, metrics, "top", top, 0); err != nil {
			return RunResult{}, err
		}
	}

	// 6. Bottom caption
	if bottom != "" {
		bandStart := img.Bounds().Dy() - metrics.TextHeight
		if err := o.drawCaption(ctx, img, font, metrics, "bottom", bottom, bandStart); err != nil {
			return RunResult{}, err
		}
	}

	result.Image = img
	o.logger.Info("Render completed: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	return result, nil
}

func (o *Orchestrator) drawCaption(
	ctx context.Context,
	img *image.RGBA,
	font ports.Font,
	metrics pipeline.Metrics,
	band string,
	text string,
	bandStart int,
) error {
	layout, err := o.stages.Layout.Execute(ctx, pipeline.LayoutInput{
		Text:       text,
		Font:       font,
		Metrics:    metrics,
		ImageWidth: img.Bounds().Dx(),
		BandStart:  bandStart,
	})
	if err != nil {
		o.logger.Error("Failed to lay out %s caption: %s", band, err)
		return fmt.Errorf("layout stage (%s): %w", band, err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(layout, "", "  "); err == nil {
			o.sink.SaveLayoutJSON(band, data)
		}
	}

	if _, err := o.stages.Caption.Execute(ctx, pipeline.CaptionInput{
		Image:   img,
		Font:    font,
		Scale:   metrics.Scale,
		Outline: metrics.Outline,
		Layout:  layout,
	}); err != nil {
		o.logger.Error("Failed to draw %s caption: %s", band, err)
		return fmt.Errorf("caption stage (%s): %w", band, err)
	}

	o.logger.Info("Caption drawn: %s", band)
	return nil
}

func (o *Orchestrator) captions(config Config) (string, string) {
	if !config.Normalize {
		return config.TextTop, config.TextBottom
	}
	return norm.NFC.String(config.TextTop), norm.NFC.String(config.TextBottom)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func conditionalInt(condition bool, trueVal, falseVal int) int {
	if condition {
		return trueVal
	}
	return falseVal
}

// RunResult contains the rendered raster and the values that shaped it.
type RunResult struct {
	Image *image.RGBA

	// Source dimensions
	SourceWidth  int
	SourceHeight int

	// Stripe bands painted transparent, in source coordinates
	Stripes []pipeline.Band

	// Caption metrics, zero when no caption was drawn
	Metrics      pipeline.Metrics
	ExpandTop    int
	ExpandBottom int
}
