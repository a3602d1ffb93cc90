package layout

import (
	"context"
	"fmt"

	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

const (
	// ReferenceSize is the image dimension at which FontSize equals the pixel scale.
	ReferenceSize = 345.0

	// PaddingPercent is the padding as a percentage of the smaller image dimension.
	PaddingPercent = 1

	// OutlinePercent is the outline half-thickness as a percentage of the text height.
	OutlinePercent = 2
)

// MeasureStage derives the caption metrics shared by both bands.
type MeasureStage struct {
	logger ports.Logger
}

// NewMeasureStage creates a new measure stage.
func NewMeasureStage(logger ports.Logger) *MeasureStage {
	return &MeasureStage{
		logger: logger.WithComponent("measure"),
	}
}

// Execute measures the sample caption and returns the render metrics.
func (s *MeasureStage) Execute(ctx context.Context, input pipeline.MeasureInput) (pipeline.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.Metrics{}, err
	}
	if input.Font == nil {
		return pipeline.Metrics{}, fmt.Errorf("measure: %w: font not set", pipeline.ErrEmptyAsset)
	}

	metrics := ComputeMetrics(input)
	s.logger.Debug("Font scale %.2f, text height %d, padding %d, outline %d",
		metrics.Scale, metrics.TextHeight, metrics.Padding, metrics.Outline)
	return metrics, nil
}

// ComputeMetrics performs the metric calculation.
// This is exposed as a standalone function for testing and reuse.
func ComputeMetrics(input pipeline.MeasureInput) pipeline.Metrics {
	scale := FontScale(input.Width, input.Height, input.FontSize)
	_, textHeight := input.Font.Measure(input.Sample, scale)

	return pipeline.Metrics{
		Scale:      scale,
		TextHeight: textHeight,
		Padding:    min(input.Width, input.Height) * PaddingPercent / 100,
		Outline:    input.Clamp.Apply(textHeight * OutlinePercent / 100),
	}
}

// FontScale scales the requested font size by the larger image dimension.
func FontScale(width, height int, fontSize float64) float64 {
	return float64(max(width, height)) * fontSize / ReferenceSize
}
