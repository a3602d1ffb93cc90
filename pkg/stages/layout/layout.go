// Package layout implements caption measurement and per-glyph layout.
package layout

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// Stage lays out one caption line across the image width.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new layout stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("layout"),
	}
}

// Execute computes glyph positions and the shared top of the line.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.LayoutResult{}, err
	}
	if input.Font == nil {
		return pipeline.LayoutResult{}, fmt.Errorf("layout: %w: font not set", pipeline.ErrEmptyAsset)
	}

	result := ComputeLayout(input)
	s.logger.Debug("Laid out %d glyphs at top %d, spacing %d", len(result.Glyphs), result.Top, result.Spacing)
	return result, nil
}

// ComputeLayout performs the layout calculation.
//
// A single code point is centered on the image. Longer captions start at the
// padding and are justified across width-2*padding with an even, possibly
// negative, integer spacing between glyphs. Glyphs are code points, so a
// multi-byte character is one layout unit.
//
// The line top is BandStart - ceil(ascent) + TextHeight + Outline, using the
// shared TextHeight so both bands sit the same way in their rows.
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutResult {
	m := input.Metrics
	textWidth, _ := input.Font.Measure(input.Text, m.Scale)

	result := pipeline.LayoutResult{
		Top:       input.BandStart - int(math.Ceil(input.Font.Ascent(m.Scale))) + m.TextHeight + m.Outline,
		TextWidth: textWidth,
	}

	count := utf8.RuneCountInString(input.Text)
	if count == 0 {
		return result
	}

	var x int
	if count == 1 {
		x = input.ImageWidth/2 - textWidth/2
	} else {
		available := input.ImageWidth - m.Padding*2
		result.Spacing = (available - textWidth) / (count - 1)
		x = m.Padding
	}

	result.Glyphs = make([]pipeline.GlyphPosition, 0, count)
	for _, r := range input.Text {
		glyph := string(r)
		width, _ := input.Font.Measure(glyph, m.Scale)
		result.Glyphs = append(result.Glyphs, pipeline.GlyphPosition{Text: glyph, X: x, Width: width})
		x += result.Spacing + width
	}

	return result
}
