// Package caption implements the outlined glyph rendering stage.
package caption

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

var (
	// TextColor fills every glyph.
	TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// OutlineColor is drawn around every glyph.
	OutlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Stage draws a laid-out caption with a faked stroke.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new caption stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("caption"),
	}
}

// Execute draws every glyph of input.Layout onto input.Image in place.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptionInput) (pipeline.CaptionResult, error) {
	result := pipeline.CaptionResult{Image: input.Image}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if input.Font == nil {
		return result, fmt.Errorf("caption: %w: font not set", pipeline.ErrEmptyAsset)
	}

	for _, g := range input.Layout.Glyphs {
		DrawOutlined(input.Image, input.Font, g.X, input.Layout.Top, input.Scale, input.Outline, g.Text)
	}

	s.logger.Debug("Drew %d glyphs with outline %d", len(input.Layout.Glyphs), input.Outline)
	return result, nil
}

// Offsets returns the eight neighbour offsets at distance o, column by column.
func Offsets(o int) [8]image.Point {
	return [8]image.Point{
		{-o, -o}, {-o, 0}, {-o, o},
		{0, -o}, {0, o},
		{o, -o}, {o, 0}, {o, o},
	}
}

// DrawOutlined draws text in OutlineColor at the eight offsets around (x, y)
// and then once in TextColor at (x, y). An outline of 0 overdraws in place.
func DrawOutlined(dst *image.RGBA, font ports.Font, x, y int, scale float64, outline int, text string) {
	for _, d := range Offsets(outline) {
		font.DrawText(dst, OutlineColor, x+d.X, y+d.Y, scale, text)
	}
	font.DrawText(dst, TextColor, x, y, scale, text)
}
