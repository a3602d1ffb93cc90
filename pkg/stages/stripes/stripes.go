// Package stripes implements the transparent stripe stage.
package stripes

import (
	"context"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// Stage punches periodic transparent bands into a raster in place.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new stripe stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("stripes"),
	}
}

// Execute paints the transparent bands. Degenerate parameters leave the raster untouched.
func (s *Stage) Execute(ctx context.Context, input pipeline.StripeInput) (pipeline.StripeResult, error) {
	result := pipeline.StripeResult{Image: input.Image}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	bounds := input.Image.Bounds()
	bands := ComputeBands(bounds.Dy(), input.Count, input.HeightPercent)
	if len(bands) == 0 {
		s.logger.Debug("Stripes disabled: count %d, height %d%%", input.Count, input.HeightPercent)
		return result, nil
	}

	for _, band := range bands {
		r := image.Rect(bounds.Min.X, bounds.Min.Y+band.Y, bounds.Max.X, bounds.Min.Y+band.Y+band.Height)
		draw.Draw(input.Image, r, image.Transparent, image.Point{}, draw.Src)
	}

	s.logger.Debug("Painted %d transparent stripes", len(bands))
	result.Bands = bands
	return result, nil
}

// ComputeBands returns the transparent bands for an image of the given height.
// It returns nil when striping is disabled: a zero count, a percentage outside
// (0, 100), or more stripes than height/2.
//
// Each period of height/count rows starts with an opaque stripe of
// period*percent/100 rows followed by a transparent stripe covering the rest;
// both are at least one row. The last band is clipped to the image.
func ComputeBands(height, count, percent int) []pipeline.Band {
	if percent <= 0 || percent >= 100 || count <= 0 || count > height/2 {
		return nil
	}

	period := height / count
	opaque := max(1, period*percent/100)
	transparent := max(1, period*(100-percent)/100)

	var bands []pipeline.Band
	for y := opaque; y < height; y += opaque + transparent {
		bands = append(bands, pipeline.Band{Y: y, Height: min(transparent, height-y)})
	}
	return bands
}
