// Package expand implements the canvas expansion stage.
package expand

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// Stage grows a raster vertically to make room for caption bands.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new expand stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("expand"),
	}
}

// Execute returns a raster with input.Top transparent rows above and
// input.Bottom transparent rows below the source. The source is not modified.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExpandInput) (pipeline.ExpandResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ExpandResult{}, err
	}
	if input.Top < 0 || input.Bottom < 0 {
		return pipeline.ExpandResult{}, fmt.Errorf("negative expansion: top %d, bottom %d", input.Top, input.Bottom)
	}

	img := Expand(input.Image, input.Top, input.Bottom)
	s.logger.Debug("Canvas expanded: top %d, bottom %d, %dx%d", input.Top, input.Bottom, img.Bounds().Dx(), img.Bounds().Dy())
	return pipeline.ExpandResult{Image: img}, nil
}

// Expand returns src unchanged when top and bottom are both zero, otherwise a
// new raster of height top+h+bottom with src copied at row top.
func Expand(src *image.RGBA, top, bottom int) *image.RGBA {
	if top == 0 && bottom == 0 {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), top+b.Dy()+bottom))
	draw.Draw(dst, image.Rect(0, top, b.Dx(), top+b.Dy()), src, b.Min, draw.Src)
	return dst
}
