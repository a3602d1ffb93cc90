package ports

import (
	"image"
	"image/color"
)

// Font is a scalable glyph source at arbitrary pixel scales.
// A scale is the pixel height of the font's ascent minus its descent.
//
// Implementations must be safe for concurrent use; the batch runner shares
// one Font across workers.
type Font interface {
	// Ascent returns the scaled ascent in pixels (unrounded).
	Ascent(scale float64) float64

	// Measure returns the rendered pixel width and height of text.
	// Width is the advance sum including kerning, height is the tallest glyph extent.
	Measure(text string, scale float64) (width, height int)

	// DrawText composites text onto dst in color c. (x, y) is the top-left of
	// the text line; the baseline sits at y + Ascent(scale).
	DrawText(dst *image.RGBA, c color.Color, x, y int, scale float64, text string)
}
