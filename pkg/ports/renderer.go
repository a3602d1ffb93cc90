package ports

import (
	"image"
)

// Renderer abstracts the codecs and font loading around the caption pipeline.
type Renderer interface {
	// LoadFont parses font file bytes (TrueType or OpenType).
	LoadFont(data []byte) (Font, error)

	// DecodeImage sniffs the container format and decodes data into an RGBA raster
	// whose bounds start at (0, 0). It also returns the detected format name.
	DecodeImage(data []byte) (*image.RGBA, string, error)

	// EncodeImage encodes img as PNG.
	EncodeImage(img image.Image) ([]byte, error)
}
