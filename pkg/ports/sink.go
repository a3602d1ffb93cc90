package ports

import (
	"image"
)

// DebugSink receives intermediate rasters and layout data of a render.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveStriped saves the raster right after the stripe pass.
	SaveStriped(img image.Image) error

	// SaveExpanded saves the raster right after canvas expansion.
	SaveExpanded(img image.Image) error

	// SaveLayoutJSON saves the layout of one caption band ("top" or "bottom").
	SaveLayoutJSON(band string, data []byte) error
}
