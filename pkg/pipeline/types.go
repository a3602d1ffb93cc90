package pipeline

import (
	"image"

	"github.com/user/lofistripes/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Band represents a horizontal strip of a raster, rows [Y, Y+Height).
type Band struct {
	Y      int
	Height int
}

// OutlineClamp selects how the computed outline half-thickness is clamped.
type OutlineClamp int

const (
	// OutlineClampLiteral takes min(1, computed): the outline never exceeds one
	// pixel and disappears for text shorter than 50 pixels.
	OutlineClampLiteral OutlineClamp = iota
	// OutlineClampMinimum takes max(1, computed): every caption has at least a
	// one-pixel outline.
	OutlineClampMinimum
)

// String returns the config name of the clamp mode.
func (c OutlineClamp) String() string {
	if c == OutlineClampMinimum {
		return "minimum"
	}
	return "literal"
}

// ParseOutlineClamp parses a config name. Unknown values map to OutlineClampLiteral.
func ParseOutlineClamp(s string) OutlineClamp {
	if s == "minimum" {
		return OutlineClampMinimum
	}
	return OutlineClampLiteral
}

// Apply clamps a computed half-thickness.
func (c OutlineClamp) Apply(v int) int {
	if c == OutlineClampMinimum {
		return max(1, v)
	}
	return min(1, v)
}

// =============================================================================
// Stripe Stage Types
// =============================================================================

// StripeInput contains the raster to stripe and the stripe parameters.
type StripeInput struct {
	Image         *image.RGBA
	Count         int // Target number of transparent bands
	HeightPercent int // Percentage of each period kept opaque, exclusive range (0, 100)
}

// StripeResult contains the striped raster (same pointer as the input) and the
// transparent bands that were painted.
type StripeResult struct {
	Image *image.RGBA
	Bands []Band
}

// =============================================================================
// Expand Stage Types
// =============================================================================

// ExpandInput contains the raster and the number of transparent rows to add.
type ExpandInput struct {
	Image  *image.RGBA
	Top    int
	Bottom int
}

// ExpandResult contains the expanded raster.
type ExpandResult struct {
	Image *image.RGBA
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// MeasureInput contains everything needed to derive caption metrics.
type MeasureInput struct {
	Width    int        // Image width before expansion
	Height   int        // Image height before expansion
	FontSize float64    // Requested font size, relative to ReferenceSize
	Font     ports.Font // Loaded font
	Sample   string     // Caption measured for the shared text height
	Clamp    OutlineClamp
}

// Metrics are the per-render caption metrics shared by both bands.
type Metrics struct {
	Scale      float64 // Pixel scale passed to the font
	TextHeight int     // Height of the sample caption
	Padding    int     // Horizontal padding and band spacing
	Outline    int     // Outline half-thickness
}

// LayoutInput contains parameters for laying out one caption line.
type LayoutInput struct {
	Text       string
	Font       ports.Font
	Metrics    Metrics
	ImageWidth int
	BandStart  int // First row of the caption band
}

// GlyphPosition is the horizontal placement of one code point.
type GlyphPosition struct {
	Text  string `json:"text"`
	X     int    `json:"x"`
	Width int    `json:"width"`
}

// LayoutResult contains the placement of one caption line.
type LayoutResult struct {
	Top       int             `json:"top"`     // Top of the text line shared by all glyphs
	Spacing   int             `json:"spacing"` // Signed letter spacing, 0 for single glyphs
	TextWidth int             `json:"text_width"`
	Glyphs    []GlyphPosition `json:"glyphs"`
}

// =============================================================================
// Caption Stage Types
// =============================================================================

// CaptionInput contains a laid-out caption to draw onto a raster.
type CaptionInput struct {
	Image   *image.RGBA
	Font    ports.Font
	Scale   float64
	Outline int
	Layout  LayoutResult
}

// CaptionResult contains the raster with the caption drawn (same pointer as the input).
type CaptionResult struct {
	Image *image.RGBA
}
