package ggrenderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/user/lofistripes/pkg/ports"
)

// maxFaces bounds the per-scale face cache. Every image size yields its own
// scale, so a long-lived Font would otherwise grow without limit.
const maxFaces = 8

// Font implements ports.Font over an OpenType font.
// Faces are cached per scale; a mutex serializes face use because
// font.Face implementations are not safe for concurrent use.
type Font struct {
	mu    sync.Mutex
	otf   *opentype.Font
	upem  float64
	asc   float64 // ascent in font units
	desc  float64 // descent in font units, positive below the baseline
	faces map[float64]font.Face
}

// ParseFont parses TrueType or OpenType font bytes.
func ParseFont(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	// Metrics at ppem == units per em are expressed in font units.
	upem := int(otf.UnitsPerEm())
	var buf sfnt.Buffer
	m, err := otf.Metrics(&buf, fixed.I(upem), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("read font metrics: %w", err)
	}

	f := &Font{
		otf:   otf,
		upem:  float64(upem),
		asc:   float64(m.Ascent) / 64,
		desc:  float64(m.Descent) / 64,
		faces: make(map[float64]font.Face),
	}
	if f.asc+f.desc <= 0 {
		f.asc, f.desc = f.upem, 0
	}
	return f, nil
}

// Ascent returns the ascent at the given pixel scale.
func (f *Font) Ascent(scale float64) float64 {
	return f.asc * scale / (f.asc + f.desc)
}

// Measure returns the advance width (truncated) and the tallest glyph's pixel height.
func (f *Font) Measure(text string, scale float64) (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(scale)
	if err != nil {
		return 0, 0
	}

	var width fixed.Int26_6
	height := 0
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			width += face.Kern(prev, r)
		}
		bounds, advance, ok := face.GlyphBounds(r)
		width += advance
		prev = r
		if !ok || bounds.Empty() {
			continue
		}
		height = max(height, bounds.Max.Y.Ceil()-bounds.Min.Y.Floor())
	}
	return width.Floor(), height
}

// DrawText draws text with its line top at y, composited over dst.
func (f *Font) DrawText(dst *image.RGBA, c color.Color, x, y int, scale float64, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(scale)
	if err != nil {
		return
	}

	dc := gg.NewContextForRGBA(dst)
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(text, float64(x), float64(y)+f.Ascent(scale))
}

// face returns the cached face whose ascent minus descent spans scale pixels.
// Callers must hold f.mu.
func (f *Font) face(scale float64) (font.Face, error) {
	if face, ok := f.faces[scale]; ok {
		return face, nil
	}
	size := scale * f.upem / (f.asc + f.desc)
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("invalid font scale %v", scale)
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	if len(f.faces) >= maxFaces {
		f.evictFaces()
	}
	f.faces[scale] = face
	return face, nil
}

// Close releases all cached faces.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evictFaces()
	return nil
}

// evictFaces closes and drops every cached face. Callers must hold f.mu.
func (f *Font) evictFaces() {
	for scale, face := range f.faces {
		face.Close()
		delete(f.faces, scale)
	}
}

// Ensure Font implements ports.Font
var _ ports.Font = (*Font)(nil)
