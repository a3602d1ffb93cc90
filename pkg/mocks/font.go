package mocks

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"unicode/utf8"

	"github.com/user/lofistripes/pkg/ports"
)

// DrawCall records one Font.DrawText invocation.
type DrawCall struct {
	Color color.Color
	X, Y  int
	Scale float64
	Text  string
}

// Font is a mock ports.Font with fixed, scale-independent metrics.
// Every code point is GlyphWidth wide and GlyphHeight tall, and DrawText
// paints a solid box of that size starting at (x, y).
type Font struct {
	mu sync.Mutex

	GlyphWidth  int
	GlyphHeight int
	AscentPx    float64

	DrawCalls []DrawCall
}

// NewFont creates a mock font with 10x20 glyphs and an ascent equal to the glyph height.
func NewFont() *Font {
	return &Font{
		GlyphWidth:  10,
		GlyphHeight: 20,
		AscentPx:    20,
	}
}

func (m *Font) Ascent(scale float64) float64 {
	return m.AscentPx
}

func (m *Font) Measure(text string, scale float64) (int, int) {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0, 0
	}
	return n * m.GlyphWidth, m.GlyphHeight
}

func (m *Font) DrawText(dst *image.RGBA, c color.Color, x, y int, scale float64, text string) {
	m.mu.Lock()
	m.DrawCalls = append(m.DrawCalls, DrawCall{Color: c, X: x, Y: y, Scale: scale, Text: text})
	m.mu.Unlock()

	w, h := m.Measure(text, scale)
	draw.Draw(dst, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
}

// Calls returns a copy of the recorded draw calls.
func (m *Font) Calls() []DrawCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DrawCall(nil), m.DrawCalls...)
}

var _ ports.Font = (*Font)(nil)
