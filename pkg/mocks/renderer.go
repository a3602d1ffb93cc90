package mocks

import (
	"image"

	"github.com/user/lofistripes/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	LoadFontFunc    func(data []byte) (ports.Font, error)
	DecodeImageFunc func(data []byte) (*image.RGBA, string, error)
	EncodeImageFunc func(img image.Image) ([]byte, error)
}

func (m *Renderer) LoadFont(data []byte) (ports.Font, error) {
	if m.LoadFontFunc != nil {
		return m.LoadFontFunc(data)
	}
	return NewFont(), nil
}

func (m *Renderer) DecodeImage(data []byte) (*image.RGBA, string, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), "png", nil
}

func (m *Renderer) EncodeImage(img image.Image) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img)
	}
	return []byte{}, nil
}

var _ ports.Renderer = (*Renderer)(nil)
