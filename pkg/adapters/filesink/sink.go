// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/lofistripes/pkg/ports"
)

// Sink saves debug output to files under baseDir.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveStriped saves the raster after the stripe pass as striped.png.
func (s *Sink) SaveStriped(img image.Image) error {
	return s.savePNG("striped.png", img)
}

// SaveExpanded saves the expanded canvas as expanded.png.
func (s *Sink) SaveExpanded(img image.Image) error {
	return s.savePNG("expanded.png", img)
}

// SaveLayoutJSON saves a caption layout as layout-<band>.json.
func (s *Sink) SaveLayoutJSON(band string, data []byte) error {
	path := filepath.Join(s.baseDir, fmt.Sprintf("layout-%s.json", band))
	return s.fs.WriteFile(path, data)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
