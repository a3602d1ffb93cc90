// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/lofistripes/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveStriped does nothing.
func (s *Sink) SaveStriped(img image.Image) error {
	return nil
}

// SaveExpanded does nothing.
func (s *Sink) SaveExpanded(img image.Image) error {
	return nil
}

// SaveLayoutJSON does nothing.
func (s *Sink) SaveLayoutJSON(band string, data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
