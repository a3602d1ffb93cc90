package mocks

import (
	"image"
	"sync"

	"github.com/user/lofistripes/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Striped  image.Image
	Expanded image.Image
	Layouts  map[string][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Layouts: make(map[string][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveStriped(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Striped = img
	return nil
}

func (m *DebugSink) SaveExpanded(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Expanded = img
	return nil
}

func (m *DebugSink) SaveLayoutJSON(band string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layouts[band] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
