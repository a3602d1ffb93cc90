// Package assets holds the current font and base image shared by renders.
//
// Every mutation replaces a whole value through an atomic pointer, so a reader
// either sees the previous asset or the new one, never a partially written one.
// Stored values are never mutated after publication.
package assets

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/user/lofistripes/pkg/ports"
)

// FontLoader parses font bytes.
type FontLoader func(data []byte) (ports.Font, error)

// FontAsset is one stored font. Parsing happens on first use and is shared by
// every render that reads the same asset.
type FontAsset struct {
	data []byte

	once sync.Once
	font ports.Font
	err  error
}

// Empty reports whether no font bytes are stored.
func (a *FontAsset) Empty() bool {
	return a == nil || len(a.data) == 0
}

// Size returns the number of stored font bytes.
func (a *FontAsset) Size() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// Load parses the font once with load and returns the cached result.
func (a *FontAsset) Load(load FontLoader) (ports.Font, error) {
	a.once.Do(func() {
		a.font, a.err = load(a.data)
	})
	return a.font, a.err
}

// Store holds the current assets.
type Store struct {
	font  atomic.Pointer[FontAsset]
	image atomic.Pointer[image.RGBA]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetFont replaces the stored font. The bytes are copied; validity is checked on first Load.
func (s *Store) SetFont(data []byte) {
	s.font.Store(&FontAsset{data: append([]byte(nil), data...)})
}

// Font returns the current font asset, or nil if none was set.
func (s *Store) Font() *FontAsset {
	return s.font.Load()
}

// SetImage replaces the stored base image. The store takes ownership of img;
// callers must not modify it afterwards.
func (s *Store) SetImage(img *image.RGBA) {
	s.image.Store(img)
}

// Image returns the current base image, or nil if none was set.
// The returned raster is shared and must be treated as read-only.
func (s *Store) Image() *image.RGBA {
	return s.image.Load()
}
