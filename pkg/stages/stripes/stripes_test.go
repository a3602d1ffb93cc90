package stripes

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/user/lofistripes/pkg/adapters/logger"
	"github.com/user/lofistripes/pkg/pipeline"
)

func opaqueImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func TestComputeBands_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		count   int
		percent int
	}{
		{"zero count", 100, 0, 50},
		{"negative count", 100, -1, 50},
		{"zero percent", 100, 4, 0},
		{"hundred percent", 100, 4, 100},
		{"over hundred percent", 100, 4, 150},
		{"too many stripes", 100, 51, 50},
		{"empty image", 0, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if bands := ComputeBands(tt.height, tt.count, tt.percent); bands != nil {
				t.Errorf("expected no bands, got %+v", bands)
			}
		})
	}
}

func TestComputeBands_FourHalfStripes(t *testing.T) {
	bands := ComputeBands(100, 4, 50)

	expected := []pipeline.Band{
		{Y: 12, Height: 12},
		{Y: 36, Height: 12},
		{Y: 60, Height: 12},
		{Y: 84, Height: 12},
	}
	if len(bands) != len(expected) {
		t.Fatalf("expected %d bands, got %d: %+v", len(expected), len(bands), bands)
	}
	for i, want := range expected {
		if bands[i] != want {
			t.Errorf("bands[%d]: expected %+v, got %+v", i, want, bands[i])
		}
	}
}

func TestComputeBands_MinimumOneRow(t *testing.T) {
	// period 2, 1% opaque and 99% transparent both round down to 0 and 1
	bands := ComputeBands(10, 5, 1)
	if len(bands) == 0 {
		t.Fatal("expected bands")
	}
	if bands[0].Y != 1 || bands[0].Height != 1 {
		t.Errorf("expected first band {1 1}, got %+v", bands[0])
	}
	if len(bands) != 5 {
		t.Errorf("expected 5 bands, got %d", len(bands))
	}
}

func TestComputeBands_LastBandClipped(t *testing.T) {
	bands := ComputeBands(11, 3, 30)
	// period 3, opaque 0 -> 1, transparent 2: bands at 1, 4, 7 and a clipped one at 10
	if len(bands) != 4 {
		t.Fatalf("expected 4 bands, got %+v", bands)
	}
	last := bands[len(bands)-1]
	if last != (pipeline.Band{Y: 10, Height: 1}) {
		t.Errorf("expected clipped last band {10 1}, got %+v", last)
	}
}

func TestStage_Execute_NoopIsBitIdentical(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	img := opaqueImage(20, 40)
	original := append([]uint8(nil), img.Pix...)

	for _, in := range []pipeline.StripeInput{
		{Image: img, Count: 0, HeightPercent: 50},
		{Image: img, Count: 4, HeightPercent: 0},
		{Image: img, Count: 4, HeightPercent: 100},
		{Image: img, Count: 21, HeightPercent: 50},
	} {
		result, err := stage.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Bands) != 0 {
			t.Errorf("expected no bands for %+v", in)
		}
		if !bytes.Equal(img.Pix, original) {
			t.Fatalf("raster modified for count %d, percent %d", in.Count, in.HeightPercent)
		}
	}
}

func TestStage_Execute_PaintsBands(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	img := opaqueImage(10, 100)
	original := opaqueImage(10, 100)

	result, err := stage.Execute(context.Background(), pipeline.StripeInput{Image: img, Count: 4, HeightPercent: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Image != img {
		t.Error("expected stripes to be painted in place")
	}

	inBand := func(y int) bool {
		for _, b := range result.Bands {
			if y >= b.Y && y < b.Y+b.Height {
				return true
			}
		}
		return false
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 10; x++ {
			got := img.RGBAAt(x, y)
			if inBand(y) {
				if got.A != 0 {
					t.Fatalf("pixel (%d,%d) in band should be transparent, got %+v", x, y, got)
				}
			} else if got != original.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) outside bands changed: %+v", x, y, got)
			}
		}
	}

	// First band is always opaque
	if img.RGBAAt(0, 0).A != 255 || img.RGBAAt(0, 11).A != 255 {
		t.Error("expected first period band to stay opaque")
	}
}

func TestStage_Execute_Canceled(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.StripeInput{Image: opaqueImage(4, 4), Count: 1, HeightPercent: 50})
	if err == nil {
		t.Error("expected error for canceled context")
	}
}
