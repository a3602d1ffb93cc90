package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/lofistripes/pkg/adapters/ggrenderer"
)

func writeFixtures(t *testing.T, dir string, names ...string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	data, err := ggrenderer.New().EncodeImage(img)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	fontPath := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return fontPath
}

func decodeFile(t *testing.T, path string) *image.RGBA {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	img, _, err := ggrenderer.New().DecodeImage(data)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestDraw(t *testing.T) {
	dir := t.TempDir()
	fontPath := writeFixtures(t, dir, "in.png")
	out := filepath.Join(dir, "out", "captioned.png")
	summary := filepath.Join(dir, "summary.md")

	err := newApp().Run([]string{
		"lofistripes", "draw",
		"--image", filepath.Join(dir, "in.png"),
		"--font", fontPath,
		"--top", "HELLO",
		"--bottom", "WORLD",
		"--font-size", "20",
		"--stripe-count", "4",
		"--summary", summary,
		"-o", out,
		"-Q",
	})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	img := decodeFile(t, out)
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() <= 80 {
		t.Errorf("expected a taller 120-wide image, got %v", img.Bounds())
	}

	md, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("summary not written: %v", err)
	}
	for _, want := range []string{"HELLO", "WORLD", "120x80", "| Bands | 4 |"} {
		if !strings.Contains(string(md), want) {
			t.Errorf("expected summary to contain %q", want)
		}
	}
}

func TestDraw_ConfigFileAndDebug(t *testing.T) {
	dir := t.TempDir()
	fontPath := writeFixtures(t, dir, "in.png")
	debugDir := filepath.Join(dir, "debug")
	cfgPath := filepath.Join(dir, "lofistripes.yaml")
	cfg := "font: " + fontPath + "\ntext_top: FROM CONFIG\noutline_clamp: minimum\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out := filepath.Join(dir, "out.png")

	err := newApp().Run([]string{
		"lofistripes", "draw",
		"--config", cfgPath,
		"--image", filepath.Join(dir, "in.png"),
		"--debug", "--debug-dir", debugDir,
		"-o", out,
		"-Q",
	})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	if decodeFile(t, out).Bounds().Dy() <= 80 {
		t.Error("expected caption from config to expand the image")
	}
	for _, name := range []string{"striped.png", "expanded.png", "layout-top.json"} {
		if _, err := os.Stat(filepath.Join(debugDir, name)); err != nil {
			t.Errorf("expected debug file %s: %v", name, err)
		}
	}
}

func TestDraw_NoCaptionsIsIdentity(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, "in.png")
	out := filepath.Join(dir, "out.png")

	err := newApp().Run([]string{"lofistripes", "draw", "-i", filepath.Join(dir, "in.png"), "-o", out, "-Q"})
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	in := decodeFile(t, filepath.Join(dir, "in.png"))
	got := decodeFile(t, out)
	if !bytes.Equal(in.Pix, got.Pix) {
		t.Error("expected pixel-identical output")
	}
}

func TestDraw_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, "in.png")
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"draw", "-i", in, "-Q"}},
		{"missing image", []string{"draw", "-i", filepath.Join(dir, "nope.png"), "-o", out, "-Q"}},
		{"caption without font", []string{"draw", "-i", in, "-o", out, "--top", "A", "-Q"}},
		{"bad clamp", []string{"draw", "-i", in, "-o", out, "--outline-clamp", "thick", "-Q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Writer = &bytes.Buffer{}
			app.ErrWriter = &bytes.Buffer{}
			if err := app.Run(append([]string{"lofistripes"}, tt.args...)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	fontPath := writeFixtures(t, dir, "a.png", "b.png", "c.png")
	outDir := filepath.Join(dir, "out")

	args := []string{
		"lofistripes", "batch",
		"--font", fontPath,
		"--bottom", "BATCH",
		"--workers", "2",
		"-o", outDir,
		"-Q",
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"),
	}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		if decodeFile(t, filepath.Join(outDir, name)).Bounds().Dy() <= 80 {
			t.Errorf("%s: expected bottom expansion", name)
		}
	}
}

func TestBatch_NoInputs(t *testing.T) {
	if err := newApp().Run([]string{"lofistripes", "batch", "-o", t.TempDir(), "-Q"}); err == nil {
		t.Error("expected error without inputs")
	}
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"lofistripes", "version"}); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(buf.String(), "lofistripes version dev") {
		t.Errorf("unexpected version output: %q", buf.String())
	}
}
