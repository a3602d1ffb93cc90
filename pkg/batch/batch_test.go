package batch

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/lofistripes/pkg/adapters/logger"
	"github.com/user/lofistripes/pkg/adapters/nullsink"
	"github.com/user/lofistripes/pkg/lofistripes"
	"github.com/user/lofistripes/pkg/mocks"
	"github.com/user/lofistripes/pkg/orchestrator"
	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// widthRenderer decodes any input into an opaque raster as wide as the input bytes.
func widthRenderer() *mocks.Renderer {
	return &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (*image.RGBA, string, error) {
			if len(data) == 0 {
				return nil, "", errors.New("empty")
			}
			img := image.NewRGBA(image.Rect(0, 0, len(data), 40))
			for i := 3; i < len(img.Pix); i += 4 {
				img.Pix[i] = 255
			}
			return img, "png", nil
		},
		EncodeImageFunc: func(img image.Image) ([]byte, error) {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil
		},
	}
}

func newRunner(fs ports.FileSystem, renderer ports.Renderer, opts Options) *Runner {
	log := logger.NewNoop()
	return NewRunner(fs, renderer, lofistripes.NewOrchestrator(nullsink.New(), log), log, opts)
}

func TestJobs(t *testing.T) {
	jobs := Jobs([]string{"a/cat.jpg", "dog.png", "x/y/z.webp"}, "out")

	expected := []string{
		filepath.Join("out", "cat.png"),
		filepath.Join("out", "dog.png"),
		filepath.Join("out", "z.png"),
	}
	for i, job := range jobs {
		if job.Output != expected[i] {
			t.Errorf("job %d: expected %s, got %s", i, expected[i], job.Output)
		}
	}
}

func TestRunner_Run_Empty(t *testing.T) {
	r := newRunner(mocks.NewFileSystem(), widthRenderer(), Options{})

	results, err := r.Run(context.Background(), nil, nil, orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRunner_Run_PreservesOrder(t *testing.T) {
	fs := mocks.NewFileSystem()
	var inputs []string
	for i := 1; i <= 12; i++ {
		path := filepath.Join("in", strings.Repeat("i", i)+".png")
		fs.WriteFile(path, make([]byte, i*10))
		inputs = append(inputs, path)
	}

	r := newRunner(fs, widthRenderer(), Options{Workers: 4})
	config := orchestrator.DefaultConfig()
	config.TextTop = "HELLO"

	results, err := r.Run(context.Background(), []byte{1}, Jobs(inputs, "out"), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	for i, res := range results {
		if res.Input != inputs[i] {
			t.Errorf("result %d: expected input %s, got %s", i, inputs[i], res.Input)
		}
		if res.Width != (i+1)*10 {
			t.Errorf("result %d: expected width %d, got %d", i, (i+1)*10, res.Width)
		}
		if res.Height <= 40 {
			t.Errorf("result %d: expected caption expansion, got height %d", i, res.Height)
		}
		if _, ok := fs.GetFile(res.Output); !ok {
			t.Errorf("result %d: output %s not written", i, res.Output)
		}
	}
}

func TestRunner_Run_SkipsExisting(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("in/a.png", make([]byte, 8))
	fs.WriteFile(filepath.Join("out", "a.png"), []byte("old"))

	r := newRunner(fs, widthRenderer(), Options{Workers: 1})
	results, err := r.Run(context.Background(), nil, Jobs([]string{"in/a.png"}, "out"), orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Skipped {
		t.Error("expected existing output to be skipped")
	}
	if data, _ := fs.GetFile(filepath.Join("out", "a.png")); string(data) != "old" {
		t.Error("expected existing output to be kept")
	}

	r = newRunner(fs, widthRenderer(), Options{Workers: 1, Overwrite: true})
	results, err = r.Run(context.Background(), nil, Jobs([]string{"in/a.png"}, "out"), orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Skipped {
		t.Error("expected output to be overwritten")
	}
	if data, _ := fs.GetFile(filepath.Join("out", "a.png")); string(data) == "old" {
		t.Error("expected output to be replaced")
	}
}

func TestRunner_Run_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		fontData []byte
		renderer func() *mocks.Renderer
		sentinel error
	}{
		{
			name:     "decode",
			input:    []byte{},
			renderer: widthRenderer,
			sentinel: pipeline.ErrInputDecoding,
		},
		{
			name:     "font",
			input:    make([]byte, 8),
			fontData: []byte("garbage"),
			renderer: func() *mocks.Renderer {
				r := widthRenderer()
				r.LoadFontFunc = func(data []byte) (ports.Font, error) {
					return nil, errors.New("bad magic")
				}
				return r
			},
			sentinel: pipeline.ErrFontParse,
		},
		{
			name:  "encode",
			input: make([]byte, 8),
			renderer: func() *mocks.Renderer {
				r := widthRenderer()
				r.EncodeImageFunc = func(img image.Image) ([]byte, error) {
					return nil, errors.New("no space")
				}
				return r
			},
			sentinel: pipeline.ErrOutputEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			fs.WriteFile("in/a.png", tt.input)

			r := newRunner(fs, tt.renderer(), Options{Workers: 2})
			results, err := r.Run(context.Background(), tt.fontData, Jobs([]string{"in/a.png"}, "out"), orchestrator.DefaultConfig())
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %v, got %v", tt.sentinel, err)
			}
			if results != nil {
				t.Error("expected no results on error")
			}
		})
	}
}

func TestRunner_Run_MissingInputCancels(t *testing.T) {
	fs := mocks.NewFileSystem()
	var inputs []string
	for i := 0; i < 20; i++ {
		path := filepath.Join("in", strings.Repeat("f", i+1)+".png")
		if i != 3 {
			fs.WriteFile(path, make([]byte, 8))
		}
		inputs = append(inputs, path)
	}

	r := newRunner(fs, widthRenderer(), Options{Workers: 3})
	_, err := r.Run(context.Background(), nil, Jobs(inputs, "out"), orchestrator.DefaultConfig())
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(err.Error(), inputs[3]) {
		t.Errorf("expected error to name the failing input, got %v", err)
	}
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("in/a.png", make([]byte, 8))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRunner(fs, widthRenderer(), Options{Workers: 1})
	if _, err := r.Run(ctx, nil, Jobs([]string{"in/a.png"}, "out"), orchestrator.DefaultConfig()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
