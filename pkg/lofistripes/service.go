package lofistripes

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/lofistripes/pkg/assets"
	"github.com/user/lofistripes/pkg/orchestrator"
	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
	"github.com/user/lofistripes/pkg/stages/caption"
	"github.com/user/lofistripes/pkg/stages/expand"
	"github.com/user/lofistripes/pkg/stages/layout"
	"github.com/user/lofistripes/pkg/stages/stripes"
)

// NewOrchestrator wires the standard stages into an orchestrator.
func NewOrchestrator(sink ports.DebugSink, logger ports.Logger) *orchestrator.Orchestrator {
	stages := orchestrator.Stages{
		Stripes: stripes.NewStage(logger),
		Expand:  expand.NewStage(logger),
		Measure: layout.NewMeasureStage(logger),
		Layout:  layout.NewStage(logger),
		Caption: caption.NewStage(logger),
	}
	return orchestrator.New(stages, sink, logger.WithComponent("orchestrator"))
}

// Service renders captions and stripes against the currently stored font and image.
// All methods are safe for concurrent use.
type Service struct {
	store    *assets.Store
	renderer ports.Renderer
	orch     *orchestrator.Orchestrator
	logger   ports.Logger
}

// New creates a Service over an existing store.
func New(store *assets.Store, renderer ports.Renderer, orch *orchestrator.Orchestrator, logger ports.Logger) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		orch:     orch,
		logger:   logger,
	}
}

// SetFont replaces the stored font bytes. The bytes are validated on the next draw.
func (s *Service) SetFont(data []byte) {
	s.store.SetFont(data)
	s.logger.Info("Font set: %d bytes", len(data))
}

// SetImage decodes data and replaces the stored base image.
// On failure the previously stored image is kept.
func (s *Service) SetImage(data []byte) error {
	img, format, err := s.renderer.DecodeImage(data)
	if err != nil {
		s.logger.Error("Failed to decode image: %s", err)
		return fmt.Errorf("%w: %v", pipeline.ErrInputDecoding, err)
	}
	s.store.SetImage(img)
	s.logger.Info("Image set: %s %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// Render runs the pipeline on a snapshot of the stored assets.
func (s *Service) Render(ctx context.Context, top, bottom string, cfg Config) (orchestrator.RunResult, error) {
	img := s.store.Image()
	if img == nil {
		return orchestrator.RunResult{}, fmt.Errorf("%w: image not set", pipeline.ErrEmptyAsset)
	}

	var font ports.Font
	if top != "" || bottom != "" {
		f, err := s.loadFont()
		if err != nil {
			return orchestrator.RunResult{}, err
		}
		font = f
	}

	return s.orch.Run(ctx, img, font, cfg.ToOrchestratorConfig(top, bottom))
}

// DrawImage renders the stored image with the given captions and returns PNG bytes.
func (s *Service) DrawImage(ctx context.Context, top, bottom string, cfg Config) ([]byte, error) {
	result, err := s.Render(ctx, top, bottom, cfg)
	if err != nil {
		return nil, err
	}
	return s.Encode(result)
}

// Encode encodes a render result as PNG.
func (s *Service) Encode(result orchestrator.RunResult) ([]byte, error) {
	data, err := s.renderer.EncodeImage(result.Image)
	if err != nil {
		s.logger.Error("Failed to encode output: %s", err)
		return nil, fmt.Errorf("%w: %v", pipeline.ErrOutputEncoding, err)
	}
	s.logger.Debug("Encoded %d bytes", len(data))
	return data, nil
}

// loadFont returns nil without error when no font is stored; the orchestrator
// reports the missing asset.
func (s *Service) loadFont() (ports.Font, error) {
	asset := s.store.Font()
	if asset.Empty() {
		return nil, nil
	}
	font, err := asset.Load(s.renderer.LoadFont)
	if err != nil {
		s.logger.Error("Failed to load font: %s", err)
		if errors.Is(err, pipeline.ErrFontParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", pipeline.ErrFontParse, err)
	}
	return font, nil
}
