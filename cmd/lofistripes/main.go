// Package main provides the CLI entry point for lofistripes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/lofistripes/pkg/adapters/filesink"
	"github.com/user/lofistripes/pkg/adapters/ggrenderer"
	"github.com/user/lofistripes/pkg/adapters/logger"
	"github.com/user/lofistripes/pkg/adapters/nullsink"
	"github.com/user/lofistripes/pkg/adapters/osfilesystem"
	"github.com/user/lofistripes/pkg/assets"
	"github.com/user/lofistripes/pkg/batch"
	"github.com/user/lofistripes/pkg/config"
	"github.com/user/lofistripes/pkg/lofistripes"
	"github.com/user/lofistripes/pkg/ports"
	"github.com/user/lofistripes/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "lofistripes",
		Usage:   l10n.T("Caption images and cut transparent stripes into them"),
		Version: version,
		Commands: []*cli.Command{
			drawCommand(),
			batchCommand(),
			versionCommand(),
		},
	}
}

// renderFlags are shared by draw and batch.
func renderFlags() []cli.Flag {
	return []cli.Flag{
		// Config
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML config file")},

		// Assets
		&cli.StringFlag{Name: "font", Aliases: []string{"f"}, Usage: l10n.T("TrueType or OpenType font file")},

		// Caption
		&cli.StringFlag{Name: "top", Aliases: []string{"t"}, Usage: l10n.T("Top caption")},
		&cli.StringFlag{Name: "bottom", Aliases: []string{"b"}, Usage: l10n.T("Bottom caption")},
		&cli.Float64Flag{Name: "font-size", Usage: l10n.T("Font size relative to the longer image side (default: 10)")},
		&cli.StringFlag{Name: "outline-clamp", Usage: l10n.T("Outline clamp mode (literal, minimum)")},
		&cli.BoolFlag{Name: "normalize", Usage: l10n.T("Normalize captions to NFC before layout")},

		// Stripes
		&cli.IntFlag{Name: "stripe-count", Aliases: []string{"s"}, Usage: l10n.T("Number of stripe periods (0 = no stripes)")},
		&cli.IntFlag{Name: "stripe-height-percent", Usage: l10n.T("Opaque share of each stripe period in percent (default: 50)")},

		// Logging
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
	}
}

func drawCommand() *cli.Command {
	flags := append(renderFlags(),
		&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Required: true, Usage: l10n.T("Input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output PNG file path (required)")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output render summary to file (Markdown format)")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output")},
	)
	return &cli.Command{
		Name:   "draw",
		Usage:  l10n.T("Caption and stripe one image"),
		Flags:  flags,
		Action: runDraw,
	}
}

func batchCommand() *cli.Command {
	flags := append(renderFlags(),
		&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output directory (required)")},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: l10n.T("Number of workers (0 = number of CPUs)")},
		&cli.BoolFlag{Name: "overwrite", Usage: l10n.T("Replace existing outputs")},
	)
	return &cli.Command{
		Name:      "batch",
		Usage:     l10n.T("Caption and stripe many images with the same settings"),
		ArgsUsage: "IMAGE...",
		Flags:     flags,
		Action:    runBatch,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("lofistripes version %s", version))
			return nil
		},
	}
}

// loadSettings reads the config file, if any, and applies flag overrides.
func loadSettings(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("font") {
		cfg.Font = c.String("font")
	}
	if c.IsSet("top") {
		cfg.TextTop = c.String("top")
	}
	if c.IsSet("bottom") {
		cfg.TextBottom = c.String("bottom")
	}
	if c.IsSet("font-size") {
		cfg.FontSize = c.Float64("font-size")
	}
	if c.IsSet("outline-clamp") {
		cfg.OutlineClamp = c.String("outline-clamp")
	}
	if c.IsSet("normalize") {
		cfg.Normalize = c.Bool("normalize")
	}
	if c.IsSet("stripe-count") {
		cfg.StripeCount = c.Int("stripe-count")
	}
	if c.IsSet("stripe-height-percent") {
		cfg.StripeHeightPercent = c.Int("stripe-height-percent")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("quiet") {
		cfg.LogLevel = ports.LevelQuiet.String()
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("overwrite") {
		cfg.Overwrite = true
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) ports.Logger {
	level := ports.ParseLogLevel(cfg.LogLevel)
	if level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(level)
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func runDraw(c *cli.Context) error {
	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx, cancel := signalContext(log)
	defer cancel()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
		log.Info("Debug output enabled: %s", cfg.DebugDir)
	} else {
		sink = nullsink.New()
	}

	svc := lofistripes.New(assets.NewStore(), renderer, lofistripes.NewOrchestrator(sink, log), log)

	// Load assets
	imagePath := c.String("image")
	imageData, err := fs.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err := svc.SetImage(imageData); err != nil {
		return err
	}
	if cfg.Font != "" {
		fontData, err := fs.ReadFile(cfg.Font)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		svc.SetFont(fontData)
	}

	// Render
	svcConfig := cfg.ToServiceConfig()
	result, err := svc.Render(ctx, cfg.TextTop, cfg.TextBottom, svcConfig)
	if err != nil {
		return err
	}
	data, err := svc.Encode(result)
	if err != nil {
		return err
	}

	output := c.String("output")
	if err := fs.WriteFile(output, data); err != nil {
		log.Error("Failed to write output: %s", err)
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("Output saved to %s", output)

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithInput(imagePath, strings.TrimPrefix(strings.ToLower(filepath.Ext(imagePath)), "."), result.SourceWidth, result.SourceHeight).
			WithConfig(cfg.ToOrchestratorConfig()).
			WithResult(result).
			WithOutput(output, int64(len(data))).
			Build()

		writer := summarizer.NewWriter(
			summarizer.NewMarkdownFormatter(summarizer.WithTranslator(l10n.T), summarizer.WithVersion(version)),
			fs,
		)
		if err := writer.Write(path, summary); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}

	return nil
}

func runBatch(c *cli.Context) error {
	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return errors.New(l10n.T("At least one image argument is required"))
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var fontData []byte
	if cfg.Font != "" {
		fontData, err = fs.ReadFile(cfg.Font)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
	}

	outDir := c.String("out-dir")
	if err := fs.MkdirAll(outDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Concurrent renders would overwrite each other's debug files.
	runner := batch.NewRunner(fs, renderer, lofistripes.NewOrchestrator(nullsink.New(), log), log, batch.Options{
		Workers:   cfg.Workers,
		Overwrite: cfg.Overwrite,
	})

	results, err := runner.Run(ctx, fontData, batch.Jobs(inputs, outDir), cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Skipped {
			log.Warn("Skipped %s: output exists", res.Output)
			continue
		}
		log.Info("Output saved to %s", res.Output)
	}
	return nil
}
