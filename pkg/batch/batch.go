// Package batch renders many images concurrently with a worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/user/lofistripes/pkg/orchestrator"
	"github.com/user/lofistripes/pkg/pipeline"
	"github.com/user/lofistripes/pkg/ports"
)

// Job is one input image and the path its PNG output is written to.
type Job struct {
	Input  string
	Output string
}

// Result describes one finished job.
type Result struct {
	Job
	Width   int
	Height  int
	Bytes   int
	Skipped bool // Output already existed and Overwrite was off
}

// Options configures a Runner.
type Options struct {
	Workers   int  // 0 = runtime.NumCPU()
	Overwrite bool // Replace existing outputs
}

// Runner renders jobs with a fixed number of workers.
type Runner struct {
	fs         ports.FileSystem
	renderer   ports.Renderer
	orch       *orchestrator.Orchestrator
	logger     ports.Logger
	numWorkers int
	overwrite  bool
}

// NewRunner creates a new batch runner.
func NewRunner(fs ports.FileSystem, renderer ports.Renderer, orch *orchestrator.Orchestrator, logger ports.Logger, opts Options) *Runner {
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Runner{
		fs:         fs,
		renderer:   renderer,
		orch:       orch,
		logger:     logger.WithComponent("batch"),
		numWorkers: numWorkers,
		overwrite:  opts.Overwrite,
	}
}

// Jobs maps input paths to <outDir>/<name>.png.
func Jobs(inputs []string, outDir string) []Job {
	jobs := make([]Job, len(inputs))
	for i, in := range inputs {
		base := filepath.Base(in)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		jobs[i] = Job{Input: in, Output: filepath.Join(outDir, name+".png")}
	}
	return jobs
}

// indexedResult holds a result with its job index for sorting.
type indexedResult struct {
	index  int
	result Result
}

// Run renders every job with the same font and config. Results are returned in
// job order. The first failure cancels the remaining jobs and is returned.
func (r *Runner) Run(ctx context.Context, fontData []byte, jobs []Job, config orchestrator.Config) ([]Result, error) {
	if len(jobs) == 0 {
		return []Result{}, nil
	}

	var font ports.Font
	if len(fontData) > 0 {
		f, err := r.renderer.LoadFont(fontData)
		if err != nil {
			r.logger.Error("Failed to load font: %s", err)
			if errors.Is(err, pipeline.ErrFontParse) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", pipeline.ErrFontParse, err)
		}
		font = f
	}

	numWorkers := min(r.numWorkers, len(jobs))
	r.logger.Info("Rendering %d images with %d workers", len(jobs), numWorkers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobChan := make(chan int, len(jobs))
	results := make(chan indexedResult, len(jobs))
	errChan := make(chan error, numWorkers)

	// Start workers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go r.worker(ctx, cancel, &wg, font, jobs, config, jobChan, results, errChan)
	}

	// Send jobs
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	// Wait for workers to finish
	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	collected := make([]indexedResult, 0, len(jobs))
	for res := range results {
		collected = append(collected, res)
	}

	if err := <-errChan; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil && len(collected) < len(jobs) {
		return nil, err
	}

	// Sort by index to maintain order
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	out := make([]Result, len(collected))
	for i, c := range collected {
		out[i] = c.result
	}

	r.logger.Info("Batch completed: %d images", len(out))
	return out, nil
}

func (r *Runner) worker(
	ctx context.Context,
	cancel context.CancelFunc,
	wg *sync.WaitGroup,
	font ports.Font,
	jobs []Job,
	config orchestrator.Config,
	jobChan <-chan int,
	results chan<- indexedResult,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobChan {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := r.render(ctx, font, jobs[idx], config)
		if err != nil {
			r.logger.Error("Failed to render %s: %s", jobs[idx].Input, err)
			select {
			case errChan <- fmt.Errorf("render %s: %w", jobs[idx].Input, err):
			default:
			}
			cancel()
			return
		}
		results <- indexedResult{index: idx, result: res}
	}
}

func (r *Runner) render(ctx context.Context, font ports.Font, job Job, config orchestrator.Config) (Result, error) {
	res := Result{Job: job}

	if !r.overwrite {
		exists, err := r.fs.Exists(job.Output)
		if err != nil {
			return res, err
		}
		if exists {
			res.Skipped = true
			return res, nil
		}
	}

	data, err := r.fs.ReadFile(job.Input)
	if err != nil {
		return res, err
	}
	img, _, err := r.renderer.DecodeImage(data)
	if err != nil {
		return res, fmt.Errorf("%w: %v", pipeline.ErrInputDecoding, err)
	}

	run, err := r.orch.Run(ctx, img, font, config)
	if err != nil {
		return res, err
	}

	encoded, err := r.renderer.EncodeImage(run.Image)
	if err != nil {
		return res, fmt.Errorf("%w: %v", pipeline.ErrOutputEncoding, err)
	}
	if err := r.fs.WriteFile(job.Output, encoded); err != nil {
		return res, err
	}

	res.Width = run.Image.Bounds().Dx()
	res.Height = run.Image.Bounds().Dy()
	res.Bytes = len(encoded)
	r.logger.Debug("Rendered %s", job.Output)
	return res, nil
}
