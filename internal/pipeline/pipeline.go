package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/dreamcrop/internal/encoder"
	"github.com/AnyUserName/dreamcrop/internal/preset"
	"github.com/AnyUserName/dreamcrop/internal/report"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir    string
	OutputDir   string
	Preset      preset.Preset
	Workers     int
	Verbose     bool
	ForceJPGExt bool // name outputs .jpg instead of copying the source extension
}

// Pipeline orchestrates batch image preparation.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the batch and returns the run report. Every file's
// pipeline is dispatched concurrently; per-file outcomes are collected
// after all of them settle. The run only fails outright when the scan
// fails, nothing is found, or every single file failed.
func (p *Pipeline) Run() (*report.Report, error) {
	enc := p.registry.Best()
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[dreamcrop] %s\n", p.registry.String())
	}

	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[dreamcrop] found %d images\n", len(sources))
	}

	entries := make([]report.Entry, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[dreamcrop] processing: %s\n", s.RelPath)
			}

			entries[idx] = processImage(s, p.cfg, enc)

			if p.cfg.Verbose && entries[idx].Status == report.StatusOK {
				fmt.Fprintf(os.Stderr, "[dreamcrop] done: %s → %s\n",
					s.RelPath, entries[idx].Output)
			}
		}(i, src)
	}
	wg.Wait()

	var failed int
	for _, e := range entries {
		if e.Status != report.StatusOK {
			failed++
			fmt.Fprintf(os.Stderr, "[dreamcrop] error: %s\n", e.Error)
		}
	}

	// Report failures but don't fail the run for partial failures.
	if failed == len(sources) {
		return nil, fmt.Errorf("all %d images failed to process", failed)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "[dreamcrop] warning: %d of %d images had errors\n",
			failed, len(sources))
	}

	r := report.New(p.cfg.Preset.Name, p.cfg.Preset.Side, p.cfg.Preset.Quality, enc.Name())
	r.Entries = entries
	r.ComputeStats()
	return r, nil
}
