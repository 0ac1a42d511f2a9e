package main

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// renderJob is one file to render.
type renderJob struct {
	InputPath  string
	OutputPath string // empty writes to stdout
}

// renderResult holds the outcome of a single render.
type renderResult struct {
	InputPath  string
	OutputPath string
	HTML       string
	Err        error
	Duration   time.Duration
}

// renderFunc renders one job. It must be safe for concurrent use.
type renderFunc func(ctx context.Context, job renderJob) (string, error)

// renderBatch runs jobs on up to workers goroutines. Results keep the
// order of jobs.
func renderBatch(ctx context.Context, jobs []renderJob, workers int, fn renderFunc) []renderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]renderResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				job := jobs[idx]
				if err := ctx.Err(); err != nil {
					results[idx] = renderResult{InputPath: job.InputPath, Err: err}
					continue
				}
				start := time.Now()
				html, err := fn(ctx, job)
				results[idx] = renderResult{
					InputPath:  job.InputPath,
					OutputPath: job.OutputPath,
					HTML:       html,
					Err:        err,
					Duration:   time.Since(start),
				}
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// resolvePoolSize determines the worker count.
// Priority: explicit flag > config > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers, configWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if configWorkers > 0 {
		return configWorkers
	}

	// Rendering is CPU-bound; GOMAXPROCS is adjusted by automaxprocs for
	// containers.
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// countFailed returns how many results carry an error.
func countFailed(results []renderResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}
