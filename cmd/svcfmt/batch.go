package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// renderFunc turns one file's raw text into output. name is the input path.
type renderFunc func(raw, name string) string

// fileResult holds the outcome of a single file.
type fileResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// batchParams groups parameters shared across batch/file processing.
type batchParams struct {
	render  renderFunc
	inPlace bool
	workers int
	env     *Environment
	logger  *zap.Logger
}

// transformBatch processes jobs concurrently, at most params.workers at a
// time. Every job gets a result; one failure does not stop the others.
// Jobs not yet started when ctx is canceled report ctx.Err().
func transformBatch(ctx context.Context, jobs []fileJob, params *batchParams) []fileResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]fileResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(min(max(params.workers, 1), len(jobs)))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = fileResult{InputPath: job.InputPath, Err: err}
				return nil
			}
			results[i] = transformFile(job, params)
			return nil
		})
	}

	// Errors are carried per result.
	_ = g.Wait()
	return results
}

// transformFile processes a single file and returns the result.
func transformFile(job fileJob, params *batchParams) fileResult {
	start := time.Now()
	result := fileResult{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}

	raw, err := readInputFile(job.InputPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	out := params.render(raw, job.InputPath)

	if params.inPlace {
		err = rewriteInPlace(job.InputPath, out)
	} else {
		err = writeOutput(job.OutputPath, out, params.env)
	}
	result.Err = err
	result.Duration = time.Since(start)

	params.logger.Debug("file processed",
		zap.String("input", job.InputPath),
		zap.String("output", job.OutputPath),
		zap.Duration("duration", result.Duration),
		zap.Error(err))
	return result
}

// resultSummary holds the count of succeeded and failed files.
type resultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []fileResult) resultSummary {
	var summary resultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs per-file results and returns the first error, if any.
// Results written to stdout are not reported again.
func printResults(results []fileResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}

		if quiet || r.OutputPath == "" {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stderr, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stderr, "Wrote %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stderr, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if firstErr != nil && summary.Failed > 1 {
		return fmt.Errorf("%w (and %d more failures)", firstErr, summary.Failed-1)
	}
	return firstErr
}
