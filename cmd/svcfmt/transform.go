package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-svcfmt"
)

// runTransformCmd handles the transform command.
// With no file arguments it reads stdin and writes stdout (or -o).
func runTransformCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseTransformFlags(args, env)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.inPlace && flags.output != "" {
		return fmt.Errorf("%w: --in-place and --output", ErrConflictingFlags)
	}
	if flags.inPlace && flags.html {
		return fmt.Errorf("%w: --in-place and --html", ErrConflictingFlags)
	}
	if flags.inPlace && len(inputs) == 0 {
		return fmt.Errorf("%w: --in-place needs input files", ErrNoInput)
	}

	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeFormatFlags(flags.format, s.cfg)

	f, err := s.buildFormatter()
	if err != nil {
		return err
	}

	render := transformRenderer(f, flags.html, flags.title)

	if len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == "-") {
		raw, err := readStdin(env.Stdin)
		if err != nil {
			return err
		}
		return writeOutput(flags.output, render(raw, ""), env)
	}

	jobs, err := discoverFiles(inputs, outputPlan{
		output:  flags.output,
		inPlace: flags.inPlace,
		html:    flags.html,
	})
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers, s.env.Workers)
	s.logger.Debug("starting batch",
		zap.Int("files", len(jobs)),
		zap.Int("workers", workers))

	results := transformBatch(ctx, jobs, &batchParams{
		render:  render,
		inPlace: flags.inPlace,
		workers: workers,
		env:     env,
		logger:  s.logger,
	})
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// transformRenderer returns the per-file render step: plain formatted text,
// or a review page titled after the flag or the file name.
func transformRenderer(f *svcfmt.Formatter, html bool, title string) renderFunc {
	if !html {
		return func(raw, _ string) string { return f.Transform(raw) }
	}
	return func(raw, name string) string {
		t := title
		if t == "" {
			t = titleFor(name)
		}
		return f.Document(raw, t)
	}
}
