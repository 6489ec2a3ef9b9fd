package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-svcfmt"
)

// runPreviewCmd handles the preview command.
func runPreviewCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parsePreviewFlags(args, env)
	if err != nil {
		return err
	}
	if len(inputs) > 1 {
		return fmt.Errorf("%w: preview takes at most one file", ErrUsage)
	}

	input := ""
	if len(inputs) == 1 {
		input = inputs[0]
	}
	if flags.watch && (input == "" || input == "-") {
		return ErrWatchNeedsFile
	}

	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeFormatFlags(flags.format, s.cfg)
	if flags.sanitize {
		s.cfg.Preview.Sanitize = true
	}

	f, err := s.buildFormatter()
	if err != nil {
		return err
	}

	if err := renderPreview(f, input, flags.output, env); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	fw, err := newFileWatcher(input, s.logger)
	if err != nil {
		return err
	}
	defer func() { _ = fw.Close() }()

	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Watching %s (Ctrl+C to stop)\n", input)
	}
	return fw.Run(ctx, func() {
		if err := renderPreview(f, input, flags.output, env); err != nil {
			// Keep watching: the file may be mid-save or briefly unreadable.
			s.logger.Warn("preview failed", zap.String("path", input), zap.Error(err))
		}
	})
}

// renderPreview reads input, renders its preview fragment and writes it.
func renderPreview(f *svcfmt.Formatter, input, output string, env *Environment) error {
	raw, err := readInput(input, env)
	if err != nil {
		return err
	}
	return writeOutput(output, f.Preview(raw), env)
}
