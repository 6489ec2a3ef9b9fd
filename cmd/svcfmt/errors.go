package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrCreateOutputDir    = errors.New("failed to create output directory")
	ErrInputTooLarge      = errors.New("input exceeds maximum size")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrOutputRequired     = errors.New("several inputs need --output or --in-place")
	ErrConflictingFlags   = errors.New("conflicting flags")
	ErrWatchNeedsFile     = errors.New("--watch needs an input file")
)

// usageError marks flag parsing failures as usage errors.
// flag.ErrHelp passes through so -h exits cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
