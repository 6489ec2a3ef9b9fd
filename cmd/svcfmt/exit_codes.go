package main

import (
	"errors"
	"os"

	"github.com/alnah/go-svcfmt"
	"github.com/alnah/go-svcfmt/internal/config"
	"github.com/alnah/go-svcfmt/internal/fileutil"
)

// Exit codes for svcfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2). Checked before I/O so a
	// missing config file or undo backup reports as usage.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrOutputRequired) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrWatchNeedsFile) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidLogLevel) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrInputTooLarge) ||
		errors.Is(err, svcfmt.ErrStyleNotFound) ||
		errors.Is(err, svcfmt.ErrInvalidStyleName) ||
		errors.Is(err, svcfmt.ErrInvalidAssetPath) ||
		errors.Is(err, svcfmt.ErrUnknownSnippet) ||
		errors.Is(err, svcfmt.ErrEmptySnippet) ||
		errors.Is(err, svcfmt.ErrInvalidSnippetName) ||
		errors.Is(err, svcfmt.ErrInvalidSnippetMode) ||
		errors.Is(err, svcfmt.ErrNothingToUndo) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrInputTooLarge) ||
		errors.Is(err, fileutil.ErrFileTooLarge) {
		return ExitIO
	}

	return ExitGeneral
}
