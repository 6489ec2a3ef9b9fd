package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-svcfmt"
	"github.com/alnah/go-svcfmt/internal/fileutil"
	"github.com/alnah/go-svcfmt/internal/hints"
)

// runUndoCmd handles the undo command: restore each file from the .orig
// backup written by an in-place transform or snippet.
func runUndoCmd(args []string, env *Environment) error {
	flags, files, err := parseUndoFlags(args, env)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: undo needs at least one file", ErrNoInput)
	}

	for _, path := range files {
		if err := fileutil.Restore(path, backupExtension); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s%s", svcfmt.ErrNothingToUndo, path, hints.ForNothingToUndo())
			}
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "Restored %s\n", path)
		}
	}
	return nil
}
