package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-svcfmt/internal/fileutil"
	"github.com/alnah/go-svcfmt/internal/hints"
)

// File permission constants.
const (
	dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute
)

// backupExtension is appended to files rewritten in place.
const backupExtension = "orig"

// readStdin reads at most maxInputSize bytes from r.
func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}
	if len(data) > maxInputSize {
		return "", fmt.Errorf("%w: stdin%s", ErrInputTooLarge, hints.ForInputTooLarge(maxInputSize))
	}
	return string(data), nil
}

// readInputFile reads path, capped at maxInputSize.
func readInputFile(path string) (string, error) {
	data, err := fileutil.ReadFileLimit(path, maxInputSize)
	if err != nil {
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			return "", fmt.Errorf("%w: %v%s", ErrInputTooLarge, err, hints.ForInputTooLarge(maxInputSize))
		}
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// readInput reads the named file, or stdin when path is empty or "-".
func readInput(path string, env *Environment) (string, error) {
	if path == "" || path == "-" {
		return readStdin(env.Stdin)
	}
	return readInputFile(path)
}

// writeOutput writes content to path atomically, creating parent
// directories, or to env.Stdout when path is empty.
func writeOutput(path, content string, env *Environment) error {
	content = withTrailingNewline(content)
	if path == "" {
		if _, err := io.WriteString(env.Stdout, content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrCreateOutputDir, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(path, []byte(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// rewriteInPlace backs path up to path.orig, then replaces it with content.
func rewriteInPlace(path, content string) error {
	if _, err := fileutil.Backup(path, backupExtension); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(withTrailingNewline(content))); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func withTrailingNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
