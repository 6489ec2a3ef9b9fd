// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrFileTooLarge           = errors.New("file exceeds maximum size")
)

// defaultPerm is used for files written without an existing file to copy from.
const defaultPerm os.FileMode = 0o644

// WriteFileAtomic writes data to a temporary file next to path and renames it
// over path, so readers never observe a partially written file.
// The file mode of an existing path is kept.
func WriteFileAtomic(path string, data []byte) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmpFile, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

// ReadFileLimit reads path, failing with ErrFileTooLarge when it holds more
// than limit bytes.
func ReadFileLimit(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s (max %d bytes)", ErrFileTooLarge, path, limit)
	}
	return data, nil
}

// BackupPath returns the path of the backup copy of path.
func BackupPath(path, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	return path + "." + extension, nil
}

// Backup copies path to its backup path, replacing any older backup.
// Returns the backup path.
func Backup(path, extension string) (string, error) {
	backup, err := BackupPath(path, extension)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if err := WriteFileAtomic(backup, data); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return backup, nil
}

// Restore moves the backup copy of path back over path.
// Returns an error wrapping os.ErrNotExist when there is no backup.
func Restore(path, extension string) error {
	backup, err := BackupPath(path, extension)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(backup) // #nosec G304 -- derived from user-provided path
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}

	if err := WriteFileAtomic(path, data); err != nil {
		return err
	}

	if err := os.Remove(backup); err != nil {
		return fmt.Errorf("removing backup: %w", err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath reports whether s names a file rather than a style or config
// name: "./team.yaml" and "C:\\styles\\print.css" are paths, "compact" is not.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS reports whether s is inline CSS rather than a style name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
