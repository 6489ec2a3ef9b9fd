package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// fileWatcher reports changes to a single file.
// The parent directory is watched so that editors that save by renaming a
// temp file over the original are still seen.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger
}

// newFileWatcher starts watching path. Changes made after it returns are
// reported by Run. Callers must call Close.
func newFileWatcher(path string, logger *zap.Logger) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &fileWatcher{
		path:     abs,
		watcher:  w,
		debounce: watchDebounce,
		logger:   logger,
	}, nil
}

// Run calls onChange after each settled write to the file, until ctx is
// canceled. Returns nil on cancellation.
func (fw *fileWatcher) Run(ctx context.Context, onChange func()) error {
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.logger.Debug("file changed", zap.String("path", fw.path), zap.Stringer("op", event.Op))
			fire = time.After(fw.debounce)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}
