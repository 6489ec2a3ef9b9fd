package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// TestPreview - One-shot preview rendering
// ---------------------------------------------------------------------------

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		input   string
		want    string
		notWant string
	}{
		{
			name:  "bullets split into spans",
			input: "Showers • Laundry",
			want:  "<span>Showers</span><br><span>• Laundry</span>\n",
		},
		{
			name:  "nothing is expanded",
			input: "mo-fr",
			want:  "<span>mo-fr</span>\n",
		},
		{
			name:    "sanitize strips handlers",
			args:    []string{"--sanitize"},
			input:   `Showers<img src=x onerror="alert(1)">`,
			notWant: "onerror",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv(tt.input)
			args := append([]string{"svcfmt", "preview"}, tt.args...)
			if code := runMain(args, env); code != ExitSuccess {
				t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
			}
			if tt.want != "" && stdout.String() != tt.want {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.want)
			}
			if tt.notWant != "" && strings.Contains(stdout.String(), tt.notWant) {
				t.Errorf("stdout = %q, should not contain %q", stdout.String(), tt.notWant)
			}
		})
	}
}

func TestPreview_TooManyFiles(t *testing.T) {
	t.Parallel()

	env, _, _ := newTestEnv("")
	if code := runMain([]string{"svcfmt", "preview", "a.txt", "b.txt"}, env); code != ExitUsage {
		t.Errorf("exit = %d, want %d", code, ExitUsage)
	}
}

// ---------------------------------------------------------------------------
// TestFileWatcher - Change notification
// ---------------------------------------------------------------------------

func TestFileWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "desc.txt")
	other := filepath.Join(dir, "other.txt")
	writeFile(t, path, "v1")

	fw, err := newFileWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatalf("newFileWatcher() error = %v", err)
	}
	defer func() { _ = fw.Close() }()
	fw.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func() { changed <- struct{}{} })
	}()

	// Writes to sibling files are ignored.
	writeFile(t, other, "noise")
	select {
	case <-changed:
		t.Fatal("change reported for another file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("v2"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestNewFileWatcher_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := newFileWatcher(filepath.Join(t.TempDir(), "missing", "desc.txt"), zap.NewNop())
	if err == nil {
		t.Error("newFileWatcher() expected error for missing directory")
	}
}
