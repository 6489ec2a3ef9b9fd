package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// ---------------------------------------------------------------------------
// TestResolveLogLevel - Flag and environment priority
// ---------------------------------------------------------------------------

func TestResolveLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		common   commonFlags
		envLevel string
		want     zapcore.Level
		wantErr  error
	}{
		{"default", commonFlags{}, "", zapcore.WarnLevel, nil},
		{"verbose", commonFlags{verbose: true}, "", zapcore.DebugLevel, nil},
		{"quiet", commonFlags{quiet: true}, "", zapcore.ErrorLevel, nil},
		{"verbose beats quiet", commonFlags{verbose: true, quiet: true}, "", zapcore.DebugLevel, nil},
		{"flag beats env", commonFlags{quiet: true}, "debug", zapcore.ErrorLevel, nil},
		{"env info", commonFlags{}, "info", zapcore.InfoLevel, nil},
		{"env case insensitive", commonFlags{}, "ERROR", zapcore.ErrorLevel, nil},
		{"env invalid", commonFlags{}, "loud", zapcore.WarnLevel, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveLogLevel(tt.common, tt.envLevel)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveLogLevel() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, zapcore.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.HasPrefix(out, "warn\tshown") {
		t.Errorf("output = %q, want lowercase level without timestamp", out)
	}
}
