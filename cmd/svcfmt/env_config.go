package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-svcfmt/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // SVCFMT_CONFIG: config file name or path
	TrustedDomain string // SVCFMT_TRUSTED_DOMAIN: same-tab link domain
	Style         string // SVCFMT_STYLE: CSS style name, path or content
	AssetPath     string // SVCFMT_ASSET_PATH: custom asset directory
	Workers       int    // SVCFMT_WORKERS: parallel workers
	Sanitize      bool   // SVCFMT_SANITIZE: sanitize preview output
	LogLevel      string // SVCFMT_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid SVCFMT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SVCFMT_CONFIG":         true,
	"SVCFMT_TRUSTED_DOMAIN": true,
	"SVCFMT_STYLE":          true,
	"SVCFMT_ASSET_PATH":     true,
	"SVCFMT_WORKERS":        true,
	"SVCFMT_SANITIZE":       true,
	"SVCFMT_LOG_LEVEL":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized SVCFMT_* values.
// Malformed numbers and booleans are ignored, as are worker counts that
// validateWorkers rejects.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:    os.Getenv("SVCFMT_CONFIG"),
		TrustedDomain: os.Getenv("SVCFMT_TRUSTED_DOMAIN"),
		Style:         os.Getenv("SVCFMT_STYLE"),
		AssetPath:     os.Getenv("SVCFMT_ASSET_PATH"),
		LogLevel:      os.Getenv("SVCFMT_LOG_LEVEL"),
	}

	if workers := os.Getenv("SVCFMT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 && validateWorkers(w) == nil {
			cfg.Workers = w
		}
	}

	if sanitize := os.Getenv("SVCFMT_SANITIZE"); sanitize != "" {
		if b, err := strconv.ParseBool(sanitize); err == nil {
			cfg.Sanitize = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SVCFMT_* variables.
// Helps catch typos like SVCFMT_TRUSTED_DOMIAN.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SVCFMT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.TrustedDomain != "" && cfg.Formatter.TrustedDomain == "" {
		cfg.Formatter.TrustedDomain = env.TrustedDomain
	}
	if env.Style != "" && cfg.Output.Style == "" {
		cfg.Output.Style = env.Style
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	// Sanitize can only be switched on.
	if env.Sanitize {
		cfg.Preview.Sanitize = true
	}
}
