package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-svcfmt"
	"github.com/alnah/go-svcfmt/internal/assets"
	"github.com/alnah/go-svcfmt/internal/config"
	"github.com/alnah/go-svcfmt/internal/hints"
)

// maxInputSize caps a single input file or stdin read (4 MiB).
const maxInputSize = 4 << 20

// settings bundles what every command needs after flags, environment and
// config file are merged.
type settings struct {
	cfg    *config.Config
	env    *envConfig
	logger *zap.Logger
}

// loadSettings loads the config file named by -c or SVCFMT_CONFIG, applies
// SVCFMT_* overrides and builds the logger.
func loadSettings(common commonFlags, env *Environment) (*settings, error) {
	envCfg := loadEnvConfig()

	logger, err := newLoggerFor(env, common, envCfg)
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w%s", err, configHint(err, name))
		}
		logger.Debug("config loaded", zap.String("config", name))
	}

	applyEnvConfig(envCfg, cfg)

	return &settings{cfg: cfg, env: envCfg, logger: logger}, nil
}

// configHint suggests where to put a config file that could not be found.
func configHint(err error, name string) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	if strings.ContainsAny(name, "/\\") {
		return hints.ForConfigNotFound(nil)
	}
	return hints.ForConfigNotFound(config.SearchPaths(name))
}

// mergeFormatFlags applies Formatter flags over config values (CLI wins).
func mergeFormatFlags(f formatFlags, cfg *config.Config) {
	if f.trustedDomain != "" {
		cfg.Formatter.TrustedDomain = f.trustedDomain
	}
	if f.style != "" {
		cfg.Output.Style = f.style
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

// buildFormatter creates a Formatter from merged settings.
func (s *settings) buildFormatter() (*svcfmt.Formatter, error) {
	f, err := svcfmt.NewFormatter(
		svcfmt.WithTrustedDomain(s.cfg.Formatter.TrustedDomain),
		svcfmt.WithPreviewSanitizer(s.cfg.Preview.Sanitize),
		svcfmt.WithStyle(s.cfg.Output.Style),
		svcfmt.WithAssetPath(s.cfg.Assets.BasePath),
		svcfmt.WithLogger(s.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, s.styleHint(err))
	}
	return f, nil
}

// styleHint lists the styles that can be named when a style is missing.
func (s *settings) styleHint(err error) string {
	if !errors.Is(err, svcfmt.ErrStyleNotFound) {
		return ""
	}
	if s.cfg.Assets.BasePath != "" {
		if r, rerr := assets.NewResolver(s.cfg.Assets.BasePath); rerr == nil {
			return hints.ForStyleNotFound(r.StyleNames())
		}
	}
	return hints.ForStyleNotFound(assets.StyleNames())
}

// snippets converts configured snippets to editor snippets.
func (s *settings) snippets() []svcfmt.Snippet {
	out := make([]svcfmt.Snippet, 0, len(s.cfg.Snippets))
	for _, sc := range s.cfg.Snippets {
		out = append(out, svcfmt.Snippet{
			Name: sc.Name,
			Mode: svcfmt.SnippetMode(sc.Mode),
			Text: sc.Text,
		})
	}
	return out
}

// resolveWorkers determines the batch concurrency.
// Priority: explicit flag > SVCFMT_WORKERS > GOMAXPROCS (tuned by automaxprocs).
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}
	return max(runtime.GOMAXPROCS(0), 1)
}

// validateWorkers rejects negative or absurd worker counts.
func validateWorkers(n int) error {
	const maxWorkers = 64
	if n < 0 || n > maxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
