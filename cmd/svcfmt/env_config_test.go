package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - Malformed SVCFMT_WORKERS and SVCFMT_SANITIZE values are ignored rather
//   than reported; the tests pin that down.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-svcfmt/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("SVCFMT_CONFIG", "team")
		t.Setenv("SVCFMT_TRUSTED_DOMAIN", "yourpeer.nyc")
		t.Setenv("SVCFMT_STYLE", "compact")
		t.Setenv("SVCFMT_ASSET_PATH", "/srv/assets")
		t.Setenv("SVCFMT_WORKERS", "4")
		t.Setenv("SVCFMT_SANITIZE", "true")
		t.Setenv("SVCFMT_LOG_LEVEL", "debug")

		got := loadEnvConfig()
		want := envConfig{
			ConfigPath:    "team",
			TrustedDomain: "yourpeer.nyc",
			Style:         "compact",
			AssetPath:     "/srv/assets",
			Workers:       4,
			Sanitize:      true,
			LogLevel:      "debug",
		}
		if *got != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
		}
	})

	t.Run("upper worker bound accepted", func(t *testing.T) {
		t.Setenv("SVCFMT_WORKERS", "64")

		if got := loadEnvConfig().Workers; got != 64 {
			t.Errorf("loadEnvConfig().Workers = %d, want 64", got)
		}
	})

	tests := []struct {
		name, key, value string
	}{
		{"non-numeric workers", "SVCFMT_WORKERS", "many"},
		{"zero workers", "SVCFMT_WORKERS", "0"},
		{"negative workers", "SVCFMT_WORKERS", "-2"},
		{"too many workers", "SVCFMT_WORKERS", "65"},
		{"non-boolean sanitize", "SVCFMT_SANITIZE", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			got := loadEnvConfig()
			if got.Workers != 0 || got.Sanitize {
				t.Errorf("%s=%q: Workers = %d, Sanitize = %v, want ignored", tt.key, tt.value, got.Workers, got.Sanitize)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("warns on typo", func(t *testing.T) {
		t.Setenv("SVCFMT_TRUSTED_DOMIAN", "yourpeer.nyc")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		want := "warning: unknown environment variable SVCFMT_TRUSTED_DOMIAN (typo?)\n"
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("silent for known and foreign vars", func(t *testing.T) {
		for name := range knownEnvVars {
			t.Setenv(name, "x")
		}
		t.Setenv("SVCFMTX", "x")
		t.Setenv("OTHER_SVCFMT_STYLE", "x")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if buf.Len() > 0 {
			t.Errorf("unexpected warnings: %s", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env fills gaps the config file left
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		TrustedDomain: "env.example",
		Style:         "compact",
		AssetPath:     "/env/assets",
		Sanitize:      true,
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Formatter.TrustedDomain != "env.example" {
			t.Errorf("TrustedDomain = %q", cfg.Formatter.TrustedDomain)
		}
		if cfg.Output.Style != "compact" {
			t.Errorf("Style = %q", cfg.Output.Style)
		}
		if cfg.Assets.BasePath != "/env/assets" {
			t.Errorf("BasePath = %q", cfg.Assets.BasePath)
		}
		if !cfg.Preview.Sanitize {
			t.Error("Sanitize = false, want true")
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Formatter.TrustedDomain = "file.example"
		cfg.Output.Style = "default"
		cfg.Assets.BasePath = "/file/assets"
		applyEnvConfig(env, cfg)

		if cfg.Formatter.TrustedDomain != "file.example" {
			t.Errorf("TrustedDomain = %q, want file.example", cfg.Formatter.TrustedDomain)
		}
		if cfg.Output.Style != "default" {
			t.Errorf("Style = %q, want default", cfg.Output.Style)
		}
		if cfg.Assets.BasePath != "/file/assets" {
			t.Errorf("BasePath = %q, want /file/assets", cfg.Assets.BasePath)
		}
	})

	t.Run("sanitize is never switched off", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Preview.Sanitize = true
		applyEnvConfig(&envConfig{}, cfg)

		if !cfg.Preview.Sanitize {
			t.Error("empty env turned sanitizing off")
		}
	})
}
