// Package config loads svcfmt settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/alnah/go-svcfmt/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
	ErrInputTooLarge   = errors.New("config exceeds maximum size")
)

// MaxInputSize limits YAML input to prevent memory exhaustion (1 MiB).
const MaxInputSize = 1 << 20

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-svcfmt"

// Config holds all configuration for formatting service descriptions.
type Config struct {
	Formatter FormatterConfig `yaml:"formatter"`
	Preview   PreviewConfig   `yaml:"preview"`
	Output    OutputConfig    `yaml:"output"`
	Assets    AssetsConfig    `yaml:"assets"`
	Snippets  []SnippetConfig `yaml:"snippets" validate:"max=100,dive"`
}

// FormatterConfig defines linking behavior.
type FormatterConfig struct {
	// TrustedDomain links open in the same tab (empty = every link opens a new tab).
	TrustedDomain string `yaml:"trustedDomain" validate:"omitempty,max=253,hostname_rfc1123"`
}

// PreviewConfig defines preview rendering options.
type PreviewConfig struct {
	Sanitize bool `yaml:"sanitize"`
}

// OutputConfig defines output options.
type OutputConfig struct {
	Style string `yaml:"style" validate:"max=4096"` // Style name, path or CSS (empty = default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath" validate:"max=4096"` // Empty = use embedded assets
}

// SnippetConfig declares a custom snippet. A name matching a built-in
// snippet replaces it.
type SnippetConfig struct {
	Name string `yaml:"name" validate:"required,max=64"`
	Mode string `yaml:"mode" validate:"required,oneof=append prefix"`
	Text string `yaml:"text" validate:"required,max=2000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(msgs, "; "))
}

// describe turns a validator error into a message keyed by YAML path.
func describe(fe validator.FieldError) string {
	field := yamlPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + ": required"
	case "max":
		return fmt.Sprintf("%s: exceeds maximum length %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: invalid value %q (must be one of: %s)", field, fe.Value(), fe.Param())
	case "hostname_rfc1123":
		return fmt.Sprintf("%s: invalid hostname %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s: failed %q check", field, fe.Tag())
	}
}

// yamlPath maps "Config.Formatter.TrustedDomain" to "formatter.trustedDomain".
func yamlPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

// DefaultConfig returns a neutral configuration: no trusted domain,
// unsanitized preview, embedded default style, built-in snippets only.
func DefaultConfig() *Config {
	return &Config{}
}

// Parse decodes YAML data in strict mode, rejecting unknown keys, then
// validates the result.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if info.Size() > MaxInputSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInputTooLarge, configPath, info.Size(), MaxInputSize)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-svcfmt/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
