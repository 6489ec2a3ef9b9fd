package svcfmt

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-svcfmt/internal/assets"
	"github.com/alnah/go-svcfmt/internal/fileutil"
	"github.com/alnah/go-svcfmt/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TextTransformer = (*pipeline.Pipeline)(nil)
	_ pipeline.TextTransformer = (*Formatter)(nil)
)

// Formatter turns raw service descriptions into display-ready text.
// Create with NewFormatter. A Formatter is immutable after construction and
// safe for concurrent use.
type Formatter struct {
	cfg         formatterConfig
	logger      *zap.Logger
	styles      assets.StyleLoader
	transformer pipeline.TextTransformer
	sanitizer   *pipeline.Sanitizer // nil unless WithPreviewSanitizer(true)
}

// NewFormatter creates a Formatter with default configuration.
// Use options to customize behavior (e.g., WithTrustedDomain, WithStyle).
// Returns error if the asset path or style cannot be resolved.
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		styles: assets.NewEmbeddedStyles(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = zap.NewNop()
	}

	if f.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(f.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		f.styles = resolver
		f.logger.Debug("asset path resolved",
			zap.String("path", f.cfg.assetPath),
			zap.Bool("custom", resolver.HasCustomDir()))
	}

	if err := f.resolveStyle(); err != nil {
		return nil, err
	}

	linker := pipeline.NewLinker(f.cfg.trustedDomain, f.logger.Named("linker"))
	f.transformer = pipeline.New(linker)

	if f.cfg.sanitize {
		f.sanitizer = pipeline.NewSanitizer()
	}

	return f, nil
}

// Transform formats raw text: bullets are normalized, weekday, clock and age
// shorthand is expanded, and emails, URLs and phone numbers are linked.
// Existing anchors are left byte for byte. Whitespace-only input yields "".
func (f *Formatter) Transform(raw string) string {
	out := f.transformer.Transform(raw)
	f.logger.Debug("text transformed",
		zap.Int("inputBytes", len(raw)),
		zap.Int("outputBytes", len(out)),
		zap.Int("lines", countLines(out)))
	return out
}

// Preview renders raw text as a lightweight HTML fragment for live editing.
// It expands and links nothing. The fragment is sanitized when the Formatter
// was built WithPreviewSanitizer(true).
func (f *Formatter) Preview(raw string) string {
	out := pipeline.Preview(raw)
	if f.sanitizer != nil {
		out = f.sanitizer.Sanitize(out)
	}
	return out
}

// Document transforms raw text and wraps it in a standalone HTML page styled
// with the configured stylesheet. An empty title gets a generic one.
func (f *Formatter) Document(raw, title string) string {
	return pipeline.WrapDocument(f.Transform(raw), f.cfg.resolvedStyle, title)
}

// CSS returns the resolved stylesheet used by Document.
func (f *Formatter) CSS() string {
	return f.cfg.resolvedStyle
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewFormatter after options are applied and asset loader is configured.
func (f *Formatter) resolveStyle() error {
	input := f.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// CSS content? (contains {, checked first since comments contain /)
	if fileutil.IsCSS(input) {
		f.cfg.resolvedStyle = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		f.cfg.resolvedStyle = string(content)
		return nil
	}

	// Style name: custom directory, then embedded
	css, err := f.styles.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	f.cfg.resolvedStyle = css
	return nil
}

// countLines returns the number of newline-separated lines in s.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// defaultFormatter backs the package-level helpers. It needs no style file
// and trusts no domain, so construction cannot fail.
var defaultFormatter = &Formatter{
	logger:      zap.NewNop(),
	styles:      assets.NewEmbeddedStyles(),
	transformer: pipeline.New(nil),
}

// Transform formats raw text with default options.
func Transform(raw string) string {
	return defaultFormatter.Transform(raw)
}

// Preview renders an unsanitized preview of raw text with default options.
func Preview(raw string) string {
	return defaultFormatter.Preview(raw)
}
