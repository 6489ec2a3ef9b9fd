package svcfmt

import "go.uber.org/zap"

// Option configures a Formatter.
type Option func(*Formatter)

// formatterConfig holds internal configuration for Formatter.
type formatterConfig struct {
	trustedDomain string
	sanitize      bool
	styleInput    string // style name, file path, or CSS content
	assetPath     string // custom asset directory (empty = embedded only)
	resolvedStyle string // CSS content after resolveStyle
}

// WithTrustedDomain sets the partner domain whose links open in the same tab.
// Subdomains are trusted too. An empty domain trusts nothing.
func WithTrustedDomain(domain string) Option {
	return func(f *Formatter) {
		f.cfg.trustedDomain = domain
	}
}

// WithLogger sets the logger used for debug output such as rejected URL
// candidates. A nil logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// WithPreviewSanitizer strips unsafe markup from Preview output.
// Preview passes author markup through verbatim, so enable this whenever the
// preview is rendered somewhere untrusted text could run.
func WithPreviewSanitizer(enabled bool) Option {
	return func(f *Formatter) {
		f.cfg.sanitize = enabled
	}
}

// WithStyle sets the stylesheet used by Document.
// Accepts a style name ("default", "compact"), a file path
// ("./custom.css"), or CSS content (".service-description { ... }").
func WithStyle(style string) Option {
	return func(f *Formatter) {
		f.cfg.styleInput = style
	}
}

// WithAssetPath sets a custom directory for style lookup.
// Styles found there override the embedded ones of the same name.
func WithAssetPath(path string) Option {
	return func(f *Formatter) {
		f.cfg.assetPath = path
	}
}
