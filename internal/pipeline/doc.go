// Package pipeline implements the service-description formatting pipeline.
//
// This package handles the text stages, each a pure function over strings:
//   - Input normalization (line endings, Unicode NFC)
//   - Span splitting, so existing anchors and tags are never rescanned
//   - Bullet normalization into logical lines
//   - Shorthand expansion for weekday ranges, clock ranges and age(...)
//   - Safe hyperlinking of emails, URLs and phone numbers
//   - Cheap preview rendering for live editing feedback
//   - Wrapping formatted text in a standalone HTML review document
//
// Nothing here performs I/O or keeps state between calls. The public API and
// configuration live in the root svcfmt package; this separation keeps the
// pipeline focused on text rules while the caller owns options and logging.
package pipeline
