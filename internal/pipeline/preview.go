package pipeline

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Preview renders raw text as a lightweight HTML fragment for live editing
// feedback. Bullet glyphs that do not start a line are moved onto their own
// line, and each line is wrapped in a <span>, with a <br> before every bullet
// line but the first. Nothing is expanded or linked, and author text is not
// escaped: sanitize the result before trusting it.
func Preview(raw string) string {
	raw = Normalize(raw)
	if isBlank(raw) {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw) + 32)
	for i, line := range strings.Split(previewBreaks(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if i > 0 && strings.HasPrefix(trimmed, BulletGlyph) {
			b.WriteString(BreakMarker)
		}
		b.WriteString("<span>")
		b.WriteString(trimmed)
		b.WriteString("</span>")
	}
	return b.String()
}

// previewBreaks inserts a newline before bullet glyphs that are not at the
// start of a line, leaving the glyph and what follows it as written.
func previewBreaks(text string) string {
	if !strings.Contains(text, BulletGlyph) {
		return text
	}
	return MapText(text, func(span string, start int) string {
		return replaceMatches(span, bulletGlyph, func(m []int) string {
			match := span[m[0]:m[1]]
			if atLineStart(text, start+m[0]) {
				return match
			}
			return "\n" + strings.TrimLeft(match, " \t")
		})
	})
}

// Sanitizer strips unsafe markup from preview fragments.
// A Sanitizer is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer using the user-generated-content policy,
// widened to keep the <span> and <br> elements Preview emits.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span", "br")
	return &Sanitizer{policy: p}
}

// Sanitize returns fragment with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
