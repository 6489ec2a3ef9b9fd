package pipeline

import "strings"

// TextTransformer defines the contract for turning raw author text into
// formatted text.
type TextTransformer interface {
	Transform(raw string) string
}

// Stage is one per-line rewrite step.
type Stage func(line string) string

// Pipeline runs the bullet normalizer and then, for every logical line, the
// shorthand expanders and the linker in a fixed order.
// A Pipeline holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	stages []Stage
}

// Compile-time interface implementation check.
var _ TextTransformer = (*Pipeline)(nil)

// New creates a Pipeline that links with linker.
// A nil linker gets a default Linker that trusts no domain.
func New(linker *Linker) *Pipeline {
	if linker == nil {
		linker = NewLinker("", nil)
	}
	return &Pipeline{
		stages: []Stage{
			ExpandDayRanges,
			FormatTimeRanges,
			FormatAges,
			linker.Link,
		},
	}
}

// Transform formats raw text. Whitespace-only input yields "".
// Applying Transform to its own output is not assumed to be a no-op.
func (p *Pipeline) Transform(raw string) string {
	raw = Normalize(raw)
	if isBlank(raw) {
		return ""
	}

	lines := NormalizeBullets(raw)
	for i, line := range lines {
		lines[i] = p.FormatLine(line)
	}
	return strings.Join(lines, "\n")
}

// FormatLine runs the per-line stages over one already-prefixed line.
func (p *Pipeline) FormatLine(line string) string {
	for _, stage := range p.stages {
		line = stage(line)
	}
	return line
}
