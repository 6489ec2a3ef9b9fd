package pipeline

import (
	"regexp"
	"strings"
)

// Line prefixes emitted by the bullet normalizer.
const (
	BulletGlyph        = "•"
	BulletMarker       = BulletGlyph + " "
	BreakMarker        = "<br>"
	ContinuationMarker = BreakMarker + "&emsp;—"
)

// Precompiled regex patterns for performance.
var (
	// A bullet glyph with the horizontal whitespace around it
	bulletGlyph = regexp.MustCompile(`[ \t]*•[ \t]*`)
)

// LineKind classifies a logical line before its prefix is applied.
type LineKind int

const (
	// KindNeedsBullet lines get a bullet marker.
	KindNeedsBullet LineKind = iota
	// KindBulleted lines already start with a bullet or break marker.
	KindBulleted
	// KindContinuation lines start with "-" and become indented items.
	KindContinuation
	// KindParagraph lines follow a blank line and get a plain break.
	KindParagraph
	// KindHeader is a first line ending in ":".
	KindHeader
)

// String returns the line kind name.
func (k LineKind) String() string {
	switch k {
	case KindNeedsBullet:
		return "needs-bullet"
	case KindBulleted:
		return "bulleted"
	case KindContinuation:
		return "continuation"
	case KindParagraph:
		return "paragraph"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Line is one logical bullet or continuation unit.
type Line struct {
	Text  string // trimmed, without any prefix added by the normalizer
	Kind  LineKind
	First bool
}

// Render returns the line with its prefix applied.
func (l Line) Render() string {
	switch l.Kind {
	case KindNeedsBullet:
		return BulletMarker + l.Text
	case KindContinuation:
		return ContinuationMarker + " " + strings.TrimSpace(strings.TrimPrefix(l.Text, "-"))
	case KindParagraph:
		return BreakMarker + l.Text
	default:
		return l.Text
	}
}

// ClassifyLines splits text into logical lines and classifies each one.
// Bullet glyphs in the middle of a line start a new line first. Blank lines
// are dropped; they only mark the next line as a paragraph start.
func ClassifyLines(text string) []Line {
	text = breakMidLineBullets(text)

	var lines []Line
	lastBlank := false
	for i, raw := range splitLines(text) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			lastBlank = true
			continue
		}

		first := i == 0
		lines = append(lines, Line{
			Text:  trimmed,
			Kind:  classifyLine(trimmed, first, lastBlank),
			First: first,
		})
		lastBlank = false
	}
	return lines
}

// NormalizeBullets returns the prefixed logical lines of text.
func NormalizeBullets(text string) []string {
	lines := ClassifyLines(text)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Render()
	}
	return out
}

// classifyLine applies the prefix rules in priority order.
func classifyLine(trimmed string, first, afterBlank bool) LineKind {
	switch {
	case hasLinePrefix(trimmed):
		return KindBulleted
	case first && strings.HasSuffix(trimmed, ":"):
		return KindHeader
	case strings.HasPrefix(trimmed, "-"):
		return KindContinuation
	case afterBlank:
		return KindParagraph
	default:
		return KindNeedsBullet
	}
}

// hasLinePrefix reports whether s already starts with a bullet or break.
// ContinuationMarker starts with BreakMarker, so one check covers both.
func hasLinePrefix(s string) bool {
	return strings.HasPrefix(s, BulletGlyph) || strings.HasPrefix(s, BreakMarker)
}

// breakMidLineBullets moves every bullet glyph that has text before it on
// its line onto a new line. Anchors and tags are left alone.
func breakMidLineBullets(text string) string {
	if !strings.Contains(text, BulletGlyph) {
		return text
	}
	return MapText(text, func(span string, start int) string {
		return replaceMatches(span, bulletGlyph, func(m []int) string {
			if atLineStart(text, start+m[0]) {
				return span[m[0]:m[1]]
			}
			return "\n" + BulletMarker
		})
	})
}

// atLineStart reports whether offset i in s begins a line.
func atLineStart(s string, i int) bool {
	return i == 0 || s[i-1] == '\n'
}

// splitLines splits text on newlines outside anchors, so an anchor that
// spans several lines stays whole inside one logical line. An unclosed
// anchor runs to the end of text and takes the remaining lines with it.
func splitLines(text string) []string {
	var lines []string
	var cur strings.Builder

	for _, sp := range SplitSpans(text) {
		if sp.Kind != SpanText {
			cur.WriteString(sp.Text)
			continue
		}
		parts := strings.Split(sp.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			cur.WriteString(p)
		}
	}
	return append(lines, cur.String())
}
