package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// SpanKind classifies a slice of marked-up text.
type SpanKind int

const (
	// SpanText is plain author text, the only kind any stage may rewrite.
	SpanText SpanKind = iota
	// SpanTag is a standalone tag, comment or doctype such as <br>.
	SpanTag
	// SpanAnchor is a whole <a ...>...</a> element, inner content included.
	SpanAnchor
)

// String returns the span kind name.
func (k SpanKind) String() string {
	switch k {
	case SpanText:
		return "text"
	case SpanTag:
		return "tag"
	case SpanAnchor:
		return "anchor"
	default:
		return "unknown"
	}
}

// Span is a contiguous piece of a string with its byte offset.
type Span struct {
	Kind  SpanKind
	Text  string
	Start int
	// Open marks an anchor whose closing </a> never arrived.
	Open bool
}

// SplitSpans splits s into text, tag and anchor spans.
// Concatenating the Text of every span yields s byte for byte.
// An anchor runs from its start tag to the matching </a>, counting nested
// anchors; an unclosed anchor extends to the end of s.
func SplitSpans(s string) []Span {
	if s == "" {
		return nil
	}

	var spans []Span
	z := html.NewTokenizer(strings.NewReader(s))
	pos := 0
	anchorStart := 0
	depth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		// Length only: TagName below may rewrite the token buffer in place.
		end := pos + len(z.Raw())
		anchor := isAnchorToken(z, tt)

		switch {
		case depth > 0:
			if anchor && tt == html.StartTagToken {
				depth++
			} else if anchor && tt == html.EndTagToken {
				depth--
			}
			if depth == 0 {
				spans = append(spans, Span{Kind: SpanAnchor, Text: s[anchorStart:end], Start: anchorStart})
			}
		case anchor && tt == html.StartTagToken:
			anchorStart = pos
			depth = 1
		case tt == html.TextToken:
			spans = appendText(spans, s[pos:end], pos)
		default:
			spans = append(spans, Span{Kind: SpanTag, Text: s[pos:end], Start: pos})
		}
		pos = end
	}

	switch {
	case depth > 0:
		spans = append(spans, Span{Kind: SpanAnchor, Text: s[anchorStart:], Start: anchorStart, Open: true})
	case pos < len(s):
		// Incomplete trailing markup such as "<b" at EOF reads as text.
		spans = appendText(spans, s[pos:], pos)
	}

	return spans
}

// isAnchorToken reports whether the current token is an <a> start or end tag.
func isAnchorToken(z *html.Tokenizer, tt html.TokenType) bool {
	if tt != html.StartTagToken && tt != html.EndTagToken {
		return false
	}
	name, _ := z.TagName()
	return string(name) == "a"
}

// appendText appends a text span, merging it into a preceding text span.
func appendText(spans []Span, text string, start int) []Span {
	if n := len(spans); n > 0 && spans[n-1].Kind == SpanText {
		spans[n-1].Text += text
		return spans
	}
	return append(spans, Span{Kind: SpanText, Text: text, Start: start})
}

// MapText rewrites every text span of s with fn and reassembles the result.
// fn receives the span text and its offset in s, so it can look at the
// surrounding markup for context. Tag and anchor spans pass through untouched.
func MapText(s string, fn func(text string, start int) string) string {
	spans := SplitSpans(s)
	if len(spans) == 1 && spans[0].Kind != SpanText {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, sp := range spans {
		if sp.Kind == SpanText {
			b.WriteString(fn(sp.Text, sp.Start))
			continue
		}
		b.WriteString(sp.Text)
	}
	return b.String()
}

// replaceMatches replaces every match of re in text with the result of fn.
// fn receives the submatch indexes of one match and returns its replacement;
// returning text[m[0]:m[1]] leaves that match as it was.
func replaceMatches(text string, re *regexp.Regexp, fn func(m []int) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(fn(m))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// group returns submatch n of text, or "" when it did not participate.
func group(text string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}
