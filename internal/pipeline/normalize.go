package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// Normalize prepares raw author text for the line-oriented stages.
// Line endings become \n and the text is put in NFC so that composed and
// decomposed input format identically.
func Normalize(content string) string {
	content = normalizeLineEndings(content)
	if !norm.NFC.IsNormalString(content) {
		content = norm.NFC.String(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// isBlank reports whether s holds only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
