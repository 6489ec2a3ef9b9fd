package svcfmt

import (
	"fmt"
	"regexp"
	"strings"
)

// SnippetMode controls where ApplySnippet puts a snippet's text.
type SnippetMode string

// Snippet mode constants.
const (
	// SnippetAppend adds the text as a new last line.
	SnippetAppend SnippetMode = "append"
	// SnippetPrefix adds the text as a new first line.
	SnippetPrefix SnippetMode = "prefix"
)

// Snippet is a reusable line an editor can insert with one action.
type Snippet struct {
	Name string
	Mode SnippetMode
	Text string
}

// snippetName accepts lower-case kebab-case identifiers.
var snippetName = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks that the snippet can be applied.
func (s Snippet) Validate() error {
	if !snippetName.MatchString(s.Name) {
		return fmt.Errorf("%w: %q (use lower-case words joined by -)", ErrInvalidSnippetName, s.Name)
	}
	switch s.Mode {
	case SnippetAppend, SnippetPrefix:
	default:
		return fmt.Errorf("%w: %q for %q (must be append or prefix)", ErrInvalidSnippetMode, s.Mode, s.Name)
	}
	if strings.TrimSpace(s.Text) == "" {
		return fmt.Errorf("%w: %q", ErrEmptySnippet, s.Name)
	}
	return nil
}

// Eligibility guides linked from the default snippets.
const (
	deportationRiskGuideURL = "https://docs.google.com/document/d/e/2PACX-1vQ-cQznO83jSMzdwQoOOZMO22gOesH8YgiSo3GTzuRpHjMczqzzFz8JR23pM6_ZMG8khiGazWIcF-jA/pub"
	eligibilityGuideURL     = "https://docs.google.com/document/d/e/2PACX-1vSRz4FT0ndCbqt63vO1Dq5Isj7FS4TZjw5NMc0gn8HCSg2gLx-MXD56X8Z56IDD5qbLX2_xzpwCqHaK/pub"
)

// guideLink returns a new-tab anchor to an eligibility guide.
func guideLink(href, label string) string {
	return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + label + `</a>`
}

// DefaultSnippets returns the built-in snippets in display order.
// The returned slice is a fresh copy.
func DefaultSnippets() []Snippet {
	return []Snippet{
		{
			Name: "services-include",
			Mode: SnippetPrefix,
			Text: "Services include:",
		},
		{
			Name: "metrocard",
			Mode: SnippetAppend,
			Text: "• If you are a Medicaid or Medicare recipient, see if you qualify for a Round-Trip MetroCard upon your visit.",
		},
		{
			Name: "criminal-risk",
			Mode: SnippetAppend,
			Text: "• If you are a non-citizen with a criminal record, please " +
				guideLink(deportationRiskGuideURL, "see if you might be at risk of deportation") + ".",
		},
		{
			Name: "ineligibility",
			Mode: SnippetAppend,
			Text: "• If you are a non-citizen, please " +
				guideLink(eligibilityGuideURL, "see if you might qualify for this service") + ".",
		},
		{
			Name: "survivor-benefits",
			Mode: SnippetAppend,
			Text: "• If you are a non-citizen and survived a crime, please " +
				guideLink(eligibilityGuideURL, "see if you might qualify for some immigration benefits") + ".",
		},
	}
}
