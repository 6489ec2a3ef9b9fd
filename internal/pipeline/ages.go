package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// age(N) or age(N-M) with up to three digits each; a comma may replace the hyphen
	agePattern = regexp.MustCompile(`(?i)\bage\((\d{1,3})(?:\s*[-,]\s*(\d{1,3}))?\)`)
)

// linePrefixes are the markers that may precede a sentence-initial phrase.
var linePrefixes = []string{ContinuationMarker, BreakMarker, "&emsp;", BulletGlyph, "—"}

// FormatAges rewrites "age(3-5)" as
// "age requirement: 3-5 (until your 6th birthday)" and "age(18)" as
// "age requirement: 18+". The phrase is capitalized when it opens its line.
// Only text outside markup is touched.
func FormatAges(line string) string {
	return MapText(line, func(text string, start int) string {
		return replaceMatches(text, agePattern, func(m []int) string {
			phrase, ok := agePhrase(group(text, m, 1), group(text, m, 2))
			if !ok {
				return text[m[0]:m[1]]
			}
			if sentenceInitial(line[:start+m[0]]) {
				phrase = strings.ToUpper(phrase[:1]) + phrase[1:]
			}
			return phrase
		})
	})
}

// agePhrase renders the eligibility phrase for one or two ages.
func agePhrase(from, to string) (string, bool) {
	low, err := strconv.Atoi(from)
	if err != nil {
		return "", false
	}
	if to == "" {
		return "age requirement: " + strconv.Itoa(low) + "+", true
	}

	high, err := strconv.Atoi(to)
	if err != nil {
		return "", false
	}
	return "age requirement: " + strconv.Itoa(low) + "-" + strconv.Itoa(high) +
		" (until your " + Ordinal(high+1) + " birthday)", true
}

// sentenceInitial reports whether before, the text preceding a match,
// holds nothing on the match's line but whitespace and line markers.
func sentenceInitial(before string) bool {
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	for {
		before = strings.TrimSpace(before)
		trimmed := false
		for _, p := range linePrefixes {
			if strings.HasPrefix(before, p) {
				before = before[len(p):]
				trimmed = true
			}
		}
		if !trimmed {
			return before == ""
		}
	}
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// with 11th, 12th and 13th as exceptions.
func Ordinal(n int) string {
	suffix := "th"
	switch v := n % 100; {
	case v >= 11 && v <= 13:
	case v%10 == 1:
		suffix = "st"
	case v%10 == 2:
		suffix = "nd"
	case v%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
