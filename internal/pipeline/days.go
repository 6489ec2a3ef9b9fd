package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Two-letter weekday pair such as mo-fr, any case
	dayRangePattern = regexp.MustCompile(`(?i)\b(su|mo|tu|we|th|fr|sa)-(su|mo|tu|we|th|fr|sa)\b`)
)

// weekdays lists full day names indexed from Sunday=0.
var weekdays = [...]struct {
	abbr string
	name string
}{
	{"su", "Sunday"},
	{"mo", "Monday"},
	{"tu", "Tuesday"},
	{"we", "Wednesday"},
	{"th", "Thursday"},
	{"fr", "Friday"},
	{"sa", "Saturday"},
}

// ExpandDayRanges rewrites weekday ranges like "mo-fr" as
// "Monday through Friday". A range that wraps past Saturday, like "fr-mo",
// gets a " (next week)" suffix. Only text outside markup is touched.
func ExpandDayRanges(line string) string {
	return MapText(line, func(text string, _ int) string {
		return replaceMatches(text, dayRangePattern, func(m []int) string {
			start := weekdayIndex(group(text, m, 1))
			end := weekdayIndex(group(text, m, 2))
			if start < 0 || end < 0 {
				return text[m[0]:m[1]]
			}
			return formatDayRange(start, end)
		})
	})
}

// formatDayRange renders two weekday indexes as a phrase.
func formatDayRange(start, end int) string {
	phrase := weekdays[start].name + " through " + weekdays[end].name
	if end < start {
		phrase += " (next week)"
	}
	return phrase
}

// weekdayIndex returns the Sunday-based index of a two-letter abbreviation,
// or -1 when it is not a weekday.
func weekdayIndex(abbr string) int {
	abbr = strings.ToLower(abbr)
	for i, d := range weekdays {
		if d.abbr == abbr {
			return i
		}
	}
	return -1
}
