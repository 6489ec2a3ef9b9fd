package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NextDayMarker follows an end time that rolls over past midnight.
const NextDayMarker = "⁺¹"

// timeRangeSeparator joins the two rendered times.
const timeRangeSeparator = " — "

// Precompiled regex patterns for performance.
var (
	// Clock shorthand range such as 9a-5p or 1030a-1245p, any case
	timeRangePattern = regexp.MustCompile(`(?i)(\d{1,4})([ap])-(\d{1,4})([ap])`)
)

// clockTime is a wall-clock time on a 24-hour clock.
type clockTime struct {
	hour   int
	minute int
}

// minutes returns minutes since midnight.
func (c clockTime) minutes() int {
	return c.hour*60 + c.minute
}

// String formats the time as "h:mm AM".
func (c clockTime) String() string {
	return time.Date(0, time.January, 1, c.hour, c.minute, 0, 0, time.UTC).Format("3:04 PM")
}

// FormatTimeRanges rewrites clock ranges like "9a-5p" as
// "9:00 AM — 5:00 PM". When the end is earlier than the start, the end time
// gets NextDayMarker. Ranges with an impossible side, like "13p-2p", are left
// as written. Only text outside markup is touched.
func FormatTimeRanges(line string) string {
	return MapText(line, func(text string, _ int) string {
		return replaceMatches(text, timeRangePattern, func(m []int) string {
			start, ok := parseClock(group(text, m, 1), group(text, m, 2))
			if !ok {
				return text[m[0]:m[1]]
			}
			end, ok := parseClock(group(text, m, 3), group(text, m, 4))
			if !ok {
				return text[m[0]:m[1]]
			}
			return formatTimeRange(start, end)
		})
	})
}

// formatTimeRange renders a start and end time.
func formatTimeRange(start, end clockTime) string {
	s := start.String() + timeRangeSeparator + end.String()
	if end.minutes() < start.minutes() {
		s += NextDayMarker
	}
	return s
}

// parseClock converts shorthand digits and an a/p period to a clockTime.
// One or two digits are the hour; with three or four the last two are minutes.
func parseClock(digits, period string) (clockTime, bool) {
	hourDigits, minuteDigits := digits, ""
	if len(digits) > 2 {
		hourDigits, minuteDigits = digits[:len(digits)-2], digits[len(digits)-2:]
	}

	hour, err := strconv.Atoi(hourDigits)
	if err != nil || hour < 1 || hour > 12 {
		return clockTime{}, false
	}
	minute := 0
	if minuteDigits != "" {
		minute, err = strconv.Atoi(minuteDigits)
		if err != nil || minute > 59 {
			return clockTime{}, false
		}
	}

	pm := strings.EqualFold(period, "p")
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return clockTime{hour: hour, minute: minute}, true
}
