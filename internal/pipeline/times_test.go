package pipeline

import "testing"

func TestFormatTimeRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hours only",
			input:    "9a-5p",
			expected: "9:00 AM — 5:00 PM",
		},
		{
			name:     "overnight gets next-day marker",
			input:    "10p-2a",
			expected: "10:00 PM — 2:00 AM⁺¹",
		},
		{
			name:     "three digit times",
			input:    "930a-445p",
			expected: "9:30 AM — 4:45 PM",
		},
		{
			name:     "four digit times",
			input:    "1030a-1245p",
			expected: "10:30 AM — 12:45 PM",
		},
		{
			name:     "noon and midnight",
			input:    "12p-12a",
			expected: "12:00 PM — 12:00 AM⁺¹",
		},
		{
			name:     "midnight start",
			input:    "12a-6a",
			expected: "12:00 AM — 6:00 AM",
		},
		{
			name:     "uppercase period",
			input:    "8A-4P",
			expected: "8:00 AM — 4:00 PM",
		},
		{
			name:     "equal times are not overnight",
			input:    "9a-9a",
			expected: "9:00 AM — 9:00 AM",
		},
		{
			name:     "embedded in a sentence",
			input:    "Open mo-fr 9a-5p daily",
			expected: "Open mo-fr 9:00 AM — 5:00 PM daily",
		},
		{
			name:     "several ranges",
			input:    "9a-12p and 1p-5p",
			expected: "9:00 AM — 12:00 PM and 1:00 PM — 5:00 PM",
		},
		{
			name:     "impossible hour untouched",
			input:    "13p-2p",
			expected: "13p-2p",
		},
		{
			name:     "impossible minutes untouched",
			input:    "975a-5p",
			expected: "975a-5p",
		},
		{
			name:     "zero hour untouched",
			input:    "0a-5p",
			expected: "0a-5p",
		},
		{
			name:     "missing period untouched",
			input:    "9-5",
			expected: "9-5",
		},
		{
			name:     "anchor text untouched",
			input:    `<a href="https://x.org/?t=9a-5p">9a-5p</a>`,
			expected: `<a href="https://x.org/?t=9a-5p">9a-5p</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatTimeRanges(tt.input)
			if got != tt.expected {
				t.Errorf("FormatTimeRanges(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		digits string
		period string
		want   clockTime
		ok     bool
	}{
		{"9", "a", clockTime{9, 0}, true},
		{"9", "p", clockTime{21, 0}, true},
		{"12", "a", clockTime{0, 0}, true},
		{"12", "p", clockTime{12, 0}, true},
		{"930", "a", clockTime{9, 30}, true},
		{"1159", "P", clockTime{23, 59}, true},
		{"1", "a", clockTime{1, 0}, true},
		{"13", "a", clockTime{}, false},
		{"960", "a", clockTime{}, false},
		{"0", "p", clockTime{}, false},
	}

	for _, tt := range tests {
		got, ok := parseClock(tt.digits, tt.period)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseClock(%q, %q) = %+v, %v; want %+v, %v", tt.digits, tt.period, got, ok, tt.want, tt.ok)
		}
	}
}
