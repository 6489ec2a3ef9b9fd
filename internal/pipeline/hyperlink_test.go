package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const newTab = ` target="_blank" rel="noopener noreferrer"`

// ---------------------------------------------------------------------------
// TestLinker_Link - Token detection and markup
// ---------------------------------------------------------------------------

func TestLinker_Link(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		trusted  string
		input    string
		expected string
	}{
		// Phones
		{
			name:     "bare ten digits",
			input:    "call 2125551234",
			expected: `call <a href="tel:2125551234">(212) 555-1234</a>`,
		},
		{
			name:     "dashed with extension",
			input:    "call 212-555-1234,12",
			expected: `call <a href="tel:2125551234,12">(212) 555-1234 x12</a>`,
		},
		{
			name:     "parenthesized area code",
			input:    "(212) 555-1234",
			expected: `<a href="tel:2125551234">(212) 555-1234</a>`,
		},
		{
			name:     "dotted phone is not a URL",
			input:    "call 212.555.1234.",
			expected: `call <a href="tel:2125551234">(212) 555-1234</a>.`,
		},
		{
			name:     "dotted with extension",
			input:    "call 212.555.1234,12",
			expected: `call <a href="tel:2125551234,12">(212) 555-1234 x12</a>`,
		},
		{
			name:     "phone after rejected url candidate",
			input:    "see example.com,2125551234",
			expected: `see example.com,<a href="tel:2125551234">(212) 555-1234</a>`,
		},
		{
			name:     "glued digits inside rejected candidate",
			input:    "ref v1.12125551234",
			expected: "ref v1.12125551234",
		},
		{
			name:     "longer digit run untouched",
			input:    "id 12125551234",
			expected: "id 12125551234",
		},

		// Emails
		{
			name:     "email",
			input:    "email help@example.org today",
			expected: `email <a href="mailto:help@example.org">help@example.org</a> today`,
		},
		{
			name:     "email before sentence end",
			input:    "write a.b@example.org.",
			expected: `write <a href="mailto:a.b@example.org">a.b@example.org</a>.`,
		},

		// URLs
		{
			name:     "bare domain with trailing period",
			input:    "visit example.com.",
			expected: `visit <a href="https://example.com"` + newTab + `>example.com</a>.`,
		},
		{
			name:     "www stripped from label",
			input:    "www.example.com/path?q=1#top",
			expected: `<a href="https://www.example.com/path?q=1#top"` + newTab + `>example.com/path?q=1#top</a>`,
		},
		{
			name:     "explicit http scheme kept",
			input:    "http://example.org/a",
			expected: `<a href="http://example.org/a"` + newTab + `>example.org/a</a>`,
		},
		{
			name:     "custom label",
			input:    "see example.com|(Our site).",
			expected: `see <a href="https://example.com"` + newTab + `>Our site</a>.`,
		},
		{
			name:     "ampersand escaped in href only",
			input:    "example.com/a?x=1&y=2",
			expected: `<a href="https://example.com/a?x=1&amp;y=2"` + newTab + `>example.com/a?x=1&y=2</a>`,
		},
		{
			name:     "trailing comma excluded",
			input:    "example.com, or",
			expected: `<a href="https://example.com"` + newTab + `>example.com</a>, or`,
		},
		{
			name:     "trusted domain opens in same tab",
			trusted:  "yourpeer.nyc",
			input:    "yourpeer.nyc/locations",
			expected: `<a href="https://yourpeer.nyc/locations">yourpeer.nyc/locations</a>`,
		},
		{
			name:     "trusted subdomain",
			trusted:  "YourPeer.nyc",
			input:    "https://app.yourpeer.nyc",
			expected: `<a href="https://app.yourpeer.nyc">app.yourpeer.nyc</a>`,
		},
		{
			name:     "lookalike of trusted domain is not trusted",
			trusted:  "yourpeer.nyc",
			input:    "notyourpeer.nyc",
			expected: `<a href="https://notyourpeer.nyc"` + newTab + `>notyourpeer.nyc</a>`,
		},

		// Rejections
		{
			name:     "abbreviation",
			input:    "e.g. showers",
			expected: "e.g. showers",
		},
		{
			name:     "version number",
			input:    "v1.2 form",
			expected: "v1.2 form",
		},
		{
			name:     "short second-level label",
			input:    "a.bc",
			expected: "a.bc",
		},
		{
			name:     "non-web scheme",
			input:    "ftp://files.example.com",
			expected: "ftp://files.example.com",
		},
		{
			name:     "no match",
			input:    "Open daily",
			expected: "Open daily",
		},

		// Markup
		{
			name:     "existing anchor byte for byte",
			input:    `<a href="https://already-linked.com">already-linked.com</a> and 2125551234`,
			expected: `<a href="https://already-linked.com">already-linked.com</a> and <a href="tel:2125551234">(212) 555-1234</a>`,
		},
		{
			name:     "tag attributes not scanned",
			input:    `<img src="https://x.org/a.png"> hi`,
			expected: `<img src="https://x.org/a.png"> hi`,
		},
		{
			name:     "several tokens",
			input:    "Call 212-555-1234 or email a@b.org",
			expected: `Call <a href="tel:2125551234">(212) 555-1234</a> or email <a href="mailto:a@b.org">a@b.org</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewLinker(tt.trusted, nil).Link(tt.input)
			if got != tt.expected {
				t.Errorf("Link(%q)\n got: %s\nwant: %s", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLinker_Tokens - Kinds and offsets
// ---------------------------------------------------------------------------

func TestLinker_Tokens(t *testing.T) {
	t.Parallel()

	line := `<br>mail a@b.org, see <a href="x">c.org</a> or example.com`
	got := NewLinker("", nil).Tokens(line)

	type tok struct {
		Raw   string
		Kind  TokenKind
		Start int
	}
	var simplified []tok
	for _, m := range got {
		simplified = append(simplified, tok{m.Raw, m.Kind, m.Start})
		if line[m.Start:m.Start+len(m.Raw)] != m.Raw {
			t.Errorf("offset %d does not locate %q", m.Start, m.Raw)
		}
	}

	want := []tok{
		{"a@b.org", TokenEmail, 9},
		{"example.com", TokenURL, 47},
	}
	if diff := cmp.Diff(want, simplified); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestLinker_LogsRejectedURL - Rejections are logged at debug level
// ---------------------------------------------------------------------------

func TestLinker_LogsRejectedURL(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	linker := NewLinker("", zap.New(core))

	if got := linker.Link("see v1.2 now"); got != "see v1.2 now" {
		t.Fatalf("Link changed rejected candidate: %q", got)
	}

	entries := logs.FilterMessage("url candidate rejected").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["candidate"] != "v1.2" {
		t.Errorf("candidate field = %v, want v1.2", fields["candidate"])
	}
	if fields["reason"] != "invalid top-level domain" {
		t.Errorf("reason field = %v", fields["reason"])
	}
}

func TestTokenKind_String(t *testing.T) {
	t.Parallel()

	tests := map[TokenKind]string{
		TokenEmail:    "email",
		TokenURL:      "url",
		TokenPhone:    "phone",
		TokenKind(42): "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
