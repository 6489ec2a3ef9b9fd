package pipeline

import (
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Attributes added to links that should open in a new tab.
const newTabAttrs = ` target="_blank" rel="noopener noreferrer"`

// defaultScheme is prepended to URLs written without one.
const defaultScheme = "https://"

// Precompiled regex patterns for performance.
var (
	// Email, then URL with an optional |(label), then a 10-digit phone number
	// with an optional ,extension. Alternation order is match priority.
	linkPattern = regexp.MustCompile(
		`\b(?P<email>[\w.+-]+@[\w.-]+\.\w+)` +
			`|\b(?P<url>[^\s<>()|]+\.[^\s<>()|]+)(?:\|\((?P<label>[^)]+)\))?` +
			`|(?P<phone>\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})(?:,(?P<ext>\d+))?`)

	// Whole-string phone number with an optional ,extension, for URL
	// candidates that are really phones
	phoneOnly = regexp.MustCompile(`^(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})(?:,(\d+))?$`)

	// Email or phone inside a rejected URL candidate
	embeddedPattern = regexp.MustCompile(
		`\b(?P<email>[\w.+-]+@[\w.-]+\.\w+)` +
			`|(?P<phone>\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})(?:,(?P<ext>\d+))?`)

	// Explicit URL scheme such as https://
	schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

	// Top-level domain label
	tldPattern = regexp.MustCompile(`^[a-z]{2,24}$`)
)

// Submatch indexes of linkPattern.
var (
	groupEmail = linkPattern.SubexpIndex("email")
	groupURL   = linkPattern.SubexpIndex("url")
	groupLabel = linkPattern.SubexpIndex("label")
	groupPhone = linkPattern.SubexpIndex("phone")
	groupExt   = linkPattern.SubexpIndex("ext")

	embeddedEmail = embeddedPattern.SubexpIndex("email")
	embeddedPhone = embeddedPattern.SubexpIndex("phone")
	embeddedExt   = embeddedPattern.SubexpIndex("ext")
)

// TokenKind identifies what a TokenMatch links to.
type TokenKind int

const (
	TokenEmail TokenKind = iota
	TokenURL
	TokenPhone
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenEmail:
		return "email"
	case TokenURL:
		return "url"
	case TokenPhone:
		return "phone"
	default:
		return "unknown"
	}
}

// TokenMatch is one detected email, URL or phone number.
type TokenMatch struct {
	Raw         string // matched text, including any label and trailing punctuation
	Kind        TokenKind
	Replacement string // markup that takes the place of Raw
	Start       int    // byte offset of Raw in the scanned line
}

// Linker turns emails, URLs and phone numbers into anchors.
// A Linker is immutable and safe for concurrent use.
type Linker struct {
	trustedDomain string
	logger        *zap.Logger
}

// NewLinker creates a Linker. Links to trustedDomain or its subdomains open
// in the same tab; every other web link gets new-tab attributes. An empty
// trustedDomain trusts nothing. A nil logger discards debug output.
func NewLinker(trustedDomain string, logger *zap.Logger) *Linker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linker{
		trustedDomain: strings.Trim(strings.ToLower(strings.TrimSpace(trustedDomain)), "."),
		logger:        logger,
	}
}

// Link returns line with every linkable token outside existing anchors and
// tags replaced by an anchor. Text with nothing to link is returned unchanged.
func (l *Linker) Link(line string) string {
	return MapText(line, func(text string, _ int) string {
		tokens := l.scan(text)
		if len(tokens) == 0 {
			return text
		}

		var b strings.Builder
		b.Grow(len(text) + 64*len(tokens))
		last := 0
		for _, t := range tokens {
			b.WriteString(text[last:t.Start])
			b.WriteString(t.Replacement)
			last = t.Start + len(t.Raw)
		}
		b.WriteString(text[last:])
		return b.String()
	})
}

// Tokens returns the tokens Link would replace in line, in order.
// Start offsets are relative to line.
func (l *Linker) Tokens(line string) []TokenMatch {
	var out []TokenMatch
	for _, sp := range SplitSpans(line) {
		if sp.Kind != SpanText {
			continue
		}
		for _, t := range l.scan(sp.Text) {
			t.Start += sp.Start
			out = append(out, t)
		}
	}
	return out
}

// scan finds linkable tokens in plain text.
func (l *Linker) scan(text string) []TokenMatch {
	var tokens []TokenMatch
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		raw := text[m[0]:m[1]]
		var (
			repl string
			kind TokenKind
			ok   bool
		)

		switch {
		case m[2*groupEmail] >= 0:
			kind, repl, ok = TokenEmail, emailAnchor(raw), true
		case m[2*groupURL] >= 0:
			kind, repl, ok = l.urlToken(group(text, m, groupURL), group(text, m, groupLabel))
			if !ok {
				tokens = append(tokens, scanEmbedded(text, m[0], m[1])...)
				continue
			}
		case m[2*groupPhone] >= 0:
			if gluedToDigits(text, m[0], m[1]) {
				continue
			}
			kind, repl, ok = TokenPhone, phoneAnchor(group(text, m, groupPhone), group(text, m, groupExt)), true
		}

		if ok {
			tokens = append(tokens, TokenMatch{Raw: raw, Kind: kind, Replacement: repl, Start: m[0]})
		}
	}
	return tokens
}

// scanEmbedded finds emails and phone numbers inside text[start:end], a URL
// candidate that failed validation, so "example.com,2125551234" still links
// the phone.
func scanEmbedded(text string, start, end int) []TokenMatch {
	var tokens []TokenMatch
	for _, m := range embeddedPattern.FindAllStringSubmatchIndex(text[start:end], -1) {
		lo, hi := start+m[0], start+m[1]
		raw := text[lo:hi]
		switch {
		case m[2*embeddedEmail] >= 0:
			tokens = append(tokens, TokenMatch{Raw: raw, Kind: TokenEmail, Replacement: emailAnchor(raw), Start: lo})
		case m[2*embeddedPhone] >= 0:
			if gluedToDigits(text, lo, hi) {
				continue
			}
			sub := text[start:end]
			repl := phoneAnchor(group(sub, m, embeddedPhone), group(sub, m, embeddedExt))
			tokens = append(tokens, TokenMatch{Raw: raw, Kind: TokenPhone, Replacement: repl, Start: lo})
		}
	}
	return tokens
}

// urlToken builds the anchor for a URL candidate. A candidate that fails
// host validation but reads as a phone number is linked as a phone.
func (l *Linker) urlToken(raw, label string) (TokenKind, string, bool) {
	candidate, trailing := raw, ""
	if label == "" {
		candidate, trailing = splitTrailingPunct(raw)
	}

	u, reason := parseWebURL(candidate)
	if u == nil {
		if label == "" {
			if pm := phoneOnly.FindStringSubmatch(candidate); pm != nil {
				return TokenPhone, phoneAnchor(pm[1], pm[2]) + trailing, true
			}
		}
		l.logger.Debug("url candidate rejected",
			zap.String("candidate", raw),
			zap.String("reason", reason))
		return TokenURL, "", false
	}

	display := label
	if display == "" {
		display = displayURL(u)
	}

	attrs := newTabAttrs
	if l.isTrusted(u.Hostname()) {
		attrs = ""
	}

	return TokenURL, `<a href="` + html.EscapeString(u.String()) + `"` + attrs + `>` + display + `</a>` + trailing, true
}

// isTrusted reports whether host is the trusted domain or one of its subdomains.
func (l *Linker) isTrusted(host string) bool {
	if l.trustedDomain == "" {
		return false
	}
	host = strings.ToLower(host)
	return host == l.trustedDomain || strings.HasSuffix(host, "."+l.trustedDomain)
}

// parseWebURL parses a candidate as an http(s) URL with a plausible host.
// On rejection it returns nil and a short reason for logging.
func parseWebURL(candidate string) (*url.URL, string) {
	if schemePrefix.MatchString(candidate) {
		lower := strings.ToLower(candidate)
		if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
			return nil, "unsupported scheme"
		}
	} else {
		candidate = defaultScheme + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return nil, "unparseable"
	}

	labels := strings.Split(strings.ToLower(u.Hostname()), ".")
	if len(labels) < 2 {
		return nil, "too few domain labels"
	}
	if !tldPattern.MatchString(labels[len(labels)-1]) {
		return nil, "invalid top-level domain"
	}
	if len(labels[len(labels)-2]) < 2 {
		return nil, "second-level domain too short"
	}
	return u, ""
}

// displayURL renders host, path, query and fragment without a leading "www.".
func displayURL(u *url.URL) string {
	s := strings.ToLower(u.Host) + u.EscapedPath()
	if u.RawQuery != "" {
		s += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		s += "#" + u.EscapedFragment()
	}
	return strings.TrimPrefix(s, "www.")
}

// splitTrailingPunct separates one sentence-ending character from s.
func splitTrailingPunct(s string) (string, string) {
	if n := len(s); n > 1 && strings.IndexByte(".,;:!?", s[n-1]) >= 0 {
		return s[:n-1], s[n-1:]
	}
	return s, ""
}

// emailAnchor links an email address.
func emailAnchor(addr string) string {
	return `<a href="mailto:` + html.EscapeString(addr) + `">` + addr + `</a>`
}

// phoneAnchor links a 10-digit phone number with an optional extension.
func phoneAnchor(phone, ext string) string {
	digits := stripNonDigits(phone)
	visible := "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	href := digits
	if ext != "" {
		visible += " x" + ext
		href += "," + ext
	}
	return `<a href="tel:` + href + `">` + visible + `</a>`
}

// stripNonDigits keeps only ASCII digits.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// gluedToDigits reports whether text[start:end] has a digit right before or
// after it, meaning the phone pattern matched part of a longer number.
func gluedToDigits(text string, start, end int) bool {
	return (start > 0 && isDigit(text[start-1])) || (end < len(text) && isDigit(text[end]))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
