package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// documentTemplate wraps formatted text in a complete HTML5 document.
// The verbs are, in order: title, style block, formatted text.
// Formatted text keeps its newlines; stylesheets render them with
// white-space: pre-line.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
<div class="service-description">
%s
</div>
</body>
</html>`

// defaultDocumentTitle is used when WrapDocument gets an empty title.
const defaultDocumentTitle = "Service description"

// styleEscaper keeps stylesheet text from closing its <style> element early.
// CSS reads "\/" as "/", so escaped rules render the same.
var styleEscaper = strings.NewReplacer("</", `<\/`, "<!--", `<\!--`)

// WrapDocument turns formatted text into a standalone HTML page for review.
// A non-empty css goes into a <style> element at the end of <head>.
func WrapDocument(formatted, css, title string) string {
	if title == "" {
		title = defaultDocumentTitle
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), styleElement(css), formatted)
}

// styleElement returns css as a <style> line, or "" for an empty stylesheet.
func styleElement(css string) string {
	if css == "" {
		return ""
	}
	return "<style>" + styleEscaper.Replace(css) + "</style>\n"
}
