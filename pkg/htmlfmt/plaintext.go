// Copyright 2024-2026 Fabian Fuchs

package htmlfmt

import "regexp"

var (
	brRe       = regexp.MustCompile(`<br\s*/?>`)
	tagRe      = regexp.MustCompile(`<[^>]+>`)
	nonASCIIRe = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// PlainText derives the m.text fallback body from an HTML message: <br>
// becomes a newline, all other tags are stripped, and non-ASCII characters
// (including the &nbsp; runes some callers already resolved) are removed.
func PlainText(html string) string {
	text := brRe.ReplaceAllString(html, "\n")
	text = tagRe.ReplaceAllString(text, "")
	return nonASCIIRe.ReplaceAllString(text, "")
}
