// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package htmlfmt builds HTML fragments for Matrix formatted messages.
//
// Matrix clients render org.matrix.custom.html bodies as HTML, which means
// consecutive spaces collapse and newlines disappear. The Replace* helpers
// rewrite whitespace into markup that keeps the visual layout intact, and
// PlainText derives the mandatory m.text fallback body from an HTML message.
//
// None of the helpers escape their input. Callers are expected to pass
// content that is already safe to embed in HTML.
package htmlfmt

import "strings"

// Tag is an HTML tag usable for formatting Matrix messages.
type Tag string

const (
	H1        Tag = "h1"
	H2        Tag = "h2"
	H3        Tag = "h3"
	H4        Tag = "h4"
	H5        Tag = "h5"
	H6        Tag = "h6"
	Paragraph Tag = "p"
	Code      Tag = "code"
	Bold      Tag = "strong"
	Italic    Tag = "em"
)

// Format wraps content in the tag. Code blocks get the <pre><code> wrapping
// that Element renders as a monospace block. Unknown tags return the content
// unchanged.
func (t Tag) Format(content string) string {
	switch t {
	case H1, H2, H3, H4, H5, H6, Paragraph, Bold, Italic:
		return "<" + string(t) + ">" + content + "</" + string(t) + ">"
	case Code:
		return "<pre><code>" + content + "</code></pre>"
	default:
		return content
	}
}

// ReplaceNewlines replaces newlines with <br> so line breaks survive HTML
// rendering.
func ReplaceNewlines(content string) string {
	return strings.ReplaceAll(content, "\n", "<br>")
}

// ReplaceSpaces rewrites runs of two or more ASCII spaces into an alternating
// sequence of literal spaces and &nbsp; entities. A run of n spaces becomes
// n units starting with a literal space, so the rendered width is preserved
// and no two literal spaces end up adjacent (which clients would collapse).
// Single spaces are left untouched.
func ReplaceSpaces(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	i := 0
	for i < len(content) {
		if content[i] != ' ' {
			b.WriteByte(content[i])
			i++
			continue
		}
		run := 0
		for i+run < len(content) && content[i+run] == ' ' {
			run++
		}
		if run == 1 {
			b.WriteByte(' ')
		} else {
			for j := 0; j < run; j++ {
				if j%2 == 0 {
					b.WriteByte(' ')
				} else {
					b.WriteString("&nbsp;")
				}
			}
		}
		i += run
	}
	return b.String()
}

// ReplaceSpacesAndNewlines applies ReplaceSpaces and ReplaceNewlines.
func ReplaceSpacesAndNewlines(content string) string {
	return ReplaceNewlines(ReplaceSpaces(content))
}
