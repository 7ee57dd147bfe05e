// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// maxHTMLInput caps the markup fed to the parser, measured before any
	// entity decoding so pathological entity expansion cannot blow up memory.
	maxHTMLInput = 50_000

	// maxStripped caps the plain text kept after stripping.
	maxStripped = 5_000
)

// StripTags removes HTML markup and decodes entities, returning plain text
// with whitespace collapsed. Unparseable input falls back to the raw text.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	if len(s) > maxHTMLInput {
		s = s[:maxHTMLInput]
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return capRunes(collapseWhitespace(s), maxStripped)
	}
	return capRunes(collapseWhitespace(doc.Text()), maxStripped)
}

// collapseWhitespace folds all runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// capRunes cuts s to at most max runes, without an ellipsis marker.
func capRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// Truncate cuts s to at most max runes, appending "..." when anything was
// dropped.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
