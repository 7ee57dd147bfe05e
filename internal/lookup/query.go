// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/gamedex/pkg/types"
)

// maxTitleLen bounds the accepted game title length, in runes.
const maxTitleLen = 100

// Query holds the requested game title in raw and sanitized form. The raw
// value feeds the suggestion heuristics; the sanitized value is what goes
// on the wire.
type Query struct {
	Raw       string
	Sanitized string
}

// asciiReplacements maps typographic characters users paste from store pages
// to their ASCII equivalents.
var asciiReplacements = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "-", // em dash
)

// NewQuery validates and sanitizes a game title. Internal whitespace is
// collapsed, smart quotes and dashes become ASCII, and control characters
// are rejected so nothing unprintable reaches the HTTP query string.
// Trademark glyphs pass through; the suggestion heuristics inspect them
// when a search comes back empty.
func NewQuery(raw string) (Query, error) {
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" {
		return Query{}, types.NewError(types.FailEmptyQuery, "game title cannot be empty")
	}
	if utf8.RuneCountInString(collapsed) > maxTitleLen {
		return Query{}, types.NewError(types.FailInvalidQuery,
			"game title is too long (max %d characters)", maxTitleLen)
	}

	sanitized := asciiReplacements.Replace(collapsed)
	for _, r := range sanitized {
		if unicode.IsControl(r) {
			return Query{}, types.NewError(types.FailInvalidQuery,
				"game title contains control characters")
		}
	}

	return Query{Raw: raw, Sanitized: sanitized}, nil
}
