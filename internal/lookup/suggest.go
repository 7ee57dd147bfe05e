// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"strings"
	"unicode"

	"github.com/pdiddy/gamedex/pkg/types"
)

// prefixWords is how many leading words the shortened-prefix heuristic keeps.
const prefixWords = 3

// longTitleLen marks a query as long enough to suggest shortening it.
const longTitleLen = 50

// trademarkGlyphs are stripped when deriving alternative spellings.
const trademarkGlyphs = "™®©" // ™ ® ©

// Suggest derives alternative title spellings from the original query plus
// general search tips. Alternatives are offered to the user, never
// re-queried automatically.
func Suggest(q Query) types.Suggestions {
	base := strings.Join(strings.Fields(q.Raw), " ")

	var alts []string
	add := func(candidate string) {
		candidate = strings.Join(strings.Fields(candidate), " ")
		if candidate == "" || candidate == q.Sanitized {
			return
		}
		for _, existing := range alts {
			if existing == candidate {
				return
			}
		}
		alts = append(alts, candidate)
	}

	add(stripRunes(base, func(r rune) bool {
		return strings.ContainsRune(trademarkGlyphs, r)
	}))
	add(stripRunes(base, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}))
	if words := strings.Fields(base); len(words) > prefixWords {
		add(strings.Join(words[:prefixWords], " "))
	}

	tips := []string{
		"Check if the game name is spelled correctly",
		"Try using the official game title",
		"Remove any special characters or symbols",
		"Try a shorter or more specific name",
	}
	if len([]rune(base)) > longTitleLen {
		tips = append(tips, "Try a shorter version of the game name")
	}
	if strings.ContainsAny(base, trademarkGlyphs) {
		tips = append(tips, "Remove trademark symbols (™, ®, ©)")
	}

	return types.Suggestions{Alternatives: alts, Tips: tips}
}

// stripRunes removes runes matching drop from s.
func stripRunes(s string, drop func(rune) bool) string {
	var b strings.Builder
	for _, r := range s {
		if !drop(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
