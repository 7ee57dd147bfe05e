// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Hello World", "Hello World"},
		{"nested tags", "<p>Hello <b>World</b></p>", "Hello World"},
		{"entities decoded", "Dungeons &amp; Dragons", "Dungeons & Dragons"},
		{"numeric entity", "caf&#233;", "café"},
		{"whitespace collapsed", "<p>one</p>\n\n<p>two   three</p>", "one two three"},
		{"self-closing and inline tags", "<br/><i>solo</i>", "solo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripTags(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<")
			assert.NotContains(t, got, ">")
		})
	}
}

func TestStripTagsCapsInput(t *testing.T) {
	// Oversized markup is cut before parsing; output stays bounded even when
	// the input is one enormous run of entities.
	in := strings.Repeat("&amp;", 40_000) // 200 KB of markup
	got := StripTags(in)
	assert.LessOrEqual(t, len([]rune(got)), maxStripped)
}

func TestStripTagsCapsOutput(t *testing.T) {
	in := "<p>" + strings.Repeat("a", 20_000) + "</p>"
	got := StripTags(in)
	assert.Len(t, []rune(got), maxStripped)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))

	long := strings.Repeat("x", 400)
	got := Truncate(long, MaxDisplayDescription)
	assert.Len(t, got, MaxDisplayDescription+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}
