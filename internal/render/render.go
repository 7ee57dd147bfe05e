// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats lookup outcomes as fixed-layout text, JSON, or YAML.
// It only ever writes to the writer it is handed.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gamedex/pkg/types"
)

// MaxDisplayDescription bounds the description block in the text report.
const MaxDisplayDescription = 300

const bannerWidth = 50

// WriteReport renders a game record as the fixed-layout text report.
// Absent optional fields render as placeholders; the background image URL
// is passed through unmodified.
func WriteReport(w io.Writer, g types.GameRecord) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Game: %s\n", g.Name)
	fmt.Fprintln(w, banner)

	if g.Released != "" {
		fmt.Fprintf(w, "Released: %s\n", g.Released)
	} else {
		fmt.Fprintln(w, "Released: Unknown")
	}

	if g.Rating != nil {
		fmt.Fprintf(w, "Rating: %s/5\n", strconv.FormatFloat(*g.Rating, 'f', -1, 64))
	} else {
		fmt.Fprintln(w, "Rating: Not rated")
	}

	if g.Description != "" {
		fmt.Fprintln(w, "\nDescription:")
		fmt.Fprintln(w, Truncate(StripTags(g.Description), MaxDisplayDescription))
	}

	if g.BackgroundImage != "" {
		fmt.Fprintf(w, "\nBackground Image: %s\n", g.BackgroundImage)
	}
}

// WriteNotFound renders the zero-result report with alternative spellings
// and general tips.
func WriteNotFound(w io.Writer, title string, s types.Suggestions) {
	fmt.Fprintf(w, "\nNo game found matching '%s'.\n", title)

	if len(s.Alternatives) > 0 {
		fmt.Fprintln(w, "\nTry:")
		for _, alt := range s.Alternatives {
			fmt.Fprintf(w, "- %s\n", alt)
		}
	}

	if len(s.Tips) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, tip := range s.Tips {
			fmt.Fprintf(w, "- %s\n", tip)
		}
	}
}

// WriteJSON emits v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML emits v as YAML.
func WriteYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
