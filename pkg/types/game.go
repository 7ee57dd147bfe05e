// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the gamedex lookup pipeline.
package types

// GameRecord describes one game as extracted from the provider's top search
// result. Optional fields stay at their zero value (nil for Rating) when the
// provider omits them; placeholder text is the renderer's job.
type GameRecord struct {
	// Name is the game title as returned by the provider.
	Name string `json:"name" yaml:"name"`

	// Released is the release date string (YYYY-MM-DD), empty if unknown.
	Released string `json:"released,omitempty" yaml:"released,omitempty"`

	// Rating is the provider's aggregate rating on a 0-5 scale, nil if unrated.
	Rating *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`

	// Description is the game description, possibly carrying HTML markup.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// BackgroundImage is the URL of the provider's background artwork.
	BackgroundImage string `json:"background_image,omitempty" yaml:"background_image,omitempty"`
}

// Suggestions holds alternative spellings and general tips offered when a
// query matches nothing. Alternatives are derived from the original query
// and are never re-queried automatically.
type Suggestions struct {
	// Alternatives lists transformed versions of the query worth retrying,
	// most promising first.
	Alternatives []string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`

	// Tips lists general search advice.
	Tips []string `json:"tips,omitempty" yaml:"tips,omitempty"`
}
