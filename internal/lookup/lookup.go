// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup validates game title queries, performs the single RAWG
// search request, and interprets the response.
package lookup

import (
	"context"

	"github.com/pdiddy/gamedex/pkg/types"
)

// Outcome is the result of one lookup: either a game record, or nothing
// found plus suggestions derived from the query. Exactly one of Game and
// Suggestions is meaningful.
type Outcome struct {
	Game        *types.GameRecord
	Suggestions types.Suggestions
}

// Found reports whether the lookup produced a game record.
func (o Outcome) Found() bool { return o.Game != nil }

// Run executes the pipeline for an already-validated query: one dispatch,
// one interpretation, no retries. Zero results is a normal outcome and comes
// back with suggestions rather than an error.
func Run(ctx context.Context, c *Client, q Query) (Outcome, error) {
	game, err := c.Search(ctx, q.Sanitized)
	if err != nil {
		return Outcome{}, err
	}
	if game == nil {
		return Outcome{Suggestions: Suggest(q)}, nil
	}
	return Outcome{Game: game}, nil
}
