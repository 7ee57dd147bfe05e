// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gamedex/internal/httputil"
	"github.com/pdiddy/gamedex/pkg/types"
)

// rawgAPIBase is the RAWG game-search endpoint. Declared as a var so tests
// can substitute an httptest server.
var rawgAPIBase = "https://api.rawg.io/api/games"

// searchPageSize keeps provider payloads small; only the first result is used.
const searchPageSize = 5

// Client queries the RAWG metadata API.
type Client struct {
	HTTP      *http.Client
	APIKey    string
	UserAgent string
	Log       zerolog.Logger
}

// NewClient builds a RAWG client from the run configuration.
func NewClient(cfg types.RunConfig, log zerolog.Logger) *Client {
	return &Client{
		HTTP:      httputil.NewClient(cfg.Timeout),
		APIKey:    cfg.APIKey,
		UserAgent: cfg.UserAgent,
		Log:       log,
	}
}

// Search performs the single provider request for title and maps the top
// result into a GameRecord. A nil record with a nil error means the provider
// returned zero results. The credential travels only in the query string and
// is never logged.
func (c *Client) Search(ctx context.Context, title string) (*types.GameRecord, error) {
	params := url.Values{
		"key":       {c.APIKey},
		"search":    {title},
		"page_size": {strconv.Itoa(searchPageSize)},
	}
	reqURL := rawgAPIBase + "?" + params.Encode()

	c.Log.Debug().
		Str("endpoint", rawgAPIBase).
		Str("search", title).
		Str("key", "[REDACTED]").
		Msg("querying provider")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, types.WrapError(types.FailInvalidQuery, err, "building provider request")
	}
	req.Header.Set("User-Agent", c.UserAgent)

	body, err := httputil.Fetch(c.HTTP, req)
	if err != nil {
		return nil, err
	}

	var rr rawgResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, types.WrapError(types.FailProvider, err, "parsing provider response")
	}
	if rr.Results == nil {
		return nil, types.NewError(types.FailProvider, "provider response has no results field")
	}

	c.Log.Debug().Int("count", rr.Count).Int("returned", len(rr.Results)).Msg("provider responded")

	if len(rr.Results) == 0 {
		return nil, nil
	}
	return mapGame(rr.Results[0]), nil
}

// mapGame extracts the fields of interest from the top result. Absent
// optional fields stay at their zero value; placeholders belong to the
// renderer.
func mapGame(g rawgGame) *types.GameRecord {
	rec := &types.GameRecord{
		Name:            g.Name,
		Released:        g.Released,
		Description:     g.Description,
		BackgroundImage: g.BackgroundImage,
	}
	if g.Rating > 0 {
		r := g.Rating
		rec.Rating = &r
	}
	return rec
}

// RAWG API JSON structures.
type rawgResponse struct {
	Count   int        `json:"count"`
	Results []rawgGame `json:"results"`
}

type rawgGame struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Released        string  `json:"released"`
	Rating          float64 `json:"rating"`
	Description     string  `json:"description"`
	BackgroundImage string  `json:"background_image"`
}
