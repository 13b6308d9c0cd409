package places

import (
	"context"
	"fmt"
	"maps"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driven"
)

// searchTextPath is the method-specific path for Text Search.
const searchTextPath = "places:searchText"

// Ensure Client implements the searcher port.
var _ driven.PlaceSearcher = (*Client)(nil)

// SearchText runs a paginated Text Search for req, accumulating the raw
// place items of every page in order. Pagination stops when the upstream
// stops returning a continuation token or maxPages is reached; the
// latter with a live token is silent truncation, reported via
// SearchResult.Truncated.
func (c *Client) SearchText(ctx context.Context, req domain.SearchRequest, mask domain.FieldMask, maxPages int) (*domain.SearchResult, error) {
	payload := map[string]any{"textQuery": req.Query}
	if len(req.LocationBias) > 0 {
		payload["locationBias"] = req.LocationBias
	}
	if req.LanguageCode != "" {
		payload["languageCode"] = req.LanguageCode
	}
	if req.RegionCode != "" {
		payload["regionCode"] = req.RegionCode
	}

	return c.paginate(ctx, searchTextPath, payload, mask, maxPages)
}

// paginate drives repeated request calls using the continuation token.
// Each search owns its own pagination state; repeated identical queries
// make identical full re-fetches.
func (c *Client) paginate(ctx context.Context, path string, payload map[string]any, mask domain.FieldMask, maxPages int) (*domain.SearchResult, error) {
	if maxPages < 1 {
		return nil, fmt.Errorf("%w: maxPages must be positive (got %d)", domain.ErrInvalidInput, maxPages)
	}

	// Burst 1 makes the first Wait immediate; every later Wait spaces
	// pages pageInterval apart while the token becomes valid.
	// rate.Every(0) is rate.Inf, which disables pacing in tests.
	pacer := rate.NewLimiter(rate.Every(c.pageInterval), 1)

	result := &domain.SearchResult{}
	token := ""

	for result.Pages < maxPages {
		if err := pacer.Wait(ctx); err != nil {
			return nil, err
		}

		body := maps.Clone(payload)
		if token != "" {
			body["pageToken"] = token
		}

		data, err := c.request(ctx, path, body, mask)
		if err != nil {
			return nil, err
		}

		// Missing "places" means an empty page, not a failure.
		if items, ok := data["places"].([]any); ok {
			for _, item := range items {
				if place, ok := item.(map[string]any); ok {
					result.Places = append(result.Places, place)
				}
			}
		}
		result.Pages++

		token, _ = data["nextPageToken"].(string)
		if token == "" {
			return result, nil
		}
	}

	// Page cap reached with a live token: truncation the caller must be
	// aware of, but not an error.
	result.Truncated = true
	return result, nil
}
