package driven

import (
	"context"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// PlaceSearcher retrieves place results from the upstream search API.
// Implementations own the retry policy and the pagination-token
// lifecycle; callers see only the accumulated result.
type PlaceSearcher interface {
	// SearchText runs a paginated Text Search. It fetches pages strictly
	// in continuation order until the token is exhausted or maxPages is
	// reached, and returns all items in upstream return order. Reaching
	// the page cap with a live token is reported via
	// SearchResult.Truncated, not as an error.
	SearchText(ctx context.Context, req domain.SearchRequest, mask domain.FieldMask, maxPages int) (*domain.SearchResult, error)
}
