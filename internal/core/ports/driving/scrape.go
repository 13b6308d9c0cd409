package driving

import (
	"context"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// ScrapeOptions configures one scrape run.
type ScrapeOptions struct {
	// Fields is the raw comma-separated field specification. Normalised
	// once per run and reused across all pages.
	Fields string

	// MaxPages caps the number of result pages fetched per query.
	MaxPages int

	// Format selects which output files are written.
	Format domain.OutputFormat

	// OutDir is the directory output files are written into.
	OutDir string

	// LanguageCode and RegionCode are passed through to the upstream API
	// when non-empty.
	LanguageCode string
	RegionCode   string
}

// ScrapeService runs text-search queries and exports the results.
type ScrapeService interface {
	// Run executes one query end to end: fetch, dedupe, flatten, export.
	// The returned Run summarises what was written.
	Run(ctx context.Context, query string, opts ScrapeOptions) (*domain.Run, error)

	// RunAll executes queries in order, stopping at the first failure.
	// Runs completed before the failure are returned alongside the error.
	RunAll(ctx context.Context, queries []string, opts ScrapeOptions) ([]domain.Run, error)
}
