package domain

import (
	"fmt"
	"time"
)

// RawPlace is one place result exactly as decoded from the upstream
// response: an arbitrary JSON object. It is never mutated after receipt.
type RawPlace = map[string]any

// SearchRequest describes one Text Search invocation.
type SearchRequest struct {
	// Query is the free-text search query.
	Query string

	// LocationBias optionally biases results towards an area. The shape
	// follows the upstream API (circle or rectangle object) and is sent
	// verbatim.
	LocationBias map[string]any

	// LanguageCode optionally selects the response language (e.g. "en").
	LanguageCode string

	// RegionCode optionally selects the result region (e.g. "AR").
	RegionCode string
}

// SearchResult holds the accumulated pages of one paginated search.
type SearchResult struct {
	// Places are the raw result items, in upstream return order across
	// all fetched pages.
	Places []RawPlace

	// Pages is the number of pages actually fetched.
	Pages int

	// Truncated is true when the page cap was reached while the upstream
	// still offered a continuation token. This is a silent truncation,
	// not an error.
	Truncated bool
}

// OutputFormat selects which export files a run produces.
type OutputFormat string

const (
	// FormatCSV writes flattened rows to a CSV file.
	FormatCSV OutputFormat = "csv"

	// FormatJSON writes the raw result document to a JSON file.
	FormatJSON OutputFormat = "json"

	// FormatBoth writes both files.
	FormatBoth OutputFormat = "both"
)

// ParseOutputFormat validates and converts a format selector string.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatCSV, FormatJSON, FormatBoth:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("%w: format must be one of csv, json, both (got %q)", ErrInvalidInput, s)
	}
}

// WantsCSV reports whether the format includes CSV output.
func (f OutputFormat) WantsCSV() bool { return f == FormatCSV || f == FormatBoth }

// WantsJSON reports whether the format includes JSON output.
func (f OutputFormat) WantsJSON() bool { return f == FormatJSON || f == FormatBoth }

// RawExport is the JSON output document for one query, mirroring the raw
// upstream items rather than the flattened rows.
type RawExport struct {
	Query  string     `json:"query"`
	Count  int        `json:"count"`
	Places []RawPlace `json:"places"`
}

// Run is the persisted summary of one completed query run.
type Run struct {
	// ID uniquely identifies the run.
	ID string

	// Query is the text query that was executed.
	Query string

	// Format is the output format selector used.
	Format OutputFormat

	// Pages is the number of result pages fetched.
	Pages int

	// Items is the number of unique places exported.
	Items int

	// Outputs are the paths of the files written.
	Outputs []string

	// StartedAt and EndedAt bound the run's wall-clock duration.
	StartedAt time.Time
	EndedAt   time.Time
}
