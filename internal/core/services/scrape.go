package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/placescout-cli/internal/logger"
)

// defaultMaxPages applies when the caller does not cap pagination.
const defaultMaxPages = 3

// Ensure ScrapeService implements the interface.
var _ driving.ScrapeService = (*ScrapeService)(nil)

// ScrapeService runs text-search queries end to end: fetch, dedupe,
// flatten, export, and record the run in history.
type ScrapeService struct {
	searcher  driven.PlaceSearcher
	flattener driven.Flattener
	exporter  driven.Exporter
	runs      driven.RunStore // optional

	// now and newID are injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewScrapeService creates a scrape service. The run store is optional
// (can be nil); runs are then not recorded.
func NewScrapeService(
	searcher driven.PlaceSearcher,
	flattener driven.Flattener,
	exporter driven.Exporter,
	runs driven.RunStore,
) *ScrapeService {
	return &ScrapeService{
		searcher:  searcher,
		flattener: flattener,
		exporter:  exporter,
		runs:      runs,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Run executes one query end to end and returns a summary of what was
// written.
func (s *ScrapeService) Run(
	ctx context.Context, query string, opts driving.ScrapeOptions,
) (*domain.Run, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if opts.Fields == "" {
		return nil, fmt.Errorf("%w: empty field selection", domain.ErrInvalidInput)
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	logger.Section("Query Execution")
	logger.Info("Query: %q", query)

	mask := domain.NormalizeFieldMask(opts.Fields)
	logger.Debug("Field mask: %s", mask.Header())

	startedAt := s.now().UTC()

	result, err := s.searcher.SearchText(ctx, domain.SearchRequest{
		Query:        query,
		LanguageCode: opts.LanguageCode,
		RegionCode:   opts.RegionCode,
	}, mask, maxPages)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	places := dedupePlaces(result.Places)
	logger.Info("Fetched %d places over %d page(s), %d after dedupe",
		len(result.Places), result.Pages, len(places))
	if result.Truncated {
		logger.Warn("Page cap reached with more results available")
	}

	base := domain.FileBase(query, startedAt)
	var outputs []string

	if opts.Format.WantsCSV() {
		rows := make([]*domain.Record, 0, len(places))
		for _, p := range places {
			rows = append(rows, s.flattener.Flatten(p, mask))
		}
		path := filepath.Join(opts.OutDir, base+".csv")
		if err := s.exporter.WriteCSV(rows, path); err != nil {
			return nil, fmt.Errorf("exporting %q: %w", query, err)
		}
		outputs = append(outputs, path)
	}

	if opts.Format.WantsJSON() {
		doc := &domain.RawExport{
			Query:  query,
			Count:  len(places),
			Places: places,
		}
		path := filepath.Join(opts.OutDir, base+".json")
		if err := s.exporter.WriteJSON(doc, path); err != nil {
			return nil, fmt.Errorf("exporting %q: %w", query, err)
		}
		outputs = append(outputs, path)
	}

	run := &domain.Run{
		ID:        s.newID(),
		Query:     query,
		Format:    opts.Format,
		Pages:     result.Pages,
		Items:     len(places),
		Outputs:   outputs,
		StartedAt: startedAt,
		EndedAt:   s.now().UTC(),
	}

	// History is best effort; a failed write must not fail the run.
	if s.runs != nil {
		if err := s.runs.RecordRun(ctx, run); err != nil {
			logger.Warn("Recording run history: %v", err)
		}
	}

	return run, nil
}

// RunAll executes queries in order, stopping at the first failure.
func (s *ScrapeService) RunAll(
	ctx context.Context, queries []string, opts driving.ScrapeOptions,
) ([]domain.Run, error) {
	runs := make([]domain.Run, 0, len(queries))
	for _, q := range queries {
		run, err := s.Run(ctx, q, opts)
		if err != nil {
			return runs, err
		}
		runs = append(runs, *run)
	}
	return runs, nil
}

// dedupePlaces drops repeat items, keeping the first occurrence. The
// upstream API occasionally repeats a place across page boundaries;
// identity is the "id" field, falling back to the "name" resource name.
func dedupePlaces(places []domain.RawPlace) []domain.RawPlace {
	seen := make(map[string]bool, len(places))
	out := make([]domain.RawPlace, 0, len(places))
	for _, p := range places {
		key, _ := p["id"].(string)
		if key == "" {
			key, _ = p["name"].(string)
		}
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, p)
	}
	return out
}
