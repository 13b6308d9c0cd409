package driven

import (
	"context"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// RunStore persists summaries of completed query runs.
type RunStore interface {
	// RecordRun stores one completed run.
	RecordRun(ctx context.Context, run *domain.Run) error

	// ListRuns returns the most recent runs, newest first.
	// limit <= 0 applies a default.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	// Close releases the underlying storage.
	Close() error
}
