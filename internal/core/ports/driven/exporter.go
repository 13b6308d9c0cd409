package driven

import "github.com/custodia-labs/placescout-cli/internal/core/domain"

// Exporter writes run output files. Implementations own column ordering,
// serialisation and directory creation; the core hands over rows and a
// target path.
type Exporter interface {
	// WriteCSV writes a header-plus-rows CSV file with deterministic
	// column order. An empty row set still produces the file.
	WriteCSV(rows []*domain.Record, path string) error

	// WriteJSON writes the raw result document, pretty-printed.
	WriteJSON(doc *domain.RawExport, path string) error
}
