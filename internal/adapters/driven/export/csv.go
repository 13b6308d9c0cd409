package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/core/ports/driven"
)

// Ensure FileExporter implements the port.
var _ driven.Exporter = (*FileExporter)(nil)

// FileExporter writes run output to the local filesystem.
type FileExporter struct{}

// NewFileExporter creates a FileExporter.
func NewFileExporter() *FileExporter { return &FileExporter{} }

// WriteCSV writes rows as a header-plus-rows CSV file at path, creating
// parent directories as needed. Column order comes from OrderColumns.
// An empty row set still creates the file, empty.
func (e *FileExporter) WriteCSV(rows []*domain.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if len(rows) == 0 {
		return nil
	}

	cols := OrderColumns(rows)

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	cells := make([]string, len(cols))
	for _, r := range rows {
		for i, c := range cols {
			v, _ := r.Get(c)
			cells[i] = formatCell(v)
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// formatCell renders one record value as CSV text. Absent and nil both
// render empty; integral floats render without a fractional part.
func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
