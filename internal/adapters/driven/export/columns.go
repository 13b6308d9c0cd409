package export

import "github.com/custodia-labs/placescout-cli/internal/core/domain"

// commonColumns lead the CSV header when present in any row. Everything
// else follows in first-seen order across the rows.
var commonColumns = []string{
	"id", "resource_name", "display_name", "formatted_address",
	"lat", "lng", "primary_type", "types", "rating",
	"user_ratings_total", "phone", "website",
}

// OrderColumns computes a deterministic column order over the union of
// all rows' columns: the common-column prefix first (only those that
// actually occur), then the remaining columns in the order they are
// first seen scanning rows, then each row's columns, in order.
func OrderColumns(rows []*domain.Record) []string {
	var cols []string
	seen := make(map[string]struct{})

	for _, c := range commonColumns {
		for _, r := range rows {
			if r.Has(c) {
				cols = append(cols, c)
				seen[c] = struct{}{}
				break
			}
		}
	}

	for _, r := range rows {
		for _, c := range r.Columns() {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cols = append(cols, c)
		}
	}

	return cols
}
