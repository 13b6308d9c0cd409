package driven

import "github.com/custodia-labs/placescout-cli/internal/core/domain"

// Flattener converts one raw place into a flat export record, driven by
// the requested field mask. Flattening never fails: absent fields,
// wrong-shaped structures and unknown enum tokens degrade to nil/empty
// columns so a single malformed item cannot abort a run.
type Flattener interface {
	// Flatten produces one flat record for the given place. Calling it
	// twice with the same inputs yields identical records.
	Flatten(place domain.RawPlace, mask domain.FieldMask) *domain.Record
}
