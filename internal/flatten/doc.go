// Package flatten converts nested, variably-shaped place results into
// flat export records.
//
// The flattener is mask-driven: only requested fields are read. A fixed
// dispatch table binds each recognised field to either a direct column
// mapping or a structure expander (viewport, opening hours, price range,
// plus code, address components, reviews). Requested fields outside the
// table fall through to a generic rule that resolves the dotted path
// against the raw item and serialises structured values to a JSON string
// under a "_json"-suffixed column, so nothing requested silently
// disappears from the output.
//
// Flattening is pure and total: absent fields, wrong-shaped structures
// and unknown enum tokens degrade to nil columns rather than errors, and
// flattening the same item with the same mask twice yields identical
// records.
package flatten
