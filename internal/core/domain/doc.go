// Package domain defines the core business entities for Placescout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FieldMask: the normalised whitelist of place fields to request
//   - RawPlace: one untyped place result as returned by the upstream API
//   - Record: a flat, insertion-ordered column/value row for export
//   - SearchRequest / SearchResult: one text-search invocation and its pages
//   - Run: the persisted summary of one completed query run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
