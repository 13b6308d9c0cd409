// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PlaceSearcher: paginated Text Search retrieval from the upstream API
//   - Flattener: converts one raw place into a flat export record
//   - Exporter: writes CSV/JSON output files
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: run-history persistence. Without it, completed runs are
//     simply not recorded.
//   - ConfigStore: application configuration defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
