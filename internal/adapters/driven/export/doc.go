// Package export writes run output files: CSV with a deterministic
// column order, and pretty-printed JSON of the raw result document.
// File naming comes from domain.FileBase.
package export
