package domain

import "strings"

const (
	// TokenField is the bare spelling of the pagination-continuation field.
	// It must always be part of the field mask so the upstream API returns
	// the token for subsequent pages.
	TokenField = "nextPageToken"

	// FieldPrefix is the namespace the Text Search API uses for place
	// fields ("places.id", "places.location", ...).
	FieldPrefix = "places."
)

// FieldMask is an ordered, duplicate-free list of field paths to request
// from the upstream API. The continuation-token field is always present.
// A FieldMask is built once per logical query and never mutated afterward.
type FieldMask struct {
	fields []string
}

// NormalizeFieldMask parses a comma-separated field specification into a
// FieldMask. Segments are trimmed and empties dropped; the namespaced
// spelling of the continuation field ("places.nextPageToken") is
// canonicalised to the bare name, which is inserted at the front when the
// caller did not request it. Duplicates are removed preserving
// first-occurrence order. A malformed or empty spec yields a mask holding
// only the continuation field.
func NormalizeFieldMask(raw string) FieldMask {
	var norm []string
	haveToken := false
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if f == FieldPrefix+TokenField {
			f = TokenField
		}
		if f == TokenField {
			haveToken = true
		}
		norm = append(norm, f)
	}
	if !haveToken {
		norm = append([]string{TokenField}, norm...)
	}

	seen := make(map[string]struct{}, len(norm))
	fields := make([]string, 0, len(norm))
	for _, f := range norm {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return FieldMask{fields: fields}
}

// Fields returns a copy of the normalised field list in order.
func (m FieldMask) Fields() []string {
	out := make([]string, len(m.fields))
	copy(out, m.fields)
	return out
}

// Header returns the comma-joined form suitable for the
// X-Goog-FieldMask request header.
func (m FieldMask) Header() string {
	return strings.Join(m.fields, ",")
}

// Len returns the number of fields in the mask.
func (m FieldMask) Len() int {
	return len(m.fields)
}

// Want reports whether key was requested, tolerating the presence or
// absence of the "places." namespace prefix: "location" and
// "places.location" denote the same logical field.
func (m FieldMask) Want(key string) bool {
	for _, f := range m.fields {
		if f == key || f == FieldPrefix+key {
			return true
		}
	}
	return false
}

// PlaceFields returns the mask's place-level field paths: the
// continuation field is dropped and the "places." prefix stripped, with
// duplicates that collapse under stripping removed. Order is preserved.
// This is the field list the flattener operates on.
func (m FieldMask) PlaceFields() []string {
	seen := make(map[string]struct{}, len(m.fields))
	out := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		if f == TokenField {
			continue
		}
		f = strings.TrimPrefix(f, FieldPrefix)
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
