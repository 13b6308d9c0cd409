// Package places implements the Google Places API v1 Text Search
// connector.
//
// The connector comprises two layers:
//
//   - Client.request: one logical POST with a bounded exponential-backoff
//     retry policy for transient upstream failures (429 and 5xx). Backoff
//     starts at one second, doubles per attempt and is capped at sixteen
//     seconds. Permanent failures (any other status >= 400, or a 200 with
//     an unparseable body) terminate the request immediately.
//
//   - Client.SearchText: the pagination loop. It drives request calls
//     with the continuation token from each response, accumulating the
//     "places" array of every page. Consecutive pages are paced 2.1
//     seconds apart because a freshly issued nextPageToken takes a
//     moment to become valid upstream; this is a token-validity
//     affordance, not a rate limiter.
//
// # Authentication
//
// The API uses key-based authentication via the X-Goog-Api-Key header.
// APIKeyFromEnv resolves the key from the environment
// (GOOGLE_PLACES_API_KEY, GOOGLE_API_KEY, then API_KEY); the client
// itself receives the resolved key as a plain string and never reads the
// environment.
//
// # Field Masks
//
// Every request carries an X-Goog-FieldMask header naming the fields the
// response should populate. Masks are normalised once per query by
// domain.NormalizeFieldMask, which guarantees the nextPageToken
// continuation field is always requested.
//
// # Error Handling
//
// The connector distinguishes:
//
//   - Transient upstream failures (429, 500, 502, 503, 504): retried
//     with backoff up to the attempt budget, then *RetriesExhaustedError.
//   - Permanent upstream failures (other >= 400): *googleapi.Error
//     carrying the status code and a truncated body excerpt.
//   - Malformed success responses (200, unparseable body):
//     ErrMalformedResponse, never retried.
//
// A request-layer error aborts the whole query; there is no
// partial-result salvage across pages.
package places
