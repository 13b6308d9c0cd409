package places

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrMalformedResponse indicates the upstream returned HTTP 200 with a
// body that could not be parsed as JSON. Retrying a malformed-but-200
// response is assumed futile, so this is terminal.
var ErrMalformedResponse = errors.New("places: malformed response body")

// RetriesExhaustedError indicates a transient upstream failure persisted
// past the attempt budget.
type RetriesExhaustedError struct {
	Endpoint string
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("places: exhausted retries on %s", e.Endpoint)
}

// retryableStatuses are the HTTP statuses treated as transient.
var retryableStatuses = map[int]struct{}{
	429: {},
	500: {},
	502: {},
	503: {},
	504: {},
}

// IsRetryableStatus reports whether an HTTP status is worth retrying.
func IsRetryableStatus(code int) bool {
	_, ok := retryableStatuses[code]
	return ok
}

// IsUpstream reports whether err is a permanent upstream API error.
func IsUpstream(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr)
}

// UpstreamStatus returns the HTTP status carried by a permanent upstream
// error, or 0 when err is not one.
func UpstreamStatus(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// IsRetriesExhausted reports whether err indicates an exhausted retry
// budget.
func IsRetriesExhausted(err error) bool {
	var rerr *RetriesExhaustedError
	return errors.As(err, &rerr)
}
