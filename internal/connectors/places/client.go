package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
	"github.com/custodia-labs/placescout-cli/internal/logger"
)

const (
	// DefaultBaseURL is the Places API v1 base endpoint.
	DefaultBaseURL = "https://places.googleapis.com/v1"

	// DefaultTimeout is the per-attempt HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts is the attempt budget for one logical request.
	DefaultMaxAttempts = 5

	// initialBackoff is the delay before the first retry.
	initialBackoff = time.Second

	// maxBackoff caps the doubling backoff delay.
	maxBackoff = 16 * time.Second

	// pageInterval spaces consecutive page fetches so a freshly issued
	// continuation token has time to become valid upstream.
	pageInterval = 2100 * time.Millisecond

	// maxExcerptLen bounds the body excerpt carried by upstream errors.
	maxExcerptLen = 1000
)

// Client talks to the Places API v1 with key auth, field masks and a
// bounded retry policy. A Client is safe for sequential reuse across
// queries; it holds no per-query state.
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	maxAttempts  int
	pageInterval time.Duration

	// sleep is the backoff wait, context-aware. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API base endpoint. Used in tests against
// httptest servers.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient supplies a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxAttempts overrides the per-request attempt budget.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithPageInterval overrides the inter-page pacing delay.
func WithPageInterval(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.pageInterval = d
		}
	}
}

// NewClient creates a Places API client with the resolved API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		maxAttempts:  DefaultMaxAttempts,
		pageInterval: pageInterval,
		sleep:        sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request performs one logical POST to baseURL/path with the field mask
// and API key headers, retrying transient failures with exponential
// backoff. On success it returns the decoded JSON object.
func (c *Client) request(ctx context.Context, path string, payload map[string]any, mask domain.FieldMask) (map[string]any, error) {
	url := c.baseURL + "/" + path

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	backoff := initialBackoff
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		req.Header.Set("X-Goog-FieldMask", mask.Header())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("posting %s: %w", path, err)
		}

		data, readErr := readBody(resp)
		if readErr != nil {
			return nil, fmt.Errorf("reading response from %s: %w", path, readErr)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var parsed map[string]any
			if err := json.Unmarshal(data, &parsed); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, excerpt(data, 500))
			}
			return parsed, nil

		case IsRetryableStatus(resp.StatusCode):
			logger.Debug("Transient %d from %s (attempt %d/%d), backing off %s",
				resp.StatusCode, path, attempt, c.maxAttempts, backoff)
			if attempt == c.maxAttempts {
				return nil, &RetriesExhaustedError{Endpoint: url}
			}
			if err := c.sleep(ctx, backoff); err != nil {
				return nil, err
			}
			backoff = min(backoff*2, maxBackoff)

		default:
			return nil, &googleapi.Error{
				Code: resp.StatusCode,
				Body: excerpt(data, maxExcerptLen),
			}
		}
	}

	return nil, &RetriesExhaustedError{Endpoint: url}
}

// readBody drains and closes the response body.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// excerpt truncates a response body for diagnostics.
func excerpt(data []byte, limit int) string {
	if len(data) > limit {
		data = data[:limit]
	}
	return string(data)
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
