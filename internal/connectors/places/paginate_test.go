package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// pagedServer serves a fixed page sequence keyed by pageToken. Page i
// responds with its items and, unless it is the last page, a token
// pointing at page i+1. Request arrival times are recorded.
type pagedServer struct {
	pages [][]map[string]any
	times []time.Time
	srv   *httptest.Server
}

func newPagedServer(t *testing.T, pages [][]map[string]any) *pagedServer {
	t.Helper()
	ps := &pagedServer{pages: pages}
	ps.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.times = append(ps.times, time.Now())

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		page := 0
		if tok, ok := body["pageToken"].(string); ok && tok != "" {
			_, err := fmt.Sscanf(tok, "page-%d", &page)
			require.NoError(t, err)
		}

		resp := map[string]any{}
		if page < len(ps.pages) {
			resp["places"] = ps.pages[page]
		}
		if page < len(ps.pages)-1 {
			resp["nextPageToken"] = fmt.Sprintf("page-%d", page+1)
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(ps.srv.Close)
	return ps
}

func placePage(prefix string, n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		out[i] = map[string]any{"id": fmt.Sprintf("%s-%d", prefix, i)}
	}
	return out
}

func TestClient_SearchText_Pagination(t *testing.T) {
	mask := domain.NormalizeFieldMask("places.id")
	req := domain.SearchRequest{Query: "coffee in palermo"}

	t.Run("accumulates pages in order until token exhaustion", func(t *testing.T) {
		// Three pages with items, then a final page with no token. The
		// last item page carries the token, so four requests total.
		ps := newPagedServer(t, [][]map[string]any{
			placePage("a", 2),
			placePage("b", 2),
			placePage("c", 1),
			{},
		})

		const interval = 50 * time.Millisecond
		c := NewClient("k", WithBaseURL(ps.srv.URL), WithPageInterval(interval))

		res, err := c.SearchText(context.Background(), req, mask, 10)

		require.NoError(t, err)
		require.Len(t, ps.times, 4)
		assert.Equal(t, 4, res.Pages)
		assert.False(t, res.Truncated)

		var ids []string
		for _, p := range res.Places {
			ids = append(ids, p["id"].(string))
		}
		assert.Equal(t, []string{"a-0", "a-1", "b-0", "b-1", "c-0"}, ids)

		// Exactly three inter-page delays: the first request is
		// immediate, every following one is paced.
		for i := 1; i < len(ps.times); i++ {
			gap := ps.times[i].Sub(ps.times[i-1])
			assert.GreaterOrEqual(t, gap, interval-10*time.Millisecond,
				"request %d should be paced", i+1)
		}
	})

	t.Run("page cap truncates silently with no trailing delay", func(t *testing.T) {
		ps := newPagedServer(t, [][]map[string]any{
			placePage("a", 3),
			placePage("b", 3),
		})

		c := NewClient("k", WithBaseURL(ps.srv.URL), WithPageInterval(300*time.Millisecond))

		start := time.Now()
		res, err := c.SearchText(context.Background(), req, mask, 1)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Len(t, ps.times, 1)
		assert.Len(t, res.Places, 3)
		assert.Equal(t, 1, res.Pages)
		assert.True(t, res.Truncated)
		assert.Less(t, elapsed, 200*time.Millisecond,
			"loop must exit on the page-count condition before pacing")
	})

	t.Run("missing places array is an empty page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewClient("k", WithBaseURL(srv.URL), WithPageInterval(0))

		res, err := c.SearchText(context.Background(), req, mask, 3)

		require.NoError(t, err)
		assert.Empty(t, res.Places)
		assert.Equal(t, 1, res.Pages)
	})

	t.Run("request failure aborts the whole query", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if calls == 1 {
				_, _ = w.Write([]byte(`{"places":[{"id":"a"}],"nextPageToken":"t"}`))
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("boom"))
		}))
		defer srv.Close()

		c := NewClient("k", WithBaseURL(srv.URL), WithPageInterval(0))

		_, err := c.SearchText(context.Background(), req, mask, 5)

		require.Error(t, err)
		assert.True(t, IsUpstream(err))
	})

	t.Run("optional request parameters reach the payload", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewClient("k", WithBaseURL(srv.URL), WithPageInterval(0))
		full := domain.SearchRequest{
			Query:        "asado",
			LanguageCode: "es",
			RegionCode:   "AR",
			LocationBias: map[string]any{"circle": map[string]any{"radius": 500.0}},
		}

		_, err := c.SearchText(context.Background(), full, mask, 1)

		require.NoError(t, err)
		assert.Equal(t, "asado", got["textQuery"])
		assert.Equal(t, "es", got["languageCode"])
		assert.Equal(t, "AR", got["regionCode"])
		assert.Contains(t, got, "locationBias")
	})

	t.Run("invalid page cap", func(t *testing.T) {
		c := NewClient("k")

		_, err := c.SearchText(context.Background(), req, mask, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
