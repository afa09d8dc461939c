package iohttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/errcode"
	"github.com/gnames/pandata/pkg/pandata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(retries int, waits *[]time.Duration) *fetcher {
	cfg := config.New().Pangaea
	cfg.Retries = retries
	f := New(cfg).(*fetcher)
	f.sleep = func(_ context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
	return f
}

// TestGet_Headers verifies accept, auth and user agent headers.
func TestGet_Headers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, pandata.AcceptData, r.Header.Get("Accept"))
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Contains(t, r.Header.Get("User-Agent"), "pandata/")
			w.Header().Set("Content-Type", "text/tab-separated-values")
			_, _ = w.Write([]byte("a\tb\n"))
		}))
	defer srv.Close()

	var waits []time.Duration
	f := newTestFetcher(1, &waits)
	resp, err := f.Get(context.Background(), pandata.Request{
		URL:       srv.URL,
		Accept:    pandata.AcceptData,
		AuthToken: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/tab-separated-values", resp.ContentType())
	assert.Equal(t, "a\tb\n", string(resp.Body))
	assert.Empty(t, waits)
}

// TestGet_NoAuth verifies that anonymous requests have no
// Authorization header.
func TestGet_NoAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNotFound)
		}))
	defer srv.Close()

	var waits []time.Duration
	f := newTestFetcher(1, &waits)
	resp, err := f.Get(context.Background(), pandata.Request{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestGet_Retry verifies 429 handling.
func TestGet_Retry(t *testing.T) {
	tests := []struct {
		name     string
		retries  int
		failures int32
		header   string
		status   int
		calls    int32
		waits    []time.Duration
	}{
		{"retried once", 1, 1, "2", http.StatusOK, 2, []time.Duration{2 * time.Second}},
		{"zero becomes one second", 1, 1, "0", http.StatusOK, 2, []time.Duration{time.Second}},
		{"no header", 1, 1, "", http.StatusOK, 2, []time.Duration{defaultRetryAfter}},
		{"exhausted", 1, 2, "1", http.StatusTooManyRequests, 2, []time.Duration{time.Second}},
		{"no retries", 0, 1, "1", http.StatusTooManyRequests, 1, nil},
		{"two retries", 2, 2, "3", http.StatusOK, 3,
			[]time.Duration{3 * time.Second, 3 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					if calls.Add(1) <= tt.failures {
						if tt.header != "" {
							w.Header().Set("Retry-After", tt.header)
						}
						w.WriteHeader(http.StatusTooManyRequests)
						return
					}
					_, _ = w.Write([]byte("ok"))
				}))
			defer srv.Close()

			var waits []time.Duration
			f := newTestFetcher(tt.retries, &waits)
			resp, err := f.Get(context.Background(), pandata.Request{URL: srv.URL})
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.calls, calls.Load())
			assert.Equal(t, tt.waits, waits)
		})
	}
}

// TestGet_TransportError verifies that unreachable hosts give
// HTTPRequestError.
func TestGet_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var waits []time.Duration
	f := newTestFetcher(1, &waits)
	resp, err := f.Get(context.Background(), pandata.Request{URL: url})
	assert.Nil(t, resp)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.HTTPRequestError, gnErr.Code)
}

// TestGet_Canceled verifies that waiting honors the context.
func TestGet_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
	defer srv.Close()

	f := New(config.New().Pangaea).(*fetcher)
	ctx, cancel := context.WithCancel(context.Background())
	f.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return sleep(ctx, d)
	}
	_, err := f.Get(ctx, pandata.Request{URL: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err.(*gn.Error).Err, context.Canceled)
}
