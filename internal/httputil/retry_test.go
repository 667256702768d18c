// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

// rateLimited serves 429 for the first failures requests and 200 afterwards.
type rateLimited struct {
	failures int32
	calls    int32
}

func (rl *rateLimited) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if atomic.AddInt32(&rl.calls, 1) <= rl.failures {
		w.WriteHeader(http.StatusTooManyRequests)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func doGet(t *testing.T, ctx context.Context, ts *httptest.Server, maxRetries int) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	resp, err := DoWithRetry(ctx, ts.Client(), req, maxRetries)
	if resp != nil {
		t.Cleanup(func() { resp.Body.Close() })
	}
	return resp, err
}

func TestDoWithRetry(t *testing.T) {
	tests := []struct {
		name       string
		failures   int32
		maxRetries int
		wantStatus int
		wantCalls  int32
	}{
		{"immediate success", 0, 5, http.StatusOK, 1},
		{"recovers after two 429s", 2, 5, http.StatusOK, 3},
		{"exhausts retries", 99, 3, http.StatusTooManyRequests, 4},
		{"zero means default retries", 99, 0, http.StatusTooManyRequests, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := &rateLimited{failures: tt.failures}
			ts := httptest.NewServer(rl)
			defer ts.Close()

			resp, err := doGet(t, context.Background(), ts, tt.maxRetries)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&rl.calls))
		})
	}
}

func TestDoWithRetry_Non429PassesThrough(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	resp, err := doGet(t, context.Background(), ts, 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDoWithRetry_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(&rateLimited{failures: 99})
	defer ts.Close()

	// A longer base delay so the context cancels during the wait.
	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := doGet(t, ctx, ts, 5)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoWithRetry_HonorsRetryAfterHeader(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// Zero-second hint keeps the test fast while exercising the path.
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	resp, err := doGet(t, context.Background(), ts, 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 0},
		{"5", 5 * time.Second},
		{"0", 0},
		{"-1", 0},
		{"soon", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseRetryAfter(tt.value), "Retry-After %q", tt.value)
	}
}

func TestBackoffDelay(t *testing.T) {
	old := RetryBaseDelay
	RetryBaseDelay = 10 * time.Second
	defer func() { RetryBaseDelay = old }()

	assert.Equal(t, 10*time.Second, backoffDelay(0, ""))
	assert.Equal(t, 40*time.Second, backoffDelay(2, ""))
	// A larger Retry-After hint wins over the computed backoff.
	assert.Equal(t, 60*time.Second, backoffDelay(0, "60"))
	// A smaller one does not shorten the wait.
	assert.Equal(t, 40*time.Second, backoffDelay(2, "5"))
}
