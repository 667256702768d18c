// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// DoWithRetry executes an HTTP request and retries on HTTP 429 (Too Many
// Requests) with exponential backoff. The delay starts at RetryBaseDelay
// (10 s) and doubles each attempt; a Retry-After header larger than the
// computed backoff wins.
//
// When maxRetries is 0 the default (5) is used. If the context is cancelled
// during a backoff wait the function returns ctx.Err(). After exhausting
// retries the last 429 response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		// Drain so the connection can be reused for the retry.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if err := sleep(ctx, backoffDelay(attempt, resp.Header.Get("Retry-After"))); err != nil {
			return nil, err
		}
	}
}

// backoffDelay doubles RetryBaseDelay per attempt; a larger Retry-After
// header value wins.
func backoffDelay(attempt int, retryAfter string) time.Duration {
	d := RetryBaseDelay << attempt
	if ra := parseRetryAfter(retryAfter); ra > d {
		d = ra
	}
	return d
}

// parseRetryAfter interprets a Retry-After header value in seconds.
// Malformed or absent values yield zero.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
