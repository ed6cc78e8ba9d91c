// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP plumbing for the text-generation client.
package httputil

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/pdiddy/template-mimic/internal/logger"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

// maxRetryAfter caps a server-supplied Retry-After delay.
const maxRetryAfter = 2 * time.Minute

const defaultMaxRetries = 5

// RateLimitTransport retries requests answered with HTTP 429 (Too Many
// Requests). It waits for the server's Retry-After when given, otherwise
// RetryBaseDelay doubled each attempt: 10 s, 20 s, 40 s, ...
//
// Request bodies are replayed through Request.GetBody, so only requests
// built with a rewindable body are retried. After MaxRetries the last 429
// response is returned so the caller can inspect it.
type RateLimitTransport struct {
	// Base performs the requests; nil means http.DefaultTransport.
	Base http.RoundTripper

	// MaxRetries is the number of retries after the first attempt; 0 means 5.
	MaxRetries int
}

// NewClient returns an http.Client whose transport retries rate-limited
// requests up to maxRetries times.
func NewClient(maxRetries int) *http.Client {
	return &http.Client{Transport: &RateLimitTransport{MaxRetries: maxRetries}}
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	maxRetries := t.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	ctx := req.Context()
	for attempt := 0; ; attempt++ {
		attemptReq := req
		if attempt > 0 {
			clone, err := rewind(req)
			if err != nil {
				return nil, err
			}
			attemptReq = clone
		}

		resp, err := base.RoundTrip(attemptReq)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Exhausted retries, or the body cannot be replayed.
		if attempt >= maxRetries || (req.Body != nil && req.GetBody == nil) {
			return resp, nil
		}

		backoff := retryDelay(resp.Header.Get("Retry-After"), attempt)

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		logger.ForComponent("httputil").Debug("rate limited, retrying",
			"url", req.URL.Redacted(), "backoff", backoff, "attempt", attempt+1, "max", maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// rewind clones req with a fresh copy of its body.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewinding request body: %w", err)
		}
		clone.Body = body
	}
	return clone, nil
}

// retryDelay honors a Retry-After value in seconds and falls back to
// exponential backoff from RetryBaseDelay.
func retryDelay(retryAfter string, attempt int) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		return min(time.Duration(secs)*time.Second, maxRetryAfter)
	}
	return time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
}
