// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm talks to the external text-generation service. Callers depend
// on the Generator and RemoteAnalyzer interfaces so tests can supply mocks;
// OpenAIBackend implements both against the OpenAI Responses API.
package llm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pdiddy/template-mimic/internal/analyze"
)

// Generator produces a paragraph from a generation instruction.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RemoteAnalyzer asks the service for the structural analysis of a
// template. The reply is unvalidated; callers pass it through
// analyze.Normalize.
type RemoteAnalyzer interface {
	AnalyzeTemplate(ctx context.Context, text string) (analyze.RawAnalysis, error)
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// WithRetry wraps g so each call is retried up to maxRetries times with
// exponential backoff. maxRetries <= 0 returns g unchanged.
func WithRetry(g Generator, maxRetries int) Generator {
	if maxRetries <= 0 {
		return g
	}
	return retryGenerator{next: g, maxRetries: maxRetries}
}

// WithAnalyzerRetry is WithRetry for a RemoteAnalyzer.
func WithAnalyzerRetry(a RemoteAnalyzer, maxRetries int) RemoteAnalyzer {
	if maxRetries <= 0 {
		return a
	}
	return retryAnalyzer{next: a, maxRetries: maxRetries}
}

type retryGenerator struct {
	next       Generator
	maxRetries int
}

func (r retryGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return callWithRetry(ctx, r.maxRetries, func() (string, error) {
		return r.next.Generate(ctx, prompt)
	})
}

type retryAnalyzer struct {
	next       RemoteAnalyzer
	maxRetries int
}

func (r retryAnalyzer) AnalyzeTemplate(ctx context.Context, text string) (analyze.RawAnalysis, error) {
	return callWithRetry(ctx, r.maxRetries, func() (analyze.RawAnalysis, error) {
		return r.next.AnalyzeTemplate(ctx, text)
	})
}

func callWithRetry[T any](ctx context.Context, maxRetries int, call func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
			}
		}

		v, err := call()
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return zero, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
