// Package retry runs an operation repeatedly with exponential backoff.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int

	// InitialDelay is the wait before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps the wait between two attempts.
	MaxDelay time.Duration

	// Multiplier grows the delay after every failed attempt.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay as random jitter (0.0 to 1.0).
	JitterFactor float64

	// RetryIf decides whether an error may be retried. Nil retries every error.
	RetryIf func(error) bool

	// OnRetry is called before waiting for the next attempt. It is not called
	// after the final attempt or for errors rejected by RetryIf.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// FetchConfig is tuned for loading the schedule dataset.
var FetchConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do executes fn until it succeeds, returns a non-retryable error, exhausts
// MaxAttempts, or ctx is done.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is Do for functions that produce a value.
// The result of the last attempt is returned alongside its error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		wait := backoff(delay, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// backoff computes the wait with jitter, capped at maxDelay when it is set.
func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	wait := delay + jitter

	if maxDelay > 0 && wait > maxDelay {
		wait = maxDelay
	}
	return wait
}

// WithRetryIf returns a copy of c using fn as the retry predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of c with n total attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of c with the given first delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithOnRetry returns a copy of c that reports retries to fn.
func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}
