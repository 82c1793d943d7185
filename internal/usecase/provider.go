package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/infrastructure/logger"
	"github.com/kachieze/whereto/internal/infrastructure/retry"
)

// guardedProvider decorates a ScheduleProvider with a per-attempt timeout,
// retries of retryable failures, and panic recovery.
type guardedProvider struct {
	provider domain.ScheduleProvider
	timeout  time.Duration
	retry    retry.Config
	observer Observer
}

// newGuardedProvider wraps p. attempts <= 1 disables retries; a zero retryDelay
// keeps the backoff of retry.FetchConfig.
func newGuardedProvider(p domain.ScheduleProvider, timeout time.Duration, attempts int, retryDelay time.Duration, observer Observer) *guardedProvider {
	if attempts <= 0 {
		attempts = 1
	}
	cfg := retry.FetchConfig.
		WithMaxAttempts(attempts).
		WithRetryIf(domain.IsRetryable).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			logger.Warn().
				Err(err).
				Str("provider", p.Name()).
				Int("attempt", attempt).
				Dur("backoff", wait).
				Msg("Schedule fetch failed, retrying")
		})
	if retryDelay > 0 {
		cfg = cfg.WithInitialDelay(retryDelay)
	}
	return &guardedProvider{
		provider: p,
		timeout:  timeout,
		retry:    cfg,
		observer: observerOrNop(observer),
	}
}

// Name returns the name of the wrapped provider.
func (g *guardedProvider) Name() string {
	return g.provider.Name()
}

// FetchAll fetches the dataset, retrying retryable provider errors with backoff.
// Provider failures are always returned; an empty dataset is only returned when
// the provider genuinely produced one.
func (g *guardedProvider) FetchAll(ctx context.Context) ([]domain.Schedule, error) {
	return retry.DoWithResult(ctx, func() ([]domain.Schedule, error) {
		return g.fetchOnce(ctx)
	}, g.retry)
}

// fetchOnce performs a single provider call under the per-attempt timeout.
func (g *guardedProvider) fetchOnce(ctx context.Context) (schedules []domain.Schedule, err error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	name := g.provider.Name()

	// Panic recovery to turn a misbehaving provider into an ordinary error
	defer func() {
		if r := recover(); r != nil {
			schedules = nil
			err = domain.NewProviderError(name, fmt.Errorf("provider panic: %v", r))
		}
		g.observer.DataFetch(name, time.Since(start), err)
	}()

	schedules, err = g.provider.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !domain.IsProviderTimeout(err) {
			return nil, domain.NewProviderTimeoutError(name)
		}
		return nil, err
	}
	if schedules == nil {
		schedules = []domain.Schedule{}
	}
	return schedules, nil
}

// Ensure guardedProvider implements domain.ScheduleProvider at compile time.
var _ domain.ScheduleProvider = (*guardedProvider)(nil)
