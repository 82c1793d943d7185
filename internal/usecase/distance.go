package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/kachieze/whereto/internal/domain"
)

// DistanceEstimator memoizes the distances produced by a domain.DistanceSource.
//
// Lifecycle: entries are populated on the first miss for a route and live for the
// lifetime of the estimator; there is no eviction and no expiry.
//
// Keys are ordered pairs: (A,B) and (B,A) are computed and stored independently
// unless the estimator was built WithSymmetricKeys.
//
// Concurrent misses for the same route may each call the source; the first value
// stored wins and is returned to every later caller.
type DistanceEstimator struct {
	source    domain.DistanceSource
	symmetric bool
	observer  Observer

	mu        sync.RWMutex
	distances map[domain.Route]float64
}

// DistanceOption configures a DistanceEstimator.
type DistanceOption func(*DistanceEstimator)

// WithSymmetricKeys makes (A,B) and (B,A) share one cache entry.
func WithSymmetricKeys() DistanceOption {
	return func(e *DistanceEstimator) {
		e.symmetric = true
	}
}

// WithDistanceObserver reports cache hits and misses to o.
func WithDistanceObserver(o Observer) DistanceOption {
	return func(e *DistanceEstimator) {
		e.observer = observerOrNop(o)
	}
}

// NewDistanceEstimator creates an estimator backed by source.
func NewDistanceEstimator(source domain.DistanceSource, opts ...DistanceOption) *DistanceEstimator {
	e := &DistanceEstimator{
		source:    source,
		observer:  nopObserver{},
		distances: make(map[domain.Route]float64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DistanceBetween returns the distance from origin to destination.
// Source errors are returned as-is and are not cached.
func (e *DistanceEstimator) DistanceBetween(ctx context.Context, origin, destination string) (float64, error) {
	key := e.key(origin, destination)

	e.mu.RLock()
	d, ok := e.distances[key]
	e.mu.RUnlock()
	if ok {
		e.observer.CacheLookup(CacheDistance, true)
		return d, nil
	}
	e.observer.CacheLookup(CacheDistance, false)

	d, err := e.source.Distance(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("distance %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("distance %s: source returned negative value %v", key, d)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if existing, ok := e.distances[key]; ok {
		return existing, nil
	}
	e.distances[key] = d
	return d, nil
}

// Len returns the number of memoized routes.
func (e *DistanceEstimator) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.distances)
}

func (e *DistanceEstimator) key(origin, destination string) domain.Route {
	if e.symmetric && destination < origin {
		return domain.Route{Origin: destination, Destination: origin}
	}
	return domain.Route{Origin: origin, Destination: destination}
}
