// Package mock provides test doubles for the whereto system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/kachieze/whereto/internal/domain"
)

// Provider is a configurable mock implementation of domain.ScheduleProvider.
// It supports configurable delays, errors, and responses for testing
// timeouts, retries, and provider failures.
type Provider struct {
	name       string
	schedules  []domain.Schedule
	err        error
	failures   []error
	delay      time.Duration
	panicValue interface{}
	callCount  int
	mu         sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithSchedules configures the provider to return the given schedules.
func (p *Provider) WithSchedules(schedules []domain.Schedule) *Provider {
	p.schedules = schedules
	return p
}

// WithError configures the provider to return the given error on every call.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithFailures configures the provider to return errs on its first calls,
// one per call, before behaving normally.
func (p *Provider) WithFailures(errs ...error) *Provider {
	p.failures = errs
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithPanic configures the provider to panic with v on every call.
func (p *Provider) WithPanic(v interface{}) *Provider {
	p.panicValue = v
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// FetchAll implements domain.ScheduleProvider.FetchAll.
// It respects context cancellation, applies configured delay,
// and returns configured schedules or error.
func (p *Provider) FetchAll(ctx context.Context) ([]domain.Schedule, error) {
	p.mu.Lock()
	p.callCount++
	call := p.callCount
	p.mu.Unlock()

	if p.panicValue != nil {
		panic(p.panicValue)
	}

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if call <= len(p.failures) {
		return nil, p.failures[call-1]
	}
	if p.err != nil {
		return nil, p.err
	}

	result := make([]domain.Schedule, len(p.schedules))
	copy(result, p.schedules)
	return result, nil
}

// CallCount returns the number of times FetchAll was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.ScheduleProvider at compile time.
var _ domain.ScheduleProvider = (*Provider)(nil)

// DistanceSource is a mock domain.DistanceSource with per-route values.
// Routes without a value are answered with the default distance.
type DistanceSource struct {
	mu        sync.Mutex
	distances map[domain.Route]float64
	fallback  float64
	err       error
	calls     map[domain.Route]int
}

// NewDistanceSource creates a DistanceSource answering every route with fallback.
func NewDistanceSource(fallback float64) *DistanceSource {
	return &DistanceSource{
		distances: make(map[domain.Route]float64),
		fallback:  fallback,
		calls:     make(map[domain.Route]int),
	}
}

// WithDistance sets the distance of the ordered pair origin-destination.
func (s *DistanceSource) WithDistance(origin, destination string, d float64) *DistanceSource {
	s.distances[domain.Route{Origin: origin, Destination: destination}] = d
	return s
}

// WithError makes every lookup fail with err.
func (s *DistanceSource) WithError(err error) *DistanceSource {
	s.err = err
	return s
}

// Distance implements domain.DistanceSource.Distance.
func (s *DistanceSource) Distance(ctx context.Context, route domain.Route) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[route]++
	if s.err != nil {
		return 0, s.err
	}
	if d, ok := s.distances[route]; ok {
		return d, nil
	}
	return s.fallback, nil
}

// Calls returns the number of lookups of the ordered pair origin-destination.
func (s *DistanceSource) Calls(origin, destination string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[domain.Route{Origin: origin, Destination: destination}]
}

// Ensure DistanceSource implements domain.DistanceSource at compile time.
var _ domain.DistanceSource = (*DistanceSource)(nil)

// SampleSchedules returns one schedule per carrier on the route origin-destination.
// The i-th carrier departs at 06:00 UTC plus i hours and flies i+1 hours.
func SampleSchedules(origin, destination string, carriers ...string) []domain.Schedule {
	schedules := make([]domain.Schedule, len(carriers))

	baseTime := time.Date(2023, 7, 1, 6, 0, 0, 0, time.UTC)

	for i, carrier := range carriers {
		departure := baseTime.Add(time.Duration(i) * time.Hour)
		schedules[i] = domain.Schedule{
			Origin:        origin,
			Destination:   destination,
			Carrier:       carrier,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(time.Duration(i+1) * time.Hour),
		}
	}

	return schedules
}
