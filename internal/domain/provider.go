package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// ScheduleProvider produces the full schedule dataset.
// No filtering or pagination is guaranteed; callers filter by route themselves.
type ScheduleProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// FetchAll returns every schedule record known to the provider.
	// A failure to produce the dataset must be returned as an error, never as an empty slice.
	FetchAll(ctx context.Context) ([]Schedule, error)
}

// DistanceSource computes the distance of an ordered airport pair.
// Implementations return a nonnegative value or an error.
type DistanceSource interface {
	Distance(ctx context.Context, route Route) (float64, error)
}
