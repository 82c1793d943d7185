package usecase

import (
	"context"
	"time"

	"github.com/kachieze/whereto/internal/domain"
)

// Default timeout and retry values.
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultFetchTimeout   = 2 * time.Second
	DefaultFetchAttempts  = 3
)

// FlightSearchUseCase defines the interface for flight schedule operations.
type FlightSearchUseCase interface {
	// FindFlights ranks the schedules of the query route best-first.
	// Returns domain.ErrNoSchedules when the route has no schedules.
	FindFlights(ctx context.Context, query domain.SearchQuery) ([]domain.ScoredSchedule, error)

	// ListAirports returns the unique airport codes of the dataset.
	ListAirports(ctx context.Context) ([]string, error)

	// ListCarriers returns the unique carrier codes of the dataset.
	ListCarriers(ctx context.Context) ([]string, error)

	// SaveSelection stores a user's schedule selection.
	// Returns domain.ErrUnauthenticated when user is nil.
	SaveSelection(ctx context.Context, user *domain.User, selection domain.Selection) error
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	provider       domain.ScheduleProvider
	directory      *DirectoryCache
	ranker         *Ranker
	requestTimeout time.Duration
}

// Config contains configuration options for the use case.
type Config struct {
	// RequestTimeout bounds a whole FindFlights call
	RequestTimeout time.Duration

	// FetchTimeout bounds a single data provider attempt
	FetchTimeout time.Duration

	// FetchAttempts is the number of provider attempts for retryable failures
	FetchAttempts int

	// RetryDelay overrides the initial backoff between provider attempts
	RetryDelay time.Duration

	// SymmetricDistances makes (A,B) and (B,A) share one distance cache entry
	SymmetricDistances bool

	// Observer receives cache and fetch events; nil disables reporting
	Observer Observer
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
		FetchTimeout:   DefaultFetchTimeout,
		FetchAttempts:  DefaultFetchAttempts,
	}
}

// NewFlightSearchUseCase creates a FlightSearchUseCase over the given data provider and distance source.
// If config is nil, default values are used.
func NewFlightSearchUseCase(provider domain.ScheduleProvider, source domain.DistanceSource, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.RequestTimeout > 0 {
			cfg.RequestTimeout = config.RequestTimeout
		}
		if config.FetchTimeout > 0 {
			cfg.FetchTimeout = config.FetchTimeout
		}
		if config.FetchAttempts > 0 {
			cfg.FetchAttempts = config.FetchAttempts
		}
		cfg.RetryDelay = config.RetryDelay
		cfg.SymmetricDistances = config.SymmetricDistances
		cfg.Observer = config.Observer
	}

	guarded := newGuardedProvider(provider, cfg.FetchTimeout, cfg.FetchAttempts, cfg.RetryDelay, cfg.Observer)

	distanceOpts := []DistanceOption{WithDistanceObserver(cfg.Observer)}
	if cfg.SymmetricDistances {
		distanceOpts = append(distanceOpts, WithSymmetricKeys())
	}

	return &flightSearchUseCase{
		provider:       guarded,
		directory:      NewDirectoryCache(guarded, cfg.Observer),
		ranker:         NewRanker(NewDistanceEstimator(source, distanceOpts...)),
		requestTimeout: cfg.RequestTimeout,
	}
}

// FindFlights implements FlightSearchUseCase.FindFlights.
func (uc *flightSearchUseCase) FindFlights(ctx context.Context, query domain.SearchQuery) ([]domain.ScoredSchedule, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.requestTimeout)
	defer cancel()

	all, err := uc.provider.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	schedules := SchedulesForRoute(all, query.Origin, query.Destination)
	if len(schedules) == 0 {
		return nil, domain.ErrNoSchedules
	}

	return uc.ranker.Rank(ctx, schedules, RankOptions{
		PreferredCarrier: query.PreferredCarrier,
		MaxHours:         query.MaxHours,
	})
}

// ListAirports implements FlightSearchUseCase.ListAirports.
func (uc *flightSearchUseCase) ListAirports(ctx context.Context) ([]string, error) {
	return uc.directory.ListAirports(ctx)
}

// ListCarriers implements FlightSearchUseCase.ListCarriers.
func (uc *flightSearchUseCase) ListCarriers(ctx context.Context) ([]string, error) {
	return uc.directory.ListCarriers(ctx)
}

// SaveSelection implements FlightSearchUseCase.SaveSelection.
// Persistence of selections is not part of this service: authenticated calls
// are answered with domain.ErrNotImplemented.
func (uc *flightSearchUseCase) SaveSelection(ctx context.Context, user *domain.User, selection domain.Selection) error {
	if user == nil || user.ID == "" {
		return domain.ErrUnauthenticated
	}
	return domain.ErrNotImplemented
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
