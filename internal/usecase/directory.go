package usecase

import (
	"context"
	"sync"

	"github.com/kachieze/whereto/internal/domain"
)

// DirectoryCache derives the unique airport and carrier codes of the dataset.
//
// Both sets are built by a single scan of the full dataset on the first call to
// either method and are kept for the lifetime of the cache; they are never
// invalidated. Concurrent first calls may each fetch and scan the dataset.
// The result is identical, so the last writer simply replaces an equal value.
// A failed fetch is returned to the caller and nothing is cached.
type DirectoryCache struct {
	provider domain.ScheduleProvider
	observer Observer

	mu       sync.RWMutex
	loaded   bool
	airports []string
	carriers []string
}

// NewDirectoryCache creates a DirectoryCache that scans the dataset of provider.
func NewDirectoryCache(provider domain.ScheduleProvider, observer Observer) *DirectoryCache {
	return &DirectoryCache{
		provider: provider,
		observer: observerOrNop(observer),
	}
}

// ListAirports returns every airport code seen as an origin or destination,
// deduplicated, in first-seen order.
func (d *DirectoryCache) ListAirports(ctx context.Context) ([]string, error) {
	airports, _, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	return airports, nil
}

// ListCarriers returns every carrier code in the dataset, deduplicated, in first-seen order.
func (d *DirectoryCache) ListCarriers(ctx context.Context) ([]string, error) {
	_, carriers, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	return carriers, nil
}

// load returns copies of the cached sets, populating them on first use.
func (d *DirectoryCache) load(ctx context.Context) (airports, carriers []string, err error) {
	d.mu.RLock()
	if d.loaded {
		airports, carriers = cloneCodes(d.airports), cloneCodes(d.carriers)
		d.mu.RUnlock()
		d.observer.CacheLookup(CacheDirectory, true)
		return airports, carriers, nil
	}
	d.mu.RUnlock()
	d.observer.CacheLookup(CacheDirectory, false)

	schedules, err := d.provider.FetchAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	airports, carriers = buildDirectory(schedules)

	d.mu.Lock()
	d.airports, d.carriers, d.loaded = airports, carriers, true
	d.mu.Unlock()

	return cloneCodes(airports), cloneCodes(carriers), nil
}

// buildDirectory scans schedules once and collects the unique codes.
func buildDirectory(schedules []domain.Schedule) (airports, carriers []string) {
	airports = make([]string, 0)
	carriers = make([]string, 0)
	seenAirports := make(map[string]struct{})
	seenCarriers := make(map[string]struct{})

	addUnique := func(list []string, seen map[string]struct{}, code string) []string {
		if _, ok := seen[code]; ok {
			return list
		}
		seen[code] = struct{}{}
		return append(list, code)
	}

	for _, s := range schedules {
		airports = addUnique(airports, seenAirports, s.Origin)
		airports = addUnique(airports, seenAirports, s.Destination)
		carriers = addUnique(carriers, seenCarriers, s.Carrier)
	}
	return airports, carriers
}

func cloneCodes(codes []string) []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
