package usecase

import "time"

// RankOptions contains the optional parameters of a ranking run.
type RankOptions struct {
	// PreferredCarrier receives the carrier discount; nil means no preference
	PreferredCarrier *string

	// MaxHours caps flight hours (inclusive); nil means no cap
	MaxHours *float64
}

// DefaultRankOptions returns RankOptions with no preference and no cap.
func DefaultRankOptions() RankOptions {
	return RankOptions{}
}

// Cache names reported to an Observer.
const (
	CacheDistance  = "distance"
	CacheDirectory = "directory"
)

// Observer receives operational events from the use case layer.
// Implementations must be safe for concurrent use.
type Observer interface {
	// CacheLookup records a memoization lookup and whether it was served from the store.
	CacheLookup(cache string, hit bool)

	// DataFetch records a call to the schedule data provider.
	DataFetch(provider string, duration time.Duration, err error)
}

// nopObserver discards all events.
type nopObserver struct{}

func (nopObserver) CacheLookup(string, bool) {}
func (nopObserver) DataFetch(string, time.Duration, error) {}

// observerOrNop returns o, or a no-op observer when o is nil.
func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
