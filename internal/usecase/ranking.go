package usecase

import (
	"context"
	"sort"

	"github.com/kachieze/whereto/internal/domain"
)

// Carrier factors applied to flight hours.
const (
	// preferredCarrierFactor discounts the flight hours of the preferred carrier by 10%.
	preferredCarrierFactor = 0.9

	// defaultCarrierFactor leaves flight hours unchanged.
	defaultCarrierFactor = 1.0
)

// Distancer returns the distance of an ordered airport pair.
// *DistanceEstimator is the production implementation.
type Distancer interface {
	DistanceBetween(ctx context.Context, origin, destination string) (float64, error)
}

// Ranker scores and sorts the schedules of a single route.
type Ranker struct {
	distances Distancer
}

// NewRanker creates a Ranker that looks up route distances through d.
func NewRanker(d Distancer) *Ranker {
	return &Ranker{distances: d}
}

// Rank scores every schedule, drops those over the hour cap, and sorts the rest best-first.
//
// The score of each schedule is:
//
//	Score = FlightHours × CarrierFactor + Distance
//
// Where:
//   - FlightHours is the signed whole-hour difference between departure and arrival
//   - CarrierFactor is 0.9 for the preferred carrier and 1.0 otherwise
//   - Distance is looked up once, from the first schedule, and applied to the whole batch
//
// Lower score = better schedule.
//
// Behavior:
//   - Every schedule must share the route of schedules[0]; the caller guarantees this
//   - Returns an empty slice for empty input without consulting the distance source
//   - MaxHours is inclusive and compared against the possibly negative flight hours
//   - Ties keep their input order (stable sort)
//   - Does NOT mutate the input; scored records are new values
//   - The only error returned is a failed distance lookup
func (r *Ranker) Rank(ctx context.Context, schedules []domain.Schedule, opts RankOptions) ([]domain.ScoredSchedule, error) {
	if len(schedules) == 0 {
		return []domain.ScoredSchedule{}, nil
	}

	first := schedules[0]
	distance, err := r.distances.DistanceBetween(ctx, first.Origin, first.Destination)
	if err != nil {
		return nil, err
	}

	scored := ScoreSchedules(schedules, distance, opts.PreferredCarrier)
	retained := FilterByMaxHours(scored, opts.MaxHours)

	return SortByScore(retained), nil
}

// ScoreSchedules computes the score of each schedule against a shared distance.
// The result has the same length and order as the input.
func ScoreSchedules(schedules []domain.Schedule, distance float64, preferredCarrier *string) []domain.ScoredSchedule {
	result := make([]domain.ScoredSchedule, len(schedules))
	for i, s := range schedules {
		result[i] = ScoreSchedule(s, distance, preferredCarrier)
	}
	return result
}

// ScoreSchedule builds the scored record of a single schedule.
func ScoreSchedule(s domain.Schedule, distance float64, preferredCarrier *string) domain.ScoredSchedule {
	hours := s.FlightHours()
	return domain.ScoredSchedule{
		Schedule:    s,
		FlightHours: hours,
		Score:       float64(hours)*CarrierFactor(s.Carrier, preferredCarrier) + distance,
	}
}

// CarrierFactor returns the multiplier applied to the flight hours of carrier.
// A nil preference never matches.
func CarrierFactor(carrier string, preferredCarrier *string) float64 {
	if preferredCarrier != nil && carrier == *preferredCarrier {
		return preferredCarrierFactor
	}
	return defaultCarrierFactor
}

// SortByScore returns a copy of scored sorted ascending by Score.
// Uses stable sorting so equal scores keep their relative order.
func SortByScore(scored []domain.ScoredSchedule) []domain.ScoredSchedule {
	result := make([]domain.ScoredSchedule, len(scored))
	copy(result, scored)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score < result[j].Score
	})

	return result
}
