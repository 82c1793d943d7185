// Package usecase provides the business logic for flight schedule ranking.
package usecase

import (
	"github.com/kachieze/whereto/internal/domain"
)

// SchedulesForRoute selects the schedules flying exactly the given route.
//
// Behavior:
//   - Origin and destination must both match exactly (case-sensitive)
//   - Relative order of the input is preserved (stable filter, not a sort)
//   - An empty result is returned as an empty, non-nil slice and is not an error
//   - Does NOT mutate the input slice
//   - Performance is O(n) where n = number of schedules
func SchedulesForRoute(schedules []domain.Schedule, origin, destination string) []domain.Schedule {
	result := make([]domain.Schedule, 0, len(schedules))

	for _, s := range schedules {
		if s.Origin == origin && s.Destination == destination {
			result = append(result, s)
		}
	}

	return result
}

// FilterByMaxHours keeps scored schedules whose flight hours do not exceed maxHours.
// Returns all schedules if maxHours is nil. The cap is inclusive and is compared
// against the signed flight hours, so negative durations always pass a nonnegative cap.
func FilterByMaxHours(scored []domain.ScoredSchedule, maxHours *float64) []domain.ScoredSchedule {
	if maxHours == nil {
		return scored
	}

	result := make([]domain.ScoredSchedule, 0, len(scored))
	for _, s := range scored {
		if float64(s.FlightHours) <= *maxHours {
			result = append(result, s)
		}
	}
	return result
}
