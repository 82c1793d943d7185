package http

import (
	"github.com/kachieze/whereto/internal/domain"
)

// ToScheduleDTO converts a ranked schedule to its wire form.
func ToScheduleDTO(s domain.ScoredSchedule) ScheduleDTO {
	hours := s.FlightHours
	score := s.Score
	return ScheduleDTO{
		Origin:        s.Origin,
		Destination:   s.Destination,
		Carrier:       s.Carrier,
		DepartureTime: s.DepartureTime,
		ArrivalTime:   s.ArrivalTime,
		FlightHours:   &hours,
		Score:         &score,
	}
}

// ToScheduleDTOs converts ranked schedules, keeping their order.
// The result is never nil so an empty ranking encodes as [].
func ToScheduleDTOs(scored []domain.ScoredSchedule) []ScheduleDTO {
	result := make([]ScheduleDTO, len(scored))
	for i, s := range scored {
		result[i] = ToScheduleDTO(s)
	}
	return result
}

// ToDomainSelection converts a save request to a domain.Selection.
// Computed fields of the DTOs are ignored.
func ToDomainSelection(req *SaveSelectionRequest) domain.Selection {
	schedules := make([]domain.Schedule, len(req.Schedules))
	for i, s := range req.Schedules {
		schedules[i] = domain.Schedule{
			Origin:        s.Origin,
			Destination:   s.Destination,
			Carrier:       s.Carrier,
			DepartureTime: s.DepartureTime,
			ArrivalTime:   s.ArrivalTime,
		}
	}
	return domain.Selection{Schedules: schedules}
}
