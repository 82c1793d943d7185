package jsonfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/infrastructure/logger"
	"github.com/kachieze/whereto/internal/infrastructure/timeutil"
)

// scheduleRecord is one element of the dataset array.
type scheduleRecord struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Carrier       string `json:"carrier"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

// normalize converts records to domain schedules, keeping file order.
func normalize(records []scheduleRecord, loc *time.Location) []domain.Schedule {
	result := make([]domain.Schedule, 0, len(records))

	for i, r := range records {
		s, err := normalizeRecord(r, loc)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("provider", ProviderName).
				Int("index", i).
				Msg("Skipping invalid schedule record")
			continue
		}
		result = append(result, s)
	}

	return result
}

// normalizeRecord validates and converts a single record.
func normalizeRecord(r scheduleRecord, loc *time.Location) (domain.Schedule, error) {
	origin := strings.TrimSpace(r.Origin)
	destination := strings.TrimSpace(r.Destination)
	carrier := strings.TrimSpace(r.Carrier)

	switch {
	case origin == "":
		return domain.Schedule{}, fmt.Errorf("missing origin")
	case destination == "":
		return domain.Schedule{}, fmt.Errorf("missing destination")
	case carrier == "":
		return domain.Schedule{}, fmt.Errorf("missing carrier")
	}

	departure, err := timeutil.ParseTimestamp(r.DepartureTime, loc)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("departure time: %w", err)
	}

	arrival, err := timeutil.ParseTimestamp(r.ArrivalTime, loc)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("arrival time: %w", err)
	}

	return domain.Schedule{
		Origin:        origin,
		Destination:   destination,
		Carrier:       carrier,
		DepartureTime: departure,
		ArrivalTime:   arrival,
	}, nil
}
