package http

import (
	"time"
)

// ScheduleDTO is the wire form of a schedule.
// FlightHours and Score are only set on ranked results.
type ScheduleDTO struct {
	Origin        string    `json:"origin" example:"LOS"`
	Destination   string    `json:"destination" example:"ABV"`
	Carrier       string    `json:"carrier" example:"W3"`
	DepartureTime time.Time `json:"departureTime" example:"2023-07-01T06:00:00Z"`
	ArrivalTime   time.Time `json:"arrivalTime" example:"2023-07-01T07:10:00Z"`
	FlightHours   *int      `json:"flightHours,omitempty" example:"1"`
	Score         *float64  `json:"score,omitempty" example:"301.9"`
}
