// Package domain contains the core business entities and rules for the flight schedule ranking system.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// Schedule represents a single flight offering for a route, carrier and time pair.
type Schedule struct {
	// Origin is the airport code of the departure airport (e.g., "LOS")
	Origin string `json:"origin"`

	// Destination is the airport code of the arrival airport (e.g., "ABV")
	Destination string `json:"destination"`

	// Carrier is the operating carrier code (e.g., "W3")
	Carrier string `json:"carrier"`

	// DepartureTime is the scheduled departure time
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the scheduled arrival time
	ArrivalTime time.Time `json:"arrivalTime"`
}

// Route returns the ordered origin/destination pair of the schedule.
func (s Schedule) Route() Route {
	return Route{Origin: s.Origin, Destination: s.Destination}
}

// FlightHours returns the signed number of whole hours between departure and arrival.
// The fractional part is truncated toward zero; the result is negative when arrival precedes departure.
func (s Schedule) FlightHours() int {
	return int(s.ArrivalTime.Sub(s.DepartureTime) / time.Hour)
}

// ScoredSchedule is a Schedule together with the values computed by the ranking engine.
// It is always a new value; the source Schedule is never modified.
type ScoredSchedule struct {
	Schedule

	// FlightHours is the signed whole-hour duration used in the score
	FlightHours int `json:"flightHours"`

	// Score is the ranking metric; lower is better
	Score float64 `json:"score"`
}

// Route is an ordered pair of airport codes.
// Route{A, B} and Route{B, A} are different routes.
type Route struct {
	Origin      string
	Destination string
}

// Reversed returns the route flown in the opposite direction.
func (r Route) Reversed() Route {
	return Route{Origin: r.Destination, Destination: r.Origin}
}

// String formats the route as "ORIGIN-DESTINATION".
func (r Route) String() string {
	return r.Origin + "-" + r.Destination
}
