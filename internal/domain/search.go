package domain

import "fmt"

// SearchQuery defines the parameters for ranking the schedules of a single route.
type SearchQuery struct {
	// Origin is the departure airport code
	Origin string `json:"origin"`

	// Destination is the arrival airport code
	Destination string `json:"destination"`

	// PreferredCarrier receives the carrier discount when set
	PreferredCarrier *string `json:"carrier,omitempty"`

	// MaxHours excludes schedules with more flight hours when set (inclusive cap)
	MaxHours *float64 `json:"maxHours,omitempty"`
}

// Route returns the route addressed by the query.
func (q SearchQuery) Route() Route {
	return Route{Origin: q.Origin, Destination: q.Destination}
}

// Validate checks that the query addresses a route.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q SearchQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	return nil
}

// User is an authenticated caller identity.
type User struct {
	ID string `json:"id"`
}

// Selection is a set of schedules a user asked to keep.
type Selection struct {
	Schedules []Schedule `json:"schedules"`
}
