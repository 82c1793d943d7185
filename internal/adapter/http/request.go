// Package http provides the HTTP handler layer for the whereto API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"math"
	"strconv"
	"strings"

	"github.com/kachieze/whereto/internal/domain"
)

// Query parameter names of GET /find-flights.
const (
	paramOrigin      = "origin"
	paramDestination = "destination"
	paramCarrier     = "carrier"
	paramMaxHours    = "max_hours"
)

// FindFlightsRequest holds the raw query parameters of a flight search.
// Airport and carrier codes are taken as given; matching is case-sensitive.
type FindFlightsRequest struct {
	// Origin is the departure airport code (e.g., "LOS")
	Origin string `query:"origin"`

	// Destination is the arrival airport code (e.g., "ABV")
	Destination string `query:"destination"`

	// Carrier is the preferred carrier code (e.g., "W3")
	Carrier string `query:"carrier"`

	// MaxHours is the optional inclusive cap on flight hours, as sent by the client
	MaxHours string `query:"max_hours"`

	maxHours *float64
}

// SaveSelectionRequest is the body of POST /flights/saved.
type SaveSelectionRequest struct {
	Schedules []ScheduleDTO `json:"schedules"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the required parameters and parses max_hours.
// Errors are reported in parameter order: origin, destination, carrier, max_hours.
func (r *FindFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateRequired(errs, paramOrigin, r.Origin)
	r.validateRequired(errs, paramDestination, r.Destination)
	r.validateRequired(errs, paramCarrier, r.Carrier)
	r.validateMaxHours(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *FindFlightsRequest) validateRequired(errs *ValidationErrors, name, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(name, name+" is required and must be string")
	}
}

// validateMaxHours accepts any finite number, including 0 and negative values.
// An absent or empty parameter means no cap.
func (r *FindFlightsRequest) validateMaxHours(errs *ValidationErrors) {
	r.maxHours = nil

	raw := strings.TrimSpace(r.MaxHours)
	if raw == "" {
		return
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		errs.Add(paramMaxHours, paramMaxHours+" is required and must be number")
		return
	}
	r.maxHours = &value
}

// ToSearchQuery converts a validated request to a domain.SearchQuery.
func (r *FindFlightsRequest) ToSearchQuery() domain.SearchQuery {
	carrier := r.Carrier
	return domain.SearchQuery{
		Origin:           r.Origin,
		Destination:      r.Destination,
		PreferredCarrier: &carrier,
		MaxHours:         r.maxHours,
	}
}
