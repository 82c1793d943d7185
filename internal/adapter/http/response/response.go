// Package response provides the HTTP response builders of the whereto API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Error is a human-readable error message
	Error string `json:"error" example:"origin is required and must be string"`

	// Details contains field-specific messages for validation errors
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is a plain informational body.
type MessageResponse struct {
	Message string `json:"message" example:"welcome to whereto"`
}

// Error messages used in API responses.
const (
	MsgWelcome        = "welcome to whereto"
	MsgNoSchedules    = "No flight schedules available"
	MsgSaveForbidden  = "Sorry, saving of flights is only available to registered users"
	MsgNotImplemented = "Saving of flights is not available yet"
	MsgInvalidBody    = "Failed to parse request body"
	MsgTimeout        = "Request timed out"
	MsgInternalError  = "An unexpected error occurred"
)

// JSON writes data with the given status code.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Error writes an error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &ErrorResponse{Error: message})
}
