// Package middleware provides HTTP middleware for cross-cutting concerns.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = echo.HeaderXRequestID

	requestIDKey = "request_id"

	// maxRequestIDLength bounds client supplied IDs.
	maxRequestIDLength = 128
)

// RequestID returns middleware that tags each request with an ID.
// A well-formed X-Request-ID from the client is kept; otherwise a UUID is generated.
// The ID is stored in the echo context and echoed in the response header.
func RequestID() echo.MiddlewareFunc {
	return RequestIDWithGenerator(uuid.NewString)
}

// RequestIDWithGenerator is RequestID with a custom ID generator.
func RequestIDWithGenerator(generate func() string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = generate()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the request ID, or "" when RequestID did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// validRequestID accepts non-empty printable ASCII without spaces.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
