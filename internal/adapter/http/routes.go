package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all whereto API routes.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware attached to each API endpoint.
// The health check is registered without middleware.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	e.GET("/", h.Welcome, middleware...)
	e.GET("/airports", h.ListAirports, middleware...)
	e.GET("/carriers", h.ListCarriers, middleware...)
	e.GET("/find-flights", h.FindFlights, middleware...)
	e.POST("/flights/saved", h.SaveSelection, middleware...)
}
