package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kachieze/whereto/internal/adapter/http/middleware"
	"github.com/kachieze/whereto/internal/adapter/http/response"
	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/infrastructure/logger"
	"github.com/kachieze/whereto/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// FindFlights handles GET /find-flights
//
// @Summary Rank the flight schedules of a route
// @Description Scores every schedule of the route and returns them best-first. The preferred carrier gets a 10% discount on flight hours.
// @Tags flights
// @Produce json
// @Param origin query string true "Origin airport code" example(LOS)
// @Param destination query string true "Destination airport code" example(ABV)
// @Param carrier query string true "Preferred carrier code" example(W3)
// @Param max_hours query number false "Inclusive cap on flight hours" example(8)
// @Success 200 {array} ScheduleDTO
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 404 {object} response.ErrorResponse "No schedules for the route"
// @Failure 500 {object} response.ErrorResponse "Data provider failure"
// @Router /find-flights [get]
func (h *FlightHandler) FindFlights(c echo.Context) error {
	var req FindFlightsRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	query := req.ToSearchQuery()
	ctx := c.Request().Context()

	scored, err := h.useCase.FindFlights(ctx, query)
	if err != nil {
		return h.handleError(c, err)
	}

	logger.FromContext(ctx).WithRoute(query.Origin, query.Destination).Debug().
		Int("results", len(scored)).
		Msg("Ranked route schedules")

	return response.OK(c, ToScheduleDTOs(scored))
}

// ListAirports handles GET /airports
//
// @Summary List airport codes
// @Description Returns every airport code of the dataset, deduplicated, in first-seen order
// @Tags directory
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} response.ErrorResponse "Data provider failure"
// @Router /airports [get]
func (h *FlightHandler) ListAirports(c echo.Context) error {
	airports, err := h.useCase.ListAirports(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Codes(c, airports)
}

// ListCarriers handles GET /carriers
//
// @Summary List carrier codes
// @Description Returns every carrier code of the dataset, deduplicated, in first-seen order
// @Tags directory
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} response.ErrorResponse "Data provider failure"
// @Router /carriers [get]
func (h *FlightHandler) ListCarriers(c echo.Context) error {
	carriers, err := h.useCase.ListCarriers(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Codes(c, carriers)
}

// SaveSelection handles POST /flights/saved
//
// @Summary Save a schedule selection
// @Description Only available to registered users
// @Tags flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveSelectionRequest true "Schedules to keep"
// @Success 204 "Selection saved"
// @Failure 400 {object} response.ErrorResponse "Malformed body"
// @Failure 403 {object} response.ErrorResponse "No authenticated user"
// @Failure 501 {object} response.ErrorResponse "Saving is not available"
// @Router /flights/saved [post]
func (h *FlightHandler) SaveSelection(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return response.Forbidden(c, response.MsgSaveForbidden)
	}

	var req SaveSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := h.useCase.SaveSelection(c.Request().Context(), user, ToDomainSelection(&req)); err != nil {
		return h.handleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Welcome handles GET /
//
// @Summary Greeting
// @Tags system
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router / [get]
func (h *FlightHandler) Welcome(c echo.Context) error {
	return response.Welcome(c)
}

// Health handles GET /health
// Simple health check endpoint.
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.Error(), validationErrs.ToMap())
	}
	return response.BadRequest(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
// Unclassified failures become 500 with a generic message.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsInvalidRequest(err):
		return response.BadRequest(c, err.Error())
	case domain.IsNoSchedules(err):
		return response.NoSchedules(c)
	case domain.IsUnauthenticated(err):
		return response.Forbidden(c, response.MsgSaveForbidden)
	case errors.Is(err, domain.ErrNotImplemented):
		return response.NotImplemented(c)
	}

	log := logger.FromContext(c.Request().Context())
	log.Error().Err(err).Str("path", c.Path()).Msg("Request failed")

	if domain.IsProviderTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return response.InternalServerErrorWithMessage(c, response.MsgTimeout)
	}
	return response.InternalServerError(c)
}
