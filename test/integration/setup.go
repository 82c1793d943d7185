// Package integration provides helpers and integration tests for the whereto system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, and data adapters.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kachieze/whereto/internal/adapter/distance"
	httpAdapter "github.com/kachieze/whereto/internal/adapter/http"
	"github.com/kachieze/whereto/internal/adapter/http/middleware"
	"github.com/kachieze/whereto/internal/adapter/http/response"
	"github.com/kachieze/whereto/internal/adapter/provider/jsonfile"
	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a new test server with the given use case and the base middleware.
func NewTestServer(uc usecase.FlightSearchUseCase) *TestServer {
	return NewTestServerWithConfig(uc, middleware.Config{})
}

// NewTestServerWithConfig creates a test server with optional metrics and authentication middleware.
func NewTestServerWithConfig(uc usecase.FlightSearchUseCase, config middleware.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupWithConfig(e, zerolog.Nop(), config)

	handler := httpAdapter.NewFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Token       string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// FindFlights makes a GET /find-flights request with the given query parameters.
func (ts *TestServer) FindFlights(params map[string]string) Response {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/find-flights?" + query.Encode(),
	})
}

// AirportsRequest makes a GET /airports request.
func (ts *TestServer) AirportsRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/airports"})
}

// CarriersRequest makes a GET /carriers request.
func (ts *TestServer) CarriersRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/carriers"})
}

// SaveRequest makes a POST /flights/saved request; an empty token sends no Authorization header.
func (ts *TestServer) SaveRequest(token string, body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/flights/saved",
		Body:   body,
		Token:  token,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSchedules parses the response body as a ranked schedule list.
func (r *Response) ParseSchedules() ([]httpAdapter.ScheduleDTO, error) {
	var schedules []httpAdapter.ScheduleDTO
	if err := json.Unmarshal(r.Body, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// ParseCodes parses the response body as a list of airport or carrier codes.
func (r *Response) ParseCodes() ([]string, error) {
	var codes []string
	if err := json.Unmarshal(r.Body, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// ParseError parses the response body as an error response.
func (r *Response) ParseError() (*response.ErrorResponse, error) {
	var errResp response.ErrorResponse
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// RouteParams returns the query parameters of a search for origin-destination preferring carrier.
func RouteParams(origin, destination, carrier string) map[string]string {
	return map[string]string{
		"origin":      origin,
		"destination": destination,
		"carrier":     carrier,
	}
}

// FastConfig returns a use case configuration with short timeouts and backoff.
func FastConfig() *usecase.Config {
	return &usecase.Config{
		RequestTimeout: 2 * time.Second,
		FetchTimeout:   500 * time.Millisecond,
		FetchAttempts:  3,
		RetryDelay:     time.Millisecond,
	}
}

// CreateUseCase creates a use case over provider and source with FastConfig.
func CreateUseCase(provider domain.ScheduleProvider, source domain.DistanceSource) usecase.FlightSearchUseCase {
	return usecase.NewFlightSearchUseCase(provider, source, FastConfig())
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(provider domain.ScheduleProvider, source domain.DistanceSource, config *usecase.Config) usecase.FlightSearchUseCase {
	return usecase.NewFlightSearchUseCase(provider, source, config)
}

// CreateFileBackedUseCase creates a use case reading schedules from a JSON file
// and distances from a CSV table, the way the server is wired in production.
func CreateFileBackedUseCase(schedulesPath, distancesPath string, config *usecase.Config) (usecase.FlightSearchUseCase, error) {
	table, err := distance.LoadTable(distancesPath)
	if err != nil {
		return nil, err
	}
	return usecase.NewFlightSearchUseCase(jsonfile.NewAdapter(schedulesPath), table, config), nil
}
