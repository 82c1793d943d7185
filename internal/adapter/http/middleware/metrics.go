package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// unmatchedPath labels requests that matched no route.
const unmatchedPath = "unmatched"

// HTTPRecorder records the outcome of an HTTP request.
// *metrics.Metrics is the production implementation.
type HTTPRecorder interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Metrics returns middleware that reports every request to recorder.
// Requests are labeled by route template, not raw URL path.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = unmatchedPath
			}
			recorder.ObserveHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
