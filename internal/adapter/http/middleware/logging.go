package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerConfig configures the request logging middleware.
type LoggerConfig struct {
	// QuietPaths are logged at debug level when they succeed (probes, scrapes)
	QuietPaths []string
}

// RequestLogger returns middleware that logs one line per completed request.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(log, LoggerConfig{})
}

// RequestLoggerWithConfig returns request logging middleware with custom configuration.
//
// A child of log carrying the request ID is stored in the request context before the
// handler runs, so handlers can log through logger.FromContext. The completion line
// is written at error level for 5xx, warn for 4xx and info otherwise.
func RequestLoggerWithConfig(log zerolog.Logger, config LoggerConfig) echo.MiddlewareFunc {
	quiet := make(map[string]struct{}, len(config.QuietPaths))
	for _, p := range config.QuietPaths {
		quiet[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := GetRequestID(c)

			req := c.Request()
			reqLog := log.With().Str("request_id", reqID).Logger()
			c.SetRequest(req.WithContext(reqLog.WithContext(req.Context())))

			if err := next(c); err != nil {
				c.Error(err)
			}

			res := c.Response()
			status := res.Status

			var event *zerolog.Event
			switch _, isQuiet := quiet[req.URL.Path]; {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			case isQuiet:
				event = reqLog.Debug()
			default:
				event = reqLog.Info()
			}

			if user := UserFromContext(c); user != nil {
				event = event.Str("user_id", user.ID)
			}

			event.
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
