package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config holds the optional parts of the middleware stack.
type Config struct {
	// Logger configures request logging
	Logger LoggerConfig

	// Recovery configures panic recovery
	Recovery RecoveryConfig

	// Recorder receives request metrics; nil disables the metrics middleware
	Recorder HTTPRecorder

	// Validator resolves bearer tokens; nil disables authentication
	Validator TokenValidator
}

// Setup registers the base middleware on e. Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(Chain(log)...)
}

// SetupWithConfig registers the full middleware stack on e, outermost first:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger
//  3. Metrics, when a Recorder is set; it wraps Recover so recovered panics count as 500s
//  4. Recover
//  5. Authenticate, when a Validator is set
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(RequestID())
	e.Use(RequestLoggerWithConfig(log, config.Logger))
	if config.Recorder != nil {
		e.Use(Metrics(config.Recorder))
	}
	e.Use(RecoverWithConfig(log, config.Recovery))
	if config.Validator != nil {
		e.Use(Authenticate(config.Validator, log))
	}
}

// Chain returns RequestID, RequestLogger and Recover with default settings.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
