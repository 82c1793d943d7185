package middleware

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kachieze/whereto/internal/adapter/http/response"
)

// RecoveryConfig configures the recovery middleware.
type RecoveryConfig struct {
	// DisableStackAll limits the logged stack to the panicking goroutine
	DisableStackAll bool

	// DisablePrintStack omits the stack trace from the log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisableStackAll:   false,
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error.
// The server continues to handle subsequent requests.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var panicMsg string
				if perr, ok := r.(error); ok {
					panicMsg = perr.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.Error().
					Str("request_id", GetRequestID(c)).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Str("panic", panicMsg)

				if !config.DisablePrintStack {
					event = event.Str("stack", stackTrace(config.DisableStackAll))
				}

				event.Msg("Panic recovered")

				// Generic body; internal details stay in the log
				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}

// stackTrace returns the current goroutine's stack, or every goroutine's when all is set.
func stackTrace(currentOnly bool) string {
	if currentOnly {
		return string(debug.Stack())
	}
	buf := make([]byte, 64<<10)
	n := runtime.Stack(buf, true)
	return string(buf[:n])
}
