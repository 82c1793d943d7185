package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kachieze/whereto/internal/domain"
)

const (
	// userKey is the context key for storing the authenticated user.
	userKey = "user"

	bearerPrefix = "Bearer "
)

// TokenValidator resolves a bearer token to a user.
// *auth.Service is the production implementation.
type TokenValidator interface {
	Validate(token string) (*domain.User, error)
}

// Authenticate returns middleware that attaches the user of a valid bearer token
// to the echo context.
//
// Authentication is optional: requests without a token, or with a token that
// fails validation, continue without a user. Handlers that require a user
// decide how to answer.
func Authenticate(validator TokenValidator, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			user, err := validator.Validate(token)
			if err != nil {
				log.Debug().
					Err(err).
					Str("request_id", GetRequestID(c)).
					Msg("Ignoring invalid bearer token")
				return next(c)
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated user, or nil for anonymous requests.
func UserFromContext(c echo.Context) *domain.User {
	if user, ok := c.Get(userKey).(*domain.User); ok {
		return user
	}
	return nil
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
