// Package auth verifies bearer tokens that identify registered users.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/infrastructure/timeutil"
)

// Token defaults.
const (
	DefaultTokenTTL = time.Hour
	DefaultLeeway   = 30 * time.Second
)

var (
	// ErrInvalidToken is returned when a token is malformed, forged or not yet valid.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token has expired")

	// ErrEmptyUserID is returned when issuing a token without a subject.
	ErrEmptyUserID = errors.New("userID cannot be empty")
)

// Claims are the JWT claims carried by user tokens. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// Service issues and validates HS256 user tokens.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	leeway time.Duration
	clock  timeutil.Clock
}

// Option configures a Service.
type Option func(*Service)

// WithIssuer sets the iss claim written and required by the service.
func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

// WithTTL sets the lifetime of issued tokens.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithLeeway sets the clock skew tolerated during validation.
func WithLeeway(leeway time.Duration) Option {
	return func(s *Service) { s.leeway = leeway }
}

// WithClock sets the time source used for issuing and validating.
func WithClock(clock timeutil.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// NewService creates a Service signing with secret.
func NewService(secret string, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		leeway: DefaultLeeway,
		clock:  timeutil.System,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a signed token for userID.
func (s *Service) Issue(userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	now := s.clock.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses tokenString and returns the user it identifies.
func (s *Service) Validate(tokenString string) (*domain.User, error) {
	opts := []jwt.ParserOption{
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &domain.User{ID: claims.Subject}, nil
}
