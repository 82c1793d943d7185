package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kachieze/whereto/internal/infrastructure/timeutil"
)

const testSecret = "wJ6Qk8Qn1v9Qw1Zb2l8Qk9J3p6Qk8Qn1v9Qw1Zb2l8Qk="

func newTestService(clock timeutil.Clock, opts ...Option) *Service {
	return NewService(testSecret, append([]Option{WithClock(clock), WithIssuer("whereto")}, opts...)...)
}

func TestService_IssueAndValidate(t *testing.T) {
	clock := timeutil.MustManualClock("2023-07-01T06:00:00Z")
	svc := newTestService(clock)

	token, err := svc.Issue("user-123")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	user, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
}

func TestService_IssueEmptyUser(t *testing.T) {
	svc := NewService(testSecret)

	_, err := svc.Issue("")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestService_Expiry(t *testing.T) {
	clock := timeutil.MustManualClock("2023-07-01T06:00:00Z")
	svc := newTestService(clock, WithTTL(time.Minute), WithLeeway(0))

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = svc.Validate(token)
	assert.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_LeewayToleratesSkew(t *testing.T) {
	clock := timeutil.MustManualClock("2023-07-01T06:00:00Z")
	svc := newTestService(clock, WithTTL(time.Minute), WithLeeway(30*time.Second))

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	clock.Advance(80 * time.Second)
	_, err = svc.Validate(token)
	assert.NoError(t, err)
}

func TestService_RejectsInvalidTokens(t *testing.T) {
	clock := timeutil.MustManualClock("2023-07-01T06:00:00Z")
	svc := newTestService(clock)

	otherSecret, err := NewService("another-secret", WithClock(clock), WithIssuer("whereto")).Issue("user-123")
	require.NoError(t, err)

	otherIssuer, err := NewService(testSecret, WithClock(clock), WithIssuer("elsewhere")).Issue("user-123")
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-123", Issuer: "whereto"})
	noExpiryToken, err := noExpiry.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "whereto",
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
	})
	noSubjectToken, err := noSubject.SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongAlg := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-123",
		Issuer:    "whereto",
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
	})
	wrongAlgToken, err := wrongAlg.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", otherSecret},
		{"wrong issuer", otherIssuer},
		{"missing expiry", noExpiryToken},
		{"missing subject", noSubjectToken},
		{"wrong algorithm", wrongAlgToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, user)
		})
	}
}
