package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight schedule ranking system.
var (
	// ErrInvalidRequest indicates a missing or malformed query parameter.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoSchedules indicates that no schedules exist for the requested route.
	ErrNoSchedules = errors.New("no flight schedules available")

	// ErrUnauthenticated indicates an operation that requires an authenticated user.
	ErrUnauthenticated = errors.New("saving of flights is only available to registered users")

	// ErrNotImplemented indicates an operation that is accepted but has no backing implementation.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDistanceUnknown indicates that a distance source has no value for a route.
	ErrDistanceUnknown = errors.New("distance unknown")

	// ErrProviderTimeout indicates that the schedule data provider did not respond in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates that the schedule data provider could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderError wraps a failure of the schedule data provider.
// Retryable reports whether the same call may succeed if attempted again.
type ProviderError struct {
	Provider  string
	Err       error
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a ProviderError that may be retried.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a retryable ProviderError wrapping ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderTimeout)
}

// NewProviderUnavailableError creates a retryable ProviderError wrapping ErrProviderUnavailable.
func NewProviderUnavailableError(provider string) *ProviderError {
	return NewRetryableProviderError(provider, ErrProviderUnavailable)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNoSchedules reports whether err signals an empty route.
func IsNoSchedules(err error) bool {
	return errors.Is(err, ErrNoSchedules)
}

// IsUnauthenticated reports whether err signals a missing user identity.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsProviderTimeout reports whether err is a provider timeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsRetryable reports whether err is a ProviderError marked as retryable.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
