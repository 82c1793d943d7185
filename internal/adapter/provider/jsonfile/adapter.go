// Package jsonfile provides the schedule data provider backed by a local JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kachieze/whereto/internal/domain"
)

// ProviderName identifies the JSON file provider in errors, logs and metrics.
const ProviderName = "jsonfile"

// Adapter reads the full schedule dataset from a JSON file on every call.
type Adapter struct {
	path     string
	location *time.Location
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLocation sets the zone applied to timestamps without an offset.
func WithLocation(loc *time.Location) Option {
	return func(a *Adapter) {
		if loc != nil {
			a.location = loc
		}
	}
}

// NewAdapter creates an Adapter for the file at path.
func NewAdapter(path string, opts ...Option) *Adapter {
	a := &Adapter{path: path, location: time.UTC}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the provider name.
func (a *Adapter) Name() string {
	return ProviderName
}

// FetchAll returns every valid schedule in the file.
//
// Read failures are retryable; a malformed document is not. Individual records
// that cannot be normalized are skipped.
func (a *Adapter) FetchAll(ctx context.Context) ([]domain.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read %s: %w", a.path, err))
	}

	var records []scheduleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode %s: %w", a.path, err))
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	return normalize(records, a.location), nil
}

var _ domain.ScheduleProvider = (*Adapter)(nil)
