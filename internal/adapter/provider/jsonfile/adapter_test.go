package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kachieze/whereto/internal/domain"
)

// writeDataset writes content to a temp file and returns its path.
func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAdapter_Name(t *testing.T) {
	assert.Equal(t, "jsonfile", NewAdapter("").Name())
}

func TestAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.ScheduleProvider = (*Adapter)(nil)
}

func TestAdapter_FetchAll(t *testing.T) {
	tests := []struct {
		name          string
		jsonContent   string
		wantSchedules int
		wantErr       bool
		wantRetryable bool
		check         func(*testing.T, []domain.Schedule)
	}{
		{
			name: "valid records",
			jsonContent: `[
				{"origin": "LOS", "destination": "ABV", "carrier": "W3",
				 "departureTime": "2023-07-01T06:00:00Z", "arrivalTime": "2023-07-01T07:10:00Z"},
				{"origin": "ABV", "destination": "LOS", "carrier": "P4",
				 "departureTime": "2023-07-01T09:00:00", "arrivalTime": "2023-07-01T10:30:00"}
			]`,
			wantSchedules: 2,
			check: func(t *testing.T, schedules []domain.Schedule) {
				first := schedules[0]
				assert.Equal(t, "LOS", first.Origin)
				assert.Equal(t, "ABV", first.Destination)
				assert.Equal(t, "W3", first.Carrier)
				assert.Equal(t, time.Date(2023, 7, 1, 6, 0, 0, 0, time.UTC), first.DepartureTime)
				assert.Equal(t, 1, first.FlightHours())

				assert.Equal(t, time.UTC, schedules[1].DepartureTime.Location())
				assert.Equal(t, "P4", schedules[1].Carrier)
			},
		},
		{
			name:          "empty array",
			jsonContent:   `[]`,
			wantSchedules: 0,
		},
		{
			name: "invalid records are skipped",
			jsonContent: `[
				{"origin": "LOS", "destination": "ABV", "carrier": "W3",
				 "departureTime": "not-a-time", "arrivalTime": "2023-07-01T07:10:00Z"},
				{"origin": "", "destination": "ABV", "carrier": "W3",
				 "departureTime": "2023-07-01T06:00:00Z", "arrivalTime": "2023-07-01T07:10:00Z"},
				{"origin": "LOS", "destination": "ABV", "carrier": "",
				 "departureTime": "2023-07-01T06:00:00Z", "arrivalTime": "2023-07-01T07:10:00Z"},
				{"origin": "LOS", "destination": "PHC", "carrier": "QR",
				 "departureTime": "2023-07-01T06:00:00Z", "arrivalTime": "bad"},
				{"origin": " KAN ", "destination": "LOS", "carrier": "QR",
				 "departureTime": "2023-07-01T06:00:00Z", "arrivalTime": "2023-07-01T08:00:00Z"}
			]`,
			wantSchedules: 1,
			check: func(t *testing.T, schedules []domain.Schedule) {
				assert.Equal(t, "KAN", schedules[0].Origin)
			},
		},
		{
			name: "arrival before departure is kept",
			jsonContent: `[
				{"origin": "LOS", "destination": "ABV", "carrier": "W3",
				 "departureTime": "2023-07-01T10:00:00Z", "arrivalTime": "2023-07-01T07:30:00Z"}
			]`,
			wantSchedules: 1,
			check: func(t *testing.T, schedules []domain.Schedule) {
				assert.Equal(t, -2, schedules[0].FlightHours())
			},
		},
		{
			name:          "malformed json",
			jsonContent:   `{invalid json}`,
			wantErr:       true,
			wantRetryable: false,
		},
		{
			name:          "object instead of array",
			jsonContent:   `{"flights": []}`,
			wantErr:       true,
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewAdapter(writeDataset(t, tt.jsonContent))

			schedules, err := adapter.FetchAll(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				var providerErr *domain.ProviderError
				require.True(t, errors.As(err, &providerErr), "Error should be ProviderError")
				assert.Equal(t, ProviderName, providerErr.Provider)
				assert.Equal(t, tt.wantRetryable, providerErr.Retryable)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, schedules)
			assert.Len(t, schedules, tt.wantSchedules)
			if tt.check != nil {
				tt.check(t, schedules)
			}
		})
	}
}

func TestAdapter_FetchAll_FileNotFound(t *testing.T) {
	adapter := NewAdapter("/nonexistent/path/to/flights.json")

	schedules, err := adapter.FetchAll(context.Background())

	require.Error(t, err)
	assert.Empty(t, schedules)

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, ProviderName, providerErr.Provider)
	assert.True(t, providerErr.Retryable, "File read errors should be retryable")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAdapter_FetchAll_ContextCancellation(t *testing.T) {
	adapter := NewAdapter("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	schedules, err := adapter.FetchAll(ctx)

	require.Error(t, err)
	assert.Empty(t, schedules)

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, context.Canceled, providerErr.Err)
	assert.False(t, providerErr.Retryable, "Context cancellation should not be retryable")
}

func TestAdapter_WithLocation(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	path := writeDataset(t, `[
		{"origin": "LOS", "destination": "ABV", "carrier": "W3",
		 "departureTime": "2023-07-01T06:00:00", "arrivalTime": "2023-07-01T07:00:00+01:00"}
	]`)

	schedules, err := NewAdapter(path, WithLocation(loc)).FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.True(t, schedules[0].DepartureTime.Equal(time.Date(2023, 7, 1, 5, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, schedules[0].FlightHours())
}

func TestAdapter_ReadsFileOnEveryCall(t *testing.T) {
	path := writeDataset(t, `[]`)
	adapter := NewAdapter(path)

	first, err := adapter.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, first)

	require.NoError(t, os.WriteFile(path, []byte(`[
		{"origin": "LOS", "destination": "ABV", "carrier": "W3",
		 "departureTime": "2023-07-01T06:00:00Z", "arrivalTime": "2023-07-01T07:00:00Z"}
	]`), 0o644))

	second, err := adapter.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestNormalizeRecord(t *testing.T) {
	valid := scheduleRecord{
		Origin:        "LOS",
		Destination:   "ABV",
		Carrier:       "W3",
		DepartureTime: "2023-07-01T06:00:00Z",
		ArrivalTime:   "2023-07-01T07:00:00Z",
	}

	tests := []struct {
		name    string
		mutate  func(r *scheduleRecord)
		wantErr string
	}{
		{"valid", func(r *scheduleRecord) {}, ""},
		{"missing origin", func(r *scheduleRecord) { r.Origin = " " }, "missing origin"},
		{"missing destination", func(r *scheduleRecord) { r.Destination = "" }, "missing destination"},
		{"missing carrier", func(r *scheduleRecord) { r.Carrier = "" }, "missing carrier"},
		{"bad departure", func(r *scheduleRecord) { r.DepartureTime = "x" }, "departure time"},
		{"bad arrival", func(r *scheduleRecord) { r.ArrivalTime = "" }, "arrival time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			_, err := normalizeRecord(r, time.UTC)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
