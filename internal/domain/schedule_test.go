package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_FlightHours(t *testing.T) {
	base := time.Date(2023, 7, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		want     int
	}{
		{name: "whole hours", duration: 5 * time.Hour, want: 5},
		{name: "fraction truncated", duration: 2*time.Hour + 59*time.Minute, want: 2},
		{name: "under one hour", duration: 45 * time.Minute, want: 0},
		{name: "zero", duration: 0, want: 0},
		{name: "negative whole hours", duration: -3 * time.Hour, want: -3},
		{name: "negative fraction truncated toward zero", duration: -(90 * time.Minute), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Schedule{DepartureTime: base, ArrivalTime: base.Add(tt.duration)}
			assert.Equal(t, tt.want, s.FlightHours())
		})
	}
}

func TestRoute(t *testing.T) {
	s := Schedule{Origin: "LOS", Destination: "ABV"}

	r := s.Route()
	assert.Equal(t, Route{Origin: "LOS", Destination: "ABV"}, r)
	assert.Equal(t, "LOS-ABV", r.String())
	assert.Equal(t, Route{Origin: "ABV", Destination: "LOS"}, r.Reversed())
	assert.NotEqual(t, r, r.Reversed())
}

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   SearchQuery
		wantErr bool
	}{
		{name: "valid", query: SearchQuery{Origin: "LOS", Destination: "ABV"}},
		{name: "missing origin", query: SearchQuery{Destination: "ABV"}, wantErr: true},
		{name: "missing destination", query: SearchQuery{Origin: "LOS"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.True(t, IsInvalidRequest(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
