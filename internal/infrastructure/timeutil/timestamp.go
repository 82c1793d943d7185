package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// LocalLayout is the zone-less timestamp form accepted by ParseTimestamp.
const LocalLayout = "2006-01-02T15:04:05"

// locationCache holds loaded time zones keyed by IANA name.
var locationCache sync.Map

// GetLocation returns the named time zone, loading it once.
// An empty name returns UTC.
func GetLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// ParseTimestamp parses an RFC 3339 timestamp, or a zone-less one in loc.
// A nil loc means UTC. A space separator between date and time is accepted.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	local := strings.Replace(value, " ", "T", 1)
	t, err := time.ParseInLocation(LocalLayout, local, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}
