package distance

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/infrastructure/logger"
)

// tableRow is one line of a distance table.
//
//	origin,destination,distance
//	LOS,ABV,476
type tableRow struct {
	Origin      string  `csv:"origin"`
	Destination string  `csv:"destination"`
	Distance    float64 `csv:"distance"`
}

// TableSource serves distances from a fixed origin-destination table.
// Routes are directional; a reverse pair needs its own row.
type TableSource struct {
	distances map[domain.Route]float64
	fallback  float64
}

// TableOption configures a TableSource.
type TableOption func(*TableSource)

// WithFallback answers unknown routes with d instead of domain.ErrDistanceUnknown.
// A zero fallback keeps the error.
func WithFallback(d float64) TableOption {
	return func(s *TableSource) {
		s.fallback = d
	}
}

// LoadTable reads a CSV distance table from path.
func LoadTable(path string, opts ...TableOption) (*TableSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open distance table: %w", err)
	}
	defer f.Close()

	return ParseTable(f, opts...)
}

// ParseTable reads a CSV distance table with an origin,destination,distance header.
// Later rows for the same route replace earlier ones.
func ParseTable(r io.Reader, opts ...TableOption) (*TableSource, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	decoder, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("distance table is empty")
		}
		return nil, fmt.Errorf("failed to create CSV decoder for distances: %w", err)
	}

	var rows []tableRow
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode distance CSV data: %w", err)
	}

	s := &TableSource{distances: make(map[domain.Route]float64, len(rows))}
	for i, row := range rows {
		route := domain.Route{
			Origin:      strings.TrimSpace(row.Origin),
			Destination: strings.TrimSpace(row.Destination),
		}
		if route.Origin == "" || route.Destination == "" {
			return nil, fmt.Errorf("distance table row %d: missing airport code", i+2)
		}
		if row.Distance < 0 {
			return nil, fmt.Errorf("distance table row %d: negative distance %v", i+2, row.Distance)
		}
		s.distances[route] = row.Distance
	}

	for _, opt := range opts {
		opt(s)
	}

	logger.Info().Int("routes", len(s.distances)).Msg("Loaded distance table")
	return s, nil
}

// Distance returns the tabled distance of route.
func (s *TableSource) Distance(ctx context.Context, route domain.Route) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if d, ok := s.distances[route]; ok {
		return d, nil
	}
	if s.fallback > 0 {
		return s.fallback, nil
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrDistanceUnknown, route)
}

// Len returns the number of tabled routes.
func (s *TableSource) Len() int {
	return len(s.distances)
}

var _ domain.DistanceSource = (*TableSource)(nil)
