package distance

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kachieze/whereto/internal/domain"
)

const sampleTable = `origin,destination,distance
LOS,ABV,476
ABV,LOS,481
LOS, PHC, 435.5
`

func TestParseTable(t *testing.T) {
	s, err := ParseTable(strings.NewReader(sampleTable))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	tests := []struct {
		name  string
		route domain.Route
		want  float64
	}{
		{"forward", domain.Route{Origin: "LOS", Destination: "ABV"}, 476},
		{"reverse has its own row", domain.Route{Origin: "ABV", Destination: "LOS"}, 481},
		{"trimmed fields", domain.Route{Origin: "LOS", Destination: "PHC"}, 435.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := s.Distance(context.Background(), tt.route)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestTableSource_UnknownRoute(t *testing.T) {
	s, err := ParseTable(strings.NewReader(sampleTable))
	require.NoError(t, err)

	_, err = s.Distance(context.Background(), domain.Route{Origin: "PHC", Destination: "LOS"})

	assert.ErrorIs(t, err, domain.ErrDistanceUnknown)
	assert.Contains(t, err.Error(), "PHC-LOS")
}

func TestTableSource_Fallback(t *testing.T) {
	s, err := ParseTable(strings.NewReader(sampleTable), WithFallback(350))
	require.NoError(t, err)

	d, err := s.Distance(context.Background(), domain.Route{Origin: "KAN", Destination: "LOS"})
	require.NoError(t, err)
	assert.Equal(t, float64(350), d)
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"empty input", "", "distance table is empty"},
		{"bad number", "origin,destination,distance\nLOS,ABV,far\n", "failed to decode distance CSV data"},
		{"negative distance", "origin,destination,distance\nLOS,ABV,-3\n", "negative distance"},
		{"missing code", "origin,destination,distance\n,ABV,10\n", "row 2: missing airport code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distances.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	s, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
