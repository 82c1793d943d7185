package metrics

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kachieze/whereto/internal/usecase"
)

var _ usecase.Observer = (*Metrics)(nil)

func TestMetrics_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		m := NewMetrics()
		reg := prometheus.NewRegistry()
		require.NoError(t, m.Register(reg))

		m.CacheLookup(usecase.CacheDistance, true)
		m.DataFetch("jsonfile", time.Millisecond, nil)
		m.ObserveHTTPRequest(http.MethodGet, "/find-flights", http.StatusOK, time.Millisecond)

		families, err := reg.Gather()
		require.NoError(t, err)

		names := make(map[string]bool)
		for _, f := range families {
			names[f.GetName()] = true
		}
		for _, want := range []string{
			MetricCacheLookupsTotal,
			MetricDataFetchesTotal,
			MetricDataFetchDuration,
			MetricHTTPRequestsTotal,
			MetricHTTPRequestDuration,
		} {
			assert.True(t, names[want], "metric %s not gathered", want)
		}
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		require.NoError(t, NewMetrics().Register(reg))
		assert.Error(t, NewMetrics().Register(reg))
	})
}

func TestMetrics_CacheLookup(t *testing.T) {
	m := NewMetrics()

	m.CacheLookup(usecase.CacheDistance, false)
	m.CacheLookup(usecase.CacheDistance, true)
	m.CacheLookup(usecase.CacheDistance, true)
	m.CacheLookup(usecase.CacheDirectory, false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheLookups.WithLabelValues(usecase.CacheDistance, ResultHit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues(usecase.CacheDistance, ResultMiss)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues(usecase.CacheDirectory, ResultMiss)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.cacheLookups.WithLabelValues(usecase.CacheDirectory, ResultHit)))
}

func TestMetrics_DataFetch(t *testing.T) {
	m := NewMetrics()

	m.DataFetch("jsonfile", 5*time.Millisecond, nil)
	m.DataFetch("jsonfile", 7*time.Millisecond, errors.New("read failed"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.dataFetches.WithLabelValues("jsonfile", StatusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.dataFetches.WithLabelValues("jsonfile", StatusFailure)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.dataFetchDuration))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTPRequest(http.MethodGet, "/find-flights", http.StatusOK, time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/find-flights", http.StatusNotFound, time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/find-flights", http.StatusOK, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/find-flights", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/find-flights", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.CacheLookup(usecase.CacheDistance, true)
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(100), testutil.ToFloat64(m.cacheLookups.WithLabelValues(usecase.CacheDistance, ResultHit)))
}
