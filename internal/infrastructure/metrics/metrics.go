// Package metrics exposes Prometheus collectors for cache, data provider and HTTP activity.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricCacheLookupsTotal   = "whereto_cache_lookups_total"
	MetricDataFetchesTotal    = "whereto_data_fetches_total"
	MetricDataFetchDuration   = "whereto_data_fetch_duration_seconds"
	MetricHTTPRequestsTotal   = "whereto_http_requests_total"
	MetricHTTPRequestDuration = "whereto_http_request_duration_seconds"
)

// Label values.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the service collectors. All methods are safe for concurrent use.
type Metrics struct {
	cacheLookups      *prometheus.CounterVec
	dataFetches       *prometheus.CounterVec
	dataFetchDuration *prometheus.HistogramVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// NewMetrics creates unregistered collectors; call Register to expose them.
func NewMetrics() *Metrics {
	return &Metrics{
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCacheLookupsTotal,
				Help: "Memoization lookups by cache and result",
			},
			[]string{"cache", "result"},
		),
		dataFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricDataFetchesTotal,
				Help: "Schedule dataset fetches by provider and status",
			},
			[]string{"provider", "status"},
		),
		dataFetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricDataFetchDuration,
				Help:    "Schedule dataset fetch duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0},
			},
			[]string{"provider"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns every collector owned by m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.cacheLookups,
		m.dataFetches,
		m.dataFetchDuration,
		m.httpRequests,
		m.httpDuration,
	}
}

// CacheLookup counts a memoization lookup.
func (m *Metrics) CacheLookup(cache string, hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	m.cacheLookups.WithLabelValues(cache, result).Inc()
}

// DataFetch records one call to the schedule data provider.
func (m *Metrics) DataFetch(provider string, duration time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	m.dataFetches.WithLabelValues(provider, status).Inc()
	m.dataFetchDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// ObserveHTTPRequest records a served request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}
