package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quake"

// Metrics holds the Prometheus collectors for the loader and the HTTP API.
type Metrics struct {
	// Loader metrics.
	FeaturesFetched prometheus.Counter
	QuakesInserted  prometheus.Counter
	FeaturesSkipped prometheus.Counter
	QuakeDuplicates prometheus.Counter
	LoadRuns        *prometheus.CounterVec // labels: outcome={success,error}
	LoadDuration    prometheus.Histogram
	LastLoadSuccess prometheus.Gauge

	// HTTP metrics.
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route
}

// NewMetrics creates all collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FeaturesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "features_fetched_total",
			Help:      "Total features returned by the USGS feed.",
		}),
		QuakesInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quakes_inserted_total",
			Help:      "Total earthquake rows inserted into the store.",
		}),
		FeaturesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "features_skipped_total",
			Help:      "Total malformed features dropped during normalization.",
		}),
		QuakeDuplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quake_duplicates_total",
			Help:      "Total features already present in the store.",
		}),
		LoadRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_runs_total",
			Help:      "Loader runs by outcome.",
		}, []string{"outcome"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete fetch-classify-insert run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		LastLoadSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_load_success_timestamp_seconds",
			Help:      "Unix time of the last successful load run.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.FeaturesFetched,
		m.QuakesInserted,
		m.FeaturesSkipped,
		m.QuakeDuplicates,
		m.LoadRuns,
		m.LoadDuration,
		m.LastLoadSuccess,
		m.HTTPRequests,
		m.HTTPRequestDuration,
	)

	return m
}

// NewMetricsForTesting registers against a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
