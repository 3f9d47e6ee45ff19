package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard service.
type Metrics struct {
	TripsLoaded   prometheus.Gauge
	ZonesLoaded   prometheus.Gauge
	SnapshotLoads *prometheus.CounterVec // labels: result={hit,miss}
	SourceFetches *prometheus.CounterVec // labels: source={trips,zones}, result={downloaded,cached}

	// Dataset pipeline metrics.
	DatasetBuildDuration prometheus.Histogram
	QueryDuration        *prometheus.HistogramVec // labels: chart

	// HTTP serving metrics.
	HTTPRequests         *prometheus.CounterVec   // labels: route, status
	HTTPRequestDuration  *prometheus.HistogramVec // labels: route
	HTTPRequestsInFlight prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		TripsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "taxipulse",
			Name:      "trips_loaded",
			Help:      "Number of trips in the in-memory dataset after cleaning and sampling.",
		}),
		ZonesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "taxipulse",
			Name:      "zones_loaded",
			Help:      "Number of taxi zones parsed from the zone geometry file.",
		}),
		SnapshotLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxipulse",
			Name:      "snapshot_loads_total",
			Help:      "Processed-data snapshot lookups by result.",
		}, []string{"result"}),
		SourceFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxipulse",
			Name:      "source_fetches_total",
			Help:      "Raw source retrievals by source and result.",
		}, []string{"source", "result"}),
		DatasetBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "taxipulse",
			Name:      "dataset_build_duration_seconds",
			Help:      "Duration of the full load-clean-enrich-aggregate pipeline.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "taxipulse",
			Name:      "query_duration_seconds",
			Help:      "Duration of a filtered chart computation by chart.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"chart"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxipulse",
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "taxipulse",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route"}),
		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "taxipulse",
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		}),
	}

	prometheus.MustRegister(
		m.TripsLoaded,
		m.ZonesLoaded,
		m.SnapshotLoads,
		m.SourceFetches,
		m.DatasetBuildDuration,
		m.QueryDuration,
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		TripsLoaded:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "taxipulse", Name: "trips_loaded"}),
		ZonesLoaded:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "taxipulse", Name: "zones_loaded"}),
		SnapshotLoads:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "taxipulse", Name: "snapshot_loads_total"}, []string{"result"}),
		SourceFetches:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "taxipulse", Name: "source_fetches_total"}, []string{"source", "result"}),
		DatasetBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "taxipulse", Name: "dataset_build_duration_seconds"}),
		QueryDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "taxipulse", Name: "query_duration_seconds"}, []string{"chart"}),
		HTTPRequests:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "taxipulse", Name: "http_requests_total"}, []string{"route", "status"}),
		HTTPRequestDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "taxipulse", Name: "http_request_duration_seconds"}, []string{"route"}),
		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "taxipulse", Name: "http_requests_in_flight"}),
	}
}
