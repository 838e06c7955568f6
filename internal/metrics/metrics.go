// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Dataset ingestion (DuckDB CSV load and merge)
// - Memo cache efficiency per transform
// - View requests per kind
// - API endpoint latency and throughput

var (
	// Dataset Metrics
	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records in the loaded store",
		},
	)

	DatasetRowsDropped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows_dropped",
			Help: "Rows discarded at load because their year was not an integer",
		},
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_ingest_duration_seconds",
			Help:    "Duration of dataset ingestion in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// Memo Cache Metrics
	MemoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memo_lookups_total",
			Help: "Total number of memo lookups by result",
		},
		[]string{"memo", "transform", "result"}, // result: "hit", "miss"
	)

	MemoComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memo_computations_total",
			Help: "Total number of transform computations by outcome",
		},
		[]string{"memo", "transform", "outcome"}, // outcome: "success", "error"
	)

	MemoComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memo_compute_duration_seconds",
			Help:    "Duration of transform computations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"memo", "transform"},
	)

	MemoEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "memo_entries",
			Help: "Current number of published memo entries",
		},
		[]string{"memo"},
	)

	// View Metrics
	ViewRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_requests_total",
			Help: "Total number of view requests by kind and status",
		},
		[]string{"kind", "status"}, // status: "ok", "empty", "cached", "error"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordIngest records a completed dataset load.
func RecordIngest(duration time.Duration, records, dropped int) {
	IngestDuration.Observe(duration.Seconds())
	DatasetRecords.Set(float64(records))
	DatasetRowsDropped.Set(float64(dropped))
}

// RecordMemoLookup records a memo hit or miss.
func RecordMemoLookup(memo, transform string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	MemoLookups.WithLabelValues(memo, transform, result).Inc()
}

// RecordMemoCompute records one executed transform computation.
func RecordMemoCompute(memo, transform string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	MemoComputations.WithLabelValues(memo, transform, outcome).Inc()
	MemoComputeDuration.WithLabelValues(memo, transform).Observe(duration.Seconds())
}

// RecordViewRequest records a served or rejected view request.
func RecordViewRequest(kind, status string) {
	ViewRequests.WithLabelValues(kind, status).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
