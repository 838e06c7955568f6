// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8050/metrics

# Available Metrics

Dataset Metrics:
  - dataset_records: Records in the loaded store (gauge)
  - dataset_rows_dropped: Rows discarded for a non-integer year (gauge)
  - dataset_ingest_duration_seconds: CSV load and merge time (histogram)

Memo Metrics:
  - memo_lookups_total: Lookups (counter)
    Labels: memo, transform, result (hit, miss)
  - memo_computations_total: Executed computations (counter)
    Labels: memo, transform, outcome (success, error)
  - memo_compute_duration_seconds: Computation time (histogram)
    Labels: memo, transform
  - memo_entries: Published entries (gauge)
    Labels: memo

View Metrics:
  - view_requests_total: View requests (counter)
    Labels: kind, status (ok, empty, cached, error)

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

System Metrics:
  - app_info: Version and Go version (gauge, value 1)
  - app_uptime_seconds: Process uptime (gauge)

# Example Queries

Memo hit ratio per transform:

	sum by (transform) (rate(memo_lookups_total{result="hit"}[5m]))
	  / sum by (transform) (rate(memo_lookups_total[5m]))

Slowest transforms (p95):

	histogram_quantile(0.95, sum by (le, transform) (rate(memo_compute_duration_seconds_bucket[5m])))
*/
package metrics
