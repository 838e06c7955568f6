// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package api serves the view engine over HTTP with the chi router.

Endpoints:

	GET /api/v1/views                 view catalog
	GET /api/v1/views/{kind}          one view under a filter
	GET /api/v1/filters/options       regions and year bounds
	GET /api/v1/cache/stats           memo hit/miss counters
	GET /api/v1/health/live           liveness probe
	GET /api/v1/health/ready          readiness probe (503 until warmed)
	GET /metrics                      Prometheus exposition

The view endpoint takes the filter as year, year_min, year_max and region,
and the view parameters as n, k, bucket_width, window_min and window_max:

	GET /api/v1/views/top_regions?year=2000&n=5
	GET /api/v1/views/medal_timeseries?k=3&window_min=1980&window_max=2016
	GET /api/v1/views/age_histogram?region=norway&bucket_width=5

Every response uses the models.APIResponse envelope. Error codes:

  - FILTER_ERROR (400): malformed or structurally invalid filter
  - VALIDATION_ERROR (400): view parameter out of range
  - UNKNOWN_VIEW (404): kind not served
  - RATE_LIMIT_EXCEEDED (429)
  - SERVICE_ERROR (503): not ready or request canceled

A filter that selects no records is not an error. The response is 200 with
an empty table and metadata.empty set.

Middleware order: request ID, real IP, panic recovery, request logging and
CORS globally; rate limiting, security headers, Prometheus metrics and gzip
on the data endpoints.
*/
package api
