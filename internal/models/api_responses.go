// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"athlete_name": "Michael Fred Phelps, II", "sex": "M", "medal_count": 28}],
//	  "metadata": {
//	    "timestamp": "2026-01-12T12:00:00Z",
//	    "query_time_ms": 45,
//	    "rows": 1
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "FILTER_ERROR",
//	    "message": "year range minimum 2010 is greater than maximum 2000"
//	  },
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Query time tracking:
//   - Cached responses: QueryTimeMS is 0, Cached is true
//   - Fresh computations: QueryTimeMS shows actual aggregation time
//
// Empty is set when the filter selected no rows. It is not an error; the
// client decides how to present "no data for this selection".
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Empty       bool      `json:"empty,omitempty"`
	Rows        int       `json:"rows,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid view parameters
//   - FILTER_ERROR: Structurally invalid filter
//   - UNKNOWN_VIEW: View kind not served
//   - SERVICE_ERROR: Dataset not loaded
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// CacheStatsResponse reports memo cache effectiveness.
type CacheStatsResponse struct {
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	Computes int64   `json:"computes"`
	Entries  int64   `json:"entries"`
	HitRate  float64 `json:"hit_rate"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status      string    `json:"status"`
	DatasetID   string    `json:"dataset_id,omitempty"`
	RecordCount int       `json:"record_count"`
	Timestamp   time.Time `json:"timestamp"`
}
