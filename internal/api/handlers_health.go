// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/medalboard/internal/models"
)

// HealthLive is the liveness probe. It succeeds whenever the process can
// serve HTTP.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady is the readiness probe: 200 once the dataset is loaded and the
// view cache warmed, 503 before.
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthResponse{
		Status:    "not_ready",
		Timestamp: time.Now(),
	}
	if store := h.engine.Store(); store != nil {
		health.DatasetID = store.ID()
		health.RecordCount = store.Len()
	}

	if !h.IsReady() {
		respondJSON(w, nil, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     health,
			Metadata: models.Metadata{Timestamp: health.Timestamp},
			Error:    &models.APIError{Code: codeServiceError, Message: "Dataset not ready"},
		})
		return
	}

	health.Status = "ready"
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, nil, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     health,
		Metadata: models.Metadata{Timestamp: health.Timestamp},
	})
}

// CacheStats reports memo hit and miss counters.
//
// GET /api/v1/cache/stats
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.Stats()
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, nil, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.CacheStatsResponse{
			Hits:     stats.Hits,
			Misses:   stats.Misses,
			Computes: stats.Computes,
			Entries:  stats.Entries,
			HitRate:  stats.HitRate(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
