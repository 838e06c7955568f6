// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/medalboard/internal/cache"
	"github.com/tomtom215/medalboard/internal/dataset"
	"github.com/tomtom215/medalboard/internal/models"
	"github.com/tomtom215/medalboard/internal/query"
)

// ViewEngine is the query surface the handlers need. *query.Engine
// implements it.
type ViewEngine interface {
	View(ctx context.Context, req query.Request) (*query.Result, error)
	FilterOptions() models.FilterOptions
	Stats() cache.Stats
	Store() *dataset.Store
}

var _ ViewEngine = (*query.Engine)(nil)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_views.go: view, view list and filter option endpoints
//   - handlers_health.go: liveness, readiness and cache statistics
//   - handlers_helpers.go: response writers and query parsing
type Handler struct {
	engine    ViewEngine
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a handler over engine. The handler reports not ready
// until MarkReady is called.
func NewHandler(engine ViewEngine) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
}

// MarkReady flips the readiness probe to ready. It is called once the view
// cache has been warmed, or right away when warming is disabled.
func (h *Handler) MarkReady() {
	h.ready.Store(true)
}

// IsReady reports whether MarkReady has been called.
func (h *Handler) IsReady() bool {
	return h.ready.Load()
}
