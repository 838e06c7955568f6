// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/medalboard/internal/logging"
)

// Warmer precomputes views. Satisfied by *query.Engine.
type Warmer interface {
	Warm(ctx context.Context) error
}

// WarmerService fills the view cache once at startup and then reports
// readiness. A failed warm-up is returned to the supervisor, which restarts
// the service with backoff; a successful one ends the service for good.
type WarmerService struct {
	warmer  Warmer
	onReady func()
}

// NewWarmerService creates a warmer. onReady, if non-nil, is called once
// after the first successful warm-up.
func NewWarmerService(warmer Warmer, onReady func()) *WarmerService {
	return &WarmerService{warmer: warmer, onReady: onReady}
}

// Serve implements suture.Service.
func (s *WarmerService) Serve(ctx context.Context) error {
	if err := s.warmer.Warm(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn().Err(err).Msg("View cache warm-up failed")
		return fmt.Errorf("warm view cache: %w", err)
	}

	if s.onReady != nil {
		s.onReady()
	}
	return suture.ErrDoNotRestart
}

// String identifies the service in supervisor logs.
func (s *WarmerService) String() string {
	return "view-warmer"
}
