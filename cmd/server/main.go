// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

// Package main is the entry point for the Medalboard server.
//
// Medalboard loads the Olympic athlete events and NOC region tables once at
// startup, then serves filter-aware medal views (leaderboards, time series,
// distributions, map points) over a read-only JSON API. Every view is
// memoized per filter and parameters, so repeated dashboard interactions are
// answered from memory.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog, level and format from configuration
//  3. Dataset: both CSV files are ingested through DuckDB into an immutable store
//  4. Engine: memoized view engine over the store
//  5. Supervisor tree: cache warmer and HTTP server
//
// The readiness probe (/api/v1/health/ready) reports 503 until the warm-up
// finished, or immediately 200 when WARM_ON_STARTUP=false.
//
// # Configuration
//
//	ATHLETES_PATH=data/athlete_events.csv
//	REGIONS_PATH=data/noc_regions.csv
//	HTTP_PORT=3857
//	LOG_LEVEL=info
//	./medalboard
//
// CONFIG_PATH points at an explicit config file. See internal/config for the
// full list of settings.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree; the HTTP server then drains
// in-flight requests for up to the shutdown timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/medalboard/internal/api"
	"github.com/tomtom215/medalboard/internal/config"
	"github.com/tomtom215/medalboard/internal/dataset"
	"github.com/tomtom215/medalboard/internal/logging"
	"github.com/tomtom215/medalboard/internal/metrics"
	"github.com/tomtom215/medalboard/internal/query"
	"github.com/tomtom215/medalboard/internal/supervisor"
	"github.com/tomtom215/medalboard/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stdout,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("version", version).
		Str("athletes", cfg.Dataset.AthletesPath).
		Str("regions", cfg.Dataset.RegionsPath).
		Msg("Starting Medalboard")
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := dataset.Build(ctx, cfg.Dataset.AthletesPath, cfg.Dataset.RegionsPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	engine := query.NewEngine(store, query.Options{
		Defaults: query.Defaults{
			TopN:        cfg.Query.DefaultTopN,
			TopK:        cfg.Query.DefaultTopK,
			BucketWidth: cfg.Query.DefaultBucketWidth,
		},
	})

	handler := api.NewHandler(engine)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Query.WarmOnStartup {
		tree.AddEngineService(services.NewWarmerService(engine, handler.MarkReady))
	} else {
		handler.MarkReady()
	}

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, shutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Medalboard stopped")
}
