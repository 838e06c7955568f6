// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package query

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tomtom215/medalboard/internal/analytics"
	"github.com/tomtom215/medalboard/internal/cache"
	"github.com/tomtom215/medalboard/internal/dataset"
	"github.com/tomtom215/medalboard/internal/filter"
	"github.com/tomtom215/medalboard/internal/logging"
	"github.com/tomtom215/medalboard/internal/metrics"
	"github.com/tomtom215/medalboard/internal/models"
)

// Transform IDs of the subset memo.
const (
	transformSubset  = "subset"
	transformMapping = "project_for_mapping"
)

// Subset sources.
const (
	sourceBase    = "base"
	sourceMapping = "mapping"
)

// Options configures an Engine.
type Options struct {
	Defaults Defaults

	// OnCompute, if set, is called once for every transform actually
	// executed by either memo, with the transform ID.
	OnCompute func(transformID string)
}

// DefaultOptions returns the stock parameter defaults.
func DefaultOptions() Options {
	return Options{
		Defaults: Defaults{
			TopN:        analytics.DefaultTopN,
			TopK:        analytics.DefaultTopK,
			BucketWidth: analytics.DefaultBucketWidth,
		},
	}
}

// Request asks for one view under one filter.
type Request struct {
	Filter filter.Filter
	Kind   Kind
	Params Params
}

// Result is a computed view.
type Result struct {
	Kind   Kind          `json:"kind"`
	Filter filter.Filter `json:"filter"`
	Params Params        `json:"params"`

	// Data holds the result table: []models.AthleteMedals,
	// []models.RegionMedals, models.MedalTimeSeries, []models.AgeBucket,
	// []models.CategoryCount or []models.MapPoint depending on Kind.
	Data interface{} `json:"data"`
	Rows int         `json:"rows"`

	// Cached is true when Data came from the memo without computing.
	Cached bool `json:"cached"`
	// Empty is true when the filter selected no records.
	Empty bool `json:"empty"`

	Duration time.Duration `json:"-"`
}

// Engine answers view requests over one immutable store.
//
// Two memos back it: subsets caches filtered record slices keyed on the
// normalized filter, and views caches aggregate tables keyed on kind, filter
// and the parameters the kind reads. Both are scoped to the store identity.
type Engine struct {
	store   *dataset.Store
	subsets *cache.Memo
	views   *cache.Memo
	opts    Options
}

// NewEngine creates an engine over store. Zero defaults in opts fall back to
// DefaultOptions.
func NewEngine(store *dataset.Store, opts Options) *Engine {
	def := DefaultOptions().Defaults
	if opts.Defaults.TopN == 0 {
		opts.Defaults.TopN = def.TopN
	}
	if opts.Defaults.TopK == 0 {
		opts.Defaults.TopK = def.TopK
	}
	if opts.Defaults.BucketWidth == 0 {
		opts.Defaults.BucketWidth = def.BucketWidth
	}

	newMemo := func(name string) *cache.Memo {
		memoOpts := []cache.Option{cache.WithName(name)}
		if opts.OnCompute != nil {
			memoOpts = append(memoOpts, cache.WithComputeHook(opts.OnCompute))
		}
		return cache.New(store.ID(), memoOpts...)
	}

	return &Engine{
		store:   store,
		subsets: newMemo("subsets"),
		views:   newMemo("views"),
		opts:    opts,
	}
}

// Store returns the store the engine reads.
func (e *Engine) Store() *dataset.Store {
	return e.store
}

// Defaults returns the parameter defaults in effect.
func (e *Engine) Defaults() Defaults {
	return e.opts.Defaults
}

// FilterOptions lists the regions and year bounds clients can filter on.
func (e *Engine) FilterOptions() models.FilterOptions {
	return e.store.Options()
}

// Stats returns the combined statistics of both memos.
func (e *Engine) Stats() cache.Stats {
	s, v := e.subsets.GetStats(), e.views.GetStats()
	return cache.Stats{
		Hits:     s.Hits + v.Hits,
		Misses:   s.Misses + v.Misses,
		Computes: s.Computes + v.Computes,
		Failures: s.Failures + v.Failures,
		Entries:  s.Entries + v.Entries,
	}
}

// View computes, or returns from the memo, one view.
//
// The filter is validated first; an invalid filter yields a *filter.FilterError
// and is never widened to the identity filter. An unknown kind yields
// ErrUnknownView and invalid parameters yield ErrInvalidParams. A filter that
// selects nothing is not an error: the result is an empty table with Empty set.
//
// The context is checked before any work starts; aggregates themselves are
// not interruptible.
func (e *Engine) View(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	if !req.Kind.Valid() {
		metrics.RecordViewRequest("unknown", "error")
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, req.Kind)
	}
	if err := req.Filter.Validate(); err != nil {
		metrics.RecordViewRequest(string(req.Kind), "error")
		return nil, err
	}
	params := req.Params.withDefaults(e.opts.Defaults)
	if err := params.validate(); err != nil {
		metrics.RecordViewRequest(string(req.Kind), "error")
		return nil, err
	}

	f := req.Filter.Normalize()
	subset, err := e.subset(f, req.Kind == KindMapPoints)
	if err != nil {
		metrics.RecordViewRequest(string(req.Kind), "error")
		return nil, fmt.Errorf("filter %s: %w", f, err)
	}

	data, rows, cached, err := e.aggregate(req.Kind, argsFor(req.Kind, f, params), params, subset)
	if err != nil {
		metrics.RecordViewRequest(string(req.Kind), "error")
		return nil, fmt.Errorf("view %s: %w", req.Kind, err)
	}

	result := &Result{
		Kind:     req.Kind,
		Filter:   f,
		Params:   params,
		Data:     data,
		Rows:     rows,
		Cached:   cached,
		Empty:    len(subset) == 0,
		Duration: time.Since(start),
	}

	status := "ok"
	switch {
	case result.Empty:
		status = "empty"
	case result.Cached:
		status = "cached"
	}
	metrics.RecordViewRequest(string(req.Kind), status)

	logging.CtxDebug(ctx).
		Str("kind", string(req.Kind)).
		Stringer("filter", f).
		Bool("identity", f.IsIdentity()).
		Int("rows", rows).
		Bool("cached", cached).
		Bool("empty", result.Empty).
		Dur("duration", result.Duration).
		Msg("View served")

	return result, nil
}

// subset returns the records selected by f, from the mapping projection when
// mapping is set. Subsets never leave the engine and aggregates never modify
// their input, so the memo hands out the stored slice without copying.
func (e *Engine) subset(f filter.Filter, mapping bool) (filter.Rows, error) {
	source := sourceBase
	if mapping {
		source = sourceMapping
	}
	args := struct {
		Source string        `json:"source"`
		Filter filter.Filter `json:"filter"`
	}{Source: source, Filter: f}

	rows, _, err := cache.Compute(e.subsets, transformSubset, args, func() (filter.Rows, error) {
		var src filter.Source = e.store
		if mapping {
			projected, err := e.mappingStore()
			if err != nil {
				return nil, err
			}
			src = projected
		}
		return filter.Apply(src, f), nil
	}, shared[filter.Rows])
	return rows, err
}

// mappingStore returns the store restricted to records with coordinates.
func (e *Engine) mappingStore() (*dataset.Store, error) {
	s, _, err := cache.Compute(e.subsets, transformMapping, nil, func() (*dataset.Store, error) {
		return dataset.ProjectForMapping(e.store), nil
	}, shared[*dataset.Store])
	return s, err
}

// aggregate dispatches to the aggregate for kind through the views memo.
func (e *Engine) aggregate(kind Kind, args viewArgs, p Params, subset []models.Record) (interface{}, int, bool, error) {
	id := string(kind)
	switch kind {
	case KindTopAthletes:
		v, cached, err := cache.Compute(e.views, id, args, func() ([]models.AthleteMedals, error) {
			return analytics.TopAthletes(subset, p.N), nil
		}, slices.Clone[[]models.AthleteMedals])
		return v, len(v), cached, err

	case KindTopRegions:
		v, cached, err := cache.Compute(e.views, id, args, func() ([]models.RegionMedals, error) {
			return analytics.TopRegions(subset, p.N), nil
		}, slices.Clone[[]models.RegionMedals])
		return v, len(v), cached, err

	case KindMedalTimeSeries:
		v, cached, err := cache.Compute(e.views, id, args, func() (models.MedalTimeSeries, error) {
			return analytics.MedalTimeSeries(subset, p.K, p.Window), nil
		}, models.MedalTimeSeries.Clone)
		return v, v.Len(), cached, err

	case KindAgeHistogram:
		v, cached, err := cache.Compute(e.views, id, args, func() ([]models.AgeBucket, error) {
			return analytics.AgeHistogram(subset, p.BucketWidth), nil
		}, slices.Clone[[]models.AgeBucket])
		return v, len(v), cached, err

	case KindGenderSplit:
		v, cached, err := cache.Compute(e.views, id, args, func() ([]models.CategoryCount, error) {
			return analytics.GenderSplit(subset), nil
		}, slices.Clone[[]models.CategoryCount])
		return v, len(v), cached, err

	case KindSeasonSplit:
		v, cached, err := cache.Compute(e.views, id, args, func() ([]models.CategoryCount, error) {
			return analytics.SeasonSplit(subset), nil
		}, slices.Clone[[]models.CategoryCount])
		return v, len(v), cached, err

	case KindMapPoints:
		v, cached, err := cache.Compute(e.views, id, args, func() ([]models.MapPoint, error) {
			return analytics.MapPoints(subset), nil
		}, slices.Clone[[]models.MapPoint])
		return v, len(v), cached, err
	}
	return nil, 0, false, fmt.Errorf("%w: %q", ErrUnknownView, kind)
}

// shared is the clone function for values that are immutable by contract.
func shared[T any](v T) T {
	return v
}

// Warm computes every view for the identity filter so the first client
// request is served from the memo.
func (e *Engine) Warm(ctx context.Context) error {
	start := time.Now()
	for _, kind := range kinds {
		if _, err := e.View(ctx, Request{Kind: kind}); err != nil {
			return fmt.Errorf("warm %s: %w", kind, err)
		}
	}
	stats := e.Stats()
	logger := logging.Ctx(ctx)
	for _, m := range []*cache.Memo{e.subsets, e.views} {
		logger.Debug().
			Str("memo", m.Name()).
			Str("dataset_id", m.DatasetID()).
			Int("entries", m.Len()).
			Float64("hit_rate", m.HitRate()).
			Msg("Memo warmed")
	}
	logger.Info().
		Int("views", len(kinds)).
		Int64("entries", stats.Entries).
		Dur("duration", time.Since(start)).
		Msg("View cache warmed")
	return nil
}
