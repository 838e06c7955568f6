// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package query

import (
	"fmt"

	"github.com/tomtom215/medalboard/internal/filter"
	"github.com/tomtom215/medalboard/internal/validation"
)

// Params tunes a view. Zero values are replaced with the engine defaults.
//
//   - N: rows returned by top_athletes and top_regions
//   - K: teams selected by medal_timeseries
//   - BucketWidth: age_histogram bin width in years
//   - Window: years shown by medal_timeseries; team selection ignores it
type Params struct {
	N           int               `json:"n,omitempty" validate:"gte=1,lte=1000"`
	K           int               `json:"k,omitempty" validate:"gte=1,lte=100"`
	BucketWidth int               `json:"bucket_width,omitempty" validate:"gte=1,lte=70"`
	Window      *filter.YearRange `json:"window,omitempty"`
}

// Defaults holds the values substituted for unset parameters.
type Defaults struct {
	TopN        int
	TopK        int
	BucketWidth int
}

func (p Params) withDefaults(d Defaults) Params {
	if p.N == 0 {
		p.N = d.TopN
	}
	if p.K == 0 {
		p.K = d.TopK
	}
	if p.BucketWidth == 0 {
		p.BucketWidth = d.BucketWidth
	}
	if p.Window != nil {
		w := *p.Window
		p.Window = &w
	}
	return p
}

func (p Params) validate() error {
	if verr := validation.ValidateStruct(&p); verr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, verr)
	}
	return nil
}

// viewArgs is the fingerprinted argument set of a view computation. Only the
// parameters a kind actually reads are set, so e.g. changing K never misses
// the top_athletes entry.
type viewArgs struct {
	Filter      filter.Filter     `json:"filter"`
	N           int               `json:"n,omitempty"`
	K           int               `json:"k,omitempty"`
	BucketWidth int               `json:"bucket_width,omitempty"`
	Window      *filter.YearRange `json:"window,omitempty"`
}

func argsFor(kind Kind, f filter.Filter, p Params) viewArgs {
	args := viewArgs{Filter: f}
	switch kind {
	case KindTopAthletes, KindTopRegions:
		args.N = p.N
	case KindMedalTimeSeries:
		args.K = p.K
		args.Window = p.Window
	case KindAgeHistogram:
		args.BucketWidth = p.BucketWidth
	}
	return args
}
