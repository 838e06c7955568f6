// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package query

import (
	"errors"
	"fmt"
	"slices"
)

// Kind names an analytical view.
type Kind string

// Served view kinds.
const (
	KindTopAthletes     Kind = "top_athletes"
	KindTopRegions      Kind = "top_regions"
	KindMedalTimeSeries Kind = "medal_timeseries"
	KindAgeHistogram    Kind = "age_histogram"
	KindGenderSplit     Kind = "gender_split"
	KindMapPoints       Kind = "map_points"
	KindSeasonSplit     Kind = "season_split"
)

var kinds = []Kind{
	KindTopAthletes,
	KindTopRegions,
	KindMedalTimeSeries,
	KindAgeHistogram,
	KindGenderSplit,
	KindMapPoints,
	KindSeasonSplit,
}

// Sentinel errors returned by View.
var (
	ErrUnknownView   = errors.New("unknown view")
	ErrInvalidParams = errors.New("invalid view parameters")
)

// Kinds returns every served view kind.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// Valid reports whether k is a served view kind.
func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// ParseKind converts a string to a Kind, returning ErrUnknownView for names
// that are not served.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return k, nil
}
