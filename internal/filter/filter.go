// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package filter

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/tomtom215/medalboard/internal/models"
	"github.com/tomtom215/medalboard/internal/validation"
)

// YearRange is an inclusive range of years.
type YearRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gte=0,gtefield=Min"`
}

// Contains reports whether year lies within the range, bounds included.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Filter is the user's current selection. The zero value selects everything.
//
// Year and Range are alternatives: when both are set, Year wins and Range is
// ignored. Region matches case-insensitively and never matches a record whose
// NOC code did not resolve to a region.
type Filter struct {
	Year   *int       `json:"year,omitempty" validate:"omitempty,gte=0"`
	Range  *YearRange `json:"year_range,omitempty"`
	Region string     `json:"region,omitempty" validate:"omitempty,notblank,max=100"`
}

// WithYear returns a copy of f restricted to a single year.
func (f Filter) WithYear(year int) Filter {
	f.Year = &year
	return f
}

// WithRange returns a copy of f restricted to an inclusive year range.
func (f Filter) WithRange(minYear, maxYear int) Filter {
	f.Range = &YearRange{Min: minYear, Max: maxYear}
	return f
}

// WithRegion returns a copy of f restricted to one region.
func (f Filter) WithRegion(region string) Filter {
	f.Region = region
	return f
}

// IsIdentity reports whether f selects the whole dataset.
func (f Filter) IsIdentity() bool {
	return f.Year == nil && f.Range == nil && strings.TrimSpace(f.Region) == ""
}

// Validate checks the filter structure. It returns nil or a *FilterError.
func (f Filter) Validate() error {
	if verr := validation.ValidateStruct(&f); verr != nil {
		return newFilterError(verr)
	}
	return nil
}

// Normalize returns the canonical form of f: the range is dropped when a year
// is set and the region is trimmed and lower-cased. Cache fingerprints are
// always computed over the normalized form.
func (f Filter) Normalize() Filter {
	out := Filter{Region: strings.ToLower(strings.TrimSpace(f.Region))}
	if f.Year != nil {
		year := *f.Year
		out.Year = &year
		return out
	}
	if f.Range != nil {
		r := *f.Range
		out.Range = &r
	}
	return out
}

// String renders the filter for logs.
func (f Filter) String() string {
	n := f.Normalize()
	var parts []string
	switch {
	case n.Year != nil:
		parts = append(parts, fmt.Sprintf("year=%d", *n.Year))
	case n.Range != nil:
		parts = append(parts, fmt.Sprintf("years=%d..%d", n.Range.Min, n.Range.Max))
	}
	if n.Region != "" {
		parts = append(parts, "region="+n.Region)
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " ")
}

// Matches reports whether a single record is selected by f.
func (f Filter) Matches(r models.Record) bool {
	switch {
	case f.Year != nil:
		if r.Year != *f.Year {
			return false
		}
	case f.Range != nil:
		if !f.Range.Contains(r.Year) {
			return false
		}
	}

	if region := strings.TrimSpace(f.Region); region != "" {
		return r.HasRegion() && strings.EqualFold(r.Region, region)
	}
	return true
}

// Source is anything that can enumerate records in a stable order.
type Source interface {
	All() iter.Seq[models.Record]
}

// Rows adapts a record slice to Source, so a filtered subset can be filtered again.
type Rows []models.Record

// All yields the rows in order.
func (r Rows) All() iter.Seq[models.Record] {
	return slices.Values(r)
}

// Apply returns the records of src selected by f, in source order.
//
// Apply is pure: src is never modified and the returned slice is always a new
// allocation, empty but non-nil when nothing matches. Applying the same filter
// twice yields the same rows as applying it once.
func Apply(src Source, f Filter) []models.Record {
	out := make([]models.Record, 0)
	for r := range src.All() {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
