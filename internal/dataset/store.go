// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package dataset

import (
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/tomtom215/medalboard/internal/models"
)

// Store is the cleaned, merged and deduplicated record table.
//
// A Store is built once and never mutated afterwards, so it is safe for
// concurrent readers without locking. Its ID is a random token assigned at
// construction; cache fingerprints include it so entries computed against one
// store can never be served for another.
type Store struct {
	id      string
	records []models.Record
	regions []string
	minYear int
	maxYear int
}

// NewStore builds a store from in-memory records.
//
// Exact duplicates are removed keeping the first occurrence, so the relative
// order of the surviving records matches the input order. Records compare on
// every field, athlete ID included: two rows that differ in any source column
// other than the region notes both survive.
func NewStore(records []models.Record) *Store {
	seen := make(map[models.Record]struct{}, len(records))
	deduped := make([]models.Record, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		deduped = append(deduped, r)
	}
	return newStore(uuid.NewString(), deduped)
}

func newStore(id string, records []models.Record) *Store {
	s := &Store{id: id, records: records}

	regions := make(map[string]struct{})
	for i, r := range records {
		if r.HasRegion() {
			regions[r.Region] = struct{}{}
		}
		if i == 0 || r.Year < s.minYear {
			s.minYear = r.Year
		}
		if i == 0 || r.Year > s.maxYear {
			s.maxYear = r.Year
		}
	}

	s.regions = make([]string, 0, len(regions))
	for region := range regions {
		s.regions = append(s.regions, region)
	}
	slices.SortFunc(s.regions, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return s
}

// ID returns the store identity token.
func (s *Store) ID() string {
	return s.id
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// All yields every record in store order. Records are yielded by value.
func (s *Store) All() iter.Seq[models.Record] {
	return func(yield func(models.Record) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Regions returns the distinct resolved region names, sorted case-insensitively.
func (s *Store) Regions() []string {
	return slices.Clone(s.regions)
}

// YearBounds returns the earliest and latest year in the store.
// Both are zero for an empty store.
func (s *Store) YearBounds() (minYear, maxYear int) {
	return s.minYear, s.maxYear
}

// Options summarizes the values a client can filter on.
func (s *Store) Options() models.FilterOptions {
	return models.FilterOptions{
		Regions: s.Regions(),
		MinYear: s.minYear,
		MaxYear: s.maxYear,
	}
}

// ProjectForMapping returns the subset of the store whose records carry both
// coordinates. The projection gets its own identity derived from the parent,
// so projecting the same store twice yields stores with equal IDs.
func ProjectForMapping(s *Store) *Store {
	mapped := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		if r.HasCoords {
			mapped = append(mapped, r)
		}
	}
	return newStore(s.id+"/mapping", mapped)
}
