// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package analytics

import (
	"cmp"
	"slices"

	"github.com/tomtom215/medalboard/internal/models"
)

// Defaults applied by the query layer when a caller leaves a parameter unset.
const (
	DefaultTopN = 10
	DefaultTopK = 10
)

// athleteKey groups participations of one athlete.
type athleteKey struct {
	name string
	sex  string
}

// TopAthletes ranks athletes, identified by (name, sex), by medal count.
//
// Every athlete present in rows is a candidate, including those without a
// medal. Ranking is by count descending, then name ascending, then sex
// ascending, so the result never depends on row order. At most n rows are
// returned; fewer when rows holds fewer athletes.
func TopAthletes(rows []models.Record, n int) []models.AthleteMedals {
	counts := make(map[athleteKey]int)
	for _, r := range rows {
		key := athleteKey{name: r.Name, sex: r.Sex}
		if r.HasMedal() {
			counts[key]++
		} else if _, ok := counts[key]; !ok {
			counts[key] = 0
		}
	}

	out := make([]models.AthleteMedals, 0, len(counts))
	for key, count := range counts {
		out = append(out, models.AthleteMedals{Name: key.name, Sex: key.sex, MedalCount: count})
	}

	slices.SortFunc(out, func(a, b models.AthleteMedals) int {
		return cmp.Or(
			cmp.Compare(b.MedalCount, a.MedalCount),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Sex, b.Sex),
		)
	})
	return truncate(out, n)
}

// TopRegions ranks regions by medal count.
//
// Records whose NOC did not resolve to a region are skipped. Ties are broken
// by region name ascending. At most n rows are returned.
func TopRegions(rows []models.Record, n int) []models.RegionMedals {
	counts := make(map[string]int)
	for _, r := range rows {
		if !r.HasRegion() {
			continue
		}
		if r.HasMedal() {
			counts[r.Region]++
		} else if _, ok := counts[r.Region]; !ok {
			counts[r.Region] = 0
		}
	}

	out := make([]models.RegionMedals, 0, len(counts))
	for region, count := range counts {
		out = append(out, models.RegionMedals{Region: region, MedalCount: count})
	}

	slices.SortFunc(out, func(a, b models.RegionMedals) int {
		return cmp.Or(
			cmp.Compare(b.MedalCount, a.MedalCount),
			cmp.Compare(a.Region, b.Region),
		)
	})
	return truncate(out, n)
}

func truncate[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n:n]
	}
	return s
}
