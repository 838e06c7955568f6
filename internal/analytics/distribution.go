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

// Age histogram domain, inclusive on both ends.
const (
	AgeDomainMin       = 10
	AgeDomainMax       = 80
	DefaultBucketWidth = 2
)

// AgeHistogram buckets ages into bins of the given width over
// [AgeDomainMin, AgeDomainMax].
//
// Bins are [start, start+width) except the last, which is closed and clipped
// at AgeDomainMax. Records without an age or with an age outside the domain
// are not counted. When no record falls inside the domain the result is
// empty; otherwise every bin is returned, including empty ones, so the
// x-axis is the same for every filter.
func AgeHistogram(rows []models.Record, width int) []models.AgeBucket {
	if width <= 0 {
		width = DefaultBucketWidth
	}

	var buckets []models.AgeBucket
	for start := AgeDomainMin; start < AgeDomainMax; start += width {
		buckets = append(buckets, models.AgeBucket{Start: start, End: min(start+width, AgeDomainMax)})
	}

	counted := 0
	for _, r := range rows {
		if !r.HasAge || r.Age < AgeDomainMin || r.Age > AgeDomainMax {
			continue
		}
		i := (r.Age - AgeDomainMin) / width
		if i >= len(buckets) {
			i = len(buckets) - 1
		}
		buckets[i].Count++
		counted++
	}

	if counted == 0 {
		return []models.AgeBucket{}
	}
	return buckets
}

// GenderSplit counts records per distinct sex value.
func GenderSplit(rows []models.Record) []models.CategoryCount {
	return countBy(rows, func(r models.Record) string { return r.Sex })
}

// SeasonSplit counts records per distinct season value.
func SeasonSplit(rows []models.Record) []models.CategoryCount {
	return countBy(rows, func(r models.Record) string { return r.Season })
}

// countBy counts records per category. Any non-empty category value is
// passed through; records with an empty value are not counted. Counts are
// ordered descending with the category name breaking ties.
func countBy(rows []models.Record, category func(models.Record) string) []models.CategoryCount {
	counts := make(map[string]int)
	for _, r := range rows {
		if c := category(r); c != "" {
			counts[c]++
		}
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, models.CategoryCount{Category: c, Count: n})
	}
	slices.SortFunc(out, func(a, b models.CategoryCount) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Category, b.Category),
		)
	})
	return out
}

type coordinate struct {
	lat float64
	lon float64
}

// MapPoints returns the distinct host coordinates in rows with the number of
// records at each. Records without coordinates are ignored. Points are
// ordered by count descending, then latitude, then longitude.
func MapPoints(rows []models.Record) []models.MapPoint {
	counts := make(map[coordinate]int)
	for _, r := range rows {
		if !r.HasCoords {
			continue
		}
		counts[coordinate{lat: r.Latitude, lon: r.Longitude}]++
	}

	out := make([]models.MapPoint, 0, len(counts))
	for c, n := range counts {
		out = append(out, models.MapPoint{Latitude: c.lat, Longitude: c.lon, Count: n})
	}
	slices.SortFunc(out, func(a, b models.MapPoint) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Latitude, b.Latitude),
			cmp.Compare(a.Longitude, b.Longitude),
		)
	})
	return out
}
