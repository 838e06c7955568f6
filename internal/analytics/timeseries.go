// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package analytics

import (
	"cmp"
	"slices"

	"github.com/tomtom215/medalboard/internal/filter"
	"github.com/tomtom215/medalboard/internal/models"
)

type yearTeam struct {
	year int
	team string
}

// MedalTimeSeries returns per-year medal totals for the top k teams.
//
// Selection and windowing are separate phases. The k teams are chosen by
// their medal total over all of rows (descending, team name breaking ties),
// and only then are the points restricted to window. Narrowing the window
// therefore never changes which teams are reported. A nil window keeps every
// year.
//
// Points cover every (year, team) pair present in rows for the selected
// teams, including years in which a team won nothing. Rows without a team
// name are skipped.
func MedalTimeSeries(rows []models.Record, k int, window *filter.YearRange) models.MedalTimeSeries {
	perYear := make(map[yearTeam]int)
	totals := make(map[string]int)
	for _, r := range rows {
		if r.Team == "" {
			continue
		}
		key := yearTeam{year: r.Year, team: r.Team}
		medal := 0
		if r.HasMedal() {
			medal = 1
		}
		perYear[key] += medal
		totals[r.Team] += medal
	}

	teams := make([]string, 0, len(totals))
	for team := range totals {
		teams = append(teams, team)
	}
	slices.SortFunc(teams, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(totals[b], totals[a]),
			cmp.Compare(a, b),
		)
	})
	teams = truncate(teams, k)

	selected := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		selected[team] = struct{}{}
	}

	points := make([]models.SeriesPoint, 0)
	for key, count := range perYear {
		if _, ok := selected[key.team]; !ok {
			continue
		}
		if window != nil && !window.Contains(key.year) {
			continue
		}
		points = append(points, models.SeriesPoint{Year: key.year, Team: key.team, MedalCount: count})
	}
	slices.SortFunc(points, func(a, b models.SeriesPoint) int {
		return cmp.Or(
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Team, b.Team),
		)
	})

	return models.MedalTimeSeries{Teams: teams, Points: points}
}
