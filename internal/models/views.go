// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package models

import "slices"

// AthleteMedals is one row of the top athletes view.
type AthleteMedals struct {
	Name       string `json:"athlete_name"`
	Sex        string `json:"sex"`
	MedalCount int    `json:"medal_count"`
}

// RegionMedals is one row of the top regions view.
type RegionMedals struct {
	Region     string `json:"region"`
	MedalCount int    `json:"medal_count"`
}

// SeriesPoint is the medal total of one team in one year.
type SeriesPoint struct {
	Year       int    `json:"year"`
	Team       string `json:"team"`
	MedalCount int    `json:"medal_count"`
}

// MedalTimeSeries holds the per-year medal totals of the selected teams.
//
// Teams is ordered by all-time medal total (descending, team name breaking
// ties) and is chosen before the year window is applied, so it stays stable
// while the window changes. Points is ordered by year, then team.
type MedalTimeSeries struct {
	Teams  []string      `json:"teams"`
	Points []SeriesPoint `json:"points"`
}

// Clone returns a deep copy of the series.
func (ts MedalTimeSeries) Clone() MedalTimeSeries {
	return MedalTimeSeries{
		Teams:  slices.Clone(ts.Teams),
		Points: slices.Clone(ts.Points),
	}
}

// Len returns the number of points in the series.
func (ts MedalTimeSeries) Len() int {
	return len(ts.Points)
}

// AgeBucket counts participations whose age falls in [Start, End).
// The last bucket of the domain is closed on both ends.
type AgeBucket struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Count int `json:"count"`
}

// CategoryCount counts participations per distinct category value
// (sex for the gender split, season for the season split).
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MapPoint is a distinct host coordinate with the number of participations at it.
type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int     `json:"count"`
}

// FilterOptions lists the values a client can offer in its filter widgets.
type FilterOptions struct {
	Regions []string `json:"regions"`
	MinYear int      `json:"min_year"`
	MaxYear int      `json:"max_year"`
}
