// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package models

// Medal outcomes as they appear in the source data. A record without a medal
// carries MedalNone.
const (
	MedalGold   = "Gold"
	MedalSilver = "Silver"
	MedalBronze = "Bronze"
	MedalNone   = ""
)

// Record is one athlete-event participation merged with its region lookup.
//
// Record is a comparable value type: it holds no pointers or slices, so a copy
// can never alias the store it came from, and two records are duplicates
// exactly when they compare equal with ==.
//
// Every source column except the region notes is carried, so duplicate
// detection sees the athlete ID and body measurements too. Height and Weight
// are zero when the source cell was missing.
//
// Optional fields use an explicit presence flag instead of pointers:
//   - Age is meaningful only when HasAge is true
//   - Latitude/Longitude are meaningful only when HasCoords is true
//   - Region is empty when the NOC code did not resolve through the lookup
type Record struct {
	AthleteID string  `json:"athlete_id,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Weight    float64 `json:"weight,omitempty"`

	Name   string `json:"name"`
	Sex    string `json:"sex"`
	Age    int    `json:"age,omitempty"`
	HasAge bool   `json:"has_age"`

	Team   string `json:"team"`
	NOC    string `json:"noc"`
	Region string `json:"region,omitempty"`

	Games  string `json:"games,omitempty"`
	Year   int    `json:"year"`
	Season string `json:"season"`
	City   string `json:"city,omitempty"`
	Sport  string `json:"sport,omitempty"`
	Event  string `json:"event,omitempty"`
	Medal  string `json:"medal,omitempty"`

	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	HasCoords bool    `json:"has_coords"`
}

// HasMedal reports whether the participation ended with a medal.
func (r Record) HasMedal() bool {
	return r.Medal != MedalNone
}

// HasRegion reports whether the NOC code resolved to a region at merge time.
func (r Record) HasRegion() bool {
	return r.Region != ""
}
