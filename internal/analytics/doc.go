// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package analytics implements the aggregate functions behind every view.

Each function takes an already filtered slice of records and returns a small,
freshly allocated result table. None of them read global state or modify their
input, which is what lets the query layer memoize them.

Available aggregates:
  - TopAthletes: medal count per (name, sex), top N
  - TopRegions: medal count per resolved region, top N
  - MedalTimeSeries: per-year medal totals of the top K teams
  - AgeHistogram: fixed-width age bins over [10, 80]
  - GenderSplit, SeasonSplit: record counts per category
  - MapPoints: record counts per distinct host coordinate

Orderings are total: every sort ends in a name (or coordinate) comparison,
so results are identical regardless of the order rows arrive in. An empty
input always yields an empty, non-nil table.
*/
package analytics
