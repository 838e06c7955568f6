// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package models defines data structures for the Medalboard application.

This package contains the data models shared across packages: the merged
participation record, the result rows produced by every analytical view, and
the API response envelope. It has no dependencies on other internal packages.

Key Components:

  - Record: One athlete-event participation merged with its NOC region
  - AthleteMedals, RegionMedals: Top-N leaderboard rows
  - MedalTimeSeries, SeriesPoint: Per-year medal totals of the top teams
  - AgeBucket: Fixed-width age histogram bin
  - CategoryCount: Gender and season splits
  - MapPoint: Host coordinates with participation counts
  - APIResponse: Standard response wrapper

Immutability:

Record and every row type are plain value structs (strings and numbers only),
so copying a slice of them with slices.Clone yields an independent table. The
memo cache relies on this to hand out copies that cannot corrupt cached values.
MedalTimeSeries carries two slices and provides Clone for the same purpose.
*/
package models
