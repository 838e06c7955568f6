// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

// Package cli implements medalctl, a cobra command line over the same
// dataset loader and view engine the server uses.
//
//	medalctl kinds
//	medalctl options --athletes athlete_events.csv --regions noc_regions.csv
//	medalctl view top_regions --year-min 1990 -n 5
package cli
