// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

// Package filter holds the user's selection (a year or a year range, plus an
// optional region) and applies it to records.
//
// Apply is a pure, order-preserving function. Filtered subsets satisfy Source
// through Rows, so filters compose: applying a year filter and then a region
// filter selects the same rows as one filter carrying both.
//
// Invalid filters are reported as *FilterError by Validate and are never
// silently widened to the identity filter.
package filter
