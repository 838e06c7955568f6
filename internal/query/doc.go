// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package query is the single entry point for view requests.

An Engine owns one immutable dataset.Store and two memos. A request names a
view kind, a filter and optional parameters; the engine validates all three,
normalizes the filter, derives the filtered subset through the subsets memo
and then the aggregate through the views memo:

	engine := query.NewEngine(store, query.DefaultOptions())
	result, err := engine.View(ctx, query.Request{
		Kind:   query.KindTopRegions,
		Filter: filter.Filter{}.WithYear(2000),
		Params: query.Params{N: 5},
	})

Equivalent filters share entries: a year supersedes a range and regions are
compared case-insensitively, so "USA" in 2000 and " usa " in 2000 with any
range hit the same cached subset. View arguments include only the parameters
the kind reads, so changing K never misses a top_athletes entry.

Errors:
  - *filter.FilterError: the filter failed validation
  - ErrUnknownView: the kind is not served
  - ErrInvalidParams: a parameter is out of range (wraps the
    *validation.RequestValidationError)

An empty selection is not an error; Result.Empty is set and Data holds an
empty table.

Results are copies. Callers may modify Result.Data freely.
*/
package query
