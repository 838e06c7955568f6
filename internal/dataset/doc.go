// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package dataset builds the immutable record store every view is computed from.

The store is the athlete participation table left-merged with the NOC region
lookup, cleaned and deduplicated once at startup.

# Ingestion

Build reads both CSV files into an in-memory DuckDB database, concurrently,
using read_csv with every column typed as VARCHAR. Headers are matched
case-insensitively against the required column lists:

	athletes: Name, Sex, Age, NOC, Medal, Year, Season
	regions:  NOC, region

Team, Games, City, Sport and Event are optional. The regions "notes" column is
ignored. Coordinate headers (Latitude, Latitudes, lat, Longitude, Longitudes,
lon, lng, long) are recognized in either file and surface as the record's
Latitude/Longitude.

Cleaning rules:
  - Empty and "NA" cells are null
  - Rows whose Year is missing or not an integer are dropped
  - NOC codes without a region row keep an empty Region
  - Only the first region row per NOC takes part in the merge
  - Exact duplicate records are removed, first occurrence wins

A missing file or a missing required column fails the whole build with an
*IngestError; no partial store is ever returned.

# Usage

	store, err := dataset.Build(ctx, "athlete_events.csv", "noc_regions.csv")
	if err != nil {
	    var ingestErr *dataset.IngestError
	    if errors.As(err, &ingestErr) {
	        log.Fatal().Str("path", ingestErr.Path).Msg("dataset unusable")
	    }
	}

	for r := range store.All() {
	    fmt.Println(r.Name, r.Year, r.Medal)
	}

	mapped := dataset.ProjectForMapping(store)

# Thread Safety

A Store is never modified after construction. All methods are safe for
concurrent use.
*/
package dataset
