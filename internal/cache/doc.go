// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package cache provides the memo store behind every analytical view.

A Memo maps (transform ID, fingerprint) to a computed result. The fingerprint
is a SHA-256 over the JSON encoding of the dataset identity and the call
arguments, so the key depends only on values, never on pointer identity.

# Semantics

  - The first call for a key computes and publishes; later calls return the
    published value without computing
  - Concurrent misses for one key are collapsed with singleflight, so the
    computation runs once and every waiter gets its result
  - A computation that returns an error is never published
  - Entries are never evicted; the dataset is immutable, so they never go stale

# Usage

	memo := cache.New(store.ID(), cache.WithName("views"))

	rows, cached, err := cache.Compute(memo, "top_athletes", args,
	    func() ([]models.AthleteMedals, error) {
	        return analytics.TopAthletes(subset, args.N), nil
	    },
	    slices.Clone[[]models.AthleteMedals],
	)

Compute hands every caller clone(stored), so a caller mutating its table
cannot change what the next caller sees.

# Observability

Hits, misses, computations and failures are kept as atomic counters (GetStats)
and exported through the metrics package as memo_lookups_total,
memo_computations_total, memo_compute_duration_seconds and memo_entries,
labeled by memo name and transform ID. WithComputeHook registers a callback run
once per executed computation.

# Thread Safety

All Memo methods are safe for concurrent use.
*/
package cache
