// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package cache

// Memoizer is the behavior the query layer needs from a memo.
// Memo implements it; tests may substitute a recording fake.
type Memoizer interface {
	// GetOrCompute returns the stored value for the key or computes,
	// publishes and returns it. The boolean is true for a stored value.
	GetOrCompute(transformID string, args interface{}, compute ComputeFunc) (interface{}, bool, error)

	// GetStats returns a snapshot of hit/miss/compute counters.
	GetStats() Stats
}

var _ Memoizer = (*Memo)(nil)
