// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/medalboard/internal/metrics"
)

// Entry is a published result.
type Entry struct {
	Data       interface{}
	ComputedAt time.Time
}

// Stats tracks memo effectiveness.
type Stats struct {
	Hits     int64
	Misses   int64
	Computes int64
	Failures int64
	Entries  int64
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

// ComputeFunc produces the value for a missing key.
type ComputeFunc func() (interface{}, error)

// Memo is a keyed store of pure-function results.
//
// A key is the transform ID plus a fingerprint of the dataset identity and the
// call arguments, so two transforms never share an entry even when their
// arguments are identical, and entries computed against one dataset are never
// served for another. Entries live as long as the Memo; nothing is evicted.
//
// Concurrent misses on the same key are collapsed into a single computation.
// A computation that fails is returned to every waiting caller and is not
// stored, so the next call computes again.
type Memo struct {
	name    string
	dataset string

	mu      sync.RWMutex
	entries map[string]Entry
	group   singleflight.Group

	hits     atomic.Int64
	misses   atomic.Int64
	computes atomic.Int64
	failures atomic.Int64

	onCompute func(transformID string)
}

// Option configures a Memo.
type Option func(*Memo)

// WithName labels the memo in metrics and logs. Defaults to "memo".
func WithName(name string) Option {
	return func(m *Memo) {
		m.name = name
	}
}

// WithComputeHook registers fn to be called once per computation actually
// executed (hits never call it). Tests use it to count recomputation.
func WithComputeHook(fn func(transformID string)) Option {
	return func(m *Memo) {
		m.onCompute = fn
	}
}

// New creates an empty memo scoped to one dataset identity.
//
// Example:
//
//	memo := cache.New(store.ID(), cache.WithName("views"))
//	v, cached, err := memo.GetOrCompute("top_athletes", args, func() (interface{}, error) {
//	    return analytics.TopAthletes(rows, 10), nil
//	})
func New(datasetID string, opts ...Option) *Memo {
	m := &Memo{
		name:    "memo",
		dataset: datasetID,
		entries: make(map[string]Entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the memo label.
func (m *Memo) Name() string {
	return m.name
}

// DatasetID returns the dataset identity every key is scoped to.
func (m *Memo) DatasetID() string {
	return m.dataset
}

// Key returns the cache key for a transform invocation.
func (m *Memo) Key(transformID string, args interface{}) (string, error) {
	return GenerateKey(transformID, fingerprint{Dataset: m.dataset, Args: args})
}

type fingerprint struct {
	Dataset string      `json:"dataset"`
	Args    interface{} `json:"args"`
}

// GetOrCompute returns the stored result for (transformID, args) or runs
// compute, publishes its result and returns it. The boolean reports whether
// the value came from the store.
//
// The returned value is the stored value itself. Callers that hand results
// out further must copy them; Compute does this with a clone function.
func (m *Memo) GetOrCompute(transformID string, args interface{}, compute ComputeFunc) (interface{}, bool, error) {
	key, err := m.Key(transformID, args)
	if err != nil {
		return nil, false, err
	}

	if entry, ok := m.lookup(key); ok {
		m.hits.Add(1)
		metrics.RecordMemoLookup(m.name, transformID, true)
		return entry.Data, true, nil
	}
	m.misses.Add(1)
	metrics.RecordMemoLookup(m.name, transformID, false)

	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		// A caller that missed just before the previous flight published
		// would otherwise compute a second time.
		if entry, ok := m.lookup(key); ok {
			return entry.Data, nil
		}

		start := time.Now()
		data, err := compute()
		m.computes.Add(1)
		metrics.RecordMemoCompute(m.name, transformID, time.Since(start), err)
		if m.onCompute != nil {
			m.onCompute(transformID)
		}
		if err != nil {
			m.failures.Add(1)
			return nil, err
		}
		return m.publish(key, data), nil
	})
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

func (m *Memo) lookup(key string) (Entry, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	return entry, ok
}

// publish stores data under key unless an entry already exists, and returns
// the value that ends up stored. The first published value always wins.
func (m *Memo) publish(key string, data interface{}) interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.entries[key]; ok {
		return existing.Data
	}
	m.entries[key] = Entry{Data: data, ComputedAt: time.Now()}
	metrics.MemoEntries.WithLabelValues(m.name).Set(float64(len(m.entries)))
	return data
}

// Len returns the number of published entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// GetStats returns a snapshot of the memo statistics.
func (m *Memo) GetStats() Stats {
	return Stats{
		Hits:     m.hits.Load(),
		Misses:   m.misses.Load(),
		Computes: m.computes.Load(),
		Failures: m.failures.Load(),
		Entries:  int64(m.Len()),
	}
}

// HitRate returns the hit rate as a percentage.
func (m *Memo) HitRate() float64 {
	return m.GetStats().HitRate()
}

// Compute is the typed form of GetOrCompute. The stored value is never
// returned directly: every caller, including the one that computed it,
// receives clone(stored), so mutating a result cannot corrupt the store.
func Compute[T any](m Memoizer, transformID string, args interface{}, compute func() (T, error), clone func(T) T) (T, bool, error) {
	var zero T

	v, cached, err := m.GetOrCompute(transformID, args, func() (interface{}, error) {
		result, err := compute()
		if err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		return zero, false, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false, fmt.Errorf("cache: entry for %s holds %T, want %T", transformID, v, zero)
	}
	return clone(typed), cached, nil
}

// GenerateKey creates a cache key from the method name and parameters.
// The parameters are serialized to JSON and hashed; struct field order makes
// the encoding deterministic and map keys are sorted by the encoder.
func GenerateKey(method string, params interface{}) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache: fingerprint %s: %w", method, err)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash), nil
}
