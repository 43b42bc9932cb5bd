// Package engine implements the descstat statistics engine.
//
// The engine is the heart of descstat - it accumulates a bounded sequence
// of integer observations and serves derived summary statistics (mean,
// median, mode set, sample and population standard deviation, range)
// through lazily populated, invalidation-aware caches.
//
// ARCHITECTURE:
//
// Single-Owner Value:
// An Engine is a plain mutable value with exclusive ownership by its
// caller. There is no locking, no goroutine, and no suspension point;
// every operation is call-and-return. Callers that ever need to share an
// Engine across goroutines must wrap it in their own lock, because
// compute-and-cache-on-miss is not idempotent under concurrent mutation.
//
// Derived State:
//  1. A sorted snapshot of the observations, materialized on first use
//     by a consumer that needs order (median, mode set, range, min/max).
//  2. One cache slot per statistic, populated on the first read and
//     served verbatim on every later read.
//
// Invalidation Protocol:
// Every successful mutation (Add, AddValues, Clear) drops the sorted
// snapshot and every cache slot in one reset. Caches are never partially
// stale: either every slot reflects the current observations or the slot
// is absent. Invalidation is a cheap metadata reset, never a
// recomputation.
//
// Read Protocol:
// Every statistic follows the same check-compute-store sequence,
// implemented once by the cached helper: return the slot on a hit,
// reject reads of an empty store with a typed error, otherwise compute,
// fill the slot, and return. A failed read never mutates cache state, so
// a later read after new data arrives proceeds normally.
//
// Nothing in this package is fatal. Capacity overflows and reads against
// too little data are reported as *StatsError values and leave the
// engine unchanged.
package engine
