package engine

// slot is a single memoized statistic: a value plus a validity marker.
// An invalid slot holds a stale zero value that must never be served.
type slot[T any] struct {
	value T
	valid bool
}

// statCache holds one independently valid slot per statistic.
//
// The hit/miss counters are instrumentation only: they survive
// invalidation and let callers prove that a repeated read was served
// from its slot rather than recomputed.
type statCache struct {
	mean             slot[float64]
	median           slot[float64]
	modes            slot[[]int]
	stdDevSample     slot[float64]
	stdDevPopulation slot[float64]
	valueRange       slot[int]

	hits   uint64
	misses uint64
}

// invalidate resets every slot in one operation, keeping the counters.
func (c *statCache) invalidate() {
	*c = statCache{hits: c.hits, misses: c.misses}
}

// CacheStats reports how many statistic reads were served from a cache
// slot (hits) versus computed and stored (misses). Failed reads count as
// neither.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// CacheStats returns the engine's cache instrumentation counters.
func (e *Engine) CacheStats() CacheStats {
	return CacheStats{Hits: e.cache.hits, Misses: e.cache.misses}
}

// cached implements the check-compute-store protocol shared by every
// statistic: serve the slot on a hit, reject an empty store with a typed
// error, otherwise compute, fill the slot, and return.
//
// compute runs only against a non-empty store. If it returns an error
// (sample std dev with n < 2), the slot stays absent and the counters
// are untouched, so a later read after new data proceeds normally.
func cached[T any](e *Engine, s *slot[T], statistic string, compute func() (T, error)) (T, error) {
	if s.valid {
		e.cache.hits++
		return s.value, nil
	}
	var zero T
	if len(e.observations) == 0 {
		return zero, NewEmptyDataError(statistic)
	}
	v, err := compute()
	if err != nil {
		return zero, err
	}
	e.cache.misses++
	s.value = v
	s.valid = true
	return v, nil
}
