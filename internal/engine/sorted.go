package engine

import "sort"

// ensureSorted materializes the sorted snapshot if it is stale.
//
// No-op when the snapshot is present. When the store is empty the
// snapshot stays absent; callers treat empty as a precondition failure,
// not a sort request. The snapshot is rebuilt from scratch on every
// invalidation rather than maintained incrementally - at the stated
// capacity the O(n log n) cost is negligible. Idempotent.
func (e *Engine) ensureSorted() {
	if e.sorted != nil || len(e.observations) == 0 {
		return
	}
	e.sorted = make([]int, len(e.observations))
	copy(e.sorted, e.observations)
	sort.Ints(e.sorted)
}

// Min returns the smallest observation.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) Min() (int, error) {
	if len(e.observations) == 0 {
		return 0, NewEmptyDataError("min")
	}
	e.ensureSorted()
	return e.sorted[0], nil
}

// Max returns the largest observation.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) Max() (int, error) {
	if len(e.observations) == 0 {
		return 0, NewEmptyDataError("max")
	}
	e.ensureSorted()
	return e.sorted[len(e.sorted)-1], nil
}
