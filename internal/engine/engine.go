package engine

// DefaultCapacity is the default bound on the observation store.
// Attempts to add past the bound are rejected, never truncated.
const DefaultCapacity = 1000

// Engine accumulates integer observations and serves cached statistics.
//
// INVARIANTS:
//   - len(observations) <= capacity at all times
//   - sorted, when non-nil, is exactly observations sorted ascending
//     (same multiset, same length)
//   - every valid cache slot reflects the current observations; any
//     mutation drops the snapshot and all slots in one reset
type Engine struct {
	capacity     int
	observations []int
	sorted       []int // nil when stale
	cache        statCache
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCapacity sets the observation store bound.
//
// Default: 1000 observations (DefaultCapacity).
// Values below 1 are ignored.
func WithCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity >= 1 {
			e.capacity = capacity
		}
	}
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	e := &Engine{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add appends one observation.
//
// When the store is full it returns a CAPACITY_EXCEEDED error and leaves
// the engine unchanged. On success every derived value (sorted snapshot
// and all cache slots) is invalidated.
func (e *Engine) Add(value int) error {
	if len(e.observations) >= e.capacity {
		return NewCapacityError(e.capacity)
	}
	e.observations = append(e.observations, value)
	e.invalidate()
	return nil
}

// AddValues appends observations in order, one Add per element.
//
// The returned slice has one entry per input element (nil on success).
// A capacity failure on one element does not roll back earlier
// successful additions; remaining elements are still attempted, matching
// append-until-full semantics.
func (e *Engine) AddValues(values []int) []error {
	results := make([]error, len(values))
	for i, v := range values {
		results[i] = e.Add(v)
	}
	return results
}

// Clear resets the store to empty and drops all derived state.
// The engine is indistinguishable from a freshly constructed one
// (cache instrumentation counters excepted). Always succeeds.
func (e *Engine) Clear() {
	e.observations = e.observations[:0]
	e.invalidate()
}

// Count returns the number of observations.
func (e *Engine) Count() int {
	return len(e.observations)
}

// Capacity returns the store bound.
func (e *Engine) Capacity() int {
	return e.capacity
}

// Values returns a copy of the observations in insertion order.
func (e *Engine) Values() []int {
	if len(e.observations) == 0 {
		return nil
	}
	out := make([]int, len(e.observations))
	copy(out, e.observations)
	return out
}

// invalidate drops the sorted snapshot and every cache slot at once.
// Caches are never partially stale.
func (e *Engine) invalidate() {
	e.sorted = nil
	e.cache.invalidate()
}
