package engine

import "math"

// Mean returns the arithmetic mean of the observations.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) Mean() (float64, error) {
	return cached(e, &e.cache.mean, "mean", func() (float64, error) {
		sum := 0
		for _, v := range e.observations {
			sum += v
		}
		return float64(sum) / float64(len(e.observations)), nil
	})
}

// Median returns the middle observation, or the average of the two
// middle observations for an even count.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) Median() (float64, error) {
	return cached(e, &e.cache.median, "median", func() (float64, error) {
		e.ensureSorted()
		n := len(e.sorted)
		mid := n / 2
		if n%2 == 0 {
			return float64(e.sorted[mid-1]+e.sorted[mid]) / 2, nil
		}
		return float64(e.sorted[mid]), nil
	})
}

// Modes returns every value whose frequency equals the maximum observed
// frequency, each listed once, in ascending order. When all values are
// unique, every value is a mode. The returned slice is the caller's to
// keep; it never aliases the cache.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) Modes() ([]int, error) {
	modes, err := cached(e, &e.cache.modes, "mode", func() ([]int, error) {
		e.ensureSorted()
		return collectModes(e.sorted), nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]int, len(modes))
	copy(out, modes)
	return out, nil
}

// collectModes scans the runs of equal adjacent values in a non-empty
// sorted slice: one pass to find the maximum run length, a second to
// collect every value whose run length matches it.
func collectModes(sorted []int) []int {
	maxFreq := 1
	freq := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			freq++
			continue
		}
		if freq > maxFreq {
			maxFreq = freq
		}
		freq = 1
	}
	if freq > maxFreq {
		maxFreq = freq
	}

	var modes []int
	freq = 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			freq++
			continue
		}
		if freq == maxFreq {
			modes = append(modes, sorted[i-1])
		}
		freq = 1
	}
	if freq == maxFreq {
		modes = append(modes, sorted[len(sorted)-1])
	}
	return modes
}

// StdDev returns the standard deviation of the observations.
//
// With population=true the sum of squared deviations is divided by n;
// otherwise by n-1, which requires at least two observations (fails
// with INSUFFICIENT_DATA for a single observation). The two variants
// occupy independent cache slots.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) StdDev(population bool) (float64, error) {
	s := &e.cache.stdDevPopulation
	statistic := "population standard deviation"
	if !population {
		s = &e.cache.stdDevSample
		statistic = "sample standard deviation"
	}
	return cached(e, s, statistic, func() (float64, error) {
		n := len(e.observations)
		if !population && n < 2 {
			return 0, NewInsufficientDataError(statistic, n, 2)
		}
		mean, err := e.Mean()
		if err != nil {
			return 0, err
		}
		var sumSq float64
		for _, v := range e.observations {
			d := float64(v) - mean
			sumSq += d * d
		}
		divisor := float64(n)
		if !population {
			divisor = float64(n - 1)
		}
		return math.Sqrt(sumSq / divisor), nil
	})
}

// Range returns max - min over the observations.
// Fails with EMPTY_DATA when the store is empty.
func (e *Engine) Range() (int, error) {
	return cached(e, &e.cache.valueRange, "range", func() (int, error) {
		e.ensureSorted()
		return e.sorted[len(e.sorted)-1] - e.sorted[0], nil
	})
}
