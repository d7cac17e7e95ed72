package engine

// PickOne draws a single element from options using one PRNG draw. An empty
// option list returns the zero value rather than panicking.
func PickOne[T any](p *PRNG, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	idx := int(p.Next() * float64(len(options)))
	if idx >= len(options) {
		idx = len(options) - 1
	}
	return options[idx]
}

// PickUnique samples count elements without replacement, drawing an index
// into a shrinking copy of the pool each time. A count at or below zero
// returns an empty slice; a count beyond the pool returns the whole pool in
// draw order.
func PickUnique[T any](p *PRNG, options []T, count int) []T {
	if count <= 0 {
		return []T{}
	}
	pool := make([]T, len(options))
	copy(pool, options)

	if count > len(pool) {
		count = len(pool)
	}
	picked := make([]T, 0, count)
	for len(picked) < count {
		idx := int(p.Next() * float64(len(pool)))
		if idx >= len(pool) {
			idx = len(pool) - 1
		}
		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}
