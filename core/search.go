package core

import "sort"

// FindCached locates the smallest cached prime ≥ n without growing the
// cache. It is a lower-bound search, not exact membership: an exact hit
// returns that prime, otherwise the smallest strictly greater cached one.
//
// Returns:
//
//	int    — index of the prime within the cache.
//	uint64 — the prime itself.
//	error  — ErrNilEngine if e is nil; ErrNotCached if n exceeds the last
//	         cached prime (callers are expected to Expand first, or use
//	         Find which expands for them).
//
// Edge cases: n ≤ 2 always yields (0, 2) once anything is cached; the
// search never indexes out of bounds.
//
// Complexity: O(log P) time over P cached primes, O(1) memory.
func FindCached(e Engine, n uint64) (int, uint64, error) {
	if e == nil {
		return 0, 0, ErrNilEngine
	}

	lst := e.List()
	if len(lst) == 0 || n > lst[len(lst)-1] {
		return 0, 0, ErrNotCached
	}

	// Lower-bound binary search: first index whose prime is ≥ n.
	// The guard above ensures such an index exists.
	ix := sort.Search(len(lst), func(i int) bool { return lst[i] >= n })

	return ix, lst[ix], nil
}
