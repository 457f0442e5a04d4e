// Package trialdiv implements the Trial-Division prime engine: the
// simplest strategy satisfying core.Engine, whose whole state is the
// prime cache itself.
package trialdiv

import "github.com/katalvlaran/primes/core"

// TrialDivision discovers primes by testing odd candidates against the
// primes already found. Its state is exactly the cache, so an instance
// is reconstructible from nothing but its own history.
//
// Not safe for concurrent mutation; see core.Engine.
type TrialDivision struct {
	primes []uint64 // ascending, duplicate-free, gap-free cache
}

// compile-time contract check
var _ core.Engine = (*TrialDivision)(nil)

// New returns a Trial-Division engine seeded with the first two primes,
// 2 and 3, so expansion can start from the first odd candidate 5.
//
// Complexity: O(1).
func New() *TrialDivision {
	return &TrialDivision{primes: []uint64{2, 3}}
}

// Expand finds the next prime and appends it to the cache.
//
// Candidates start at (last prime + 2) and advance by 2 — only odd
// numbers are worth testing. Each candidate l is divided by the cached
// primes in ascending order; the scan stops early the instant a divisor
// is found or the instant p² > l (no smaller factor can exist beyond
// that point). The candidate is accepted only when the scan ends on a
// nonzero remainder.
//
// Complexity: amortized O(√l / ln l) divisions per accepted prime.
func (t *TrialDivision) Expand() {
	l := t.primes[len(t.primes)-1] + 2
	var remainder uint64
	for {
		for _, p := range t.primes {
			remainder = l % p
			if remainder == 0 || p*p > l {
				break
			}
		}

		if remainder != 0 {
			t.primes = append(t.primes, l)

			return
		}

		l += 2
	}
}

// List returns the primes found so far, ascending. Read-only view; see
// core.Engine for the snapshot semantics.
//
// Complexity: O(1).
func (t *TrialDivision) List() []uint64 {
	return t.primes
}
