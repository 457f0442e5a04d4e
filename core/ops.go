// Package core implements the derived operations written once against the
// Engine contract. Each grows the cache only as far as the query at hand
// requires; partial work is kept by the engine, so repeated calls never
// recompute.
package core

// Len returns the number of primes the engine has found so far.
// Complexity: O(1).
func Len(e Engine) int { return len(e.List()) }

// IsEmpty reports whether the engine's cache holds no primes yet.
// Both shipped engines seed their cache at construction, so this is
// false for them from the start.
// Complexity: O(1).
func IsEmpty(e Engine) bool { return Len(e) == 0 }

// Find returns the smallest prime ≥ n together with its cache index,
// expanding the cache as needed. If n itself is prime the result is
// (index, n), which makes Find idempotent on primes:
// Find(Find(n).prime) == Find(n).
//
// Expansion stops the moment the last cached prime reaches n, so the
// cache never overshoots by more than the lower-bound answer itself.
//
// Complexity: amortized cost of the missing expansions plus an
// O(log P) search over P cached primes.
func Find(e Engine, n uint64) (int, uint64) {
	// 1. Grow the cache until its last prime is ≥ n.
	for {
		lst := e.List()
		if len(lst) > 0 && lst[len(lst)-1] >= n {
			break
		}
		e.Expand()
	}

	// 2. The answer is now cached; the lower-bound search cannot miss.
	ix, p, _ := FindCached(e, n)

	return ix, p
}

// IsPrime reports whether n is prime by trial division against the
// engine's primes, expanding the cache on demand. Only primes up to √n
// are ever needed, and they stay cached for later queries.
//
// Divisibility and the √n cutoff are both derived from a single quotient
// q = n/m, so the test is exact across the whole uint64 range (no m·m
// intermediate that could overflow near 2⁶⁴).
//
// Complexity: O(π(√n)) divisions plus the cost of any missing expansions.
func IsPrime(e Engine, n uint64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true // 2 divides itself; the loop below must not see it as composite
	}

	it := &Iterator{eng: e, expand: true}
	for {
		m, _ := it.Next() // expansion enabled: never reports end-of-sequence
		q := n / m
		if q < m {
			// m² > n: every prime ≤ √n failed to divide n, so n is prime.
			return true
		}
		if n == q*m {
			return false
		}
	}
}

// Get returns the k-th prime (0-indexed), expanding the cache until it
// holds at least k+1 entries. A negative index is a contract violation
// and panics; there is no out-of-range error to recover from.
//
// Complexity: cost of the missing expansions, then O(1) access.
func Get(e Engine, index int) uint64 {
	for Len(e) <= index {
		e.Expand()
	}

	return e.List()[index]
}

// PrimeFactors returns the prime factorization of n in non-decreasing
// order, with multiplicity, using (and growing) the engine's cache.
// The product of the result equals n; inputs 0 and 1 yield an empty
// factorization.
//
// Once the remaining cofactor is smaller than the square of the current
// prime it can have no smaller factor left, so it is itself prime — it is
// appended and the scan stops. As in IsPrime, the cutoff uses quotients
// rather than squares, keeping the full uint64 range exact.
//
// Complexity: O(π(√n)) divisions plus the cost of any missing expansions.
func PrimeFactors(e Engine, n uint64) []uint64 {
	if n <= 1 {
		return nil
	}

	var fs []uint64
	cur := n
	it := &Iterator{eng: e, expand: true}
	for {
		p, _ := it.Next()

		// Divide out every copy of p before moving on.
		for cur%p == 0 {
			fs = append(fs, p)
			cur /= p
			if cur == 1 {
				return fs
			}
		}

		if q := cur / p; q < p {
			// p² > cur: the cofactor is prime; record it and stop.
			return append(fs, cur)
		}
	}
}
