// Package core provides the generation contract shared by every prime
// engine, and the full set of operations defined purely in terms of it.
//
// What & Why
//
//   - What is an Engine?
//     A strategy for discovering primes incrementally. It exposes exactly
//     two operations: Expand (find and append one more prime) and List
//     (the ordered cache of primes found so far). Everything else in this
//     package — search, iteration, primality, factorization — is written
//     once against that pair, so it works identically for every engine.
//
//   - Why a shared contract?
//     The two shipped engines (trialdiv.TrialDivision, sieve.Sieve) have
//     genuinely different internals and amortized complexity, but callers
//     should not care which one grows the cache. The contract keeps
//     consumer logic in one place and lets you benchmark engines against
//     each other with zero call-site changes.
//
// Operations Provided
//
//   - FindCached(e, n) (int, uint64, error)
//
//   - Lower-bound binary search over the cached primes only: smallest
//     cached prime ≥ n, or ErrNotCached when n lies beyond the cache.
//     Time: O(log P).
//
//   - Find(e, n) (int, uint64)
//
//   - Expands until the cache covers n, then FindCached. Returns the
//     smallest prime ≥ n and its index. Idempotent on primes.
//
//   - IsPrime(e, n) bool
//
//   - Trial division by cached (and newly expanded) primes up to √n.
//     n ≤ 1 is false, 2 is true. Exact over the whole uint64 range:
//     the √n cutoff is computed from quotients, never from m·m.
//
//   - Get(e, k) uint64
//
//   - The k-th prime (0-indexed), expanding as needed. Negative k is a
//     programming error and panics.
//
//   - PrimeFactors(e, n) []uint64
//
//   - Non-decreasing factorization with multiplicity; product equals n;
//     0 and 1 factor to nothing.
//
//   - NewIterator(e, opts...) (*Iterator, error)
//
//   - Lazy ascending cursor. Default flavor replays from 2 and expands
//     forever; FromCurrent yields only new discoveries; CachedOnly stops
//     at the cached tail instead of expanding.
//
// Laziness & Ownership
//
//	"Lazy" means deferred computation, not asynchrony: every call runs to
//	completion on the caller's goroutine and no operation computes more
//	primes than it needs. An expanding Iterator is the engine's exclusive
//	logical owner for as long as it is used; growing the same engine from
//	two places at once (or from two goroutines without a mutex) is a
//	usage error the package does not detect.
//
// Error Conditions
//
//	Expected absence is an error value; broken contracts are panics:
//
//	- ErrNotCached — FindCached asked beyond the last cached prime.
//	- ErrNilEngine — NewIterator or FindCached given a nil engine.
//	- ErrNegativeStart — WithStart given a negative index (panic).
//	- Get with a negative index panics via the slice bounds check.
//
// For usage demonstrations, see example_test.go in this package.
package core
