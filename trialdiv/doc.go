// Package trialdiv provides the Trial-Division engine for the core
// generation contract — the minimal-state counterpart to package sieve.
//
// What & Why
//
//   - What is trial division?
//     To extend the cache, the engine walks odd candidates upward from
//     the last prime and divides each by the cached primes in ascending
//     order, stopping at the first divisor or as soon as p² exceeds the
//     candidate. A candidate with no divisor below its square root is
//     prime.
//
//   - Why offer it next to the sieve?
//
//   - State is just the cache: nothing to keep consistent, trivially
//     cheap to create, no heap overhead.
//
//   - For modest ranges and sparse workloads (an occasional Find or
//     IsPrime) it is typically faster than the sieve, which pays heap
//     churn per candidate. For long dense runs the sieve wins.
//
// Determinism
//
//	Expansion is fully deterministic and emits the identical prime
//	sequence as package sieve.
//
// GoDoc Summary
//
//   - New() *TrialDivision — engine seeded with [2 3].
//   - (*TrialDivision).Expand() — append exactly one more prime.
//   - (*TrialDivision).List() []uint64 — ascending read-only cache view.
//
// For usage demonstrations, see example_test.go in this package.
package trialdiv
