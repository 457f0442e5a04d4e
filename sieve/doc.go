// Package sieve provides the incremental Sieve engine for the core
// generation contract — the heap-driven counterpart to package trialdiv.
//
// What & Why
//
//   - What is an incremental sieve?
//     The classic Sieve of Eratosthenes needs a fixed upper bound. This
//     engine removes that bound: instead of a boolean array it keeps, for
//     every prime found so far, the next composite that prime will strike
//     off, in a min-priority queue. Candidates come from a wheel that
//     already skips multiples of 2, 3 and 5, and a candidate that no
//     queued composite hits is prime.
//
//   - Why offer it next to trial division?
//
//   - No division in the hot path: the engine only compares and adds.
//     For dense enumeration (millions of consecutive primes) its
//     amortized near-linear behavior beats trial division's repeated
//     O(√l / ln l) scans.
//
//   - The price is memory and constant factor: one heap entry per
//     cached prime, plus heap churn. For small ranges or sparse
//     queries, trialdiv is usually the better pick.
//
// Mechanics
//
//	Wheel-30: candidates are base+residue for the eight residues modulo
//	30 coprime to 30 ({1,7,11,13,17,19,23,29}); the unit residue is
//	skipped at start, so the stream begins 7, 11, 13, …
//
//	Crossings: when prime c is discovered, its first crossing is queued
//	at c² — every smaller multiple of c has a smaller prime factor and is
//	already covered. A consumed or stale crossing advances by 2·c, since
//	even multiples never appear as candidates.
//
// Determinism
//
//	The heap orders by (composite, prime); expansion is fully
//	deterministic and both engines emit the identical prime sequence.
//
// GoDoc Summary
//
//   - New() *Sieve — engine seeded with [2 3 5], empty queue.
//   - (*Sieve).Expand() — append exactly one more prime.
//   - (*Sieve).List() []uint64 — ascending read-only cache view.
//
// For usage demonstrations, see example_test.go in this package.
package sieve
