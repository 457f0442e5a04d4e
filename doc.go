// Package primes is your in-memory toolkit for discovering, caching and
// factoring prime numbers — lazily, incrementally, and with the growth
// strategy of your choice.
//
// 🚀 What is primes?
//
//	A small, pure-Go library built around one idea: a prime cache that
//	grows one prime at a time, behind a shared contract:
//		• core/     — the Engine contract (Expand/List) plus everything
//		  written once against it: Find, FindCached, IsPrime, Get,
//		  PrimeFactors and a lazy, restartable Iterator
//		• trialdiv/ — Trial-Division engine: tiny state, great for
//		  sparse queries and modest ranges
//		• sieve/    — incremental Sieve engine: a wheel-30 candidate
//		  stepper plus a min-heap of pending composites, great for
//		  dense enumeration
//		• factor/   — cache-free one-shot primitives: FirstFactor,
//		  Factors, FactorsUniq, IsPrime, Totient
//
// ✨ Why choose primes?
//
//   - Lazy by construction – no operation computes more primes than the
//     query at hand requires, and everything computed stays cached
//   - Two engines, one contract – swap strategies without touching callers
//   - Pure Go – no cgo, no hidden deps
//   - Restartable iteration – replaying from the start re-reads the cache,
//     it never recomputes
//
// Quick taste:
//
//	eng := trialdiv.New()
//	ix, p := core.Find(eng, 1_000) // → (168, 1009)
//
// Everything is synchronous and single-owner: an engine must not be grown
// from two goroutines at once; wrap it in a mutex if you need sharing.
// Dive into each package's doc.go for algorithms, invariants and complexity.
package primes
