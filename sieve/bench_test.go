package sieve_test

import (
	"testing"

	"github.com/katalvlaran/primes/sieve"
)

// BenchmarkExpand_10k measures dense enumeration: growing a fresh engine
// to its first ten thousand primes.
func BenchmarkExpand_10k(b *testing.B) {
	const n = 10_000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng := sieve.New()
		for len(eng.List()) < n {
			eng.Expand()
		}
	}
}
