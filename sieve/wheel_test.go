package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWheel30_Sequence verifies the candidate stream: ascending, starts
// at 7 (the unit residue is skipped), and wraps cleanly across the base.
func TestWheel30_Sequence(t *testing.T) {
	w := newWheel30()

	want := []uint64{7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 49, 53, 59, 61}
	got := make([]uint64, 0, len(want))
	for range want {
		got = append(got, w.next())
	}
	assert.Equal(t, want, got)
}

// TestWheel30_CoprimeTo30 verifies that a long run of candidates never
// contains a multiple of 2, 3 or 5 and is strictly increasing.
func TestWheel30_CoprimeTo30(t *testing.T) {
	w := newWheel30()

	prev := uint64(0)
	for i := 0; i < 10_000; i++ {
		c := w.next()
		require.Greater(t, c, prev, "wheel must be strictly increasing")
		require.NotZero(t, c%2)
		require.NotZero(t, c%3)
		require.NotZero(t, c%5)
		prev = c
	}
}

// TestCrossingInvariant verifies that every prime beyond the 2,3,5 seed
// holds exactly one pending crossing in the queue after each expansion.
func TestCrossingInvariant(t *testing.T) {
	s := New()
	for i := 0; i < 200; i++ {
		s.Expand()
		require.Equal(t, len(s.primes)-3, s.pend.Len(),
			"one pending crossing per discovered prime after %d expansions", i+1)

		seen := make(map[uint64]bool, s.pend.Len())
		for _, cr := range s.pend {
			require.False(t, seen[cr.prime], "duplicate crossing for prime %d", cr.prime)
			seen[cr.prime] = true
		}
	}
}
