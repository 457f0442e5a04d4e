package core_test

import (
	"testing"

	"github.com/katalvlaran/primes/core"
	"github.com/katalvlaran/primes/sieve"
	"github.com/katalvlaran/primes/trialdiv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstFew is the canonical opening of the prime sequence used across
// the iterator tests.
var firstFew = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}

// take drains up to n values from the iterator into a slice.
func take(it *core.Iterator, n int) []uint64 {
	out := make([]uint64, 0, n)
	for len(out) < n {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out
}

// TestIterator_NilEngine verifies the constructor's sentinel error.
func TestIterator_NilEngine(t *testing.T) {
	_, err := core.NewIterator(nil)
	assert.ErrorIs(t, err, core.ErrNilEngine)
}

// TestIterator_FirstNine verifies the opening of the sequence for both
// engines: [2 3 5 7 11 13 17 19 23].
func TestIterator_FirstNine(t *testing.T) {
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			it, err := core.NewIterator(eng)
			require.NoError(t, err)
			assert.Equal(t, firstFew, take(it, len(firstFew)))
		})
	}
}

// TestIterator_Replay verifies restartability: a second iterator at
// offset 0 replays the cached primes without growing the cache.
func TestIterator_Replay(t *testing.T) {
	eng := trialdiv.New()

	it, err := core.NewIterator(eng)
	require.NoError(t, err)
	first := take(it, 9)
	grown := core.Len(eng)

	// Replay from the start: identical values, cache length untouched.
	it2, err := core.NewIterator(eng)
	require.NoError(t, err)
	assert.Equal(t, first, take(it2, 9))
	assert.Equal(t, grown, core.Len(eng))
}

// TestIterator_FromCurrent verifies that the forward-only flavor skips
// everything cached at construction time.
func TestIterator_FromCurrent(t *testing.T) {
	eng := sieve.New()
	core.Find(eng, 20) // cache now ends at 23

	it, err := core.NewIterator(eng, core.FromCurrent())
	require.NoError(t, err)

	p, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, uint64(29), p) // first prime past the cached tail
}

// TestIterator_CachedOnly verifies that a non-expanding iterator yields
// exactly the cached primes and then ends, leaving the cache untouched.
func TestIterator_CachedOnly(t *testing.T) {
	eng := trialdiv.New()
	core.Get(eng, 9) // cache the first ten primes

	before := core.Len(eng)
	it, err := core.NewIterator(eng, core.CachedOnly())
	require.NoError(t, err)

	got := take(it, before+5) // ask for more than is cached
	assert.Len(t, got, before)
	assert.Equal(t, eng.List(), got)

	// End-of-sequence is sticky and expansion never happened.
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, before, core.Len(eng))
}

// TestIterator_WithStart verifies an explicit offset into the cache and
// the panic on a negative one.
func TestIterator_WithStart(t *testing.T) {
	eng := trialdiv.New()

	it, err := core.NewIterator(eng, core.WithStart(3))
	require.NoError(t, err)
	p, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, uint64(7), p)

	// Negative offsets are a programming error, caught at option time.
	assert.Panics(t, func() { _, _ = core.NewIterator(eng, core.WithStart(-1)) })
}
