// Package core defines the shared generation contract for incremental
// prime-discovery engines, sentinel errors, and configuration options
// for lazy iteration over a growing prime cache.
//
// Every higher-level operation in this package (Find, IsPrime, Get,
// PrimeFactors, Iterator) is written once against the Engine interface,
// so it applies uniformly to any engine implementation
// (trialdiv.TrialDivision, sieve.Sieve, or your own).
//
// Errors (sentinel):
//
//	– ErrNilEngine     if a nil Engine is supplied to NewIterator.
//	– ErrNotCached     if FindCached is asked about a value beyond the cache.
//	– ErrNegativeStart if WithStart receives a negative index (panic).
package core

import "errors"

// Sentinel errors returned by the core operations.
var (
	// ErrNilEngine indicates that a nil Engine was supplied.
	ErrNilEngine = errors.New("core: engine is nil")

	// ErrNotCached indicates that the requested value lies beyond the last
	// cached prime. This is the expected "absent" outcome, not a failure:
	// callers either Expand() and retry, or use Find which does so for them.
	ErrNotCached = errors.New("core: value beyond cached primes")

	// ErrNegativeStart indicates that a negative start index was passed to
	// WithStart, which cannot address any cache position.
	ErrNegativeStart = errors.New("core: iterator start must be non-negative")
)

// Engine is the contract implemented by every prime-generation strategy.
//
// An Engine owns an ordered cache of discovered primes. The cache is
// strictly increasing, duplicate-free and gap-free with respect to true
// prime order: if p is cached, so is every prime below p. It starts from
// the engine's seed (2, 3, …), grows by exactly one prime per Expand call,
// and never shrinks.
//
// Engines are not safe for concurrent mutation: a single logical owner
// must drive Expand at a time (an active Iterator counts as that owner).
// Wrap the engine in a mutex for cross-goroutine sharing.
type Engine interface {
	// Expand finds exactly one more prime and appends it to the cache.
	Expand()

	// List returns all primes found so far in ascending order.
	// The slice is a read-only view of the engine's cache: callers must
	// not modify it. A later Expand may reallocate the backing array, so
	// a held view stays a valid snapshot but does not grow.
	List() []uint64
}

// StartCurrent is a sentinel Start value meaning "begin at the engine's
// current cache length", i.e. yield only primes discovered after the
// iterator was created. Prefer the FromCurrent option over using the
// sentinel directly.
const StartCurrent = -1

// Options configures Iterator construction.
//
// Fields:
//
//	Start  int  — first cache index to yield; StartCurrent means the
//	              engine's cache length at construction time.
//	Expand bool — whether Next may grow the cache on demand; when false
//	              the iterator ends at the cached tail instead.
type Options struct {
	// Start is the cache index of the first prime the iterator yields.
	Start int

	// Expand controls on-demand growth: true yields a conceptually
	// infinite sequence, false a bounded replay of the cache.
	Expand bool
}

// Option represents a functional option for configuring an Iterator.
type Option func(*Options)

// WithStart returns an Option that sets the first cache index to yield.
// Must pass a non-negative value; negative values panic with
// ErrNegativeStart (invalid configuration is a programming error).
func WithStart(start int) Option {
	return func(o *Options) {
		if start < 0 {
			panic(ErrNegativeStart.Error())
		}
		o.Start = start
	}
}

// FromCurrent returns an Option that starts the iterator at the engine's
// current cache length, so only newly discovered primes are yielded.
func FromCurrent() Option {
	return func(o *Options) {
		o.Start = StartCurrent
	}
}

// CachedOnly returns an Option that forbids expansion: the iterator
// replays already-cached primes and then reports end-of-sequence.
func CachedOnly() Option {
	return func(o *Options) {
		o.Expand = false
	}
}

// DefaultOptions returns Options for the most common iteration flavor:
//
//	– Start  = 0    (full replay from 2, regardless of prior consumption)
//	– Expand = true (grow the cache on demand; never ends)
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Start:  0,
		Expand: true,
	}
}
