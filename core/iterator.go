package core

// Iterator is a lazy cursor over an engine's prime cache. It yields
// primes in ascending order, growing the cache on demand when expansion
// is enabled, so the sequence is conceptually infinite.
//
// Iteration is restartable: creating a new Iterator at start 0 replays
// every cached prime by re-reading the cache — no recomputation happens.
// The FromCurrent option instead yields only primes discovered after the
// iterator was created.
//
// An expanding Iterator mutates its engine through Expand, so it must be
// the engine's sole logical owner while in use: do not grow the same
// engine elsewhere until you are done with the iterator. Dropping an
// iterator (or simply not calling Next again) halts further work; there
// is nothing to close.
type Iterator struct {
	eng    Engine // the engine whose cache is read and, optionally, grown
	pos    int    // cache index of the next prime to yield
	expand bool   // whether Next may call eng.Expand
}

// NewIterator returns a lazy Iterator over e's primes, configured by the
// given functional options (see DefaultOptions, WithStart, FromCurrent,
// CachedOnly).
//
// Returns ErrNilEngine if e is nil.
//
// Complexity: O(len(opts)) to construct.
func NewIterator(e Engine, opts ...Option) (*Iterator, error) {
	if e == nil {
		return nil, ErrNilEngine
	}

	// Build the configuration from defaults plus caller overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the FromCurrent sentinel against the cache length now, so
	// the iterator skips exactly the primes that existed at this moment.
	start := cfg.Start
	if start == StartCurrent {
		start = len(e.List())
	}

	return &Iterator{eng: e, pos: start, expand: cfg.Expand}, nil
}

// Next returns the next prime in the sequence and true, or (0, false)
// once the iterator is exhausted. An expanding iterator is never
// exhausted; a CachedOnly iterator ends at the cached tail.
//
// Complexity: O(1) per cached element; otherwise the amortized cost of
// one Expand per missing prime.
func (it *Iterator) Next() (uint64, bool) {
	// Grow (or give up) until the requested position is cached.
	for it.pos >= len(it.eng.List()) {
		if !it.expand {
			return 0, false
		}
		it.eng.Expand()
	}

	p := it.eng.List()[it.pos]
	it.pos++

	return p, true
}
