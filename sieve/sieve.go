// Package sieve implements the incremental Sieve prime engine: a
// wheel-30 candidate stepper pruned by a min-heap of pending composites,
// one per discovered prime.
package sieve

import (
	"container/heap"

	"github.com/katalvlaran/primes/core"
)

// Sieve discovers primes without trial division. Alongside the cache it
// keeps a wheel cursor and a priority queue of crossings — for every
// cached prime, the next composite that prime will strike off. A wheel
// candidate that survives every scheduled crossing below it is prime.
//
// Invariant: each prime beyond the 2, 3, 5 seed has exactly one pending
// crossing in the queue at all times; consumed crossings are reinserted
// advanced by 2·prime (the wheel only emits odd candidates, so even
// multiples never need scheduling).
//
// Not safe for concurrent mutation; see core.Engine.
type Sieve struct {
	primes []uint64   // ascending, duplicate-free, gap-free cache
	wheel  wheel30    // candidate stream, coprime to 30
	pend   crossingPQ // min-heap of pending crossings, keyed by composite
}

// compile-time contract check
var _ core.Engine = (*Sieve)(nil)

// New returns a Sieve engine seeded with 2, 3 and 5 — the primes the
// wheel never emits — and an empty crossing queue, so the first Expand
// discovers 7.
//
// Complexity: O(1).
func New() *Sieve {
	return &Sieve{
		primes: []uint64{2, 3, 5},
		wheel:  newWheel30(),
	}
}

// Expand finds the next prime and appends it to the cache.
//
// Steps, per wheel candidate c:
//  1. Peek the minimum crossing (composite, prime).
//  2. composite < c — the crossing is stale (its composite fell between
//     wheel candidates): reschedule it and re-peek, keeping c.
//  3. composite == c — c is proven composite: reschedule the crossing
//     and pull a fresh candidate from the wheel.
//  4. composite > c (or empty queue) — c survived every prime's
//     crossings below it, so c is prime: schedule its own first crossing
//     at c² (smaller multiples of c were already covered by smaller
//     primes) and append c to the cache.
//
// The c² scheduling overflows above c ≈ 2³², long past any cache that
// fits in memory.
//
// Complexity: amortized near-linear per prime for dense enumeration;
// each heap operation is O(log P) over P cached primes.
func (s *Sieve) Expand() {
	c := s.wheel.next()
	for s.pend.Len() > 0 {
		top := s.pend[0]
		if top.composite > c {
			break // c survived every scheduled crossing
		}
		s.reschedule()
		if top.composite == c {
			c = s.wheel.next()
		}
	}

	heap.Push(&s.pend, crossing{composite: c * c, prime: c})
	s.primes = append(s.primes, c)
}

// List returns the primes found so far, ascending. Read-only view; see
// core.Engine for the snapshot semantics.
//
// Complexity: O(1).
func (s *Sieve) List() []uint64 {
	return s.primes
}

// reschedule pops the minimum crossing and reinserts it advanced by
// twice its prime, restoring the one-crossing-per-prime invariant.
// No decrease-key is needed anywhere: stale entries are simply popped
// and reinserted with their advanced key.
//
// Complexity: O(log P).
func (s *Sieve) reschedule() {
	cr := heap.Pop(&s.pend).(crossing)
	cr.composite += 2 * cr.prime
	heap.Push(&s.pend, cr)
}

// crossing pairs a discovered prime with the next composite it will
// strike off the candidate stream.
type crossing struct {
	composite uint64 // next multiple of prime the wheel could reach
	prime     uint64 // the prime doing the striking
}

// crossingPQ implements heap.Interface as a min-heap of crossings,
// ordered by composite first and prime second for determinism.
type crossingPQ []crossing

// Len returns the number of pending crossings.
// Complexity: O(1).
func (pq crossingPQ) Len() int { return len(pq) }

// Less reports whether crossing i should sort before j: smaller
// composite first, ties broken by the smaller prime.
// Complexity: O(1).
func (pq crossingPQ) Less(i, j int) bool {
	if pq[i].composite != pq[j].composite {
		return pq[i].composite < pq[j].composite
	}

	return pq[i].prime < pq[j].prime
}

// Swap swaps crossings at indices i and j.
// Complexity: O(1).
func (pq crossingPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new crossing to the heap.
// Called by heap.Push. Complexity: O(log N) amortized.
func (pq *crossingPQ) Push(x interface{}) { *pq = append(*pq, x.(crossing)) }

// Pop removes and returns the minimum crossing from the heap.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (pq *crossingPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	cr := old[n-1] // minimum element after heap adjustments
	*pq = old[:n-1]

	return cr
}
