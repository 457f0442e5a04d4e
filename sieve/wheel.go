package sieve

// wheelResidues is the fixed table of the eight residues modulo 30 that
// are coprime to 30. Stepping through base+residue skips every multiple
// of 2, 3 and 5 — a ~3.75× reduction of the candidate stream.
var wheelResidues = [8]uint64{1, 7, 11, 13, 17, 19, 23, 29}

// wheel30 steps through the ascending integers coprime to 30.
// State is a base (multiple of 30) and a phase into wheelResidues.
type wheel30 struct {
	base  uint64 // current multiple of 30
	phase int    // index of the residue to emit next
}

// newWheel30 returns a stepper positioned past the unit residue 1, so
// the first next() yields 7 — the first prime the sieve has to discover
// beyond its 2, 3, 5 seed.
func newWheel30() wheel30 {
	return wheel30{base: 0, phase: 1}
}

// next returns the current candidate and advances the wheel: the phase
// steps through the residue table and, on wrap-around, the base grows
// by 30. Pure state advance, no failure modes.
//
// Complexity: O(1).
func (w *wheel30) next() uint64 {
	n := w.base + wheelResidues[w.phase]
	w.phase++
	if w.phase == len(wheelResidues) {
		w.phase = 0
		w.base += 30
	}

	return n
}
