// Package factor provides one-shot, cache-free primality and
// factorization primitives. Nothing here allocates or consults a prime
// cache — each call simply counts upward — which makes these functions
// the faster choice for a single query and the slower one for many.
package factor

// FirstFactor returns the smallest factor of x greater than 1: 2 for
// even x, otherwise the first odd divisor found scanning 3, 5, 7, … up
// to √x. If no divisor exists, x itself is returned — x is prime.
//
// The scan bound is the quotient test n ≤ x/n (equivalent to n² ≤ x),
// so the function is exact across the whole uint64 range.
//
// Complexity: O(√x) divisions worst case (prime x).
func FirstFactor(x uint64) uint64 {
	if x%2 == 0 {
		return 2
	}
	for n := uint64(3); n <= x/n; n += 2 {
		if x%n == 0 {
			return n
		}
	}

	// No factor found up to √x: x must be prime.
	return x
}

// Factors returns the prime factorization of x in non-decreasing order,
// with multiplicity, by repeatedly peeling off FirstFactor of the
// shrinking cofactor. x ≤ 1 yields an empty factorization.
//
// Complexity: O(√x) divisions worst case, dominated by the largest
// prime factor.
func Factors(x uint64) []uint64 {
	if x <= 1 {
		return nil
	}

	var fs []uint64
	cur := x
	for {
		m := FirstFactor(cur)
		fs = append(fs, m)
		if m == cur {
			// The cofactor is its own first factor: it is prime, done.
			return fs
		}
		cur /= m
	}
}

// FactorsUniq returns the distinct prime factors of x in strictly
// increasing order: like Factors, but every copy of a found factor is
// divided out before searching for the next. x ≤ 1 yields empty.
//
// Complexity: O(√x) divisions worst case.
func FactorsUniq(x uint64) []uint64 {
	if x <= 1 {
		return nil
	}

	var fs []uint64
	cur := x
	for {
		m := FirstFactor(cur)
		fs = append(fs, m)
		if cur == m {
			return fs
		}
		for cur%m == 0 {
			cur /= m
		}
		if cur == 1 {
			return fs
		}
	}
}

// IsPrime reports whether n is prime by checking every odd candidate up
// to √n. 0 and 1 are not prime. Prefer core.IsPrime when you will test
// many numbers — it reuses a growing prime cache.
//
// Complexity: O(√n) divisions worst case.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}

	return FirstFactor(n) == n
}

// Totient returns Euler's totient φ(x): how many integers in [1, x] are
// coprime to x. Computed multiplicatively over the distinct prime
// factors, φ(x) = x·∏(1 − 1/p), with each term applied as x/p·(p−1) to
// stay in integer arithmetic. Totient(0) = 0 and Totient(1) = 1.
//
// Complexity: that of FactorsUniq plus O(ω(x)) multiplications.
func Totient(x uint64) uint64 {
	if x == 0 {
		return 0
	}

	phi := x
	for _, p := range FactorsUniq(x) {
		phi = phi / p * (p - 1)
	}

	return phi
}
