// Package numtheory carries the generic number-theory helpers that per-day
// solutions lean on: Euclid's algorithm, Bézout coefficients, gcd/lcm and
// Chinese remainder combination. The tool itself does not use this package.
package numtheory

import "sort"

// EuclidStep is one step of Euclid's algorithm on a pair of numbers.
type EuclidStep struct {
	Remainder int64
	Quotient  int64
}

// EuclidSteps returns the remainder/quotient sequence of Euclid's algorithm
// on max(m,n) and min(m,n), including the terminal zero-remainder step.
func EuclidSteps(m, n int64) []EuclidStep {
	hi, lo := m, n
	if lo > hi {
		hi, lo = lo, hi
	}
	var steps []EuclidStep
	for lo != 0 {
		step := EuclidStep{Remainder: hi % lo, Quotient: hi / lo}
		steps = append(steps, step)
		hi, lo = lo, step.Remainder
	}
	return steps
}

// GCD returns the greatest common divisor of m and n. GCD(0, 0) is 0.
func GCD(m, n int64) int64 {
	if m < 0 {
		m = -m
	}
	if n < 0 {
		n = -n
	}
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// LCM returns the least common multiple of m and n.
func LCM(m, n int64) int64 {
	if m == 0 || n == 0 {
		return 0
	}
	l := m / GCD(m, n) * n
	if l < 0 {
		l = -l
	}
	return l
}

// Bezout returns coefficients u, v satisfying
// u*max(m,n) + v*min(m,n) = GCD(m, n).
func Bezout(m, n int64) (u, v int64) {
	hi, lo := m, n
	if lo > hi {
		hi, lo = lo, hi
	}
	// Extended Euclid on (hi, lo).
	r0, r1 := hi, lo
	u0, u1 := int64(1), int64(0)
	v0, v1 := int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		u0, u1 = u1, u0-q*u1
		v0, v1 = v1, v0-q*v1
	}
	return u0, v0
}

// mod is the floored modulo, always in [0, m) for m > 0.
func mod(a, m int64) int64 {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

// combine merges x ≡ a (mod m) and x ≡ b (mod n) into a single congruence.
// The third return is false when the pair is incompatible.
func combine(a, m, b, n int64) (int64, int64, bool) {
	g := GCD(m, n)
	if mod(b-a, g) != 0 {
		return 0, 0, false
	}
	l := m / g * n
	// u*m + v*n = g with (u, v) ordered for max/min, so reorder here.
	u, v := Bezout(m, n)
	if n > m {
		u, v = v, u
	}
	x := a + m*mod((b-a)/g*u, n/g)
	return mod(x, l), l, true
}

// CRT combines a system of congruences where each group may admit several
// residues. values maps a group ID to its candidate residues and moduli maps
// the same ID to the group's modulus. It returns every solution in
// [0, lcm), sorted, together with the combined modulus.
func CRT(values map[string][]int64, moduli map[string]int64) ([]int64, int64) {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var solutions []int64
	var modulo int64
	for _, id := range ids {
		groupMod := moduli[id]
		residues := values[id]
		if solutions == nil {
			for _, r := range residues {
				solutions = append(solutions, mod(r, groupMod))
			}
			modulo = groupMod
			continue
		}

		var next []int64
		var nextMod int64
		for _, s := range solutions {
			for _, r := range residues {
				x, l, ok := combine(s, modulo, mod(r, groupMod), groupMod)
				if !ok {
					continue
				}
				next = append(next, x)
				nextMod = l
			}
		}
		solutions = next
		if nextMod != 0 {
			modulo = nextMod
		} else {
			modulo = LCM(modulo, groupMod)
		}
	}

	sort.Slice(solutions, func(i, j int) bool { return solutions[i] < solutions[j] })
	// Combining can reach the same residue through different candidates.
	dedup := solutions[:0]
	var last int64
	for i, s := range solutions {
		if i > 0 && s == last {
			continue
		}
		dedup = append(dedup, s)
		last = s
	}
	return dedup, modulo
}
