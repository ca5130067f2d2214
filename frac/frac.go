// SPDX-License-Identifier: MIT
package frac

import "math/bits"

// Frac is the projective fraction N/D. D == 0 denotes an infinity
// whose direction is the sign of N; 0/0 is not a value.
type Frac struct {
	N, D int
}

// Cmp returns the sign of f − p/q. q must be positive.
func (f Frac) Cmp(p, q int) int {
	if f.D == 0 {
		return Sign(f.N)
	}
	s := CmpProducts(f.N, q, p, f.D)
	if f.D < 0 {
		return -s
	}
	return s
}

// AtMost reports f ≤ p/q.
func (f Frac) AtMost(p, q int) bool { return f.Cmp(p, q) <= 0 }

// AtLeast reports f ≥ p/q.
func (f Frac) AtLeast(p, q int) bool { return f.Cmp(p, q) >= 0 }

// Sign returns -1, 0 or 1.
func Sign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

// Abs returns |a| as an unsigned magnitude; Abs(math.MinInt) is exact.
func Abs(a int) uint64 {
	if a < 0 {
		return uint64(^int64(a)) + 1
	}
	return uint64(a)
}

// wide is a sign-magnitude 128-bit integer.
type wide struct {
	neg    bool
	hi, lo uint64
}

func product(a, b int) wide {
	hi, lo := bits.Mul64(Abs(a), Abs(b))
	if hi == 0 && lo == 0 {
		return wide{}
	}
	return wide{neg: (a < 0) != (b < 0), hi: hi, lo: lo}
}

func (w wide) cmp(v wide) int {
	if w.neg != v.neg {
		if w.neg {
			return -1
		}
		return 1
	}
	c := 0
	switch {
	case w.hi != v.hi:
		c = cmpUint(w.hi, v.hi)
	case w.lo != v.lo:
		c = cmpUint(w.lo, v.lo)
	}
	if w.neg {
		return -c
	}
	return c
}

func cmpUint(a, b uint64) int {
	if a < b {
		return -1
	}
	return 1
}

// CmpProducts returns the sign of a·b − c·d, computed exactly.
func CmpProducts(a, b, c, d int) int {
	return product(a, b).cmp(product(c, d))
}

// Add returns a+b and whether it fit in an int.
func Add(a, b int) (int, bool) {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return s, false
	}
	return s, true
}

// Sub returns a−b and whether it fit in an int.
func Sub(a, b int) (int, bool) {
	s := a - b
	if (a >= 0) != (b >= 0) && (s >= 0) != (a >= 0) {
		return s, false
	}
	return s, true
}

// Neg returns −a and whether it fit in an int.
func Neg(a int) (int, bool) {
	if a == -a && a != 0 {
		return a, false
	}
	return -a, true
}

// GCD returns the greatest common divisor of two magnitudes; GCD(0, 0) = 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
