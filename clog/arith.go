package clog

import "github.com/katalvlaran/clarith/frac"

// arith applies checked coefficient updates and remembers the first
// overflow, so a sequence of updates is checked once at the end.
type arith struct {
	overflow bool
}

func (a *arith) add(x, y int) int {
	s, ok := frac.Add(x, y)
	a.overflow = a.overflow || !ok
	return s
}

func (a *arith) sub(x, y int) int {
	s, ok := frac.Sub(x, y)
	a.overflow = a.overflow || !ok
	return s
}

func (a *arith) neg(x int) int {
	s, ok := frac.Neg(x)
	a.overflow = a.overflow || !ok
	return s
}

func (a *arith) dbl(x int) int { return a.add(x, x) }

// scale returns k·x for k ∈ {−1, 0, 1}.
func (a *arith) scale(k, x int) int {
	switch k {
	case -1:
		return a.neg(x)
	case 0:
		return 0
	}
	return x
}

func (a *arith) err() error {
	if a.overflow {
		return ErrCoefficientOverflow
	}
	return nil
}

func even(xs ...int) bool {
	for _, x := range xs {
		if x&1 != 0 {
			return false
		}
	}
	return true
}

// normalize divides xs by their common gcd.
func normalize(xs ...*int) {
	var g uint64
	for _, x := range xs {
		g = frac.GCD(g, frac.Abs(*x))
		if g == 1 {
			return
		}
	}
	if g <= 1 {
		return
	}
	for _, x := range xs {
		// g ≥ 2 divides |x| ≤ 2^63, so the quotient fits.
		if *x < 0 {
			*x = -int(frac.Abs(*x) / g)
		} else {
			*x = int(uint64(*x) / g)
		}
	}
}
