// SPDX-License-Identifier: MIT
package clog

import (
	"github.com/katalvlaran/clarith/frac"
	"github.com/katalvlaran/clarith/protocol"
)

// Transform holds the coefficients of the homographic map
//
//	x ↦ (NX·x + N) / (DX·x + D).
//
// Prime and Ingest rewrite the map so that it applies to what remains of x
// after a primer or a reduction has been read from it. All updates are
// overflow-checked; on error the coefficients are unspecified.
type Transform struct {
	NX, N, DX, D int
}

// Identity is x ↦ x.
var Identity = Transform{NX: 1, N: 0, DX: 0, D: 1}

// Prime rewrites t(x) as t(p(s)), a map of the bare stream value s.
func (t *Transform) Prime(p protocol.Primer) error {
	var a arith
	switch p {
	case protocol.Turn:
		t.NX, t.N = t.N, t.NX
		t.DX, t.D = t.D, t.DX
	case protocol.Reflect:
		t.NX, t.DX = a.neg(t.NX), a.neg(t.DX)
	case protocol.Ground:
		t.NX, t.N = t.N, a.neg(t.NX)
		t.DX, t.D = t.D, a.neg(t.DX)
	}
	return a.err()
}

// Ingest rewrites t(s) as t(s') where s' is the remainder after r.
func (t *Transform) Ingest(r protocol.Reduction) error {
	var a arith
	switch r {
	case protocol.Amplify:
		if even(t.NX, t.DX) {
			t.NX, t.DX = t.NX/2, t.DX/2
		} else {
			t.N, t.D = a.dbl(t.N), a.dbl(t.D)
		}
	case protocol.Uncover:
		t.NX, t.N = t.N, a.add(t.NX, t.N)
		t.DX, t.D = t.D, a.add(t.DX, t.D)
	}
	return a.err()
}

// AtHalf returns the numerator and denominator of t(1/2).
func (t Transform) AtHalf() (num, den int, err error) {
	var a arith
	if even(t.NX, t.DX) {
		num, den = a.add(t.N, t.NX/2), a.add(t.D, t.DX/2)
	} else {
		num, den = a.add(t.NX, a.dbl(t.N)), a.add(t.DX, a.dbl(t.D))
	}
	return num, den, a.err()
}

// At substitutes a special point for x.
func (t Transform) At(s protocol.Special) (num, den int, err error) {
	var a arith
	k := s.Int()
	num, den = a.add(a.scale(k, t.NX), t.N), a.add(a.scale(k, t.DX), t.D)
	return num, den, a.err()
}

// emitPrimer rewrites t so that it yields the stream value behind the
// primer p of its output.
func (t *Transform) emitPrimer(p protocol.Primer) error {
	var a arith
	switch p {
	case protocol.Turn:
		t.NX, t.N, t.DX, t.D = t.DX, t.D, t.NX, t.N
	case protocol.Reflect:
		t.NX, t.N = a.neg(t.NX), a.neg(t.N)
	case protocol.Ground:
		t.NX, t.N, t.DX, t.D = a.neg(t.DX), a.neg(t.D), t.NX, t.N
	}
	return a.err()
}

// emitReduction rewrites t so that it yields the remainder of its output
// after r.
func (t *Transform) emitReduction(r protocol.Reduction) error {
	var a arith
	switch r {
	case protocol.Amplify:
		if even(t.DX, t.D) {
			t.DX, t.D = t.DX/2, t.D/2
		} else {
			t.NX, t.N = a.dbl(t.NX), a.dbl(t.N)
		}
	case protocol.Uncover:
		t.NX, t.N, t.DX, t.D = a.sub(t.DX, t.NX), a.sub(t.D, t.N), t.NX, t.N
	}
	return a.err()
}

func (t *Transform) normalize() { normalize(&t.NX, &t.N, &t.DX, &t.D) }

// degenerate reports whether numerator and denominator are proportional,
// so the map is constant wherever it is defined.
func (t Transform) degenerate() bool {
	return frac.CmpProducts(t.NX, t.D, t.N, t.DX) == 0
}

// poleClear reports that the denominator does not change sign strictly
// inside (0, 1). A root at 0 or 1 is allowed.
func (t Transform) poleClear() (bool, error) {
	var a arith
	d1 := a.add(t.DX, t.D)
	if err := a.err(); err != nil {
		return false, err
	}
	return frac.Sign(t.D)*frac.Sign(d1) >= 0, nil
}

func (t Transform) zeroClear() (bool, error) {
	var a arith
	n1 := a.add(t.NX, t.N)
	if err := a.err(); err != nil {
		return false, err
	}
	return frac.Sign(t.N)*frac.Sign(n1) >= 0, nil
}

// ends returns t(0) and t(1) for a nondegenerate map with a clear pole.
// A pole at an endpoint becomes an infinity pointing the way t tends as
// the endpoint is approached from inside.
func (t Transform) ends() ([]frac.Frac, error) {
	var a arith
	f0 := frac.Frac{N: t.N, D: t.D}
	f1 := frac.Frac{N: a.add(t.NX, t.N), D: a.add(t.DX, t.D)}
	if err := a.err(); err != nil {
		return nil, err
	}
	if f0.D == 0 {
		f0.N = frac.Sign(f0.N) * frac.Sign(f1.D)
	}
	if f1.D == 0 {
		f1.N = frac.Sign(f1.N) * frac.Sign(f0.D)
	}
	return []frac.Frac{f0, f1}, nil
}
