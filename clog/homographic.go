// SPDX-License-Identifier: MIT
package clog

import "github.com/katalvlaran/clarith/protocol"

// homographic streams t(x) for a primed transform whose image on (0, 1)
// lies in (0, 1).
type homographic struct {
	x *Stream
	t Transform
}

// Homographic returns (nx·x + n) / (dx·x + d). The stream of x is consumed.
//
// Description:
//
//	The result is exact and lazy. Reductions of x are read only as far as
//	needed to decide the next output symbol, so Homographic of a value that
//	is itself computed pulls through the whole chain on demand.
//
// Algorithm Outline:
//  1. A constant map or a special x is evaluated directly with Ratio.
//  2. The primer of x is folded into the transform, which then maps the
//     stream value s ∈ (0, 1).
//  3. Priming: while t(0) and t(1) do not bound one primer region (or a
//     pole lies inside (0, 1)), read a reduction of x. Emit the primer
//     once they do.
//  4. Egest: each Pull emits Amplify when t(0), t(1) ≤ 1/2, Uncover when
//     both are ≥ 1/2, and otherwise reads another reduction of x.
//  5. Collapse: once x is exhausted it is exactly 1/2, and the rest of the
//     output is the Ratio t(1/2).
//
// Complexity:
//
//	O(1) work per symbol read or written. Coefficients are divided by
//	their gcd after every step.
//
// Errors:
//   - ErrDivisionByZero if the denominator vanishes at x.
//   - ErrCoefficientOverflow if a coefficient leaves the int range while
//     the output is being primed. Later failures are returned by Pull.
func Homographic(x Value, nx, n, dx, d int) (Value, error) {
	t := Transform{NX: nx, N: n, DX: dx, D: d}
	if nx == 0 && dx == 0 {
		return Ratio(n, d)
	}
	if s, ok := x.Special(); ok {
		num, den, err := t.At(s)
		if err != nil {
			return Value{}, err
		}
		return Ratio(num, den)
	}
	if err := t.Prime(x.primer); err != nil {
		return Value{}, err
	}
	return primeHomographic(t, x.stream)
}

// primeHomographic reads x until t(x) can be placed in one region of the
// line, then returns the primed value.
func primeHomographic(t Transform, x *Stream) (Value, error) {
	h := &homographic{x: x, t: t}
	h.t.normalize()
	for {
		if h.t.degenerate() {
			num, den, ok, err := h.t.settle()
			if err != nil {
				return Value{}, err
			}
			if ok {
				return Ratio(num, den)
			}
		} else {
			p, ok, err := h.primer()
			if err != nil {
				return Value{}, err
			}
			if ok {
				if err := h.t.emitPrimer(p); err != nil {
					return Value{}, err
				}
				h.t.normalize()
				return FromStream(p, newStream(h)), nil
			}
		}

		more, err := h.ingest()
		if err != nil {
			return Value{}, err
		}
		if !more {
			num, den, err := h.t.AtHalf()
			if err != nil {
				return Value{}, err
			}
			return Ratio(num, den)
		}
	}
}

func (h *homographic) primer() (protocol.Primer, bool, error) {
	ok, err := h.clear()
	if err != nil || !ok {
		return 0, false, err
	}
	vs, err := h.t.ends()
	if err != nil {
		return 0, false, err
	}
	p, ok := primerFor(vs)
	return p, ok, nil
}

func (h *homographic) clear() (bool, error) {
	ok, err := h.t.poleClear()
	if err != nil || !ok {
		return false, err
	}
	return h.t.zeroClear()
}

// ingest folds the next reduction of x into t. It reports false once x
// is exhausted.
func (h *homographic) ingest() (bool, error) {
	r, ok, err := h.x.Pull()
	if err != nil || !ok {
		return false, err
	}
	if err := h.t.Ingest(r); err != nil {
		return false, err
	}
	h.t.normalize()
	return true, nil
}

func (h *homographic) egest() (protocol.Reduction, bool, strategy, error) {
	for {
		ok, err := h.clear()
		if err != nil {
			return 0, false, nil, err
		}
		if ok {
			vs, err := h.t.ends()
			if err != nil {
				return 0, false, nil, err
			}
			if r, ok := reductionFor(vs); ok {
				if err := h.t.emitReduction(r); err != nil {
					return 0, false, nil, err
				}
				h.t.normalize()
				return r, true, nil, nil
			}
		}

		more, err := h.ingest()
		if err != nil {
			return 0, false, nil, err
		}
		if !more {
			num, den, err := h.t.AtHalf()
			if err != nil {
				return 0, false, nil, err
			}
			v, err := Ratio(num, den)
			if err != nil {
				return 0, false, nil, err
			}
			return 0, false, unit(v), nil
		}
	}
}

// settle resolves a degenerate transform, which is constant wherever its
// denominator is nonzero. ok is false while a root of the denominator
// still lies strictly inside the domain.
func (t Transform) settle() (num, den int, ok bool, err error) {
	if t.DX == 0 && t.D == 0 {
		return 0, 0, false, ErrDivisionByZero
	}
	defined, err := t.poleClear()
	if err != nil || !defined {
		return 0, 0, false, err
	}
	if t.D != 0 {
		return t.N, t.D, true, nil
	}
	var a arith
	num, den = a.add(t.NX, t.N), a.add(t.DX, t.D)
	return num, den, true, a.err()
}
