// SPDX-License-Identifier: MIT
package clog

import (
	"github.com/katalvlaran/clarith/frac"
	"github.com/katalvlaran/clarith/protocol"
)

// Coefficient positions within a bilinear row r[kXY]·xy + r[kX]·x + r[kY]·y + r[k1].
const (
	kXY = iota
	kX
	kY
	k1
)

// row is one side (numerator or denominator) of a bilinear map.
type row [4]int

func (r row) zero() bool { return r == row{} }

// corners returns r at (0,0), (0,1), (1,0) and (1,1).
func (r row) corners(a *arith) [4]int {
	y1 := a.add(r[kY], r[k1])
	x1 := a.add(r[kX], r[k1])
	return [4]int{r[k1], y1, x1, a.add(a.add(r[kXY], r[kX]), y1)}
}

// bilinear is the map (x, y) ↦ num(x, y) / den(x, y).
type bilinear struct {
	num, den row
}

func (b *bilinear) rows() [2]*row { return [2]*row{&b.num, &b.den} }

// primeX rewrites the map for x = p(s).
func (b *bilinear) primeX(p protocol.Primer) error {
	var a arith
	for _, r := range b.rows() {
		switch p {
		case protocol.Turn:
			r[kXY], r[kY] = r[kY], r[kXY]
			r[kX], r[k1] = r[k1], r[kX]
		case protocol.Reflect:
			r[kXY], r[kX] = a.neg(r[kXY]), a.neg(r[kX])
		case protocol.Ground:
			r[kXY], r[kY] = a.neg(r[kY]), r[kXY]
			r[kX], r[k1] = a.neg(r[k1]), r[kX]
		}
	}
	return a.err()
}

// primeY rewrites the map for y = p(s).
func (b *bilinear) primeY(p protocol.Primer) error {
	var a arith
	for _, r := range b.rows() {
		switch p {
		case protocol.Turn:
			r[kXY], r[kX] = r[kX], r[kXY]
			r[kY], r[k1] = r[k1], r[kY]
		case protocol.Reflect:
			r[kXY], r[kY] = a.neg(r[kXY]), a.neg(r[kY])
		case protocol.Ground:
			r[kXY], r[kX] = a.neg(r[kX]), r[kXY]
			r[kY], r[k1] = a.neg(r[k1]), r[kY]
		}
	}
	return a.err()
}

// ingestX rewrites the map for the remainder of x after r.
func (b *bilinear) ingestX(r protocol.Reduction) error {
	var a arith
	switch r {
	case protocol.Amplify:
		if even(b.num[kXY], b.num[kX], b.den[kXY], b.den[kX]) {
			for _, w := range b.rows() {
				w[kXY], w[kX] = w[kXY]/2, w[kX]/2
			}
		} else {
			for _, w := range b.rows() {
				w[kY], w[k1] = a.dbl(w[kY]), a.dbl(w[k1])
			}
		}
	case protocol.Uncover:
		for _, w := range b.rows() {
			w[kXY], w[kX], w[kY], w[k1] = w[kY], w[k1], a.add(w[kXY], w[kY]), a.add(w[kX], w[k1])
		}
	}
	return a.err()
}

// ingestY rewrites the map for the remainder of y after r.
func (b *bilinear) ingestY(r protocol.Reduction) error {
	var a arith
	switch r {
	case protocol.Amplify:
		if even(b.num[kXY], b.num[kY], b.den[kXY], b.den[kY]) {
			for _, w := range b.rows() {
				w[kXY], w[kY] = w[kXY]/2, w[kY]/2
			}
		} else {
			for _, w := range b.rows() {
				w[kX], w[k1] = a.dbl(w[kX]), a.dbl(w[k1])
			}
		}
	case protocol.Uncover:
		for _, w := range b.rows() {
			w[kXY], w[kX], w[kY], w[k1] = w[kX], a.add(w[kXY], w[kX]), w[k1], a.add(w[kY], w[k1])
		}
	}
	return a.err()
}

func (b *bilinear) emitPrimer(p protocol.Primer) error {
	var a arith
	switch p {
	case protocol.Turn:
		b.num, b.den = b.den, b.num
	case protocol.Reflect:
		b.num = b.num.negated(&a)
	case protocol.Ground:
		b.num, b.den = b.den.negated(&a), b.num
	}
	return a.err()
}

func (b *bilinear) emitReduction(r protocol.Reduction) error {
	var a arith
	switch r {
	case protocol.Amplify:
		if even(b.den[:]...) {
			for i := range b.den {
				b.den[i] /= 2
			}
		} else {
			for i := range b.num {
				b.num[i] = a.dbl(b.num[i])
			}
		}
	case protocol.Uncover:
		var diff row
		for i := range diff {
			diff[i] = a.sub(b.den[i], b.num[i])
		}
		b.num, b.den = diff, b.num
	}
	return a.err()
}

func (r row) negated(a *arith) row {
	for i := range r {
		r[i] = a.neg(r[i])
	}
	return r
}

func (b *bilinear) normalize() {
	normalize(&b.num[0], &b.num[1], &b.num[2], &b.num[3], &b.den[0], &b.den[1], &b.den[2], &b.den[3])
}

// degenerate reports whether the numerator row is proportional to the
// denominator row.
func (b *bilinear) degenerate() bool {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if frac.CmpProducts(b.num[i], b.den[j], b.num[j], b.den[i]) != 0 {
				return false
			}
		}
	}
	return true
}

// corners returns the images of the four corners of the unit square, and
// whether they bound the image of the open square. That requires the
// denominator to keep one strict sign on the closed square and the
// numerator to keep one sign on the open square.
func (b *bilinear) corners() ([]frac.Frac, bool, error) {
	var a arith
	nc, dc := b.num.corners(&a), b.den.corners(&a)
	if err := a.err(); err != nil {
		return nil, false, err
	}
	ds := frac.Sign(dc[0])
	if ds == 0 {
		return nil, false, nil
	}
	pos, neg := false, false
	for i := range dc {
		if frac.Sign(dc[i]) != ds {
			return nil, false, nil
		}
		pos = pos || nc[i] > 0
		neg = neg || nc[i] < 0
	}
	if pos && neg {
		return nil, false, nil
	}
	vs := make([]frac.Frac, 4)
	for i := range vs {
		vs[i] = frac.Frac{N: nc[i], D: dc[i]}
	}
	return vs, true, nil
}

// settle resolves a degenerate map the way Transform.settle does.
func (b *bilinear) settle() (num, den int, ok bool, err error) {
	if b.den.zero() {
		return 0, 0, false, ErrDivisionByZero
	}
	var a arith
	dc := b.den.corners(&a)
	if err := a.err(); err != nil {
		return 0, 0, false, err
	}
	for i := range dc {
		if frac.Sign(dc[i]) != frac.Sign(dc[0]) || dc[i] == 0 {
			return 0, 0, false, nil
		}
	}
	return b.num[k1], b.den[k1], true, nil
}

// atX substitutes a special point for x, leaving a transform of y.
func (b *bilinear) atX(s protocol.Special) (Transform, error) {
	var a arith
	k := s.Int()
	t := Transform{
		NX: a.add(a.scale(k, b.num[kXY]), b.num[kY]),
		N:  a.add(a.scale(k, b.num[kX]), b.num[k1]),
		DX: a.add(a.scale(k, b.den[kXY]), b.den[kY]),
		D:  a.add(a.scale(k, b.den[kX]), b.den[k1]),
	}
	return t, a.err()
}

// atY substitutes a special point for y, leaving a transform of x.
func (b *bilinear) atY(s protocol.Special) (Transform, error) {
	var a arith
	k := s.Int()
	t := Transform{
		NX: a.add(a.scale(k, b.num[kXY]), b.num[kX]),
		N:  a.add(a.scale(k, b.num[kY]), b.num[k1]),
		DX: a.add(a.scale(k, b.den[kXY]), b.den[kX]),
		D:  a.add(a.scale(k, b.den[kY]), b.den[k1]),
	}
	return t, a.err()
}

// halfX substitutes x = 1/2 (scaled by 2 unless the x terms are even).
func (b *bilinear) halfX() (Transform, error) {
	var a arith
	half := even(b.num[kXY], b.num[kX], b.den[kXY], b.den[kX])
	side := func(r row) (int, int) {
		if half {
			return a.add(r[kXY]/2, r[kY]), a.add(r[kX]/2, r[k1])
		}
		return a.add(r[kXY], a.dbl(r[kY])), a.add(r[kX], a.dbl(r[k1]))
	}
	var t Transform
	t.NX, t.N = side(b.num)
	t.DX, t.D = side(b.den)
	return t, a.err()
}

// halfY substitutes y = 1/2 (scaled by 2 unless the y terms are even).
func (b *bilinear) halfY() (Transform, error) {
	var a arith
	half := even(b.num[kXY], b.num[kY], b.den[kXY], b.den[kY])
	side := func(r row) (int, int) {
		if half {
			return a.add(r[kXY]/2, r[kX]), a.add(r[kY]/2, r[k1])
		}
		return a.add(r[kXY], a.dbl(r[kX])), a.add(r[kY], a.dbl(r[k1]))
	}
	var t Transform
	t.NX, t.N = side(b.num)
	t.DX, t.D = side(b.den)
	return t, a.err()
}

// combine streams b(x, y) for a primed map whose image on the open unit
// square lies in (0, 1).
type combine struct {
	x, y *Stream
	b    bilinear
}

// Combine returns
//
//	(nxy·xy + nx·x + ny·y + n) / (dxy·xy + dx·x + dy·y + d).
//
// Description:
//
//	The result is exact and lazy: reductions of x and y are read only as
//	far as needed to decide each output symbol. The streams of x and y
//	are consumed and must be distinct.
//
// Algorithm Outline:
//  1. A special x (or y) is substituted, leaving Homographic of the other.
//  2. The primers of x and y are folded into the map, which then acts on
//     the unit square.
//  3. Priming: while the images of the four corners do not fit one primer
//     region, read one reduction from x and one from y. The output primer
//     is emitted once they fit.
//  4. Egest: each Pull emits Amplify or Uncover when all corner images lie
//     on one side of 1/2, and otherwise reads from x and y again.
//  5. Collapse: when either input is exhausted it is exactly 1/2. The map
//     becomes a homographic map of the other stream, which then takes over.
//
// Complexity:
//
//	Each output symbol costs O(1) work per input symbol read. Coefficients
//	are fixed-width ints and are divided by their gcd after every step.
//
// Limits:
//
//	Operands near the ends of the int range can overflow while priming,
//	even when the result is small. MaxInt · (1/MaxInt) and MaxInt − (MaxInt−1)
//	both fail. Homographic drains operands of that size through identity,
//	doubling and halving maps.
//
// Errors:
//   - ErrSharedStream if x and y are backed by the same stream.
//   - ErrDivisionByZero if the denominator vanishes at (x, y).
//   - ErrCoefficientOverflow if a coefficient leaves the int range while
//     the output is being primed.
func Combine(x, y Value, nxy, nx, ny, n, dxy, dx, dy, d int) (Value, error) {
	b := bilinear{
		num: row{nxy, nx, ny, n},
		den: row{dxy, dx, dy, d},
	}
	if s, ok := x.Special(); ok {
		t, err := b.atX(s)
		if err != nil {
			return Value{}, err
		}
		return Homographic(y, t.NX, t.N, t.DX, t.D)
	}
	if s, ok := y.Special(); ok {
		t, err := b.atY(s)
		if err != nil {
			return Value{}, err
		}
		return Homographic(x, t.NX, t.N, t.DX, t.D)
	}
	if x.stream == y.stream {
		return Value{}, ErrSharedStream
	}
	if err := b.primeX(x.primer); err != nil {
		return Value{}, err
	}
	if err := b.primeY(y.primer); err != nil {
		return Value{}, err
	}

	c := &combine{x: x.stream, y: y.stream, b: b}
	c.b.normalize()
	for {
		if c.b.degenerate() {
			num, den, ok, err := c.b.settle()
			if err != nil {
				return Value{}, err
			}
			if ok {
				return Ratio(num, den)
			}
		} else {
			vs, ok, err := c.b.corners()
			if err != nil {
				return Value{}, err
			}
			if ok {
				if p, ok := primerFor(vs); ok {
					if err := c.b.emitPrimer(p); err != nil {
						return Value{}, err
					}
					c.b.normalize()
					return FromStream(p, newStream(c)), nil
				}
			}
		}

		t, rest, collapsed, err := c.ingest()
		if err != nil {
			return Value{}, err
		}
		if collapsed {
			return primeHomographic(t, rest)
		}
	}
}

// ingest reads one reduction from x, then one from y. When either runs
// out, the map collapses to a transform of the other stream, which is
// returned with collapsed set.
func (c *combine) ingest() (Transform, *Stream, bool, error) {
	r, ok, err := c.x.Pull()
	if err != nil {
		return Transform{}, nil, false, err
	}
	if !ok {
		t, err := c.b.halfX()
		return t, c.y, err == nil, err
	}
	if err := c.b.ingestX(r); err != nil {
		return Transform{}, nil, false, err
	}

	r, ok, err = c.y.Pull()
	if err != nil {
		return Transform{}, nil, false, err
	}
	if !ok {
		t, err := c.b.halfY()
		return t, c.x, err == nil, err
	}
	if err := c.b.ingestY(r); err != nil {
		return Transform{}, nil, false, err
	}
	c.b.normalize()
	return Transform{}, nil, false, nil
}

func (c *combine) egest() (protocol.Reduction, bool, strategy, error) {
	for {
		vs, ok, err := c.b.corners()
		if err != nil {
			return 0, false, nil, err
		}
		if ok {
			if r, ok := reductionFor(vs); ok {
				if err := c.b.emitReduction(r); err != nil {
					return 0, false, nil, err
				}
				c.b.normalize()
				return r, true, nil, nil
			}
		}

		t, rest, collapsed, err := c.ingest()
		if err != nil {
			return 0, false, nil, err
		}
		if collapsed {
			v, err := primeHomographic(t, rest)
			if err != nil {
				return 0, false, nil, err
			}
			return 0, false, unit(v), nil
		}
	}
}
