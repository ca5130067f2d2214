// SPDX-License-Identifier: MIT
package compare

import (
	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/protocol"
)

// Ordering is the result of a comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering { return -o }

// String returns "<", "=" or ">".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	}
	return "="
}

// Compare returns the ordering of a relative to b. Both values are
// consumed. Passing the same generic value twice yields Equal without
// reading its stream.
//
// Errors from either stream (clog.ErrCoefficientOverflow,
// clog.ErrDivisionByZero) are returned as is.
func Compare(a, b clog.Value) (Ordering, error) {
	sa, aSpecial := a.Special()
	sb, bSpecial := b.Special()
	switch {
	case aSpecial && bSpecial:
		return order(int(sa), int(sb)), nil
	case aSpecial:
		return order(specialRank(sa), primerRank(b.Primer())), nil
	case bSpecial:
		return order(primerRank(a.Primer()), specialRank(sb)), nil
	}

	if o := order(primerRank(a.Primer()), primerRank(b.Primer())); o != Equal {
		return o, nil
	}
	if a.Stream() == b.Stream() {
		return Equal, nil
	}
	o, err := streams(a.Stream(), b.Stream())
	if err != nil {
		return Equal, err
	}
	if reciprocating(a.Primer()) {
		o = o.Reverse()
	}
	return o, nil
}

// Regions of the line in increasing order. Specials take the odd ranks,
// primer regions the even ones, so a special never ties with a region.
func specialRank(s protocol.Special) int { return 2*int(s) + 3 }

func primerRank(p protocol.Primer) int {
	switch p {
	case protocol.Ground:
		return 0
	case protocol.Reflect:
		return 2
	case protocol.Turn:
		return 6
	}
	return 4
}

// reciprocating reports whether p maps the unit interval onto its region
// in decreasing order.
func reciprocating(p protocol.Primer) bool {
	return p == protocol.Turn || p == protocol.Reflect
}

// streams compares the values in (0, 1) denoted by two streams.
func streams(a, b *clog.Stream) (Ordering, error) {
	direct := true
	for {
		ra, aok, err := a.Pull()
		if err != nil {
			return Equal, err
		}
		rb, bok, err := b.Pull()
		if err != nil {
			return Equal, err
		}
		if !aok {
			ra = 0
		}
		if !bok {
			rb = 0
		}
		if ra != rb {
			o := order(reductionRank(ra), reductionRank(rb))
			if !direct {
				o = o.Reverse()
			}
			return o, nil
		}
		if !aok {
			return Equal, nil
		}
		if ra == protocol.Uncover {
			direct = !direct
		}
	}
}

// reductionRank orders the first symbols of two diverging remainders:
// Amplify (below 1/2) < exhausted (exactly 1/2) < Uncover (above 1/2).
func reductionRank(r protocol.Reduction) int {
	switch r {
	case protocol.Amplify:
		return 0
	case protocol.Uncover:
		return 2
	}
	return 1
}

func order(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
