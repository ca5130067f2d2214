// SPDX-License-Identifier: MIT
package clog

import (
	"github.com/katalvlaran/clarith/frac"
	"github.com/katalvlaran/clarith/protocol"
)

// ratio streams num/den with 0 < num < den. Once it reaches exactly one
// half it stays exhausted.
type ratio struct {
	num, den uint
}

func (r *ratio) egest() (protocol.Reduction, bool, strategy, error) {
	if r.num > r.den/2 {
		r.num, r.den = r.den-r.num, r.num
		return protocol.Uncover, true, nil, nil
	}
	if r.den%2 == 0 {
		if r.num == r.den/2 {
			return 0, false, nil, nil
		}
		r.den /= 2
	} else {
		r.num *= 2
	}
	return protocol.Amplify, true, nil, nil
}

// RatioU returns the exact value ±num/den.
//
// Errors:
//   - ErrDivisionByZero if den is 0.
func RatioU(positive bool, num, den uint) (Value, error) {
	switch {
	case den == 0:
		return Value{}, ErrDivisionByZero
	case num == 0:
		return FromSpecial(protocol.Zero), nil
	case num == den && positive:
		return FromSpecial(protocol.PosOne), nil
	case num == den:
		return FromSpecial(protocol.NegOne), nil
	}

	p := protocol.NoPrimer
	if num > den {
		num, den = den, num
		p = protocol.Turn
		if !positive {
			p = protocol.Ground
		}
	} else if !positive {
		p = protocol.Reflect
	}

	return FromStream(p, newStream(&ratio{num: num, den: den})), nil
}

// Ratio returns the exact value num/den. Any int pair is accepted,
// including math.MinInt.
//
// Errors:
//   - ErrDivisionByZero if den is 0.
func Ratio(num, den int) (Value, error) {
	positive := (num >= 0) == (den >= 0)
	return RatioU(positive, uint(frac.Abs(num)), uint(frac.Abs(den)))
}
