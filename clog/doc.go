// Package clog implements exact real arithmetic in continued-logarithm form.
//
// 🚀 What is a continued logarithm?
//
//	A number in (0,1) is written as a stream of binary decisions. Amplify
//	says "below one-half, double it"; Uncover says "above one-half, replace
//	s by 1/s − 1". When the stream stops the remainder is exactly 1/2.
//	Rationals always have finite streams; the four Primers and three
//	Specials of package protocol extend the idea to the whole line.
//
// ✨ What this package provides:
//   - Value:      a Special point, or a Primer plus a lazily pulled Stream
//   - Ratio:      exact conversion of num/den
//   - Homographic: (nx·x + n) / (dx·x + d) of one value
//   - Combine:    (nxy·xy + nx·x + ny·y + n) / (dxy·xy + dx·x + dy·y + d)
//   - Half:       the canonical one-half, a stream with no symbols
//   - Transform:  the four-coefficient map shared with package extract
//
// ⚙️ Usage:
//
//	x, _ := clog.Ratio(2, 3)                  // 2/3, no primer
//	y, _ := clog.Homographic(x, 1, 1, 0, 1)   // x + 1 = 5/3, primed Turn
//	for {
//	    r, ok, err := y.Stream().Pull()
//	    if err != nil || !ok {
//	        break
//	    }
//	    fmt.Print(r)
//	}
//
// Errors:
//
//   - ErrDivisionByZero:      a denominator vanished at an exact input
//   - ErrCoefficientOverflow: a coefficient left the int range
//   - ErrNilStream:           Pull on a nil or zero Stream
//   - ErrSharedStream:        Combine of two operands backed by one stream
//
// A Stream that failed keeps returning its first error. Internal
// inconsistencies panic with "clog: logic error"; they indicate a bug in
// the engine, never bad input.
//
// Values are single-owner and not safe for concurrent use. Every
// constructor consumes the streams of the Values it is given.
package clog
