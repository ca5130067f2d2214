package clog_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/compare"
	"github.com/stretchr/testify/require"
)

// reference values used across the grids, as (num, den) with den > 0.
var references = [][2]int{
	{-2, 1}, {-1, 1}, {-2, 3}, {-1, 2}, {-1, 4},
	{0, 1},
	{1, 4}, {1, 2}, {2, 3}, {1, 1}, {2, 1},
}

// ratio builds num/den or fails the test.
func ratio(t testing.TB, num, den int) clog.Value {
	t.Helper()
	v, err := clog.Ratio(num, den)
	require.NoError(t, err, "ratio %d/%d", num, den)
	return v
}

// render writes v in the single-letter form: specials as N/Z/P, primers
// as T/R/G, then one letter per reduction and a final H.
func render(t testing.TB, v clog.Value, max int) string {
	t.Helper()
	if s, ok := v.Special(); ok {
		return string(s.Rune())
	}
	var sb strings.Builder
	if r, ok := v.Primer().Rune(); ok {
		sb.WriteRune(r)
	}
	for i := 0; i < max; i++ {
		r, ok, err := v.Stream().Pull()
		require.NoError(t, err)
		sb.WriteRune(r.Rune())
		if !ok {
			break
		}
	}
	return sb.String()
}

// drain pulls s until it is exhausted and returns the number of symbols.
func drain(s *clog.Stream) (int, error) {
	n := 0
	for {
		_, ok, err := s.Pull()
		if err != nil || !ok {
			return n, err
		}
		n++
	}
}

// requireEqual asserts that got and want denote the same number.
func requireEqual(t testing.TB, want, got clog.Value, msgAndArgs ...interface{}) {
	t.Helper()
	o, err := compare.Compare(got, want)
	require.NoError(t, err, msgAndArgs...)
	require.Equal(t, compare.Equal, o, msgAndArgs...)
}

// fraction is an exact rational used to compute expected results.
type fraction struct{ n, d int }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// fix normalizes f; any zero denominator becomes the marker 1/0.
func fix(f fraction) fraction {
	switch {
	case f.d == 0:
		return fraction{1, 0}
	case f.n == 0:
		return fraction{0, 1}
	}
	g := gcd(f.n, f.d)
	n, d := f.n/g, f.d/g
	if d < 0 {
		n, d = -n, -d
	}
	return fraction{n, d}
}

func add(a, b fraction) fraction { return fix(fraction{a.n*b.d + b.n*a.d, a.d * b.d}) }
func mul(a, b fraction) fraction { return fix(fraction{a.n * b.n, a.d * b.d}) }

func div(a, b fraction) fraction {
	if b.d == 0 || b.n == 0 {
		return fraction{1, 0}
	}
	return fix(fraction{a.n * b.d, a.d * b.n})
}

// bilinearAt evaluates the Combine formula at exact x and y.
func bilinearAt(c [8]int, x, y fraction) fraction {
	k := func(i int) fraction { return fraction{c[i], 1} }
	xy := mul(x, y)
	num := add(add(add(mul(k(0), xy), mul(k(1), x)), mul(k(2), y)), k(3))
	den := add(add(add(mul(k(4), xy), mul(k(5), x)), mul(k(6), y)), k(7))
	return div(num, den)
}
