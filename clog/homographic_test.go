package clog_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHomographic_Grid checks (a·x + b) / (c·x + d) against exact
// rational evaluation for every small coefficient set and input.
func TestHomographic_Grid(t *testing.T) {
	const r = 4
	for a := -r; a < r; a++ {
		for b := -r; b < r; b++ {
			for c := -r; c < r; c++ {
				for d := -r; d < r; d++ {
					for xn := -r; xn < r; xn++ {
						for xd := -r; xd < r; xd++ {
							if xd == 0 {
								continue
							}
							n, dd := xn, xd
							if dd < 0 {
								n, dd = -n, -dd
							}
							rn, rd := a*n+b*dd, c*n+d*dd

							got, err := clog.Homographic(ratio(t, xn, xd), a, b, c, d)
							if rd == 0 {
								require.ErrorIs(t, err, clog.ErrDivisionByZero,
									"(%d,%d,%d,%d) at %d/%d", a, b, c, d, xn, xd)
								continue
							}
							require.NoError(t, err, "(%d,%d,%d,%d) at %d/%d", a, b, c, d, xn, xd)
							requireEqual(t, ratio(t, rn, rd), got,
								"(%d,%d,%d,%d) at %d/%d", a, b, c, d, xn, xd)
						}
					}
				}
			}
		}
	}
}

// TestHomographic_DivisionByZero covers inputs at the pole of the map,
// both at special points and inside a primer region.
func TestHomographic_DivisionByZero(t *testing.T) {
	tests := []struct {
		name   string
		coef   [4]int
		xn, xd int
	}{
		{"1111 at -1", [4]int{1, 1, 1, 1}, -1, 1},
		{"1110 at 0", [4]int{1, 1, 1, 0}, 0, 1},
		{"1011 at -1", [4]int{1, 0, 1, 1}, -1, 1},
		{"0111 at -1", [4]int{0, 1, 1, 1}, -1, 1},
		{"0110 at 0", [4]int{0, 1, 1, 0}, 0, 1},
		{"0011 at -1", [4]int{0, 0, 1, 1}, -1, 1},
		{"0010 at 0", [4]int{0, 0, 1, 0}, 0, 1},
		{"0000 at 1", [4]int{0, 0, 0, 0}, 1, 1},
		{"0021 at -1/2", [4]int{0, 0, 2, 1}, -1, 2},
		{"6342 at -1/2", [4]int{6, 3, 4, 2}, -1, 2},
		{"1,-1,2,-1 at 1/2", [4]int{1, -1, 2, -1}, 1, 2},
		{"pole at -5/3", [4]int{1, 0, 3, 5}, -5, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.coef
			_, err := clog.Homographic(ratio(t, tc.xn, tc.xd), c[0], c[1], c[2], c[3])
			assert.ErrorIs(t, err, clog.ErrDivisionByZero)
		})
	}
}

// TestHomographic_ConstantMaps checks maps whose rows are proportional.
func TestHomographic_ConstantMaps(t *testing.T) {
	for _, ref := range references {
		if ref == [2]int{-1, 1} {
			continue
		}
		got, err := clog.Homographic(ratio(t, ref[0], ref[1]), 1, 1, 1, 1)
		require.NoError(t, err, "%v", ref)
		requireEqual(t, ratio(t, 1, 1), got, "%v", ref)
	}

	got, err := clog.Homographic(ratio(t, 1, 1), 1, 1, 1, 1)
	require.NoError(t, err)
	s, ok := got.Special()
	require.True(t, ok)
	assert.Equal(t, protocol.PosOne, s)

	// 3(2x+1)/(2x+1) is 3 everywhere except at -1/2.
	got, err = clog.Homographic(ratio(t, -1, 4), 6, 3, 2, 1)
	require.NoError(t, err)
	requireEqual(t, ratio(t, 3, 1), got)
}

// TestHomographic_Primers checks the region chosen for simple maps.
func TestHomographic_Primers(t *testing.T) {
	tests := []struct {
		name   string
		xn, xd int
		coef   [4]int
		want   string
	}{
		{"identity", 2, 3, [4]int{1, 0, 0, 1}, "UH"},
		{"x+1", 2, 3, [4]int{1, 1, 0, 1}, "TUUH"},
		{"-x", 2, 3, [4]int{-1, 0, 0, 1}, "RUH"},
		{"1/x", 2, 3, [4]int{0, 1, 1, 0}, "TUH"},
		{"-1/x", 2, 3, [4]int{0, -1, 1, 0}, "GUH"},
		{"x/2", 1, 2, [4]int{1, 0, 0, 2}, "AH"},
		{"2x", 1, 4, [4]int{2, 0, 0, 1}, "H"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.coef
			got, err := clog.Homographic(ratio(t, tc.xn, tc.xd), c[0], c[1], c[2], c[3])
			require.NoError(t, err)
			assert.Equal(t, tc.want, render(t, got, 100))
		})
	}
}

// TestHomographic_LargeInputs drains transforms of MaxInt and 1/MaxInt
// without coefficient overflow.
func TestHomographic_LargeInputs(t *testing.T) {
	big := [2]int{math.MaxInt, 1}
	small := [2]int{1, math.MaxInt}
	tests := []struct {
		name string
		x    [2]int
		coef [4]int
		want [2]int // zero when not representable as an int ratio
	}{
		{"unity big", big, [4]int{1, 0, 0, 1}, big},
		{"unity small", small, [4]int{1, 0, 0, 1}, small},
		{"mul big", big, [4]int{2, 0, 0, 1}, [2]int{}},
		{"mul small", small, [4]int{2, 0, 0, 1}, [2]int{2, math.MaxInt}},
		{"div big", big, [4]int{1, 0, 0, 2}, [2]int{math.MaxInt, 2}},
		{"div small", small, [4]int{1, 0, 0, 2}, [2]int{}},
		{"rec big", big, [4]int{0, 1, 1, 0}, small},
		{"rec small", small, [4]int{0, 1, 1, 0}, big},
		{"add small", small, [4]int{1, 1, 0, 1}, [2]int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.coef
			got, err := clog.Homographic(ratio(t, tc.x[0], tc.x[1]), c[0], c[1], c[2], c[3])
			require.NoError(t, err)
			if tc.want != [2]int{} {
				requireEqual(t, ratio(t, tc.want[0], tc.want[1]), got)
				return
			}
			_, err = drain(got.Stream())
			assert.NoError(t, err)
		})
	}
}

// TestHomographic_OverflowLatches drives a transform of 1/3 whose
// denominator must exceed the int range, and checks the stream keeps
// reporting the failure.
func TestHomographic_OverflowLatches(t *testing.T) {
	got, err := clog.Homographic(ratio(t, 1, 3), 1, 0, 0, math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, protocol.NoPrimer, got.Primer())

	n, err := drain(got.Stream())
	require.ErrorIs(t, err, clog.ErrCoefficientOverflow)
	assert.Equal(t, 63, n, "symbols produced before the failing fold")

	_, _, err = got.Stream().Pull()
	assert.ErrorIs(t, err, clog.ErrCoefficientOverflow)
	assert.ErrorIs(t, got.Stream().Err(), clog.ErrCoefficientOverflow)
}

// TestHomographic_OverflowWhilePriming reports overflow from construction.
func TestHomographic_OverflowWhilePriming(t *testing.T) {
	_, err := clog.Homographic(clog.Half(), 1, math.MaxInt, 0, 1)
	assert.ErrorIs(t, err, clog.ErrCoefficientOverflow)
}
