package clog_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransform_Prime checks the four primer substitutions on the identity.
func TestTransform_Prime(t *testing.T) {
	tests := []struct {
		p    protocol.Primer
		want clog.Transform
	}{
		{protocol.NoPrimer, clog.Transform{NX: 1, N: 0, DX: 0, D: 1}},
		{protocol.Turn, clog.Transform{NX: 0, N: 1, DX: 1, D: 0}},
		{protocol.Reflect, clog.Transform{NX: -1, N: 0, DX: 0, D: 1}},
		{protocol.Ground, clog.Transform{NX: 0, N: -1, DX: 1, D: 0}},
	}
	for _, tc := range tests {
		tr := clog.Identity
		require.NoError(t, tr.Prime(tc.p))
		assert.Equal(t, tc.want, tr, tc.p.String())
	}
}

// TestTransform_Ingest checks both reductions, including the halving path.
func TestTransform_Ingest(t *testing.T) {
	tr := clog.Transform{NX: 2, N: 1, DX: 4, D: 3}
	require.NoError(t, tr.Ingest(protocol.Amplify))
	assert.Equal(t, clog.Transform{NX: 1, N: 1, DX: 2, D: 3}, tr)

	require.NoError(t, tr.Ingest(protocol.Amplify))
	assert.Equal(t, clog.Transform{NX: 1, N: 2, DX: 2, D: 6}, tr)

	require.NoError(t, tr.Ingest(protocol.Uncover))
	assert.Equal(t, clog.Transform{NX: 2, N: 3, DX: 6, D: 8}, tr)

	big := clog.Transform{NX: 1, N: math.MaxInt, DX: 0, D: 1}
	assert.ErrorIs(t, big.Ingest(protocol.Amplify), clog.ErrCoefficientOverflow)
	neg := clog.Transform{NX: math.MinInt, N: 0, DX: 0, D: 1}
	assert.ErrorIs(t, neg.Prime(protocol.Reflect), clog.ErrCoefficientOverflow)
}

// TestTransform_Evaluate checks evaluation at one-half and at specials.
func TestTransform_Evaluate(t *testing.T) {
	tr := clog.Transform{NX: 3, N: 1, DX: 1, D: 2}
	n, d, err := tr.AtHalf()
	require.NoError(t, err)
	assert.Equal(t, [2]int{5, 5}, [2]int{n, d})

	tr = clog.Transform{NX: 4, N: 1, DX: 2, D: 2}
	n, d, err = tr.AtHalf()
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 3}, [2]int{n, d})

	n, d, err = tr.At(protocol.NegOne)
	require.NoError(t, err)
	assert.Equal(t, [2]int{-3, 0}, [2]int{n, d})

	n, d, err = tr.At(protocol.PosOne)
	require.NoError(t, err)
	assert.Equal(t, [2]int{5, 4}, [2]int{n, d})
}
