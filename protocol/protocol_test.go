package protocol_test

import (
	"testing"

	"github.com/katalvlaran/clarith/protocol"
	"github.com/stretchr/testify/assert"
)

// TestRunes checks the single-letter forms used by the demo printer.
func TestRunes(t *testing.T) {
	assert.Equal(t, 'A', protocol.Amplify.Rune())
	assert.Equal(t, 'U', protocol.Uncover.Rune())
	assert.Equal(t, 'H', protocol.Reduction(0).Rune(), "exhaustion prints as one-half")

	for p, want := range map[protocol.Primer]rune{
		protocol.Turn:    'T',
		protocol.Reflect: 'R',
		protocol.Ground:  'G',
	} {
		r, ok := p.Rune()
		assert.True(t, ok, p.String())
		assert.Equal(t, want, r, p.String())
	}
	_, ok := protocol.NoPrimer.Rune()
	assert.False(t, ok)

	assert.Equal(t, 'N', protocol.NegOne.Rune())
	assert.Equal(t, 'Z', protocol.Zero.Rune())
	assert.Equal(t, 'P', protocol.PosOne.Rune())
}

// TestSpecialValues checks that specials carry the number they denote
// and that the zero value is Zero.
func TestSpecialValues(t *testing.T) {
	var s protocol.Special
	assert.Equal(t, protocol.Zero, s)
	assert.Equal(t, -1, protocol.NegOne.Int())
	assert.Equal(t, 0, protocol.Zero.Int())
	assert.Equal(t, 1, protocol.PosOne.Int())
	assert.Less(t, protocol.NegOne, protocol.Zero)
	assert.Less(t, protocol.Zero, protocol.PosOne)
}

// TestStrings covers the Stringer implementations.
func TestStrings(t *testing.T) {
	assert.Equal(t, "Amplify", protocol.Amplify.String())
	assert.Equal(t, "Uncover", protocol.Uncover.String())
	assert.Equal(t, "None", protocol.Reduction(0).String())
	assert.Equal(t, "None", protocol.NoPrimer.String())
	assert.Equal(t, "Ground", protocol.Ground.String())
	assert.Equal(t, "PosOne", protocol.PosOne.String())
}
