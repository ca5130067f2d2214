// SPDX-License-Identifier: MIT
package protocol

// Reduction is one step of a stream. The zero value is not a symbol; it
// stands for an exhausted stream where one is needed.
type Reduction uint8

const (
	// Amplify announces s < 1/2; the remainder is 2s.
	Amplify Reduction = iota + 1
	// Uncover announces s > 1/2; the remainder is 1/s − 1.
	Uncover
)

// String returns the symbol name.
func (r Reduction) String() string {
	switch r {
	case Amplify:
		return "Amplify"
	case Uncover:
		return "Uncover"
	}
	return "None"
}

// Rune returns the single-letter form used by printers. The zero value
// prints as 'H', the terminal one-half.
func (r Reduction) Rune() rune {
	switch r {
	case Amplify:
		return 'A'
	case Uncover:
		return 'U'
	}
	return 'H'
}

// Primer selects the region of the line a generic value lives in.
// The zero value leaves the stream value as is.
type Primer uint8

const (
	// NoPrimer: v = s, v ∈ (0, 1).
	NoPrimer Primer = iota
	// Turn: v = 1/s, v ∈ (1, ∞).
	Turn
	// Reflect: v = −s, v ∈ (−1, 0).
	Reflect
	// Ground: v = −1/s, v ∈ (−∞, −1).
	Ground
)

// String returns the primer name.
func (p Primer) String() string {
	switch p {
	case Turn:
		return "Turn"
	case Reflect:
		return "Reflect"
	case Ground:
		return "Ground"
	}
	return "None"
}

// Rune returns the single-letter form used by printers; NoPrimer has none.
func (p Primer) Rune() (rune, bool) {
	switch p {
	case Turn:
		return 'T', true
	case Reflect:
		return 'R', true
	case Ground:
		return 'G', true
	}
	return 0, false
}

// Special is one of the three points between the primer regions.
// Its integer value is the number it denotes.
type Special int8

const (
	NegOne Special = -1
	Zero   Special = 0
	PosOne Special = 1
)

// String returns the special's name.
func (s Special) String() string {
	switch s {
	case NegOne:
		return "NegOne"
	case PosOne:
		return "PosOne"
	}
	return "Zero"
}

// Rune returns 'N', 'Z' or 'P'.
func (s Special) Rune() rune {
	switch s {
	case NegOne:
		return 'N'
	case PosOne:
		return 'P'
	}
	return 'Z'
}

// Int returns the value of s as an int.
func (s Special) Int() int { return int(s) }
