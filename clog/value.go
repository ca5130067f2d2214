// SPDX-License-Identifier: MIT
package clog

import "github.com/katalvlaran/clarith/protocol"

// Value is a number on the real line: either one of the Special points or a
// Primer applied to a Stream. The zero Value is the Special Zero.
type Value struct {
	special protocol.Special
	primer  protocol.Primer
	stream  *Stream
}

// FromSpecial returns the Value of a Special point.
func FromSpecial(s protocol.Special) Value { return Value{special: s} }

// FromStream returns the Value p(s). A nil stream yields the Special Zero.
func FromStream(p protocol.Primer, s *Stream) Value {
	if s == nil {
		return Value{}
	}
	return Value{primer: p, stream: s}
}

// Special reports the Special point v denotes, if any.
func (v Value) Special() (protocol.Special, bool) {
	if v.stream != nil {
		return 0, false
	}
	return v.special, true
}

// IsSpecial reports whether v is −1, 0 or 1.
func (v Value) IsSpecial() bool { return v.stream == nil }

// Primer returns the primer of a generic value; NoPrimer for specials.
func (v Value) Primer() protocol.Primer { return v.primer }

// Stream returns the stream of a generic value; nil for specials.
func (v Value) Stream() *Stream { return v.stream }

// unit returns the strategy of a value known to lie in (0, 1).
func unit(v Value) strategy {
	if v.stream == nil || v.primer != protocol.NoPrimer {
		logicError("collapsed value outside (0, 1)")
	}
	return v.stream.active
}
