// SPDX-License-Identifier: MIT
package clog

import "github.com/katalvlaran/clarith/protocol"

// strategy produces the symbols of a stream. egest returns the next
// reduction, or reports exhaustion with ok == false, or hands over to a
// successor strategy which then produces the rest of the stream.
type strategy interface {
	egest() (r protocol.Reduction, ok bool, next strategy, err error)
}

// Stream is a lazily generated sequence of reductions denoting a value
// strictly inside (0, 1). It owns exactly one strategy at a time.
type Stream struct {
	active strategy
	err    error
}

func newStream(s strategy) *Stream { return &Stream{active: s} }

// Pull returns the next reduction. ok is false once the stream is
// exhausted, after which every call reports exhaustion again. A stream
// that returned an error keeps returning it.
func (s *Stream) Pull() (protocol.Reduction, bool, error) {
	if s == nil || s.active == nil {
		return 0, false, ErrNilStream
	}
	if s.err != nil {
		return 0, false, s.err
	}
	for {
		r, ok, next, err := s.active.egest()
		if err != nil {
			s.err = err
			return 0, false, err
		}
		if next == nil {
			return r, ok, nil
		}
		s.active = next
	}
}

// Err returns the error that poisoned the stream, if any.
func (s *Stream) Err() error {
	if s == nil {
		return ErrNilStream
	}
	return s.err
}
