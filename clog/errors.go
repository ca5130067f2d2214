// SPDX-License-Identifier: MIT
package clog

import "errors"

var (
	// ErrDivisionByZero indicates a denominator that is exactly zero at
	// the value being computed.
	ErrDivisionByZero = errors.New("clog: division by zero")

	// ErrCoefficientOverflow indicates a coefficient update that does not
	// fit in an int. The affected value cannot be continued.
	ErrCoefficientOverflow = errors.New("clog: coefficient overflow")

	// ErrNilStream indicates Pull on a nil or zero Stream.
	ErrNilStream = errors.New("clog: nil stream")

	// ErrSharedStream indicates two operands backed by one stream. Each
	// operand consumes its stream, so one stream cannot serve both.
	ErrSharedStream = errors.New("clog: operands share one stream")
)

// logicError panics on states the engine must never reach.
func logicError(what string) {
	panic("clog: logic error: " + what)
}
