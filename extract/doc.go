// Package extract folds a bounded prefix of a continued-logarithm value
// into a homographic transform.
//
// Extract reads the primer and then the reductions of a value, rewriting
// the identity map x ↦ x after each symbol, until the stream runs out or
// a coefficient magnitude reaches Options.Limit. The result (residual
// stream plus coefficients) denotes the original value:
//
//	x = (NX·r + N) / (DX·r + D)
//
// where r is the residual stream, or exactly 1/2 if it was fully read.
// Result.Rebuild turns the result back into a clog.Value.
package extract
