// Package frac provides the exact integer primitives the continued-logarithm
// engine is built on: comparison of fractions through 128-bit cross
// products, overflow-checked addition and negation, and gcd.
//
// Nothing here rounds. Cmp and CmpProducts never overflow for any pair of
// int operands; Add, Sub and Neg report overflow instead of wrapping.
//
// Usage:
//
//	frac.Frac{N: 7, D: 12}.Cmp(1, 2) // 1, since 7/12 > 1/2
//	frac.Frac{N: -3, D: 0}.Cmp(5, 1) // -1, a pole approached from below
//	s, ok := frac.Add(math.MaxInt, 1) // ok == false
package frac
