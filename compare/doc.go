// Package compare orders two continued-logarithm values exactly.
//
// Values are compared by region first (Ground < NegOne < Reflect < Zero <
// unprimed < PosOne < Turn). Two generic values in the same region are
// compared symbol by symbol until their streams diverge; each common
// Uncover reverses the direction in which the remainders order the
// values, as does a reciprocating primer (Turn, Reflect).
//
// Comparison consumes the streams of both values.
//
//	a, _ := clog.Ratio(1, 3)
//	b, _ := clog.Ratio(2, 5)
//	o, _ := compare.Compare(a, b) // compare.Less
package compare
