// Package clarith is exact arithmetic on the real line in
// continued-logarithm representation.
//
// 🚀 What is clarith?
//
//	Numbers are lazily generated streams of binary decisions. Nothing is
//	rounded: values are built from integer ratios, combined through
//	homographic and bilinear maps, and compared exactly by reading only
//	as many symbols as needed.
//
// ✨ Packages:
//
//	protocol/: the symbol vocabulary (Reduction, Primer, Special)
//	frac/:     exact fraction comparison and overflow-checked int arithmetic
//	clog/:     Value and Stream; Ratio, Homographic, Combine, Half
//	compare/:  exact ordering of two values
//	extract/:  fold a bounded prefix of a value into a homographic map
//	cmd/clarith: demo printer for expansions, comparisons and YAML value lists
//
// ⚙️ Usage:
//
//	x, _ := clog.Ratio(2, 3)
//	y, _ := clog.Ratio(3, 4)
//	sum, _ := clog.Combine(x, y, 0, 1, 1, 0, 0, 0, 0, 1) // x + y
//	want, _ := clog.Ratio(17, 12)
//	o, _ := compare.Compare(sum, want)                   // compare.Equal
//
// Coefficients are fixed-width ints; a computation that leaves their range
// fails with clog.ErrCoefficientOverflow instead of wrapping.
package clarith
