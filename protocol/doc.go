// Package protocol defines the symbol vocabulary shared by every
// continued-logarithm producer and consumer.
//
// A value on the real line is written as an optional Primer (which maps the
// unit interval (0,1) onto one of the four open regions of the line) followed
// by a stream of Reductions, or as one of three Special points.
//
//	Ground   (−∞, −1)   v = −1/s
//	NegOne   −1
//	Reflect  (−1, 0)    v = −s
//	Zero     0
//	(none)   (0, 1)     v = s
//	PosOne   1
//	Turn     (1, ∞)     v = 1/s
//
// Reductions describe the stream value s ∈ (0,1) one step at a time:
//
//	Amplify  s < 1/2, continue with 2s
//	Uncover  s > 1/2, continue with 1/s − 1
//
// A stream that runs out of symbols denotes exactly 1/2.
package protocol
