package clog

import (
	"github.com/katalvlaran/clarith/frac"
	"github.com/katalvlaran/clarith/protocol"
)

// The images of a nondegenerate map on the open domain lie strictly between
// its images on the closed boundary, so checking the boundary values against
// closed regions is enough to place the whole open image in the open region.

func allAtMost(vs []frac.Frac, p, q int) bool {
	for _, v := range vs {
		if !v.AtMost(p, q) {
			return false
		}
	}
	return true
}

func allAtLeast(vs []frac.Frac, p, q int) bool {
	for _, v := range vs {
		if !v.AtLeast(p, q) {
			return false
		}
	}
	return true
}

// primerFor returns the primer whose region holds every boundary value.
func primerFor(vs []frac.Frac) (protocol.Primer, bool) {
	switch {
	case allAtMost(vs, -1, 1):
		return protocol.Ground, true
	case allAtLeast(vs, -1, 1) && allAtMost(vs, 0, 1):
		return protocol.Reflect, true
	case allAtLeast(vs, 0, 1) && allAtMost(vs, 1, 1):
		return protocol.NoPrimer, true
	case allAtLeast(vs, 1, 1):
		return protocol.Turn, true
	}
	return 0, false
}

// reductionFor returns the reduction the boundary values agree on. The
// values must already lie in [0, 1].
func reductionFor(vs []frac.Frac) (protocol.Reduction, bool) {
	if !allAtLeast(vs, 0, 1) || !allAtMost(vs, 1, 1) {
		logicError("primed stream left [0, 1]")
	}
	switch {
	case allAtMost(vs, 1, 2):
		return protocol.Amplify, true
	case allAtLeast(vs, 1, 2):
		return protocol.Uncover, true
	}
	return 0, false
}
