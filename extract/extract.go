// SPDX-License-Identifier: MIT
package extract

import (
	"math"

	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/frac"
)

// Extract folds the primer and as many reductions of x as Options.Limit
// allows into a transform. nil opts means DefaultOptions.
//
// A Special x yields no residual and the constant map 0·r + s / (0·r + 1).
//
// Errors:
//   - ErrBadLimit for a Limit outside (0, MaxInt/2].
//   - any error returned by the stream of x.
func Extract(x clog.Value, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Limit <= 0 || o.Limit > math.MaxInt/2 {
		return Result{}, ErrBadLimit
	}

	if s, ok := x.Special(); ok {
		return Result{Transform: clog.Transform{N: s.Int(), D: 1}}, nil
	}

	res := Result{Residual: x.Stream(), Transform: clog.Identity}
	if err := res.Prime(x.Primer()); err != nil {
		return Result{}, err
	}
	steps := 0
	for !res.exceeds(o.Limit) {
		r, ok, err := res.Residual.Pull()
		if err != nil {
			return Result{}, err
		}
		if !ok {
			res.Residual = nil
			return res, nil
		}
		if err := res.Ingest(r); err != nil {
			return Result{}, err
		}
		steps++
	}

	if o.Logger != nil {
		o.Logger.Debug("extract stopped at coefficient limit",
			"limit", o.Limit,
			"steps", steps,
			"nx", res.NX, "n", res.N, "dx", res.DX, "d", res.D)
	}
	return res, nil
}

func (r Result) exceeds(limit int) bool {
	l := uint64(limit)
	return frac.Abs(r.NX) >= l || frac.Abs(r.N) >= l ||
		frac.Abs(r.DX) >= l || frac.Abs(r.D) >= l
}
