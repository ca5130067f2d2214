// SPDX-License-Identifier: MIT
package extract

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/protocol"
)

// ErrBadLimit indicates an Options.Limit outside (0, math.MaxInt/2].
var ErrBadLimit = errors.New("extract: limit must be in (0, MaxInt/2]")

// Options configures Extract.
//
// Fields:
//   - Limit:  extraction stops as soon as any coefficient magnitude
//     reaches Limit. Keeping it at most MaxInt/2 leaves room for the one
//     fold that crosses it.
//   - Logger: receives a debug record when extraction stops early;
//     nil disables logging.
type Options struct {
	Limit  int
	Logger *slog.Logger
}

// DefaultOptions returns Limit = math.MaxInt/4 and no logger.
func DefaultOptions() Options {
	return Options{Limit: math.MaxInt / 4}
}

// Result is a residual stream and the transform that maps it to the
// extracted value. Residual is nil when the whole stream was read.
type Result struct {
	Residual *clog.Stream
	clog.Transform
}

// Rebuild returns the value the result denotes, consuming the residual.
func (r Result) Rebuild() (clog.Value, error) {
	x := clog.Half()
	if r.Residual != nil {
		x = clog.FromStream(protocol.NoPrimer, r.Residual)
	}
	return clog.Homographic(x, r.NX, r.N, r.DX, r.D)
}
