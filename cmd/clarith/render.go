package main

import (
	"strings"

	"github.com/katalvlaran/clarith/clog"
)

const defaultMax = 256

// render writes v as letters, truncating with "..." after max reductions.
func render(v clog.Value, max int) (string, error) {
	if s, ok := v.Special(); ok {
		return string(s.Rune()), nil
	}
	var sb strings.Builder
	if r, ok := v.Primer().Rune(); ok {
		sb.WriteRune(r)
	}
	for i := 0; i < max; i++ {
		r, ok, err := v.Stream().Pull()
		if err != nil {
			return sb.String(), err
		}
		sb.WriteRune(r.Rune())
		if !ok {
			return sb.String(), nil
		}
	}
	sb.WriteString("...")
	return sb.String(), nil
}
