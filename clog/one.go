package clog

import "github.com/katalvlaran/clarith/protocol"

// one is the empty stream: exactly one half.
type one struct{}

func (one) egest() (protocol.Reduction, bool, strategy, error) {
	return 0, false, nil, nil
}

// Half returns one-half as a generic value whose stream has no symbols.
func Half() Value { return FromStream(protocol.NoPrimer, newStream(one{})) }
