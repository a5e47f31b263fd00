package delta

import "math"

// gdeltaCodec uses a larger base index than xdelta and a short minimum
// match, giving both faster encoding and a higher compression ratio
// than xdelta.
type gdeltaCodec struct{}

var gdeltaParams = copyAddParams{
	window:   6,
	hashBits: 18,
	minMatch: 6,
}

func (gdeltaCodec) Encode(input, base []byte) ([]byte, bool) {
	return copyAddEncode(input, base, gdeltaParams), true
}

func (gdeltaCodec) Decode(delta, base []byte) ([]byte, bool) {
	return copyAddDecode(nil, delta, base)
}

// MaxInputLen reflects gdelta's "can't compress more than 4GB" ceiling.
func (gdeltaCodec) MaxInputLen() int { return math.MaxUint32 }
