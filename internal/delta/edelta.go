package delta

import "math"

// edeltaCodec is the fastest of the family: a smaller base index and a
// longer minimum match length so the encoder spends less time
// extending marginal matches, at the cost of compression ratio.
type edeltaCodec struct{}

var edeltaParams = copyAddParams{
	window:    8,
	hashBits:  12,
	minMatch:  16,
	maxExtend: 4096,
}

func (edeltaCodec) Encode(input, base []byte) ([]byte, bool) {
	return copyAddEncode(input, base, edeltaParams), true
}

func (edeltaCodec) Decode(delta, base []byte) ([]byte, bool) {
	return copyAddDecode(nil, delta, base)
}

// MaxInputLen reflects edelta's "can't compress more than 4GB" ceiling
// (it packs offsets/lengths into 32-bit fields).
func (edeltaCodec) MaxInputLen() int { return math.MaxUint32 }
