package delta

// gdeltaOriginalCodec is the predecessor algorithm gdelta was derived
// from: the same COPY/ADD matcher, but bounded to a 64KiB input
// ceiling.
type gdeltaOriginalCodec struct{}

const gdeltaOriginalMaxInputLen = 64 * 1024

var gdeltaOriginalParams = copyAddParams{
	window:   6,
	hashBits: 14,
	minMatch: 6,
}

func (gdeltaOriginalCodec) Encode(input, base []byte) ([]byte, bool) {
	return copyAddEncode(input, base, gdeltaOriginalParams), true
}

func (gdeltaOriginalCodec) Decode(delta, base []byte) ([]byte, bool) {
	return copyAddDecode(nil, delta, base)
}

func (gdeltaOriginalCodec) MaxInputLen() int { return gdeltaOriginalMaxInputLen }
