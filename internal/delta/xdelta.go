package delta

// xdeltaCodec is the traditional copy/insert delta encoder: a
// moderate-size base index and full match extension, trading encode
// speed for a stronger compression ratio than edelta.
type xdeltaCodec struct{}

var xdeltaParams = copyAddParams{
	window:   8,
	hashBits: 16,
	minMatch: 8,
}

func (xdeltaCodec) Encode(input, base []byte) ([]byte, bool) {
	return copyAddEncode(input, base, xdeltaParams), true
}

func (xdeltaCodec) Decode(delta, base []byte) ([]byte, bool) {
	return copyAddDecode(nil, delta, base)
}

func (xdeltaCodec) MaxInputLen() int { return 0 }
