// Package delta wraps a family of byte-level differential encoders
// behind one interface, with a common self-describing frame, a hard
// per-codec size ceiling, and a compression-quality gate that rejects
// deltas not worth storing.
package delta

// Dispatcher holds the registered codecs and implements the varint32
// framing, size-ceiling enforcement, and ratio gate common to all of
// them.
type Dispatcher struct {
	codecs map[Type]Codec
}

// NewDispatcher builds a Dispatcher with the default codec set:
// XDelta, EDelta, GDelta, and GDeltaOriginal. GDeltaInit is
// deliberately left unregistered — it is reserved for wire
// compatibility only and never dispatched.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		codecs: map[Type]Codec{
			XDelta:         xdeltaCodec{},
			EDelta:         edeltaCodec{},
			GDelta:         gdeltaCodec{},
			GDeltaOriginal: gdeltaOriginalCodec{},
		},
	}
}

// Register overrides (or adds) the codec used for a given type. Tests
// use this to exercise the dispatcher with fakes.
func (d *Dispatcher) Register(t Type, c Codec) {
	d.codecs[t] = c
}

// goodCompressionRatio reports whether a compressed payload of size c
// saves at least ~12.5% over the raw size r. Integer truncation of
// r/8 is intentional.
func goodCompressionRatio(c, r int) bool {
	return c < r-r/8
}

// Compress produces a delta frame encoding input against base using the
// codec registered for typ. It returns ok=false when:
//   - typ is None or unregistered, or input or base is empty (output
//     is nil),
//   - input exceeds the codec's MaxInputLen (output holds only the
//     length prefix),
//   - the codec itself reports failure, or
//   - the compressed payload does not clear the ratio gate (in these
//     last two cases output holds the prefix and payload and is
//     unusable).
func (d *Dispatcher) Compress(typ Type, input, base []byte) (output []byte, ok bool) {
	if typ == None || len(input) == 0 || len(base) == 0 {
		return nil, false
	}
	codec, registered := d.codecs[typ]
	if !registered {
		return nil, false
	}

	output = appendVarint32(make([]byte, 0, 5+2*len(input)), uint32(len(input)))

	if max := codec.MaxInputLen(); max > 0 && len(input) > max {
		return output, false
	}

	payload, codecOK := codec.Encode(input, base)
	output = append(output, payload...)

	ok = codecOK && goodCompressionRatio(len(payload), len(input))
	return output, ok
}

// Uncompress reverses Compress: it reads the original-length prefix
// from delta, decodes the remaining codec payload against base, and
// verifies the decoded length matches the declared original length
// exactly.
func (d *Dispatcher) Uncompress(typ Type, delta, base []byte) (output []byte, ok bool) {
	if typ == None || len(delta) == 0 || len(base) == 0 {
		return nil, false
	}
	codec, registered := d.codecs[typ]
	if !registered {
		return nil, false
	}

	originalLength, n := consumeVarint32(delta)
	if n < 0 {
		return nil, false
	}

	decoded, codecOK := codec.Decode(delta[n:], base)
	if !codecOK {
		return nil, false
	}
	if uint32(len(decoded)) != originalLength {
		return nil, false
	}

	return decoded, true
}
