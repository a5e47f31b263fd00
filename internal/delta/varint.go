package delta

import "google.golang.org/protobuf/encoding/protowire"

// appendVarint32 appends the standard little-endian base-128 encoding
// of v to dst. Reuses protobuf's varint wire format: continuation bit
// in the high bit, value bits in the low seven, least-significant
// group first.
func appendVarint32(dst []byte, v uint32) []byte {
	return protowire.AppendVarint(dst, uint64(v))
}

// consumeVarint32 reads a varint32 from the head of b, returning the
// decoded value and the number of bytes consumed. n is negative if b
// does not contain a well-formed varint.
func consumeVarint32(b []byte) (v uint32, n int) {
	u, n := protowire.ConsumeVarint(b)
	if n < 0 || u > 0xffffffff {
		return 0, -1
	}
	return uint32(u), n
}
