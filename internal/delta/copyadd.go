package delta

import "github.com/cespare/xxhash/v2"

// copyAddParams tunes the greedy COPY/ADD matcher shared by the xdelta,
// edelta, and gdelta codec families. They differ only in these four
// parameters: window size, base index size, minimum match length, and
// how far a match may be extended.
type copyAddParams struct {
	window    int // bytes hashed per base index entry
	hashBits  int // log2 of the direct-mapped base index size
	minMatch  int // minimum match length worth emitting as a COPY
	maxExtend int // cap on how far a match is extended past window
}

const (
	opAdd  byte = 0
	opCopy byte = 1
)

// copyAddEncode builds a direct-mapped hash index over base (one slot
// per hashed window, last write wins on collision), then greedily
// covers input with COPY references into base and ADD literals for
// the rest.
func copyAddEncode(input, base []byte, p copyAddParams) []byte {
	size := 1 << p.hashBits
	mask := uint64(size - 1)
	index := make([]int32, size)
	for i := range index {
		index[i] = -1
	}

	if len(base) >= p.window {
		for i := 0; i+p.window <= len(base); i++ {
			h := xxhash.Sum64(base[i : i+p.window])
			index[h&mask] = int32(i)
		}
	}

	out := make([]byte, 0, len(input))
	var literal []byte

	flushLiteral := func() {
		if len(literal) == 0 {
			return
		}
		out = append(out, opAdd)
		out = appendVarint32(out, uint32(len(literal)))
		out = append(out, literal...)
		literal = literal[:0]
	}

	i := 0
	for i < len(input) {
		matchLen, matchPos := 0, -1
		if i+p.window <= len(input) {
			h := xxhash.Sum64(input[i : i+p.window])
			cand := index[h&mask]
			if cand >= 0 && bytesEqual(base[cand:minInt(len(base), int(cand)+p.window)], input[i:i+p.window]) {
				matchPos = int(cand)
				matchLen = p.window
				maxLen := minInt(len(base)-matchPos, len(input)-i)
				if p.maxExtend > 0 && maxLen > p.maxExtend {
					maxLen = p.maxExtend
				}
				for matchLen < maxLen && base[matchPos+matchLen] == input[i+matchLen] {
					matchLen++
				}
			}
		}

		if matchLen >= p.minMatch {
			flushLiteral()
			out = append(out, opCopy)
			out = appendVarint32(out, uint32(matchPos))
			out = appendVarint32(out, uint32(matchLen))
			i += matchLen
			continue
		}

		literal = append(literal, input[i])
		i++
	}
	flushLiteral()

	return out
}

// copyAddDecode replays an op stream produced by copyAddEncode against
// base, appending the reconstructed bytes to dst.
func copyAddDecode(dst, ops, base []byte) ([]byte, bool) {
	i := 0
	for i < len(ops) {
		op := ops[i]
		i++
		switch op {
		case opAdd:
			n, k := consumeVarint32(ops[i:])
			if k < 0 {
				return dst, false
			}
			i += k
			if i+int(n) > len(ops) {
				return dst, false
			}
			dst = append(dst, ops[i:i+int(n)]...)
			i += int(n)
		case opCopy:
			offset, k := consumeVarint32(ops[i:])
			if k < 0 {
				return dst, false
			}
			i += k
			length, k := consumeVarint32(ops[i:])
			if k < 0 {
				return dst, false
			}
			i += k
			if uint64(offset)+uint64(length) > uint64(len(base)) {
				return dst, false
			}
			dst = append(dst, base[offset:offset+length]...)
		default:
			return dst, false
		}
	}
	return dst, true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
