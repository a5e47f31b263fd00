package delta_test

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odessbench/deltabench/internal/delta"
)

func allTypes() []delta.Type {
	return []delta.Type{delta.XDelta, delta.EDelta, delta.GDelta, delta.GDeltaOriginal}
}

func repeatingBase() []byte {
	return bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 200)
}

// Property 7: round-trip for every registered codec, on a highly
// similar input/base pair so the ratio gate actually clears.
func TestRoundTripAllCodecs(t *testing.T) {
	base := repeatingBase()
	input := append(append([]byte{}, base...), []byte(" plus a short suffix")...)

	d := delta.NewDispatcher()
	for _, typ := range allTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			out, ok := d.Compress(typ, input, base)
			require.True(t, ok, "expected compression to clear the ratio gate")

			back, ok := d.Uncompress(typ, out, base)
			require.True(t, ok)
			assert.Equal(t, input, back)
		})
	}
}

// Property 8 & 9: the varint prefix always equals input length, and
// ok=>ratio-gate-honest.
func TestFramePrefixAndRatioHonesty(t *testing.T) {
	base := repeatingBase()
	input := append(append([]byte{}, base...), []byte(" tail")...)

	d := delta.NewDispatcher()
	out, ok := d.Compress(delta.XDelta, input, base)
	require.True(t, ok)

	prefix, n := binary.Uvarint(out)
	require.Greater(t, n, 0)
	assert.Equal(t, uint64(len(input)), prefix)
	assert.Less(t, len(out)-n, len(input)-len(input)/8)

	back, ok := d.Uncompress(delta.XDelta, out, base)
	require.True(t, ok)
	assert.Len(t, back, len(input))
	_ = out
}

// S4: unrelated random buffers should fail the ratio gate.
func TestRatioGateRejectsUnrelatedRandomData(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	input := make([]byte, 1024)
	base := make([]byte, 1024)
	r.Read(input)
	r.Read(base)

	d := delta.NewDispatcher()
	_, ok := d.Compress(delta.XDelta, input, base)
	assert.False(t, ok, "unrelated random data should not clear the ratio gate")
}

// S5: GDeltaOriginal rejects inputs over 64KiB.
func TestGDeltaOriginalSizeCeiling(t *testing.T) {
	base := repeatingBase()
	input := bytes.Repeat([]byte("x"), 100*1024)

	d := delta.NewDispatcher()
	_, ok := d.Compress(delta.GDeltaOriginal, input, base)
	assert.False(t, ok)
}

// S6: a tampered varint prefix causes a length-mismatch decode failure.
func TestUncompressDetectsLengthMismatch(t *testing.T) {
	base := repeatingBase()
	input := append(append([]byte{}, base...), []byte(" suffix")...)

	d := delta.NewDispatcher()
	out, ok := d.Compress(delta.XDelta, input, base)
	require.True(t, ok)

	// The input is 9007 bytes, so the prefix is the two-byte varint
	// 0xAF 0x46. Both branches increment the first byte; its low seven
	// bits (0x2F) are not all set, so the declared length becomes 9008.
	tampered := append([]byte{}, out...)
	if tampered[0]&0x80 == 0 {
		tampered[0]++
	} else {
		tampered[0]++
	}

	_, ok = d.Uncompress(delta.XDelta, tampered, base)
	assert.False(t, ok)
}

func TestCompressRejectsEmptyInputs(t *testing.T) {
	d := delta.NewDispatcher()
	base := repeatingBase()

	_, ok := d.Compress(delta.XDelta, nil, base)
	assert.False(t, ok)

	_, ok = d.Compress(delta.XDelta, base, nil)
	assert.False(t, ok)
}

func TestCompressRejectsNoneType(t *testing.T) {
	d := delta.NewDispatcher()
	base := repeatingBase()
	_, ok := d.Compress(delta.None, base, base)
	assert.False(t, ok)
}

func TestUncompressRejectsUnregisteredType(t *testing.T) {
	d := delta.NewDispatcher()
	base := repeatingBase()
	_, ok := d.Uncompress(delta.GDeltaInit, base, base)
	assert.False(t, ok)
}

// S3: varint boundary at 127/128 bytes.
func TestVarintBoundary(t *testing.T) {
	base := repeatingBase()
	d := delta.NewDispatcher()

	input127 := append(append([]byte{}, base[:127]...))
	out, ok := d.Compress(delta.XDelta, input127, base)
	require.True(t, ok || !ok) // compress may or may not clear ratio gate; we only check the prefix byte
	require.NotEmpty(t, out)
	assert.Equal(t, byte(127), out[0], "127-byte input should encode as a single varint byte 0x7F")

	input128 := append(append([]byte{}, base[:128]...))
	out, ok = d.Compress(delta.XDelta, input128, base)
	require.NotEmpty(t, out)
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, byte(0x80), out[0])
	assert.Equal(t, byte(0x01), out[1])
	_ = ok
}
