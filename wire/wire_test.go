package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deferfmt/deferfmt/ids"
)

func TestHeaderRoundTrip(t *testing.T) {
	cases := []Header{
		{Width: ids.PointerWidth16, HasStamp: false},
		{Width: ids.PointerWidth16, HasStamp: true},
		{Width: ids.PointerWidth32, HasStamp: false},
		{Width: ids.PointerWidth32, HasStamp: true},
		{Width: ids.PointerWidth64, HasStamp: false},
		{Width: ids.PointerWidth64, HasStamp: true},
	}
	for _, h := range cases {
		got, err := DecodeHeader(h.Encode())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
}

func TestHeaderReservedBitsRejected(t *testing.T) {
	_, err := DecodeHeader(flagPlus32Width)
	require.Error(t, err)
}

func TestHeaderUnknownBitsRejected(t *testing.T) {
	_, err := DecodeHeader(0x80)
	require.Error(t, err)
}

func TestFrameExampleU32(t *testing.T) {
	// Concrete end-to-end scenario from spec §8 example 4: a print statement
	// with one u32=0x01020304 on a 32-bit target.
	h := Header{Width: ids.PointerWidth32}
	assert.Equal(t, byte(0x01), h.Encode())

	buf := make([]byte, StatementRefSize)
	PutStatementRef(buf, StatementRef{Crate: 1, Statement: 2})
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x02}, buf)

	payload := make([]byte, 4)
	PutU32(payload, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, payload)
	assert.Equal(t, uint32(0x01020304), ReadU32(payload))
}

func TestLengthHintPointerWidthTransitions(t *testing.T) {
	for _, w := range []ids.PointerWidth{ids.PointerWidth16, ids.PointerWidth32, ids.PointerWidth64} {
		buf := make([]byte, w.Size())
		PutLength(buf, w, 42)
		assert.Equal(t, uint64(42), ReadLength(buf, w))
	}
}

func TestU128RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	PutU128(buf, 0xFFFFFFFFFFFFFFFF, 0x0000000000000001)
	hi, lo := ReadU128(buf)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), hi)
	assert.Equal(t, uint64(0x0000000000000001), lo)
}

func TestTypeHintValidAndFixedSize(t *testing.T) {
	assert.True(t, HintU32.Valid())
	assert.False(t, TypeHint(99).Valid())

	size, ok := HintU32.FixedSize()
	assert.True(t, ok)
	assert.Equal(t, 4, size)

	_, ok = HintStringSlice.FixedSize()
	assert.False(t, ok)
}

func TestContinuationMarkerString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "End", End.String())
}
