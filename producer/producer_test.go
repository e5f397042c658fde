package producer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/wire"
)

func TestEmitFrameU32Width32(t *testing.T) {
	// Spec §8 example 4: producer encodes a print statement with one
	// u32=0x01020304 on a 32-bit target.
	var d BufferDispatcher
	EmitFrame(&d, ids.PointerWidth32, nil, wire.StatementRef{Crate: 1, Statement: 2}, func(f *Formatter) {
		f.Write(U32Value(0x01020304))
	})

	want := []byte{
		0x01,             // header: PLUS_16_WIDTH (32-bit), no stamp
		0x00, 0x01,       // crate_id = 1
		0x00, 0x02,       // print_statement_id = 2
		byte(wire.HintU32), // type hint
		0x01, 0x02, 0x03, 0x04,
	}
	assert.Equal(t, want, d.Bytes())
}

func TestEmitFrameWithStamp(t *testing.T) {
	var d BufferDispatcher
	stamp := ids.Stamp(0x0102030405060708)
	EmitFrame(&d, ids.PointerWidth16, &stamp, wire.StatementRef{Crate: 9, Statement: 4}, func(f *Formatter) {
		f.Write(BoolValue(true))
	})

	got := d.Bytes()
	assert.Equal(t, byte(0x04), got[0]) // STAMP bit set, 16-bit width
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, got[1:9])
	assert.Equal(t, []byte{0x00, 0x09, 0x00, 0x04}, got[9:13])
	assert.Equal(t, byte(wire.HintBool), got[13])
	assert.Equal(t, byte(1), got[14])
}

func TestNestedWriteStatement(t *testing.T) {
	// Spec §8 example 5: producer emits WriteStatements(Continue, crate=1,
	// write=7, payload="ab", End).
	var d BufferDispatcher
	f := NewFormatter(&d, ids.PointerWidth32)
	sw := OpenStatementWriter(f)
	sw.Statement(wire.StatementRef{Crate: 1, Statement: 7}, func(nested *Formatter) {
		nested.Write(StringValue("ab"))
	})
	sw.Close()

	got := d.Bytes()
	assert.Equal(t, byte(wire.HintWriteStatements), got[0])
	assert.Equal(t, byte(wire.Continue), got[1])
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x07}, got[2:6])
	assert.Equal(t, byte(wire.HintStringSlice), got[6])
	// 32-bit pointer width => 4-byte length hint
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x02}, got[7:11])
	assert.Equal(t, []byte("ab"), got[11:13])
	assert.Equal(t, byte(wire.End), got[len(got)-1])
}

func TestStatementWriterClosesOutOfOrderPanics(t *testing.T) {
	var d BufferDispatcher
	f := NewFormatter(&d, ids.PointerWidth16)
	outer := OpenStatementWriter(f)
	var inner *StatementWriter
	outer.Statement(wire.StatementRef{Crate: 1, Statement: 1}, func(nested *Formatter) {
		inner = OpenStatementWriter(nested)
	})

	assert.Panics(t, func() { outer.Close() })
	inner.Close()
	outer.Close()
}

func TestEmptyListOmitsInnerHint(t *testing.T) {
	var d BufferDispatcher
	f := NewFormatter(&d, ids.PointerWidth16)
	f.Write(ListValue(nil))

	got := d.Bytes()
	assert.Equal(t, byte(wire.HintList), got[0])
	assert.Equal(t, []byte{0x00, 0x00}, got[1:3])
	assert.Len(t, got, 3)
}

func TestCharPayloadLengths(t *testing.T) {
	cases := []rune{'a', 'é', '€', '𝄞'}
	for _, r := range cases {
		var d BufferDispatcher
		f := NewFormatter(&d, ids.PointerWidth16)
		f.Write(CharValue(r))
		got := d.Bytes()
		assert.Equal(t, byte(wire.HintChar), got[0])
		n := int(got[1])
		assert.Equal(t, r, []rune(string(got[2:2+n]))[0])
	}
}
