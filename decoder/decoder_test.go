package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deferfmt/deferfmt/formatstring"
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/processor"
	"github.com/deferfmt/deferfmt/producer"
	"github.com/deferfmt/deferfmt/registry"
	"github.com/deferfmt/deferfmt/wire"
)

func openTestRegistry(t *testing.T) *registry.Store {
	t.Helper()
	s, err := registry.Open(registry.WithStateDir(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func processedFormat(t *testing.T, literal string, positional uint64) processor.ProcessedFormatString {
	t.Helper()
	fs, err := formatstring.Parse(literal)
	require.NoError(t, err)
	pfs, err := processor.Process(fs, processor.ProvidedArgs{Positional: positional}, processor.DefaultConfig())
	require.NoError(t, err)
	return pfs
}

func TestDecodeFrameRoundTripU32(t *testing.T) {
	reg := openTestRegistry(t)
	crateID, err := reg.InsertCrate("demo")
	require.NoError(t, err)
	cs, err := reg.CrateStore("demo")
	require.NoError(t, err)

	printID, err := cs.InsertPrint(registry.PrintStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)

	var d producer.BufferDispatcher
	ref := wire.StatementRef{Crate: crateID, Statement: ids.ShortId(printID)}
	producer.EmitFrame(&d, ids.PointerWidth32, nil, ref, func(f *producer.Formatter) {
		f.Write(producer.U32Value(0x01020304))
	})

	dec := New(reg)
	frame, consumed, err := dec.DecodeFrame(d.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(d.Bytes()), consumed)
	assert.Equal(t, "demo", frame.Crate.Name)
	require.Len(t, frame.Segments, 1)
	assert.Equal(t, SegmentArgument, frame.Segments[0].Kind)
	assert.Equal(t, U32Value(0x01020304), frame.Segments[0].Value)
}

func TestDecodeFrameIncompleteLeavesShortBuffer(t *testing.T) {
	reg := openTestRegistry(t)
	crateID, err := reg.InsertCrate("demo")
	require.NoError(t, err)
	cs, err := reg.CrateStore("demo")
	require.NoError(t, err)
	printID, err := cs.InsertPrint(registry.PrintStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)

	var d producer.BufferDispatcher
	ref := wire.StatementRef{Crate: crateID, Statement: ids.ShortId(printID)}
	producer.EmitFrame(&d, ids.PointerWidth32, nil, ref, func(f *producer.Formatter) {
		f.Write(producer.U32Value(7))
	})

	dec := New(reg)
	_, _, err = dec.DecodeFrame(d.Bytes()[:len(d.Bytes())-1])
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestDecodeFrameUnknownCrate(t *testing.T) {
	reg := openTestRegistry(t)
	dec := New(reg)

	var d producer.BufferDispatcher
	producer.EmitFrame(&d, ids.PointerWidth16, nil, wire.StatementRef{Crate: 99, Statement: 1}, func(f *producer.Formatter) {
		f.Write(producer.BoolValue(true))
	})

	_, _, err := dec.DecodeFrame(d.Bytes())
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, ErrUnknownCrate, derr.Kind)
}

func TestDecodeFrameUnknownHeaderBits(t *testing.T) {
	reg := openTestRegistry(t)
	dec := New(reg)

	_, _, err := dec.DecodeFrame([]byte{0x80})
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, ErrUnknownHeaderBits, derr.Kind)
}

func TestDecodeNestedWriteStatement(t *testing.T) {
	reg := openTestRegistry(t)
	crateID, err := reg.InsertCrate("demo")
	require.NoError(t, err)
	cs, err := reg.CrateStore("demo")
	require.NoError(t, err)

	printID, err := cs.InsertPrint(registry.PrintStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)
	writeID, err := cs.InsertWrite(registry.WriteStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)

	var d producer.BufferDispatcher
	ref := wire.StatementRef{Crate: crateID, Statement: ids.ShortId(printID)}
	producer.EmitFrame(&d, ids.PointerWidth32, nil, ref, func(f *producer.Formatter) {
		sw := producer.OpenStatementWriter(f)
		sw.Statement(wire.StatementRef{Crate: crateID, Statement: ids.ShortId(writeID)}, func(nested *producer.Formatter) {
			nested.Write(producer.StringValue("ab"))
		})
		sw.Close()
	})

	dec := New(reg)
	frame, _, err := dec.DecodeFrame(d.Bytes())
	require.NoError(t, err)
	require.Len(t, frame.Segments, 1)
	ws, ok := frame.Segments[0].Value.(WriteStatementsValue)
	require.True(t, ok)
	require.Len(t, ws.Statements, 1)
	require.Len(t, ws.Statements[0].Segments, 1)
	assert.Equal(t, StringValue("ab"), ws.Statements[0].Segments[0].Value)
}

func TestDecodeEmptyListOmitsInner(t *testing.T) {
	reg := openTestRegistry(t)
	crateID, err := reg.InsertCrate("demo")
	require.NoError(t, err)
	cs, err := reg.CrateStore("demo")
	require.NoError(t, err)
	printID, err := cs.InsertPrint(registry.PrintStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)

	var d producer.BufferDispatcher
	ref := wire.StatementRef{Crate: crateID, Statement: ids.ShortId(printID)}
	producer.EmitFrame(&d, ids.PointerWidth16, nil, ref, func(f *producer.Formatter) {
		f.Write(producer.ListValue(nil))
	})

	dec := New(reg)
	frame, _, err := dec.DecodeFrame(d.Bytes())
	require.NoError(t, err)
	lv, ok := frame.Segments[0].Value.(ListValue)
	require.True(t, ok)
	assert.False(t, lv.HasInner)
	assert.Empty(t, lv.Elements)
}

func TestDecodeUsizeAboveInt32FitsInt64Host(t *testing.T) {
	reg := openTestRegistry(t)
	crateID, err := reg.InsertCrate("demo")
	require.NoError(t, err)
	cs, err := reg.CrateStore("demo")
	require.NoError(t, err)
	printID, err := cs.InsertPrint(registry.PrintStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)

	const big = uint64(1) << 40 // well above 2^31-1, well within a 64-bit host's usize
	var d producer.BufferDispatcher
	ref := wire.StatementRef{Crate: crateID, Statement: ids.ShortId(printID)}
	producer.EmitFrame(&d, ids.PointerWidth64, nil, ref, func(f *producer.Formatter) {
		f.Write(producer.UsizeValue(big))
	})

	dec := New(reg)
	frame, _, err := dec.DecodeFrame(d.Bytes())
	require.NoError(t, err)
	assert.Equal(t, UsizeValue(big), frame.Segments[0].Value)
}

func TestDecodeInt128RoundTrip(t *testing.T) {
	reg := openTestRegistry(t)
	crateID, err := reg.InsertCrate("demo")
	require.NoError(t, err)
	cs, err := reg.CrateStore("demo")
	require.NoError(t, err)
	printID, err := cs.InsertPrint(registry.PrintStatementPayload{Format: processedFormat(t, "{}", 1)})
	require.NoError(t, err)

	var d producer.BufferDispatcher
	ref := wire.StatementRef{Crate: crateID, Statement: ids.ShortId(printID)}
	producer.EmitFrame(&d, ids.PointerWidth64, nil, ref, func(f *producer.Formatter) {
		f.Write(producer.I128Value{Hi: ^uint64(0), Lo: ^uint64(0)}) // -1
	})

	dec := New(reg)
	frame, _, err := dec.DecodeFrame(d.Bytes())
	require.NoError(t, err)
	iv, ok := frame.Segments[0].Value.(Int128Value)
	require.True(t, ok)
	assert.Equal(t, "-1", iv.V.String())
}
