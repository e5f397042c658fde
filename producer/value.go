package producer

import (
	"math"
	"unicode/utf8"

	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/wire"
)


// WriteValue is the sealed capability set over every primitive and
// collection type the wire format can carry (spec §4.4, §9 "polymorphic
// dispatch over writable values"). It is deliberately unimplementable
// outside this package: hint/writePayload are unexported, so the wire
// contract's value taxonomy stays fixed no matter who imports producer.
type WriteValue interface {
	hint() wire.TypeHint
	writePayload(f *Formatter)
}

// BoolValue writes a HintBool.
type BoolValue bool

func (v BoolValue) hint() wire.TypeHint { return wire.HintBool }
func (v BoolValue) writePayload(f *Formatter) {
	var b byte
	if v {
		b = 1
	}
	f.d.Write([]byte{b})
}

// U8Value writes a HintU8.
type U8Value uint8

func (v U8Value) hint() wire.TypeHint       { return wire.HintU8 }
func (v U8Value) writePayload(f *Formatter) { f.d.Write([]byte{byte(v)}) }

// U16Value writes a HintU16.
type U16Value uint16

func (v U16Value) hint() wire.TypeHint { return wire.HintU16 }
func (v U16Value) writePayload(f *Formatter) {
	var buf [2]byte
	wire.PutU16(buf[:], uint16(v))
	f.d.Write(buf[:])
}

// U32Value writes a HintU32.
type U32Value uint32

func (v U32Value) hint() wire.TypeHint { return wire.HintU32 }
func (v U32Value) writePayload(f *Formatter) {
	var buf [4]byte
	wire.PutU32(buf[:], uint32(v))
	f.d.Write(buf[:])
}

// U64Value writes a HintU64.
type U64Value uint64

func (v U64Value) hint() wire.TypeHint { return wire.HintU64 }
func (v U64Value) writePayload(f *Formatter) {
	var buf [8]byte
	wire.PutU64(buf[:], uint64(v))
	f.d.Write(buf[:])
}

// U128Value writes a HintU128 as two big-endian uint64 halves.
type U128Value struct{ Hi, Lo uint64 }

func (v U128Value) hint() wire.TypeHint { return wire.HintU128 }
func (v U128Value) writePayload(f *Formatter) {
	var buf [16]byte
	wire.PutU128(buf[:], v.Hi, v.Lo)
	f.d.Write(buf[:])
}

// UsizeValue writes a HintUsize sized to the Formatter's negotiated
// pointer width.
type UsizeValue uint64

func (v UsizeValue) hint() wire.TypeHint       { return wire.HintUsize }
func (v UsizeValue) writePayload(f *Formatter) { f.writeLength(uint64(v)) }

// I8Value writes a HintI8.
type I8Value int8

func (v I8Value) hint() wire.TypeHint       { return wire.HintI8 }
func (v I8Value) writePayload(f *Formatter) { f.d.Write([]byte{byte(v)}) }

// I16Value writes a HintI16.
type I16Value int16

func (v I16Value) hint() wire.TypeHint { return wire.HintI16 }
func (v I16Value) writePayload(f *Formatter) {
	var buf [2]byte
	wire.PutU16(buf[:], uint16(v))
	f.d.Write(buf[:])
}

// I32Value writes a HintI32.
type I32Value int32

func (v I32Value) hint() wire.TypeHint { return wire.HintI32 }
func (v I32Value) writePayload(f *Formatter) {
	var buf [4]byte
	wire.PutU32(buf[:], uint32(v))
	f.d.Write(buf[:])
}

// I64Value writes a HintI64.
type I64Value int64

func (v I64Value) hint() wire.TypeHint { return wire.HintI64 }
func (v I64Value) writePayload(f *Formatter) {
	var buf [8]byte
	wire.PutU64(buf[:], uint64(v))
	f.d.Write(buf[:])
}

// I128Value writes a HintI128 as the two's-complement big-endian halves of
// a 128-bit signed integer.
type I128Value struct{ Hi, Lo uint64 }

func (v I128Value) hint() wire.TypeHint { return wire.HintI128 }
func (v I128Value) writePayload(f *Formatter) {
	var buf [16]byte
	wire.PutU128(buf[:], v.Hi, v.Lo)
	f.d.Write(buf[:])
}

// IsizeValue writes a HintIsize sized to the Formatter's negotiated
// pointer width.
type IsizeValue int64

func (v IsizeValue) hint() wire.TypeHint       { return wire.HintIsize }
func (v IsizeValue) writePayload(f *Formatter) { f.writeLength(uint64(v)) }

// F32Value writes a HintF32, IEEE-754 in network byte order.
type F32Value float32

func (v F32Value) hint() wire.TypeHint { return wire.HintF32 }
func (v F32Value) writePayload(f *Formatter) {
	var buf [4]byte
	wire.PutU32(buf[:], math.Float32bits(float32(v)))
	f.d.Write(buf[:])
}

// F64Value writes a HintF64, IEEE-754 in network byte order.
type F64Value float64

func (v F64Value) hint() wire.TypeHint { return wire.HintF64 }
func (v F64Value) writePayload(f *Formatter) {
	var buf [8]byte
	wire.PutU64(buf[:], math.Float64bits(float64(v)))
	f.d.Write(buf[:])
}

// CharValue writes a HintChar: a one-byte UTF-8 length (1..4) followed by
// the rune's UTF-8 encoding.
type CharValue rune

func (v CharValue) hint() wire.TypeHint { return wire.HintChar }
func (v CharValue) writePayload(f *Formatter) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], rune(v))
	f.d.Write([]byte{byte(n)})
	f.d.Write(enc[:n])
}

// StringValue writes a HintStringSlice: a pointer-width length hint
// followed by the UTF-8 bytes.
type StringValue string

func (v StringValue) hint() wire.TypeHint { return wire.HintStringSlice }
func (v StringValue) writePayload(f *Formatter) {
	f.writeLength(uint64(len(v)))
	f.d.Write([]byte(v))
}

// TupleValue writes a HintTuple: a length hint followed by each element's
// own hint+payload pair, in order (spec §4.3.2).
type TupleValue []WriteValue

func (v TupleValue) hint() wire.TypeHint { return wire.HintTuple }
func (v TupleValue) writePayload(f *Formatter) {
	f.writeLength(uint64(len(v)))
	for _, el := range v {
		f.Write(el)
	}
}

// ListValue writes a HintList: a length hint followed by a single leading
// inner hint (taken from the first element; the list is homogeneous) and
// then each element's bare payload. The inner hint is omitted entirely
// when the list is empty (spec §4.3.2).
type ListValue []WriteValue

func (v ListValue) hint() wire.TypeHint { return wire.HintList }
func (v ListValue) writePayload(f *Formatter) {
	f.writeLength(uint64(len(v)))
	if len(v) == 0 {
		return
	}
	f.writeHintByte(v[0].hint())
	for _, el := range v {
		el.writePayload(f)
	}
}

// DynListValue writes a HintDynList: a length hint followed by each
// element's own hint+payload pair, for heterogeneous collections.
type DynListValue []WriteValue

func (v DynListValue) hint() wire.TypeHint { return wire.HintDynList }
func (v DynListValue) writePayload(f *Formatter) {
	f.writeLength(uint64(len(v)))
	for _, el := range v {
		f.Write(el)
	}
}

// StructKind distinguishes the four shapes a TypeStructureValue's payload
// can take (spec §3.4).
type StructKind uint8

const (
	StructUnit StructKind = iota
	StructTuple
	StructNamed
	StructEnumVariant
)

// TypeStructureValue writes a HintTypeStructure: a reference to the
// registered TypeStructure row plus its instance payload. Field order for
// struct-named matches the field order recorded in the registry row; this
// value carries no field names on the wire, only positions (spec §3.4,
// §4.5).
type TypeStructureValue struct {
	ID           ids.TypeStructureId
	Kind         StructKind
	Discriminant uint32
	Fields       []WriteValue
}

func (v TypeStructureValue) hint() wire.TypeHint { return wire.HintTypeStructure }
func (v TypeStructureValue) writePayload(f *Formatter) {
	var idBuf [2]byte
	wire.PutU16(idBuf[:], uint16(v.ID))
	f.d.Write(idBuf[:])
	f.d.Write([]byte{byte(v.Kind)})
	if v.Kind == StructEnumVariant {
		var discBuf [4]byte
		wire.PutU32(discBuf[:], v.Discriminant)
		f.d.Write(discBuf[:])
	}
	f.writeLength(uint64(len(v.Fields)))
	for _, field := range v.Fields {
		f.Write(field)
	}
}
