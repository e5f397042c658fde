package decoder

import (
	"math/big"

	"github.com/deferfmt/deferfmt/ids"
)

// Value is a decoded wire value: exactly the taxonomy producer.WriteValue
// can emit, on the read side (spec §3.4). Unlike the producer's sealed
// WriteValue, nothing here forbids an external renderer from type
// switching over Value — the decoder's whole purpose is to hand decoded
// data to a collaborator that renders it.
type Value interface{ isValue() }

type (
	BoolValue   bool
	U8Value     uint8
	U16Value    uint16
	U32Value    uint32
	U64Value    uint64
	UsizeValue  uint64
	I8Value     int8
	I16Value    int16
	I32Value    int32
	I64Value    int64
	IsizeValue  int64
	F32Value    float32
	F64Value    float64
	CharValue   rune
	StringValue string
)

func (BoolValue) isValue()   {}
func (U8Value) isValue()     {}
func (U16Value) isValue()    {}
func (U32Value) isValue()    {}
func (U64Value) isValue()    {}
func (UsizeValue) isValue()  {}
func (I8Value) isValue()     {}
func (I16Value) isValue()    {}
func (I32Value) isValue()    {}
func (I64Value) isValue()    {}
func (IsizeValue) isValue()  {}
func (F32Value) isValue()    {}
func (F64Value) isValue()    {}
func (CharValue) isValue()   {}
func (StringValue) isValue() {}

// Uint128Value and Int128Value back onto math/big.Int: no corpus
// dependency supplies a native 128-bit integer type (see DESIGN.md), and
// big.Int is exact for a value this module only ever formats or compares,
// never arithmetic-operates on.
type Uint128Value struct{ V *big.Int }

func (Uint128Value) isValue() {}

type Int128Value struct{ V *big.Int }

func (Int128Value) isValue() {}

// ListValue is a homogeneous collection: HasInner reports whether the
// single leading type hint shared by every element was present, false when
// Elements is empty (spec §4.3.3: an empty List omits the inner hint
// entirely).
type ListValue struct {
	HasInner bool
	Elements []Value
}

func (ListValue) isValue() {}

// DynListValue is a heterogeneous collection: each element carries its own
// full hint, so Elements alone is enough to render it.
type DynListValue []Value

func (DynListValue) isValue() {}

// TupleValue is a fixed-arity, heterogeneous collection.
type TupleValue []Value

func (TupleValue) isValue() {}

// StructKind mirrors the wire encoding producer.StructKind writes: the two
// packages sit on opposite sides of the same sealed taxonomy and so share
// its wire values without sharing a type.
type StructKind uint8

const (
	StructUnit StructKind = iota
	StructTuple
	StructNamed
	StructEnumVariant
)

// TypeStructureValue is a decoded struct or enum-variant payload. Fields
// is empty for StructUnit, positional for StructTuple, and the registry's
// TypeStructureRecord supplies field/variant names for rendering.
type TypeStructureValue struct {
	ID           ids.TypeStructureId
	Kind         StructKind
	Discriminant uint32
	Fields       []Value
}

func (TypeStructureValue) isValue() {}

// NestedStatement is one inner statement of a decoded WriteStatementsValue
// region: the write statement it referenced, plus its own decoded segment
// stream.
type NestedStatement struct {
	Crate    ids.CrateId
	WriteID  ids.WriteStatementId
	Segments []DecodedSegment
}

// WriteStatementsValue is a decoded nested-region value: zero or more
// Continue-delimited NestedStatement entries, terminated by End.
type WriteStatementsValue struct {
	Statements []NestedStatement
}

func (WriteStatementsValue) isValue() {}
