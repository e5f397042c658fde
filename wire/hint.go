package wire

import "fmt"

// TypeHint is the one-byte tag preceding each value, or each collection
// element, on the wire (spec §4.3.2). The value space is partitioned by
// first decimal digit: 0XX primitives, 1XX composites, 2XX meta. This is
// the newer of the two overlapping tables the source carries; spec §9
// marks it authoritative and the older table is not implemented.
type TypeHint uint8

const (
	HintBool TypeHint = 0

	HintUsize TypeHint = 10
	HintU8    TypeHint = 11
	HintU16   TypeHint = 12
	HintU32   TypeHint = 13
	HintU64   TypeHint = 14
	HintU128  TypeHint = 15

	HintIsize TypeHint = 20
	HintI8    TypeHint = 21
	HintI16   TypeHint = 22
	HintI32   TypeHint = 23
	HintI64   TypeHint = 24
	HintI128  TypeHint = 25

	HintF32 TypeHint = 33
	HintF64 TypeHint = 34

	HintTuple       TypeHint = 100
	HintChar        TypeHint = 101
	HintStringSlice TypeHint = 102
	HintList        TypeHint = 103
	HintDynList     TypeHint = 104

	HintWriteStatements TypeHint = 201
	HintTypeStructure   TypeHint = 202
)

func (h TypeHint) String() string {
	switch h {
	case HintBool:
		return "Bool"
	case HintUsize:
		return "Usize"
	case HintU8:
		return "U8"
	case HintU16:
		return "U16"
	case HintU32:
		return "U32"
	case HintU64:
		return "U64"
	case HintU128:
		return "U128"
	case HintIsize:
		return "Isize"
	case HintI8:
		return "I8"
	case HintI16:
		return "I16"
	case HintI32:
		return "I32"
	case HintI64:
		return "I64"
	case HintI128:
		return "I128"
	case HintF32:
		return "F32"
	case HintF64:
		return "F64"
	case HintTuple:
		return "Tuple"
	case HintChar:
		return "Char"
	case HintStringSlice:
		return "StringSlice"
	case HintList:
		return "List"
	case HintDynList:
		return "DynList"
	case HintWriteStatements:
		return "WriteStatements"
	case HintTypeStructure:
		return "TypeStructure"
	default:
		return fmt.Sprintf("TypeHint(%d)", uint8(h))
	}
}

// Valid reports whether h is one of the hints this version of the codec
// knows how to emit and decode. Producers must never emit any other value
// (spec §6); decoders surface UnknownTypeHint for anything else.
func (h TypeHint) Valid() bool {
	switch h {
	case HintBool,
		HintUsize, HintU8, HintU16, HintU32, HintU64, HintU128,
		HintIsize, HintI8, HintI16, HintI32, HintI64, HintI128,
		HintF32, HintF64,
		HintTuple, HintChar, HintStringSlice, HintList, HintDynList,
		HintWriteStatements, HintTypeStructure:
		return true
	default:
		return false
	}
}

// FixedSize returns the payload byte-size for primitive hints whose size
// does not depend on pointer width or a length prefix, and ok=false for
// every hint whose payload size is variable (strings, collections, Usize,
// Isize, and the meta hints).
func (h TypeHint) FixedSize() (size int, ok bool) {
	switch h {
	case HintBool, HintU8, HintI8:
		return 1, true
	case HintU16, HintI16:
		return 2, true
	case HintU32, HintI32, HintF32:
		return 4, true
	case HintU64, HintI64, HintF64:
		return 8, true
	case HintU128, HintI128:
		return 16, true
	default:
		return 0, false
	}
}

// ContinuationMarker is the one-byte tag preceding each element inside a
// WriteStatements region (spec §4.3.3).
type ContinuationMarker uint8

const (
	Continue ContinuationMarker = 0
	End      ContinuationMarker = 1
)

func (c ContinuationMarker) String() string {
	switch c {
	case Continue:
		return "Continue"
	case End:
		return "End"
	default:
		return fmt.Sprintf("ContinuationMarker(%d)", uint8(c))
	}
}
