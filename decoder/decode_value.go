package decoder

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/registry"
	"github.com/deferfmt/deferfmt/wire"
)

// decodeValue reads one full value (hint byte + payload) from c.
func (d *Decoder) decodeValue(c *cursor, width ids.PointerWidth, crate *crateHandle) (Value, error) {
	hb, ok := c.readByte()
	if !ok {
		return nil, ErrIncomplete
	}
	hint := wire.TypeHint(hb)
	if !hint.Valid() {
		return nil, &Error{Kind: ErrUnknownTypeHint, Hint: hb}
	}
	return d.decodePayload(hint, c, width, crate)
}

// decodePayload reads the payload for an already-consumed hint. List
// elements share a single leading hint (spec §4.3.3), so the hint and
// payload reads are split out from decodeValue to let the List case
// supply a hint it read once itself.
func (d *Decoder) decodePayload(hint wire.TypeHint, c *cursor, width ids.PointerWidth, crate *crateHandle) (Value, error) {
	if size, ok := hint.FixedSize(); ok {
		raw, ok := c.readN(size)
		if !ok {
			return nil, ErrIncomplete
		}
		return decodeFixed(hint, raw), nil
	}

	switch hint {
	case wire.HintUsize:
		n, ok, err := c.readLength(width)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrIncomplete
		}
		return UsizeValue(n), nil

	case wire.HintIsize:
		n, ok, err := c.readLength(width)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrIncomplete
		}
		return IsizeValue(signExtend(n, width)), nil

	case wire.HintChar:
		lb, ok := c.readByte()
		if !ok {
			return nil, ErrIncomplete
		}
		raw, ok := c.readN(int(lb))
		if !ok {
			return nil, ErrIncomplete
		}
		r, n := utf8.DecodeRune(raw)
		if r == utf8.RuneError || n != len(raw) {
			return nil, &Error{Kind: ErrInvalidUTF8, Hint: byte(hint)}
		}
		return CharValue(r), nil

	case wire.HintStringSlice:
		n, ok, err := c.readLength(width)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrIncomplete
		}
		raw, ok := c.readN(int(n))
		if !ok {
			return nil, ErrIncomplete
		}
		if !utf8.Valid(raw) {
			return nil, &Error{Kind: ErrInvalidUTF8, Hint: byte(hint)}
		}
		return StringValue(raw), nil

	case wire.HintTuple:
		n, ok, err := c.readLength(width)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrIncomplete
		}
		elems := make(TupleValue, n)
		for i := range elems {
			v, err := d.decodeValue(c, width, crate)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return elems, nil

	case wire.HintDynList:
		n, ok, err := c.readLength(width)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrIncomplete
		}
		elems := make(DynListValue, n)
		for i := range elems {
			v, err := d.decodeValue(c, width, crate)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return elems, nil

	case wire.HintList:
		n, ok, err := c.readLength(width)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrIncomplete
		}
		if n == 0 {
			return ListValue{}, nil
		}
		innerByte, ok := c.readByte()
		if !ok {
			return nil, ErrIncomplete
		}
		inner := wire.TypeHint(innerByte)
		if !inner.Valid() {
			return nil, &Error{Kind: ErrUnknownTypeHint, Hint: innerByte}
		}
		elems := make([]Value, n)
		for i := range elems {
			v, err := d.decodePayload(inner, c, width, crate)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return ListValue{HasInner: true, Elements: elems}, nil

	case wire.HintTypeStructure:
		return d.decodeTypeStructure(c, width, crate)

	case wire.HintWriteStatements:
		return d.decodeWriteStatements(c, width)

	default:
		return nil, &Error{Kind: ErrUnknownTypeHint, Hint: byte(hint)}
	}
}

func decodeFixed(hint wire.TypeHint, raw []byte) Value {
	switch hint {
	case wire.HintBool:
		return BoolValue(raw[0] != 0)
	case wire.HintU8:
		return U8Value(raw[0])
	case wire.HintI8:
		return I8Value(int8(raw[0]))
	case wire.HintU16:
		return U16Value(wire.ReadU16(raw))
	case wire.HintI16:
		return I16Value(int16(wire.ReadU16(raw)))
	case wire.HintU32:
		return U32Value(wire.ReadU32(raw))
	case wire.HintI32:
		return I32Value(int32(wire.ReadU32(raw)))
	case wire.HintF32:
		return F32Value(math.Float32frombits(wire.ReadU32(raw)))
	case wire.HintU64:
		return U64Value(wire.ReadU64(raw))
	case wire.HintI64:
		return I64Value(int64(wire.ReadU64(raw)))
	case wire.HintF64:
		return F64Value(math.Float64frombits(wire.ReadU64(raw)))
	case wire.HintU128:
		hi, lo := wire.ReadU128(raw)
		return Uint128Value{V: uint128ToBig(hi, lo)}
	case wire.HintI128:
		hi, lo := wire.ReadU128(raw)
		v := uint128ToBig(hi, lo)
		if hi&(1<<63) != 0 {
			// Two's-complement negative: v - 2^128.
			mod := new(big.Int).Lsh(big.NewInt(1), 128)
			v.Sub(v, mod)
		}
		return Int128Value{V: v}
	default:
		panic("decoder: decodeFixed called with non-fixed-size hint")
	}
}

func uint128ToBig(hi, lo uint64) *big.Int {
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	return v
}

// signExtend interprets a width-sized unsigned value as its two's-complement
// signed equivalent.
func signExtend(n uint64, width ids.PointerWidth) int64 {
	switch width.Size() {
	case 2:
		return int64(int16(uint16(n)))
	case 4:
		return int64(int32(uint32(n)))
	default:
		return int64(n)
	}
}

func (d *Decoder) decodeTypeStructure(c *cursor, width ids.PointerWidth, crate *crateHandle) (Value, error) {
	idBytes, ok := c.readN(2)
	if !ok {
		return nil, ErrIncomplete
	}
	tid := ids.TypeStructureId(wire.ReadU16(idBytes))

	kindByte, ok := c.readByte()
	if !ok {
		return nil, ErrIncomplete
	}
	kind := StructKind(kindByte)

	var discriminant uint32
	if kind == StructEnumVariant {
		db, ok := c.readN(4)
		if !ok {
			return nil, ErrIncomplete
		}
		discriminant = wire.ReadU32(db)
	}

	n, ok, err := c.readLength(width)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrIncomplete
	}
	fields := make([]Value, n)
	for i := range fields {
		v, err := d.decodeValue(c, width, crate)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}

	return TypeStructureValue{ID: tid, Kind: kind, Discriminant: discriminant, Fields: fields}, nil
}

func (d *Decoder) decodeWriteStatements(c *cursor, width ids.PointerWidth) (Value, error) {
	var out WriteStatementsValue
	for {
		marker, ok := c.readByte()
		if !ok {
			return nil, ErrIncomplete
		}
		if wire.ContinuationMarker(marker) == wire.End {
			return out, nil
		}

		refBytes, ok := c.readN(wire.StatementRefSize)
		if !ok {
			return nil, ErrIncomplete
		}
		ref := wire.ReadStatementRef(refBytes)

		nestedCrate, err := d.crates.resolve(ref.Crate)
		if err != nil {
			return nil, err
		}
		writeID := ids.WriteStatementId(ref.Statement)
		rec, err := d.writes.Resolve(ref.Crate, ids.ShortId(ref.Statement), func() (registry.WriteStatementRecord, error) {
			return nestedCrate.store.FindWriteByID(writeID)
		})
		if err != nil {
			return nil, &Error{Kind: ErrUnknownStatement, StatementKind: "write", StatementID: uint16(ref.Statement), Err: err}
		}

		segs, err := d.decodeSegments(rec.Payload.Format, width, c, nestedCrate)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, NestedStatement{Crate: ref.Crate, WriteID: writeID, Segments: segs})
	}
}
