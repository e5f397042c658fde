package wire

import (
	"encoding/binary"

	"github.com/deferfmt/deferfmt/ids"
)

// PointerWidth is an alias so callers of this package don't need a second
// import for the type every function here is parameterized over.
type PointerWidth = ids.PointerWidth

// Binary encoding utilities for big-endian integers and IEEE-754 floats.
//
// The wire contract (spec §4.3.4) is explicit about network byte order for
// every multi-byte value on the wire, so unlike a little-endian on-disk
// format every helper here is built on encoding/binary.BigEndian.

// PutU16 writes a uint16 at the start of b in big-endian order.
func PutU16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// PutU32 writes a uint32 at the start of b in big-endian order.
func PutU32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// PutU64 writes a uint64 at the start of b in big-endian order.
func PutU64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// PutU128 writes a 128-bit value as two big-endian uint64 halves, high half
// first, matching the byte order the rest of the frame uses.
func PutU128(b []byte, hi, lo uint64) {
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
}

// ReadU16 reads a big-endian uint16 from the start of b.
func ReadU16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// ReadU32 reads a big-endian uint32 from the start of b.
func ReadU32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// ReadU64 reads a big-endian uint64 from the start of b.
func ReadU64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// ReadU128 reads a 128-bit value as two big-endian uint64 halves.
func ReadU128(b []byte) (hi, lo uint64) {
	return binary.BigEndian.Uint64(b[0:8]), binary.BigEndian.Uint64(b[8:16])
}

// PutLength writes a length hint in the byte-size the negotiated pointer
// width dictates (spec §4.3.4).
func PutLength(b []byte, w PointerWidth, n uint64) {
	switch w.Size() {
	case 2:
		PutU16(b, uint16(n))
	case 4:
		PutU32(b, uint32(n))
	default:
		PutU64(b, n)
	}
}

// ReadLength reads a length hint in the byte-size the negotiated pointer
// width dictates.
func ReadLength(b []byte, w PointerWidth) uint64 {
	switch w.Size() {
	case 2:
		return uint64(ReadU16(b))
	case 4:
		return uint64(ReadU32(b))
	default:
		return ReadU64(b)
	}
}
