// Package wire implements the bit-exact frame layout, type-hint table, and
// big-endian binary helpers that make up the deferfmt wire codec.
//
// # Overview
//
// Everything here is shared by the producer side (which only ever writes)
// and the decoder side (which only ever reads); neither side allocates
// more than the payload bytes being moved, and neither imports the other.
// A frame on the wire is, in order: one header byte, an optional 8-byte
// Stamp, a 4-byte StatementRef, and a sequence of TypeHint-tagged values
// sized to the header's negotiated pointer width.
//
// # Key Types
//
//   - Header: the decoded form of the leading header byte — negotiated
//     PointerWidth plus whether a Stamp follows.
//   - TypeHint: the one-byte tag preceding each value or collection
//     element, partitioned 0XX primitives / 1XX composites / 2XX meta.
//   - StatementRef: the (CrateId, ShortId) pair that opens every frame and
//     follows the Continue marker of every nested write statement, always
//     4 bytes regardless of pointer width.
//   - ContinuationMarker: the Continue/End byte delimiting a
//     WriteStatements region.
//
// # Usage
//
//	h := wire.Header{Width: ids.PointerWidth32, HasStamp: true}
//	buf[0] = h.Encode()
//
//	decoded, err := wire.DecodeHeader(buf[0])
//	if err != nil {
//	    // buf[0] has a bit set this codec version doesn't understand
//	}
//
// Length hints (string lengths, collection counts, Usize/Isize payloads)
// are sized to the negotiated width rather than fixed at 8 bytes:
//
//	raw := buf[n : n+decoded.Width.Size()]
//	length := wire.ReadLength(raw, decoded.Width)
//
// # Error Handling
//
// This package reports malformed input with plain errors from
// DecodeHeader; it does not define a typed error kind of its own. Callers
// that need a stable error category, such as decoder, wrap these into
// their own Error types.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/producer: writes frames in this layout.
//   - github.com/deferfmt/deferfmt/decoder: reads frames in this layout.
//   - github.com/deferfmt/deferfmt/ids: PointerWidth, CrateId, ShortId.
package wire
