package wire

import "github.com/deferfmt/deferfmt/ids"

// StatementRef is the (crate, statement) pair that opens a frame's
// print_id, or a nested write statement's Continue marker (spec §4.3.1,
// §4.3.3). It is always four bytes on the wire regardless of pointer
// width: two u16s, big-endian.
type StatementRef struct {
	Crate     ids.CrateId
	Statement ids.ShortId
}

// PutStatementRef writes crate_id ++ statement_id into the first 4 bytes
// of b.
func PutStatementRef(b []byte, ref StatementRef) {
	PutU16(b[0:2], uint16(ref.Crate))
	PutU16(b[2:4], uint16(ref.Statement))
}

// ReadStatementRef reads a StatementRef from the first 4 bytes of b.
func ReadStatementRef(b []byte) StatementRef {
	return StatementRef{
		Crate:     ids.CrateId(ReadU16(b[0:2])),
		Statement: ids.ShortId(ReadU16(b[2:4])),
	}
}

// StatementRefSize is the fixed wire size of a StatementRef.
const StatementRefSize = 4
