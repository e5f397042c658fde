package producer

import (
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/wire"
)

// EmitFrame writes one complete frame's header, optional stamp, and
// print_id, then invokes body with a Formatter ready to write the
// statement's content bytes (spec §4.3.1). It is the one place that
// assembles frame plumbing; everything after print_id is ordinary
// Formatter.Write calls driven by the build-time-resolved statement shape.
func EmitFrame(d Dispatcher, width ids.PointerWidth, stamp *ids.Stamp, print wire.StatementRef, body func(*Formatter)) {
	h := wire.Header{Width: width, HasStamp: stamp != nil}
	d.Write([]byte{h.Encode()})

	if stamp != nil {
		var buf [8]byte
		wire.PutU64(buf[:], uint64(*stamp))
		d.Write(buf[:])
	}

	var idBuf [wire.StatementRefSize]byte
	wire.PutStatementRef(idBuf[:], print)
	d.Write(idBuf[:])

	body(NewFormatter(d, width))
}
