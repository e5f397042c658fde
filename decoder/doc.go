// Package decoder is the read side of the wire protocol: a stateless byte
// machine that consumes frames emitted by package producer, resolving
// each frame's statement against a registry and rendering it into a
// DecodedSegment stream.
//
// # Overview
//
// DecodeFrame never blocks on short input: a frame that is not yet fully
// buffered returns ErrIncomplete with the input untouched, so a caller
// streaming bytes off a transport can retry once more data has arrived.
// Any other error is fatal to that one frame only — the Decoder itself is
// never corrupted, and the caller decides how to resynchronize past the
// bad frame. CrateCache and the generic StatementCache hold every row they
// have ever resolved for the lifetime of the Decoder; a row is never
// invalidated once published, so repeated frames referencing the same
// statement never touch the registry twice.
//
// # Key Types
//
//   - Decoder: owns a registry.Store and the CrateCache/StatementCache
//     pair backing DecodeFrame. Safe for concurrent use.
//   - Frame: one fully decoded print-statement emission — its Stamp, the
//     resolved crate, the print statement's ID, and its DecodedSegment
//     stream.
//   - Value: the decoded counterpart of producer.WriteValue. Unlike the
//     producer's sealed WriteValue, Value places no restriction on who
//     can type-switch over it, since handing decoded data to an external
//     renderer is this package's purpose.
//   - Cache[K, V] / CrateCache / StatementCache[T]: generic, append-only,
//     publish-once maps a decode call resolves through on a miss and
//     reads without locking registry I/O on a hit.
//
// # Usage
//
//	dec := decoder.New(reg)
//	for len(buf) > 0 {
//	    frame, n, err := dec.DecodeFrame(buf)
//	    if errors.Is(err, decoder.ErrIncomplete) {
//	        break // wait for more bytes, then retry from the same offset
//	    }
//	    if err != nil {
//	        // fatal to this frame only; resynchronize and continue
//	    }
//	    buf = buf[n:]
//	    render(frame)
//	}
//
// # Error Handling
//
// Every failure other than ErrIncomplete is a *decoder.Error tagged with a
// stable ErrorKind (UnknownHeaderBits, UnknownCrate, UnknownStatement,
// UnknownTypeHint, InvalidValueBytes, LengthOverflow, InvalidUTF8) and the
// contextual fields relevant to that kind (CrateID, StatementKind, Hint,
// Length, ...), so a caller can log or count failures by category without
// string-matching an error message. The one exception is a failure to open
// a known crate's per-crate database, which is returned as the
// *registry.Error itself.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/producer: the write side whose frames
//     this package decodes.
//   - github.com/deferfmt/deferfmt/registry: the content-addressed store
//     this package resolves statements and crates against.
//   - github.com/deferfmt/deferfmt/wire: the frame layout and hint table
//     this package reads.
package decoder
