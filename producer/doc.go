// Package producer implements the resource-constrained, allocation-free
// emission side of the wire protocol: a Dispatcher byte sink, a sealed
// WriteValue capability set, the Formatter that drives them, the
// StatementWriter scope for nested write-statement regions, and the
// optional process-wide logger singleton.
//
// # Overview
//
// Nothing in this package parses a format string or touches the registry:
// producer code references only the short statement IDs a build-time
// macro front-end resolved ahead of time, and writes values whose shape
// was fixed at that same build time. A Formatter never allocates beyond
// what EmitFrame's caller already owns; WriteValue is a sealed interface
// (an unexported method) so no package outside producer can introduce a
// new wire-level type the decoder wouldn't recognize.
//
// # Key Types
//
//   - Dispatcher: the minimal byte sink a Formatter writes through;
//     BufferDispatcher is the in-memory implementation tests use, but any
//     io.Writer-shaped transport can implement it.
//   - Formatter: drives the wire codec for one frame's content, writing
//     each WriteValue's hint and payload; EmitFrame writes the header,
//     optional stamp, and statement reference ahead of it.
//   - WriteValue: the sealed taxonomy of values a Formatter can write —
//     BoolValue, the sized integer/float values, StringValue, CharValue,
//     TupleValue/ListValue/DynListValue, TypeStructureValue.
//   - StatementWriter: opens a WriteStatements region for nested
//     write-statement frames, Continue-delimited and closed with an End
//     marker.
//   - Session: the Acquire/Release handle around the process-wide
//     singleton Formatter Init installs.
//
// # Usage
//
//	producer.Init(transport, ids.PointerWidth64, &critsec.UnixSignalMask{})
//	// ... per log call ...
//	session := producer.Acquire()
//	producer.EmitFrame(transport, ids.PointerWidth64, nil, printRef, func(f *producer.Formatter) {
//	    f.Write(producer.StringValue("connected"))
//	    f.Write(producer.U32Value(port))
//	})
//	session.Release()
//
// Nested write statements reuse the same Formatter through a
// StatementWriter:
//
//	sw := producer.OpenStatementWriter(f)
//	sw.Statement(writeRef, func(nested *producer.Formatter) {
//	    nested.Write(producer.StringValue("retrying"))
//	})
//	sw.Close()
//
// # Error Handling
//
// This package has no error return anywhere in its write path: a
// Formatter cannot fail to write to a Dispatcher it was handed, by
// construction. Init is one-shot — calling it twice does nothing, matching
// the singleton's sync.Once guard.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/producer/critsec: the platform-specific
//     Interface Init installs to keep a log call from being interrupted
//     mid-frame by a signal handler that also logs.
//   - github.com/deferfmt/deferfmt/wire: the hint table and binary
//     encoding every WriteValue writes through.
//   - github.com/deferfmt/deferfmt/decoder: the read side of everything
//     this package emits.
package producer
