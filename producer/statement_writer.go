package producer

import "github.com/deferfmt/deferfmt/wire"

// StatementWriter is the RAII-style scope that emits a WriteStatements
// region (spec §4.3.3, §4.4, §9). Construction writes the opening
// HintWriteStatements byte; Close writes the terminating End marker.
// Regions may nest: a Statement's body may itself open another
// StatementWriter on the same Formatter once the outer one has advanced
// past the point of writing Continue + the nested statement's ids.
type StatementWriter struct {
	f      *Formatter
	closed bool
}

// OpenStatementWriter begins a nested write-statement region on f. Scopes
// may nest (a Statement's body may open and fully close another scope on
// the same Formatter); they must close in LIFO order.
func OpenStatementWriter(f *Formatter) *StatementWriter {
	sw := &StatementWriter{f: f}
	f.scopeStack = append(f.scopeStack, sw)
	f.writeHintByte(wire.HintWriteStatements)
	return sw
}

// Statement emits one nested write statement: a Continue marker, its
// (crate, statement) reference, and then whatever content bytes body
// writes through the scope's Formatter.
func (s *StatementWriter) Statement(ref wire.StatementRef, body func(*Formatter)) {
	if s.closed {
		panic("producer: write to a closed StatementWriter")
	}
	s.f.writeContinuationByte(wire.Continue)
	s.f.writeStatementRef(ref)
	body(s.f)
}

// Close emits the terminating End marker and pops this scope off its
// Formatter's scope stack. Close is idempotent. It panics if s is not the
// most-recently-opened still-open scope on its Formatter — closing out of
// order would interleave two regions' End markers.
func (s *StatementWriter) Close() {
	if s.closed {
		return
	}
	stack := s.f.scopeStack
	if len(stack) == 0 || stack[len(stack)-1] != s {
		panic("producer: StatementWriter scopes must close in LIFO order")
	}
	s.f.writeContinuationByte(wire.End)
	s.closed = true
	s.f.scopeStack = stack[:len(stack)-1]
}
